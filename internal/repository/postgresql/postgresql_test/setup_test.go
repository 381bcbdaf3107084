package postgresql_test

import (
	"os"
	"sync"
	"testing"

	"github.com/stafftrack/attendance-backend-go/internal/pkg/database"
)

var (
	testDB     *database.DB
	testDBOnce sync.Once
)

// testDatabase connects to the database named by TEST_DATABASE_URL. Tests in
// this package are integration tests and are skipped when no test database
// is configured.
func testDatabase(t *testing.T) *database.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping database integration test")
	}

	testDBOnce.Do(func() {
		var err error
		testDB, err = database.NewPostgreSQLDB(dsn)
		if err != nil {
			panic("Failed to connect to test database: " + err.Error())
		}
	})

	return testDB
}

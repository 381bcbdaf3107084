package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func ipTestHandler(allowed []string) http.Handler {
	return IPRestricted(allowed)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
}

func TestIPRestrictedAllowsListedIP(t *testing.T) {
	h := ipTestHandler([]string{"10.0.0.5", "10.0.0.6"})

	req := httptest.NewRequest(http.MethodPost, "/attendance/sign", nil)
	req.RemoteAddr = "10.0.0.5:51234"
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestIPRestrictedBlocksUnlistedIP(t *testing.T) {
	h := ipTestHandler([]string{"10.0.0.5"})

	req := httptest.NewRequest(http.MethodPost, "/attendance/sign", nil)
	req.RemoteAddr = "192.168.1.20:51234"
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestIPRestrictedEmptyListDisablesCheck(t *testing.T) {
	h := ipTestHandler(nil)

	req := httptest.NewRequest(http.MethodPost, "/attendance/sign", nil)
	req.RemoteAddr = "192.168.1.20:51234"
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestIPRestrictedUsesForwardedFor(t *testing.T) {
	h := ipTestHandler([]string{"10.0.0.5"})

	req := httptest.NewRequest(http.MethodPost, "/attendance/sign", nil)
	req.RemoteAddr = "172.17.0.1:51234"
	req.Header.Set("X-Forwarded-For", "10.0.0.5, 172.17.0.1")
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

package jwt

import (
	"context"
	"testing"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-for-jwt"

func newTestService() Service {
	return NewJWTService(testSecret, "1h", "24h")
}

func TestGenerateAccessTokenClaims(t *testing.T) {
	svc := newTestService()

	token, expiresAt, err := svc.GenerateAccessToken("user-1", "jdoe", true)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.Positive(t, expiresAt)

	parsed, err := jwtauth.VerifyToken(svc.JWTAuth(), token)
	require.NoError(t, err)

	claims, err := parsed.AsMap(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims["user_id"])
	assert.Equal(t, "jdoe", claims["username"])
	assert.Equal(t, true, claims["is_admin"])
	assert.Equal(t, "access", claims["type"])
}

func TestParseRefreshTokenRoundTrip(t *testing.T) {
	svc := newTestService()

	token, _, err := svc.GenerateRefreshToken("user-1")
	require.NoError(t, err)

	userID, err := svc.ParseRefreshToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
}

func TestParseRefreshTokenRejectsAccessToken(t *testing.T) {
	svc := newTestService()

	access, _, err := svc.GenerateAccessToken("user-1", "jdoe", false)
	require.NoError(t, err)

	_, err = svc.ParseRefreshToken(access)
	assert.Error(t, err)
}

func TestParseRefreshTokenRejectsGarbage(t *testing.T) {
	svc := newTestService()
	_, err := svc.ParseRefreshToken("not-a-token")
	assert.Error(t, err)
}

func TestRevokeToken(t *testing.T) {
	svc := newTestService()

	token, _, err := svc.GenerateRefreshToken("user-1")
	require.NoError(t, err)

	assert.False(t, svc.IsTokenRevoked(token))
	svc.RevokeToken(token)
	assert.True(t, svc.IsTokenRevoked(token))
}

package auth

import "errors"

// Auth domain errors
var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidToken       = errors.New("invalid or missing token")
	ErrTokenExpired       = errors.New("token expired")
	ErrRefreshRevoked     = errors.New("refresh token revoked")
	ErrAccountInactive    = errors.New("account is inactive")
)

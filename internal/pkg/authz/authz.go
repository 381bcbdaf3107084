package authz

import (
	"context"
	"errors"

	"github.com/go-chi/jwtauth/v5"
)

// ErrUnauthenticated is returned by services when no caller identity is
// present in the context.
var ErrUnauthenticated = errors.New("authentication required")

// Decision is the result of an authorization check.
type Decision struct {
	Allowed bool
	Reason  string
}

func Allowed() Decision {
	return Decision{Allowed: true}
}

func Denied(reason string) Decision {
	return Decision{Allowed: false, Reason: reason}
}

// Identity is the authenticated caller extracted from JWT claims.
type Identity struct {
	UserID   string
	Username string
	IsAdmin  bool
}

// FromContext extracts the caller identity from the request context.
// Returns a denied decision when claims are missing or malformed so callers
// can treat "no identity" and "not allowed" uniformly.
func FromContext(ctx context.Context) (Identity, Decision) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return Identity{}, Denied("missing or invalid token")
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return Identity{}, Denied("user_id claim is missing or invalid")
	}

	username, _ := claims["username"].(string)
	isAdmin, _ := claims["is_admin"].(bool)

	return Identity{UserID: userID, Username: username, IsAdmin: isAdmin}, Allowed()
}

// RequireAdmin is the single administrative-capability check. Every
// admin-scoped operation goes through this rather than re-reading the flag.
func RequireAdmin(ctx context.Context) (Identity, Decision) {
	id, decision := FromContext(ctx)
	if !decision.Allowed {
		return Identity{}, decision
	}
	if !id.IsAdmin {
		return id, Denied("administrative capability required")
	}
	return id, Allowed()
}

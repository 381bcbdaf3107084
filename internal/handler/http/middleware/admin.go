package middleware

import (
	"net/http"

	"github.com/stafftrack/attendance-backend-go/internal/domain/user"
	"github.com/stafftrack/attendance-backend-go/internal/handler/http/response"
	"github.com/stafftrack/attendance-backend-go/internal/pkg/authz"
)

func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, decision := authz.RequireAdmin(r.Context()); !decision.Allowed {
			response.HandleError(w, user.ErrAdminPrivilegeRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}

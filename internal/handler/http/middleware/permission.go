package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/officedesk/officeops-backend-go/internal/domain/auth"
	"github.com/officedesk/officeops-backend-go/internal/domain/user"
	"github.com/officedesk/officeops-backend-go/internal/handler/http/response"
)

// RequirePermission gates a route on a granted permission. The admin role
// passes every permission check.
func RequirePermission(p user.Permission) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, claims, err := jwtauth.FromContext(r.Context())
			if err != nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			if role, _ := claims["role"].(string); role == string(user.RoleAdmin) {
				next.ServeHTTP(w, r)
				return
			}

			granted, _ := claims["permissions"].([]interface{})
			for _, g := range granted {
				if s, ok := g.(string); ok && s == string(p) {
					next.ServeHTTP(w, r)
					return
				}
			}

			response.HandleError(w, user.ErrPermissionRequired)
		})
	}
}

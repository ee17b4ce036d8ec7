package middleware

import (
	"net/http"

	"titoubarz-backend/config"
	"titoubarz-backend/pkg/utils"
)

// NewAdminMiddleware guards the admin surface. Requests authenticate either
// with the shared password in the "adminpassword" header or with a Bearer
// token carrying the admin role. A missing credential is 401, a wrong one
// is 403.
func NewAdminMiddleware(cfg *config.Config) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if claims, err := utils.ExtractClaims(r); err == nil && claims.Role == "admin" {
				next.ServeHTTP(w, r)
				return
			}

			password := r.Header.Get("adminpassword")
			if password == "" {
				utils.WriteError(w, http.StatusUnauthorized, "Admin password required")
				return
			}

			if cfg.AdminPassword == "" {
				utils.WriteError(w, http.StatusInternalServerError, "Server configuration error")
				return
			}

			if password != cfg.AdminPassword {
				utils.WriteError(w, http.StatusForbidden, "Invalid admin password")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

package middleware

import (
	"net/http"

	"clinic-ops-api/internal/domain/entity"
	"clinic-ops-api/pkg/response"
)

// RequireRole checks that the authenticated user carries one of the
// allowed roles. Role comes from context, set by AuthMiddleware.
func RequireRole(allowedRoles ...entity.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, ok := GetRoleFromContext(r.Context())
			if !ok {
				response.Unauthorized(w, "Role information not found")
				return
			}

			allowed := false
			for _, allowedRole := range allowedRoles {
				if entity.Role(role) == allowedRole {
					allowed = true
					break
				}
			}

			if !allowed {
				response.Forbidden(w, "You don't have permission to access this resource")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireDirector is a convenience middleware for director-only endpoints
func RequireDirector(next http.Handler) http.Handler {
	return RequireRole(entity.RoleDirector)(next)
}

// RequireStaff allows any non-patient clinic role
func RequireStaff(next http.Handler) http.Handler {
	return RequireRole(entity.RoleCashier, entity.RoleDoctor, entity.RoleDirector, entity.RoleLabTechnician)(next)
}

// RequireCashier is a convenience middleware for payment endpoints
func RequireCashier(next http.Handler) http.Handler {
	return RequireRole(entity.RoleCashier, entity.RoleDirector)(next)
}

// RequireLabTechnician is a convenience middleware for lab endpoints
func RequireLabTechnician(next http.Handler) http.Handler {
	return RequireRole(entity.RoleLabTechnician, entity.RoleDirector)(next)
}

package api

import (
	"net/http"

	"cafeteria-be/internal/user"
	"cafeteria-be/internal/utils"
)

// RequireRoles rejects requests whose principal is missing (401) or whose
// role is not in the allowed set (403).
func RequireRoles(next http.HandlerFunc, roles ...user.Role) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		role := utils.GetUserRoleFromContext(r.Context())
		if role == "" {
			WriteErrorResponse(w, http.StatusUnauthorized, "unauthorized", "authentication required")
			return
		}

		for _, allowed := range roles {
			if user.Role(role) == allowed {
				next(w, r)
				return
			}
		}

		WriteErrorResponse(w, http.StatusForbidden, "forbidden", "insufficient role")
	}
}

package middleware

import (
	"net/http"

	"github.com/facetrack/attendance-backend-go/internal/domain/user"
	"github.com/facetrack/attendance-backend-go/internal/handler/http/response"
	"github.com/go-chi/jwtauth/v5"
)

// RequireManager gates the console surface: only Admin and Manager roles
// pass. Roles outside the closed enum are rejected outright.
func RequireManager(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, user.ErrManagerAccessRequired)
			return
		}

		roleStr, ok := claims["role"].(string)
		if !ok {
			response.HandleError(w, user.ErrManagerAccessRequired)
			return
		}

		role, ok := user.ParseRole(roleStr)
		if !ok || !role.CanAccessConsole() {
			response.HandleError(w, user.ErrManagerAccessRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}

package middleware

import (
	"net/http"

	"github.com/cmlabs-hris/hris-attendance/internal/domain/auth"
	"github.com/cmlabs-hris/hris-attendance/internal/handler/http/response"
	"github.com/cmlabs-hris/hris-attendance/internal/pkg/jwt"
)

// EmployeeOnly requires a token issued to a directory employee. Handlers
// behind it act on the employee named in the token, never on one from the
// request body.
func EmployeeOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, err := jwt.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}

		if claims.Role != auth.RoleEmployee {
			response.HandleError(w, auth.ErrEmployeeRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}

package middleware

import (
	"net/http"

	"github.com/facilityops/hvac-backend-go/internal/handler/http/response"
	"github.com/facilityops/hvac-backend-go/internal/pkg/jwt"
	"github.com/go-chi/jwtauth/v5"
)

func AuthRequired(jwtService jwt.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, _, err := jwtauth.FromContext(r.Context())

			if err != nil {
				response.Unauthorized(w, err.Error())
				return
			}

			if token == nil {
				response.Unauthorized(w, "Invalid token")
				return
			}

			claims, err := token.AsMap(r.Context())
			if err != nil {
				response.Unauthorized(w, "Invalid token")
				return
			}
			tokenType, ok := claims["type"].(string)
			if tokenType != "access" || !ok {
				response.Unauthorized(w, "Invalid token")
				return
			}

			if raw := jwtauth.TokenFromHeader(r); raw != "" && jwtService.IsTokenRevoked(raw) {
				response.Unauthorized(w, "Token revoked")
				return
			}

			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(hfn)
	}
}

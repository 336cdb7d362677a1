package middleware

import (
	"net/http"

	"github.com/facilityops/hvac-backend-go/internal/handler/http/response"
	"golang.org/x/crypto/bcrypt"
)

// APIKeyRequired guards the webhook integration surface. Only the bcrypt hash
// of the key is configured; the plaintext never touches disk.
func APIKeyRequired(apiKeyHash string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			key := r.Header.Get("X-API-Key")
			if key == "" {
				response.Unauthorized(w, "API key required")
				return
			}

			if err := bcrypt.CompareHashAndPassword([]byte(apiKeyHash), []byte(key)); err != nil {
				response.Unauthorized(w, "Invalid API key")
				return
			}

			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(hfn)
	}
}

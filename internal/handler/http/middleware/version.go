package middleware

import (
	"net/http"

	"github.com/cmlabs-hris/hr-data-service/internal/handler/http/response"
	"github.com/cmlabs-hris/hr-data-service/internal/pkg/validator"
	"github.com/go-chi/chi/v5"
)

// APIVersion accepts any positive integer in the {version} path segment.
func APIVersion(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := validator.ParsePositiveInt(chi.URLParam(r, "version")); !ok {
			response.BadRequest(w, "API version must be a positive integer", nil)
			return
		}
		next.ServeHTTP(w, r)
	})
}

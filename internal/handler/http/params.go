package http

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/cmlabs-hris/hr-data-service/internal/pkg/validator"
	"github.com/go-chi/chi/v5"
)

// pathParam returns the decoded value of a chi URL parameter. chi matches on
// RawPath when the request has one, so only then is the value still encoded.
func pathParam(r *http.Request, key string) string {
	value := chi.URLParam(r, key)
	if r.URL.RawPath == "" {
		return value
	}
	if decoded, err := url.PathUnescape(value); err == nil {
		return decoded
	}
	return value
}

func employeeNumberParam(r *http.Request) (int, bool) {
	return validator.ParsePositiveInt(chi.URLParam(r, "employeeNumber"))
}

func companyLocation(r *http.Request, companyName string) string {
	return fmt.Sprintf("/api/v%s/company/%s", chi.URLParam(r, "version"), url.PathEscape(companyName))
}

func employeeLocation(r *http.Request, companyName string, employeeNumber int) string {
	return fmt.Sprintf("%s/employee/%d", companyLocation(r, companyName), employeeNumber)
}

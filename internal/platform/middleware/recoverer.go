package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/compose-demo/backend-api/internal/platform/logging"
)

// Recoverer converts handler panics into logged 500 responses so a single
// bad request cannot take the process down.
func Recoverer() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					var err error
					switch v := rec.(type) {
					case error:
						err = v
					default:
						err = fmt.Errorf("%v", v)
					}
					logging.LogError(r.Context(), "panic recovered", fmt.Errorf("%w\n%s", err, debug.Stack()))
					http.Error(w, "internal server error", http.StatusInternalServerError)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

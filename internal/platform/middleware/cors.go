// Package middleware holds the HTTP middleware applied to every route.
package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
)

// CORS returns a middleware permitting cross-origin access from any origin.
// The frontend is served from a different origin, so the API must answer
// browser requests regardless of where the page came from. No credentials
// are involved, which keeps the wildcard safe.
func CORS() func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodHead,
			http.MethodPost,
			http.MethodPut,
			http.MethodPatch,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders: []string{
			"Accept",
			"Content-Type",
		},
		MaxAge: 300,
	})
}

// Package routes registers the API surface.
package routes

import (
	"github.com/danielgtaylor/huma/v2"

	"github.com/compose-demo/backend-api/internal/http/data"
	"github.com/compose-demo/backend-api/internal/http/welcome"
)

// Register wires all HTTP routes into the provided API router.
func Register(api huma.API) {
	welcome.Register(api)
	data.Register(api)
}

// Package welcome serves the plain-text landing route.
package welcome

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"go.uber.org/zap"

	applog "github.com/compose-demo/backend-api/internal/platform/logging"
)

// Message is the landing route body, byte for byte.
const Message = "Welcome to the Backend API!"

// Output carries the raw text response. A []byte body bypasses content
// negotiation so clients get the literal string regardless of Accept.
type Output struct {
	ContentType string `header:"Content-Type"`
	Body        []byte
}

// Register wires the welcome route into the provided API router.
func Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-welcome",
		Method:      http.MethodGet,
		Path:        "/",
		Summary:     "Welcome message",
	}, getHandler)
}

func getHandler(ctx context.Context, _ *struct{}) (*Output, error) {
	applog.LogInfo(ctx, "welcome get", zap.String("path", "/"))
	return &Output{
		ContentType: "text/plain; charset=utf-8",
		Body:        []byte(Message),
	}, nil
}

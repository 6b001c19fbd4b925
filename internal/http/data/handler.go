// Package data serves the sample data endpoint.
package data

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"go.uber.org/zap"

	applog "github.com/compose-demo/backend-api/internal/platform/logging"
	"github.com/compose-demo/backend-api/internal/platform/timeutil"
)

// GetOutput is the response wrapper for the data endpoint.
type GetOutput struct {
	Body Data
}

// Register wires the data route into the provided API router.
func Register(api huma.API) {
	huma.Get(api, "/api/data", getHandler)
}

func getHandler(ctx context.Context, _ *struct{}) (*GetOutput, error) {
	applog.LogInfo(ctx, "data get", zap.String("path", "/api/data"))
	// Timestamp is captured per request, never at startup.
	return &GetOutput{Body: Data{
		Message:   SampleMessage,
		Timestamp: timeutil.Now(),
	}}, nil
}

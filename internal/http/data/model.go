package data

import (
	"github.com/compose-demo/backend-api/internal/platform/timeutil"
)

// SampleMessage is the fixed text returned by the data route.
const SampleMessage = "This is some sample data from the backend!"

// Data models the response payload for the data endpoint.
type Data struct {
	Message   string        `json:"message"   doc:"Sample payload message"       example:"This is some sample data from the backend!"`
	Timestamp timeutil.Time `json:"timestamp" doc:"Time the request was handled" example:"2024-01-15T10:30:00.000Z"`
}

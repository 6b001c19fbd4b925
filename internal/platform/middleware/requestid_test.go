package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

func capturedRequestID(t *testing.T, headerValue string) (captured, echoed string) {
	t.Helper()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if headerValue != "" {
		req.Header.Set(chimiddleware.RequestIDHeader, headerValue)
	}

	h := RequestID()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = chimiddleware.GetReqID(r.Context())
	}))
	h.ServeHTTP(rec, req)
	return captured, rec.Header().Get(chimiddleware.RequestIDHeader)
}

func TestRequestIDGeneratesUUIDv4(t *testing.T) {
	captured, echoed := capturedRequestID(t, "")

	if captured == "" {
		t.Fatalf("expected generated request ID")
	}
	if echoed != captured {
		t.Fatalf("expected response header %q, got %q", captured, echoed)
	}
	parsed, err := uuid.Parse(captured)
	if err != nil {
		t.Fatalf("request ID %q is not a valid UUID: %v", captured, err)
	}
	if parsed.Version() != 4 {
		t.Fatalf("expected UUIDv4, got version %d", parsed.Version())
	}
}

func TestRequestIDPreservesIncomingHeader(t *testing.T) {
	captured, echoed := capturedRequestID(t, "external-id")

	if captured != "external-id" {
		t.Fatalf("expected request ID to remain external-id, got %q", captured)
	}
	if echoed != "external-id" {
		t.Fatalf("expected header external-id, got %q", echoed)
	}
}

func TestRequestIDRejectsInvalidHeaders(t *testing.T) {
	tests := []struct {
		name    string
		inputID string
		wantNew bool
	}{
		{name: "valid UUID is preserved", inputID: "550e8400-e29b-41d4-a716-446655440000", wantNew: false},
		{name: "newline causes rejection", inputID: "valid\ninjected-line", wantNew: true},
		{name: "null byte causes rejection", inputID: "valid\x00null", wantNew: true},
		{name: "high byte causes rejection", inputID: "valid\x80high", wantNew: true},
		{name: "too long causes rejection", inputID: strings.Repeat("a", 129), wantNew: true},
		{name: "max length is preserved", inputID: strings.Repeat("x", 128), wantNew: false},
		{name: "printable ASCII is preserved", inputID: "trace:abc-123_def.456", wantNew: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			captured, _ := capturedRequestID(t, tc.inputID)
			if tc.wantNew {
				if captured == tc.inputID {
					t.Fatalf("expected new UUID, but got original: %q", captured)
				}
				if _, err := uuid.Parse(captured); err != nil {
					t.Fatalf("expected valid UUID, got %q: %v", captured, err)
				}
			} else if captured != tc.inputID {
				t.Fatalf("expected %q to be preserved, got %q", tc.inputID, captured)
			}
		})
	}
}

package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime"
	"net/http"
	"net/url"

	"go.uber.org/zap"

	"github.com/compose-demo/backend-api/internal/platform/logging"
)

type (
	ctxJSONBodyKey struct{}
	ctxFormBodyKey struct{}
)

// ParsedJSON returns the decoded JSON body stored by BodyParser, if any.
func ParsedJSON(ctx context.Context) (any, bool) {
	v := ctx.Value(ctxJSONBodyKey{})
	if v == nil {
		return nil, false
	}
	return v, true
}

// ParsedForm returns the decoded form body stored by BodyParser, if any.
func ParsedForm(ctx context.Context) (url.Values, bool) {
	v, ok := ctx.Value(ctxFormBodyKey{}).(url.Values)
	return v, ok
}

// BodyParser eagerly decodes JSON and URL-encoded form request bodies before
// route dispatch. Malformed bodies are rejected with 400, well-formed ones
// are exposed through ParsedJSON/ParsedForm, and the raw body is restored so
// downstream handlers can read it again. Bodies with other content types
// pass through untouched. No current route consumes a body; the middleware
// exists for future routes and can be disabled via configuration.
func BodyParser() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Body == nil || r.Body == http.NoBody {
				next.ServeHTTP(w, r)
				return
			}
			mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
			if err != nil || (mediaType != "application/json" && mediaType != "application/x-www-form-urlencoded") {
				next.ServeHTTP(w, r)
				return
			}

			raw, err := io.ReadAll(r.Body)
			if err != nil {
				logging.LogWarn(r.Context(), "failed to read request body", zap.Error(err))
				http.Error(w, "unable to read request body", http.StatusBadRequest)
				return
			}
			_ = r.Body.Close()
			r.Body = io.NopCloser(bytes.NewReader(raw))

			if len(bytes.TrimSpace(raw)) == 0 {
				next.ServeHTTP(w, r)
				return
			}

			ctx := r.Context()
			switch mediaType {
			case "application/json":
				var decoded any
				if err := json.Unmarshal(raw, &decoded); err != nil {
					logging.LogWarn(ctx, "malformed JSON body", zap.Error(err))
					http.Error(w, "malformed JSON body", http.StatusBadRequest)
					return
				}
				ctx = context.WithValue(ctx, ctxJSONBodyKey{}, decoded)
			case "application/x-www-form-urlencoded":
				values, err := url.ParseQuery(string(raw))
				if err != nil {
					logging.LogWarn(ctx, "malformed form body", zap.Error(err))
					http.Error(w, "malformed form body", http.StatusBadRequest)
					return
				}
				ctx = context.WithValue(ctx, ctxFormBodyKey{}, values)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

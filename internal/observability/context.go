package observability

import "context"

// Context keys for observability data.
type contextKey string

const (
	runIDKey     contextKey = "run_id"
	paperCodeKey contextKey = "paper"
)

// WithRunID adds a validation-run ID to the context.
func WithRunID(ctx context.Context, runID string) context.Context {
	return context.WithValue(ctx, runIDKey, runID)
}

// RunIDFromContext retrieves the validation-run ID from context.
// Returns empty string if not present.
func RunIDFromContext(ctx context.Context) string {
	if v := ctx.Value(runIDKey); v != nil {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}

// WithPaperCode adds the paper code under validation to the context.
func WithPaperCode(ctx context.Context, code string) context.Context {
	return context.WithValue(ctx, paperCodeKey, code)
}

// PaperCodeFromContext retrieves the paper code from context.
// Returns empty string if not present.
func PaperCodeFromContext(ctx context.Context) string {
	if v := ctx.Value(paperCodeKey); v != nil {
		if code, ok := v.(string); ok {
			return code
		}
	}
	return ""
}

package observability

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunIDRoundTrip(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, RunIDFromContext(ctx))

	ctx = WithRunID(ctx, "run-123")
	assert.Equal(t, "run-123", RunIDFromContext(ctx))
}

func TestPaperCodeRoundTrip(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, PaperCodeFromContext(ctx))

	ctx = WithPaperCode(ctx, "MOPAB001")
	assert.Equal(t, "MOPAB001", PaperCodeFromContext(ctx))
}

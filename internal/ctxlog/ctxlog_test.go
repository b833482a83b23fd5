package ctxlog

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromContext_FallsBackToDefault(t *testing.T) {
	t.Parallel()

	assert.Same(t, slog.Default(), FromContext(context.Background()))
}

func TestWith_TagsLaterLines(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	ctx := WithLogger(context.Background(), logger)

	// --- Act ---
	ctx = With(ctx, "file", "onto.ttl")
	FromContext(ctx).Info("processing")

	// --- Assert ---
	require.Contains(t, buf.String(), "msg=processing")
	assert.Contains(t, buf.String(), "file=onto.ttl")
}

package ctxlog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/katalvlaran/scanpath/internal/ctxlog"
	"github.com/stretchr/testify/assert"
)

func TestFromContext(t *testing.T) {
	t.Parallel()
	assert.Same(t, slog.Default(), ctxlog.FromContext(context.Background()))

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	ctx := ctxlog.WithLogger(context.Background(), logger)
	assert.Same(t, logger, ctxlog.FromContext(ctx))

	ctxlog.FromContext(ctx).Info("loaded", "components", 2)
	assert.Contains(t, buf.String(), "components=2")
}

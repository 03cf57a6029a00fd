package logging_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/daguenette/statbook/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromContext(t *testing.T) {
	t.Parallel()

	t.Run("returns fallback logger when none is set", func(t *testing.T) {
		t.Parallel()

		logger := logging.FromContext(context.Background())
		require.NotNil(t, logger)
	})

	t.Run("returns the logger added to the context", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewJSONHandler(&buf, nil))

		ctx := logging.AddToContext(context.Background(), logger)

		logging.FromContext(ctx).Info("hello")
		assert.Contains(t, buf.String(), "hello")
	})

	t.Run("meta attrs are included in subsequent log lines", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewJSONHandler(&buf, nil))

		ctx := logging.AddToContext(context.Background(), logger)
		ctx = logging.AddMetaToContext(ctx, slog.String("player", "josh-allen"))

		logging.FromContext(ctx).Info("fetching stats")
		assert.Contains(t, buf.String(), "josh-allen")
	})
}

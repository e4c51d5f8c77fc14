package logger

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupLevels(t *testing.T) {
	testCases := []struct {
		level string
	}{
		{"debug"},
		{"info"},
		{"warn"},
		{"error"},
		{"INFO"}, // case-insensitive
		{"bogus"},
		{""},
	}

	for _, tc := range testCases {
		t.Run("level_"+tc.level, func(t *testing.T) {
			logger := Setup(Config{Level: tc.level})
			require.NotNil(t, logger)
		})
	}
}

func TestContextRoundTrip(t *testing.T) {
	t.Parallel()
	base := slog.Default().With("trace_id", "abc123")

	ctx := WithLogger(context.Background(), base)
	assert.Equal(t, base, FromContext(ctx))
	assert.Equal(t, base, FromContextOrDefault(ctx, nil))
}

func TestFromContextOrDefaultFallbacks(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	assert.Nil(t, FromContext(ctx))

	fallback := slog.Default().With("component", "test")
	assert.Equal(t, fallback, FromContextOrDefault(ctx, fallback))

	assert.NotNil(t, FromContextOrDefault(ctx, nil))
}

package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestInitLogger(t *testing.T) {
	tests := []struct {
		level   string
		enabled zapcore.Level
	}{
		{level: "", enabled: zapcore.DebugLevel},
		{level: "development", enabled: zapcore.DebugLevel},
		{level: "production", enabled: zapcore.InfoLevel},
		{level: "warn", enabled: zapcore.WarnLevel},
		{level: "error", enabled: zapcore.ErrorLevel},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			logger, err := initLogger(tt.level)
			require.NoError(t, err)
			assert.True(t, logger.Core().Enabled(tt.enabled))
			assert.False(t, logger.Core().Enabled(tt.enabled-1))
		})
	}

	t.Run("unknown", func(t *testing.T) {
		_, err := initLogger("verbose")
		assert.Error(t, err)
	})
}

package slidingwindows

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestNewLoggerSilentByDefault(t *testing.T) {
	t.Setenv(DebugEnv, "false")
	logger := NewLogger()
	assert.False(t, logger.Desugar().Core().Enabled(zap.ErrorLevel))
}

func TestNewLoggerDebugMode(t *testing.T) {
	t.Setenv(DebugEnv, "true")
	logger := NewLogger()
	assert.True(t, logger.Desugar().Core().Enabled(zap.DebugLevel))
}

func TestStorageOptionsDefaults(t *testing.T) {
	opts := StorageOptions{}.withDefaults()
	assert.NotNil(t, opts.Logger)

	custom := zap.NewExample().Sugar()
	assert.Same(t, custom, StorageOptions{Logger: custom}.withDefaults().Logger)
}

package slidingwindows

import (
	"os"

	"go.uber.org/zap"
)

// DebugEnv enables debug logging for every logger built by NewLogger when set
// to "true".
const DebugEnv = "SLIDINGWINDOWS_DEBUG"

// NewLogger returns the package's default zap.SugaredLogger. It discards
// everything unless DebugEnv is "true", in which case a development logger
// writing to stderr is built.
func NewLogger() *zap.SugaredLogger {
	debugMode, ok := os.LookupEnv(DebugEnv)
	if !ok || debugMode != "true" {
		return zap.NewNop().Sugar()
	}
	config := zap.NewDevelopmentConfig()
	config.OutputPaths = []string{"stderr"}
	logger, err := config.Build()
	if err != nil {
		panic(err)
	}
	return logger.Named("slidingwindows").Sugar()
}

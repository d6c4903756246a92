package utils

import (
	"go.uber.org/zap"
)

// Logger is the process-wide structured logger. Tests get the no-op default
// unless they call InitLogger themselves.
var Logger *zap.Logger = zap.NewNop()

func InitLogger() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	Logger = logger
}

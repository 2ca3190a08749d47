package log

import "go.uber.org/zap"

// NewNoop returns a Logger that discards everything, mirroring
// zap.NewNop. Intended for tests.
func NewNoop() Logger {
	return &zapLogger{
		sugarLogger: zap.NewNop().Sugar(),
		cfg:         &ZapConfig{},
	}
}

package adapt

import (
	"sync/atomic"

	"go.uber.org/zap"
)

var (
	logger atomic.Pointer[zap.Logger]
	nop    = zap.NewNop()
)

// Logger returns the logger the reader helpers write to. Until SetLogger
// is called it discards everything.
func Logger() *zap.Logger {
	if l := logger.Load(); l != nil {
		return l
	}
	return nop
}

// SetLogger replaces the logger. It is safe to call while encoding or
// decoding; nil restores the no-op logger.
func SetLogger(l *zap.Logger) {
	logger.Store(l)
}

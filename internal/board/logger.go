package board

import (
	"log/slog"
	"sync/atomic"
)

var logger atomic.Pointer[slog.Logger]

func init() {
	SetLogger(nil)
}

// SetLogger routes session logs to l; nil silences them, which is the
// default. Debug records trace each event, Info records archived strokes and
// option changes, and Warn records segments the rasterizer skipped.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(slog.DiscardHandler)
	}
	logger.Store(l)
}

// Logger returns the logger sessions write to.
func Logger() *slog.Logger {
	return logger.Load()
}

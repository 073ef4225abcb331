package zerologadapter

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/trickstertwo/srlog"
	"github.com/trickstertwo/xclock"
)

// Adapter is an srlog.Target that writes records through rs/zerolog.
//
//   - Fast pre-check against the logger's level before the message is
//     rendered.
//   - The timestamp comes from xclock and is written as an RFC3339Nano
//     string under "ts", so no zerolog globals are touched.
//   - LevelSpew maps to zerolog's Trace.
//
// The backend filter lives in an atomic so SetLevel is safe while other
// goroutines log; the wrapped logger itself is never reassigned.
type Adapter struct {
	l   zerolog.Logger
	min atomic.Int32 // zerolog.Level
}

var _ srlog.Target = (*Adapter)(nil)

// New wraps l. The logger's own level becomes the adapter's initial filter.
func New(l zerolog.Logger) *Adapter {
	a := &Adapter{l: l.Level(zerolog.TraceLevel)}
	a.min.Store(int32(l.GetLevel()))
	return a
}

// Logf renders and writes one record. It returns the message length when
// the record passed zerolog's level and 0 otherwise.
func (a *Adapter) Logf(level srlog.Level, format string, args ...any) int {
	zlvl := mapLevel(level)
	if zlvl == zerolog.Disabled || zlvl < zerolog.Level(a.min.Load()) || zlvl < zerolog.GlobalLevel() {
		return 0
	}
	msg := fmt.Sprintf(format, args...)
	a.l.WithLevel(zlvl).
		Str("ts", xclock.Now().UTC().Format(time.RFC3339Nano)).
		Msg(msg)
	return len(msg)
}

// SetLevel changes the backend filter. LevelNone disables the logger.
func (a *Adapter) SetLevel(l srlog.Level) {
	a.min.Store(int32(mapLevel(l)))
}

func mapLevel(l srlog.Level) zerolog.Level {
	switch l {
	case srlog.LevelNone:
		return zerolog.Disabled
	case srlog.LevelError:
		return zerolog.ErrorLevel
	case srlog.LevelWarn:
		return zerolog.WarnLevel
	case srlog.LevelInfo:
		return zerolog.InfoLevel
	case srlog.LevelDebug:
		return zerolog.DebugLevel
	default:
		return zerolog.TraceLevel
	}
}

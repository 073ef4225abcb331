package zapadapter

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/trickstertwo/srlog"
	"github.com/trickstertwo/xclock"
)

// Adapter is an srlog.Target that hands records to a go.uber.org/zap logger.
//
//   - Filtering is zap's: the core's level decides, srlog's threshold does not
//     apply to custom targets.
//   - The message is rendered only after the core reports the level enabled.
//   - LevelSpew maps to zap's Debug; zap has nothing finer.
//
// SetLevel adjusts the backend filter when a zap.AtomicLevel was supplied at
// construction; otherwise it is a no-op.
type Adapter struct {
	l  *zap.Logger
	al *zap.AtomicLevel
}

var _ srlog.Target = (*Adapter)(nil)

// New creates an adapter for the provided zap logger.
func New(l *zap.Logger) *Adapter {
	if l == nil {
		l = zap.NewNop()
	}
	return &Adapter{l: l}
}

// NewWithAtomicLevel creates an adapter whose SetLevel drives al.
func NewWithAtomicLevel(l *zap.Logger, al *zap.AtomicLevel) *Adapter {
	a := New(l)
	a.al = al
	return a
}

// Logf renders and writes one record. It returns the message length when
// zap accepted the record and 0 otherwise.
func (a *Adapter) Logf(level srlog.Level, format string, args ...any) int {
	if level == srlog.LevelNone {
		return 0
	}
	zlvl := toZapLevel(level)
	if !a.l.Core().Enabled(zlvl) {
		return 0
	}
	msg := fmt.Sprintf(format, args...)
	ce := a.l.Check(zlvl, msg)
	if ce == nil {
		return 0
	}
	ce.Write()
	return len(msg)
}

// SetLevel updates the backend filter when an AtomicLevel was supplied.
// LevelNone disables every record.
func (a *Adapter) SetLevel(l srlog.Level) {
	if a.al == nil {
		return
	}
	if l == srlog.LevelNone {
		a.al.SetLevel(zapcore.FatalLevel + 1)
		return
	}
	a.al.SetLevel(toZapLevel(l))
}

func toZapLevel(l srlog.Level) zapcore.Level {
	switch {
	case l <= srlog.LevelError:
		return zapcore.ErrorLevel
	case l == srlog.LevelWarn:
		return zapcore.WarnLevel
	case l == srlog.LevelInfo:
		return zapcore.InfoLevel
	default:
		return zapcore.DebugLevel
	}
}

// clock feeds xclock time into zap so frozen clocks apply to "ts".
type clock struct{}

func (clock) Now() time.Time                         { return xclock.Now() }
func (clock) NewTicker(d time.Duration) *time.Ticker { return time.NewTicker(d) }

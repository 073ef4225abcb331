package slogadapter

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/trickstertwo/srlog"
	"github.com/trickstertwo/xclock"
)

// LevelSpew is the slog level srlog.LevelSpew maps to (below slog.LevelDebug).
const LevelSpew = slog.Level(-8)

// Adapter is an srlog.Target backed by a *slog.Logger. Records are built
// directly with the xclock timestamp and handed to the logger's handler.
type Adapter struct {
	l  *slog.Logger
	lv *slog.LevelVar // optional, enables SetLevel
}

var _ srlog.Target = (*Adapter)(nil)

func New(l *slog.Logger) *Adapter {
	if l == nil {
		l = slog.Default()
	}
	return &Adapter{l: l}
}

// NewWithLevelVar creates an adapter whose SetLevel drives lv.
func NewWithLevelVar(l *slog.Logger, lv *slog.LevelVar) *Adapter {
	a := New(l)
	a.lv = lv
	return a
}

func toSlog(l srlog.Level) slog.Level {
	switch l {
	case srlog.LevelError:
		return slog.LevelError
	case srlog.LevelWarn:
		return slog.LevelWarn
	case srlog.LevelInfo:
		return slog.LevelInfo
	case srlog.LevelDebug:
		return slog.LevelDebug
	default:
		return LevelSpew
	}
}

// Logf renders and hands one record to the handler. It returns the message
// length when the handler accepted it and 0 otherwise.
func (a *Adapter) Logf(level srlog.Level, format string, args ...any) int {
	if level == srlog.LevelNone {
		return 0
	}
	ctx := context.Background()
	lvl := toSlog(level)
	h := a.l.Handler()
	if !h.Enabled(ctx, lvl) {
		return 0
	}
	msg := fmt.Sprintf(format, args...)
	if err := h.Handle(ctx, slog.NewRecord(xclock.Now(), lvl, msg, 0)); err != nil {
		return 0
	}
	return len(msg)
}

// SetLevel updates the LevelVar when one was supplied. LevelNone raises it
// above every level srlog emits.
func (a *Adapter) SetLevel(l srlog.Level) {
	if a.lv == nil {
		return
	}
	if l == srlog.LevelNone {
		a.lv.Set(slog.LevelError + 1)
		return
	}
	a.lv.Set(toSlog(l))
}

package srlog

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Level is the importance of a record. Lower values are more critical.
// As a threshold it is inclusive: a record passes when its level is
// numerically less than or equal to the threshold.
type Level int

const (
	LevelNone Level = iota // suppresses everything
	LevelError
	LevelWarn
	LevelInfo
	LevelDebug
	LevelSpew
)

var levelNames = [...]string{"none", "error", "warn", "info", "debug", "spew"}

// Valid reports whether l is one of the defined levels.
func (l Level) Valid() bool {
	return l >= LevelNone && l <= LevelSpew
}

// Enabled reports whether a record at level l passes the given threshold.
// LevelNone is not a record severity and never passes.
func (l Level) Enabled(threshold Level) bool {
	return l != LevelNone && l <= threshold
}

func (l Level) String() string {
	if l.Valid() {
		return levelNames[l]
	}
	return "level(" + strconv.Itoa(int(l)) + ")"
}

// ParseLevel accepts a level name (case-insensitive) or its decimal ordinal.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none", "off":
		return LevelNone, nil
	case "error", "err":
		return LevelError, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "info":
		return LevelInfo, nil
	case "debug", "dbg":
		return LevelDebug, nil
	case "spew", "trace":
		return LevelSpew, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || !Level(n).Valid() {
		return LevelNone, errors.Wrapf(ErrInvalidArgument, "unknown log level %q", s)
	}
	return Level(n), nil
}

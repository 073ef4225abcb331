package zerologadapter

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/trickstertwo/srlog"
)

// Config is an explicit, code-first configuration for routing srlog into zerolog.
type Config struct {
	Writer io.Writer   // default: os.Stderr
	Level  srlog.Level // backend filter; LevelNone means the facility's threshold
	// Console selects pretty console output instead of JSON. It sets the
	// package-level zerolog.TimestampFieldName to "ts", which affects every
	// zerolog logger in the process.
	Console           bool
	ConsoleTimeFormat string // only used if Console; default time.RFC3339Nano
	Domain            string // bound as the "domain" field when non-empty
	Caller            bool
	CallerSkip        int // default 4

	// Facility receives the target; default srlog.L().
	Facility *srlog.Facility
}

// Use builds a zerolog logger from cfg, installs it as the facility's target
// and returns the adapter.
func Use(cfg Config) *Adapter {
	w := cfg.Writer
	if w == nil {
		w = os.Stderr
	}
	f := cfg.Facility
	if f == nil {
		f = srlog.L()
	}
	if cfg.Level == srlog.LevelNone {
		cfg.Level = f.Level()
	}

	var zl zerolog.Logger
	if cfg.Console {
		// Make ConsoleWriter use the "ts" field as the timestamp column.
		zerolog.TimestampFieldName = "ts"
		cw := zerolog.ConsoleWriter{Out: w, TimeFormat: cfg.ConsoleTimeFormat}
		if cw.TimeFormat == "" {
			cw.TimeFormat = time.RFC3339Nano
		}
		if !cfg.Caller {
			cw.PartsExclude = append(cw.PartsExclude, zerolog.CallerFieldName)
		}
		zl = zerolog.New(cw)
	} else {
		zl = zerolog.New(w)
	}

	if cfg.Domain != "" {
		zl = zl.With().Str("domain", cfg.Domain).Logger()
	}
	if cfg.Caller {
		if cfg.CallerSkip <= 0 {
			cfg.CallerSkip = 4
		}
		zl = zl.With().CallerWithSkipFrameCount(cfg.CallerSkip).Logger()
	}

	ad := New(zl)
	ad.SetLevel(cfg.Level)

	if err := f.SetTarget(ad); err != nil {
		// SetTarget only rejects nil targets.
		panic(err)
	}
	return ad
}

package slogadapter

import (
	"io"
	"log/slog"
	"os"

	"github.com/trickstertwo/srlog"
)

// Format selects the slog handler format.
type Format uint8

const (
	FormatJSON Format = iota + 1
	FormatText
)

// Config is an explicit, code-first configuration for routing srlog into slog.
type Config struct {
	Writer         io.Writer            // default: os.Stderr
	Level          srlog.Level          // backend filter; LevelNone means the facility's threshold
	Format         Format               // JSON (default) or Text
	HandlerOptions *slog.HandlerOptions // optional; Level is managed by Use via LevelVar
	Domain         string               // bound as the "domain" attribute when non-empty

	// Facility receives the target; default srlog.L().
	Facility *srlog.Facility
}

// Use builds a slog logger from cfg, installs it as the facility's target
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

	var opts slog.HandlerOptions
	if cfg.HandlerOptions != nil {
		opts = *cfg.HandlerOptions
	}
	lv := new(slog.LevelVar)
	opts.Level = lv

	var h slog.Handler
	if cfg.Format == FormatText {
		h = slog.NewTextHandler(w, &opts)
	} else {
		h = slog.NewJSONHandler(w, &opts)
	}
	sl := slog.New(h)
	if cfg.Domain != "" {
		sl = sl.With(slog.String("domain", cfg.Domain))
	}

	ad := NewWithLevelVar(sl, lv)
	ad.SetLevel(cfg.Level)

	if err := f.SetTarget(ad); err != nil {
		// SetTarget only rejects nil targets.
		panic(err)
	}
	return ad
}

package srlog

import (
	"io"
	"time"

	"github.com/pkg/errors"
)

// Config describes a Facility (Factory data structure). Zero values select
// the defaults: os.Stderr output, xclock.Now as clock, the local time zone
// and the built-in writer as target.
type Config struct {
	Level   Level
	Options Options
	// Domain overrides DefaultDomain when non-nil; "" disables the prefix.
	Domain *string
	Output io.Writer
	// TimeZone names the zone used for non-UTC timestamps (e.g. "Europe/Berlin").
	TimeZone     string
	Clock        func() time.Time
	Target       Target
	ErrorHandler func(error)
}

// Builder separates construction from representation (Builder pattern).
type Builder struct {
	cfg Config
}

func NewBuilder() *Builder {
	return &Builder{cfg: Config{Level: LevelWarn}}
}

func (b *Builder) WithLevel(l Level) *Builder {
	b.cfg.Level = l
	return b
}

func (b *Builder) WithOptions(o Options) *Builder {
	b.cfg.Options = o
	return b
}

func (b *Builder) WithDomain(d string) *Builder {
	b.cfg.Domain = &d
	return b
}

func (b *Builder) WithOutput(w io.Writer) *Builder {
	b.cfg.Output = w
	return b
}

func (b *Builder) WithTimeZone(name string) *Builder {
	b.cfg.TimeZone = name
	return b
}

func (b *Builder) WithClock(now func() time.Time) *Builder {
	b.cfg.Clock = now
	return b
}

func (b *Builder) WithTarget(t Target) *Builder {
	b.cfg.Target = t
	return b
}

func (b *Builder) WithErrorHandler(h func(error)) *Builder {
	b.cfg.ErrorHandler = h
	return b
}

// Build validates the configuration and constructs the Facility. Unlike
// the setters it logs nothing: there is no facility to log through yet.
func (b *Builder) Build() (*Facility, error) {
	if !b.cfg.Level.Valid() {
		return nil, errors.Wrapf(ErrInvalidArgument, "log level %d", int(b.cfg.Level))
	}
	if !b.cfg.Options.Valid() {
		return nil, errors.Wrapf(ErrInvalidArgument, "log options %d", int(b.cfg.Options))
	}
	if b.cfg.Target != nil && isNilTarget(b.cfg.Target) {
		return nil, errors.Wrap(ErrInvalidArgument, "log target is nil")
	}
	return newFacility(b.cfg), nil
}

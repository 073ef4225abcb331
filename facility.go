package srlog

import (
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"
	"time"
	"unicode/utf8"

	"github.com/pkg/errors"
	"github.com/trickstertwo/xclock"
)

const (
	// DefaultDomain is the prefix installed at construction.
	DefaultDomain = "sr: "
	// MaxDomainLen bounds the stored domain, in characters. Longer input is
	// silently truncated.
	MaxDomainLen = 30
)

// Facility owns one logging configuration: threshold, format options,
// domain prefix and the active dispatch target. The process-wide instance
// is returned by L(); independent instances can be built for tests.
//
// All methods are safe for concurrent use. Targets are invoked outside the
// internal lock, so a target may itself log or reconfigure the facility.
type Facility struct {
	mu     sync.Mutex
	level  Level
	opts   Options
	domain string

	// fixed after construction
	outMu   sync.Mutex // serializes writes to out
	out     io.Writer
	clock   func() time.Time
	zone    *zone
	onError func(error)

	// active target: lock-free reads, swapped wholesale
	target  atomic.Pointer[targetBox]
	builtin *writer

	st stats
}

// New returns a facility in the default state: threshold LevelWarn, no
// options, DefaultDomain, built-in writer on os.Stderr.
func New() *Facility {
	return newFacility(Config{Level: LevelWarn})
}

func newFacility(cfg Config) *Facility {
	f := &Facility{
		level:   cfg.Level,
		opts:    cfg.Options,
		domain:  DefaultDomain,
		out:     cfg.Output,
		clock:   cfg.Clock,
		onError: cfg.ErrorHandler,
	}
	if cfg.Domain != nil {
		f.domain = truncateDomain(*cfg.Domain)
	}
	if f.out == nil {
		f.out = os.Stderr
	}
	if f.clock == nil {
		f.clock = xclock.Now
	}
	if f.onError == nil {
		f.onError = defaultErrorHandler
	}
	if cfg.TimeZone != "" {
		f.zone = &zone{name: cfg.TimeZone}
	}
	f.builtin = &writer{f: f}
	if isNilTarget(cfg.Target) {
		f.target.Store(&targetBox{t: f.builtin})
	} else {
		f.target.Store(&targetBox{t: cfg.Target})
	}
	return f
}

func defaultErrorHandler(err error) { fmt.Fprintf(os.Stderr, "srlog: %v\n", err) }

// SetLevel sets the threshold. Values outside LevelNone..LevelSpew are
// rejected with ErrInvalidArgument and leave the threshold unchanged.
// On success a debug record is logged, subject to the new threshold.
func (f *Facility) SetLevel(level Level) error {
	if !level.Valid() {
		f.Errorf("invalid log level %d", int(level))
		return errors.Wrapf(ErrInvalidArgument, "log level %d", int(level))
	}
	f.mu.Lock()
	f.level = level
	f.mu.Unlock()

	f.Debugf("log level set to %s (%d)", level, int(level))
	return nil
}

// Level returns the current threshold.
func (f *Facility) Level() Level {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.level
}

// SetOptions replaces the format options. Unknown bits are rejected with
// ErrInvalidArgument. On success a debug record is logged.
func (f *Facility) SetOptions(opts Options) error {
	if !opts.Valid() {
		f.Errorf("invalid log options %d", int(opts))
		return errors.Wrapf(ErrInvalidArgument, "log options %d", int(opts))
	}
	f.mu.Lock()
	f.opts = opts
	f.mu.Unlock()

	f.Debugf("log options set to %s (%d)", opts, int(opts))
	return nil
}

// Options returns the current format options.
func (f *Facility) Options() Options {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.opts
}

// SetDomain stores the first MaxDomainLen characters of domain as the
// record prefix; any excess is discarded without error. The prefix is
// written verbatim, so callers include their own separator ("sr: ").
// An empty domain disables the prefix. A debug record with the stored
// value is logged.
func (f *Facility) SetDomain(domain string) {
	domain = truncateDomain(domain)
	f.mu.Lock()
	f.domain = domain
	f.mu.Unlock()

	f.Debugf("log domain set to '%s'", domain)
}

// Domain returns the current domain prefix.
func (f *Facility) Domain() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.domain
}

// SetTarget routes all subsequent log calls to t. A nil target is rejected
// with ErrInvalidArgument. Nothing is logged on success.
func (f *Facility) SetTarget(t Target) error {
	if isNilTarget(t) {
		f.Errorf("log target was nil")
		return errors.Wrap(ErrInvalidArgument, "log target is nil")
	}
	f.target.Store(&targetBox{t: t})
	return nil
}

// ResetTarget reinstalls the built-in writer. It logs nothing, so it is
// safe to call while a broken target is installed.
func (f *Facility) ResetTarget() {
	f.target.Store(&targetBox{t: f.builtin})
}

// Target returns the active dispatch target.
func (f *Facility) Target() Target {
	return f.target.Load().t
}

// IsDefaultTarget reports whether the built-in writer is active.
func (f *Facility) IsDefaultTarget() bool {
	w, ok := f.target.Load().t.(*writer)
	return ok && w == f.builtin
}

// Stats returns the built-in writer's counters.
func (f *Facility) Stats() StatsSnapshot { return f.st.snapshot() }

// ResetStats zeroes the built-in writer's counters.
func (f *Facility) ResetStats() { f.st.reset() }

func truncateDomain(s string) string {
	if utf8.RuneCountInString(s) <= MaxDomainLen {
		return s
	}
	n := 0
	for i := range s {
		if n == MaxDomainLen {
			return s[:i]
		}
		n++
	}
	return s
}

// zone resolves a named time zone once; a failed lookup is remembered and
// reported on every timestamped record.
type zone struct {
	name string
	once sync.Once
	loc  *time.Location
	err  error
}

func (z *zone) location() (*time.Location, error) {
	if z == nil {
		return time.Local, nil
	}
	z.once.Do(func() {
		z.loc, z.err = time.LoadLocation(z.name)
	})
	return z.loc, z.err
}

// Package capture provides an in-memory srlog.Target that records every
// call instead of writing it. Hosts use it in tests to assert on what a
// library logged.
package capture

import (
	"fmt"
	"sync"
	"time"

	"github.com/trickstertwo/srlog"
	"github.com/trickstertwo/xclock"
)

// Entry is one recorded call.
type Entry struct {
	At      time.Time
	Level   srlog.Level
	Message string
}

// Recorder is a concurrency-safe srlog.Target. Like any custom target it
// sees every call; it filters only by its own minimum, if set.
type Recorder struct {
	mu      sync.Mutex
	min     srlog.Level // LevelNone records everything
	entries []Entry
}

var _ srlog.Target = (*Recorder)(nil)

func New() *Recorder { return &Recorder{} }

// Use installs a new Recorder as f's target and returns it.
func Use(f *srlog.Facility) *Recorder {
	r := New()
	if err := f.SetTarget(r); err != nil {
		// SetTarget only rejects nil targets.
		panic(err)
	}
	return r
}

// SetMin drops later records less important than l. LevelNone records
// everything.
func (r *Recorder) SetMin(l srlog.Level) {
	r.mu.Lock()
	r.min = l
	r.mu.Unlock()
}

func (r *Recorder) Logf(level srlog.Level, format string, args ...any) int {
	r.mu.Lock()
	floor := r.min
	r.mu.Unlock()
	if floor != srlog.LevelNone && !level.Enabled(floor) {
		return 0
	}
	msg := fmt.Sprintf(format, args...)
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, Entry{At: xclock.Now(), Level: level, Message: msg})
	return len(msg)
}

// Entries returns a copy of the recorded calls in arrival order.
func (r *Recorder) Entries() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Messages returns the messages recorded at level.
func (r *Recorder) Messages(level srlog.Level) []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []string
	for _, e := range r.entries {
		if e.Level == level {
			out = append(out, e.Message)
		}
	}
	return out
}

func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

func (r *Recorder) Reset() {
	r.mu.Lock()
	r.entries = nil
	r.mu.Unlock()
}

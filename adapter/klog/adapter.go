package klogadapter

import (
	"fmt"

	"k8s.io/klog/v2"

	"github.com/trickstertwo/srlog"
)

// Adapter is an srlog.Target that writes through k8s.io/klog/v2.
//
// Error, warn and info records go to the matching klog severity and are
// always written. Debug and spew records are klog info records gated by
// verbosity (klog.V), so -v decides whether they appear. klog has no
// fields; the domain is prepended to the message as the built-in writer
// does.
type Adapter struct {
	domain string
	depth  int
	debugV klog.Level
	spewV  klog.Level
}

var _ srlog.Target = (*Adapter)(nil)

// Verbosities used for debug and spew records unless overridden.
const (
	DebugVerbosity klog.Level = 4
	SpewVerbosity  klog.Level = 5
)

// New returns an adapter that reports call sites depth frames above its
// own Logf; 3 lands on a caller of (*srlog.Facility).Errorf and friends.
func New(domain string, depth int) *Adapter {
	return &Adapter{
		domain: domain,
		depth:  depth,
		debugV: DebugVerbosity,
		spewV:  SpewVerbosity,
	}
}

// Logf renders and writes one record. It returns the length of the
// written message, or 0 when verbosity filtered it out.
func (a *Adapter) Logf(level srlog.Level, format string, args ...any) int {
	switch level {
	case srlog.LevelNone:
		return 0
	case srlog.LevelError:
		msg := a.render(format, args)
		klog.ErrorDepth(a.depth, msg)
		return len(msg)
	case srlog.LevelWarn:
		msg := a.render(format, args)
		klog.WarningDepth(a.depth, msg)
		return len(msg)
	case srlog.LevelInfo:
		msg := a.render(format, args)
		klog.InfoDepth(a.depth, msg)
		return len(msg)
	}

	v := a.spewV
	if level == srlog.LevelDebug {
		v = a.debugV
	}
	// If verbosity is off, don't evaluate the arguments.
	verbose := klog.V(v)
	if !verbose.Enabled() {
		return 0
	}
	msg := a.render(format, args)
	verbose.InfoDepth(a.depth, msg)
	return len(msg)
}

func (a *Adapter) render(format string, args []any) string {
	return a.domain + fmt.Sprintf(format, args...)
}

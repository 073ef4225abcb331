package srlog

import "sync/atomic"

// Facade: process-wide facility (Singleton), created with defaults at
// package init and never nil.
var global atomic.Pointer[Facility]

func init() { global.Store(New()) }

// L returns the process-wide facility.
func L() *Facility { return global.Load() }

// SetGlobal replaces the process-wide facility. A nil f is ignored.
func SetGlobal(f *Facility) {
	if f != nil {
		global.Store(f)
	}
}

func SetLevel(level Level) error    { return L().SetLevel(level) }
func GetLevel() Level               { return L().Level() }
func SetOptions(opts Options) error { return L().SetOptions(opts) }
func GetOptions() Options           { return L().Options() }
func SetDomain(domain string)       { L().SetDomain(domain) }
func GetDomain() string             { return L().Domain() }
func SetTarget(t Target) error      { return L().SetTarget(t) }
func ResetTarget()                  { L().ResetTarget() }

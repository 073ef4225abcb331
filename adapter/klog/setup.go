package klogadapter

import (
	"k8s.io/klog/v2"

	"github.com/trickstertwo/srlog"
)

// Config routes srlog into klog. klog's own flags (-v, -logtostderr,
// -log_file) keep controlling output; this only shapes the records.
type Config struct {
	Domain string // prepended to every message; "" for none
	// Depth is the number of frames between the adapter and the reported
	// call site. Default 3 (method entry points on a Facility); use 4 for
	// the package-level srlog.Errorf and friends.
	Depth int

	DebugVerbosity klog.Level // default 4
	SpewVerbosity  klog.Level // default 5

	// Facility receives the target; default srlog.L().
	Facility *srlog.Facility
}

// Use installs a klog-backed target into the facility and returns it.
func Use(cfg Config) *Adapter {
	if cfg.Depth <= 0 {
		cfg.Depth = 3
	}
	ad := New(cfg.Domain, cfg.Depth)
	if cfg.DebugVerbosity > 0 {
		ad.debugV = cfg.DebugVerbosity
	}
	if cfg.SpewVerbosity > 0 {
		ad.spewV = cfg.SpewVerbosity
	}

	f := cfg.Facility
	if f == nil {
		f = srlog.L()
	}
	if err := f.SetTarget(ad); err != nil {
		// SetTarget only rejects nil targets.
		panic(err)
	}
	return ad
}

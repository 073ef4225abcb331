package srlog

import "sync/atomic"

type stats struct {
	emitted     atomic.Uint64
	suppressed  atomic.Uint64
	writeErrors atomic.Uint64
}

// StatsSnapshot is a point-in-time copy of the built-in writer's counters.
// Records routed to a custom target are not counted.
type StatsSnapshot struct {
	Emitted     uint64
	Suppressed  uint64
	WriteErrors uint64
}

func (s *stats) snapshot() StatsSnapshot {
	return StatsSnapshot{
		Emitted:     s.emitted.Load(),
		Suppressed:  s.suppressed.Load(),
		WriteErrors: s.writeErrors.Load(),
	}
}

func (s *stats) reset() {
	s.emitted.Store(0)
	s.suppressed.Store(0)
	s.writeErrors.Store(0)
}

package walk

import "sync/atomic"

// Stats is a point-in-time snapshot of the counters a Driver accumulates
// across calls to Walk. It is pure observability (spec's ambient stack,
// SPEC_FULL §4.12) and never affects walk semantics.
type Stats struct {
	WalksCompleted int64
	WalksFiltered  int64 // dropped by MinLength
	TrapsHit       int64
	Interrupted    int64
}

// liveStats is the atomic, concurrently-updated counterpart Driver holds.
type liveStats struct {
	completed int64
	filtered  int64
	traps     int64
	interrupt int64
}

func (s *liveStats) addCompleted() { atomic.AddInt64(&s.completed, 1) }
func (s *liveStats) addFiltered()  { atomic.AddInt64(&s.filtered, 1) }
func (s *liveStats) addTrap()      { atomic.AddInt64(&s.traps, 1) }
func (s *liveStats) addInterrupt() { atomic.AddInt64(&s.interrupt, 1) }

func (s *liveStats) snapshot() Stats {
	return Stats{
		WalksCompleted: atomic.LoadInt64(&s.completed),
		WalksFiltered:  atomic.LoadInt64(&s.filtered),
		TrapsHit:       atomic.LoadInt64(&s.traps),
		Interrupted:    atomic.LoadInt64(&s.interrupt),
	}
}

package rematch

import "sync/atomic"

// Stats tracks engine activity for one Pattern. Counters are cumulative
// since compilation or the last ResetStats.
type Stats struct {
	// MatchCalls is the number of engine match invocations.
	MatchCalls uint64
	// Matches is the number of successful matches reported.
	Matches uint64
	// EngineErrors is the number of abnormal engine failures.
	EngineErrors uint64
}

// Stats returns a snapshot of the pattern's counters. Safe to call
// concurrently with searches.
func (p *Pattern) Stats() Stats {
	return Stats{
		MatchCalls:   atomic.LoadUint64(&p.stats.MatchCalls),
		Matches:      atomic.LoadUint64(&p.stats.Matches),
		EngineErrors: atomic.LoadUint64(&p.stats.EngineErrors),
	}
}

// ResetStats zeroes the pattern's counters. Not atomic across fields;
// callers racing with searches may observe a partially reset snapshot.
func (p *Pattern) ResetStats() {
	atomic.StoreUint64(&p.stats.MatchCalls, 0)
	atomic.StoreUint64(&p.stats.Matches, 0)
	atomic.StoreUint64(&p.stats.EngineErrors, 0)
}

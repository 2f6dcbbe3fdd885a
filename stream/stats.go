// SPDX-License-Identifier: EPL-2.0

package stream

import "sync/atomic"

// Stats is a snapshot of a run's counters.
type Stats struct {
	// Blocks rendered from real data.
	Blocks uint64
	// Underruns is the number of cycles that found the queue empty and
	// emitted silence.
	Underruns uint64
	// Dropped counts blocks discarded unrendered at shutdown.
	Dropped uint64
}

// counters is written by the consumer and read by anyone.
type counters struct {
	blocks    atomic.Uint64
	underruns atomic.Uint64
	dropped   atomic.Uint64
}

func (c *counters) snapshot() Stats {
	return Stats{
		Blocks:    c.blocks.Load(),
		Underruns: c.underruns.Load(),
		Dropped:   c.dropped.Load(),
	}
}

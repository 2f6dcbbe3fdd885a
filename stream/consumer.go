// SPDX-License-Identifier: EPL-2.0

package stream

import (
	"context"
	"time"

	"github.com/ik5/rtmix/audio"
	"github.com/ik5/rtmix/queue"
)

// Renderer mixes two inputs into an output and returns the samples written.
// audio.Graph satisfies it.
type Renderer interface {
	Render(a, b, out audio.Buffer) int
}

// Consumer is the real-time side. Cycle never blocks, allocates or locks.
type Consumer[R Renderer] struct {
	Graph    R
	Pool     *Pool
	Queue    *queue.SPSC[int]
	Free     *queue.SPSC[int]
	Out      []float32 // one block of output
	Channels int
	Sink     Sink
	Stop     *Flag
	Period   time.Duration

	stats counters
}

// Cycle performs one consumer cycle and reports whether it rendered the
// final block.
//
// With a block available it renders it into Out, writes the result to the
// sink and returns the block to the producer. With the queue empty it writes
// a silent block instead and counts an underrun.
func (c *Consumer[R]) Cycle() (last bool, err error) {
	h, ok := c.Queue.Pop()
	if !ok {
		audio.Silence(audio.NewBuffer(c.Out, c.Channels))
		c.stats.underruns.Add(1)
		return false, c.Sink.WriteBlock(c.Out, true)
	}

	blk := c.Pool.Block(h)
	n := c.Graph.Render(
		audio.NewBuffer(blk.A[:blk.N], c.Channels),
		audio.NewBuffer(blk.B[:blk.N], c.Channels),
		audio.NewBuffer(c.Out, c.Channels),
	)
	last = blk.Last

	// The free queue has a slot for every block, so this cannot fail.
	c.Free.Push(h)
	c.stats.blocks.Add(1)

	if n == 0 {
		return last, nil
	}
	return last, c.Sink.WriteBlock(c.Out[:n], false)
}

// Run drives cycles until the final block was rendered, the sink fails, Stop
// is raised or ctx is done. With a Period set, cycles are paced by a ticker.
func (c *Consumer[R]) Run(ctx context.Context) error {
	var tick <-chan time.Time
	if c.Period > 0 {
		t := time.NewTicker(c.Period)
		defer t.Stop()
		tick = t.C
	}

	for {
		if c.Stop != nil && c.Stop.Stopped() {
			c.drain()
			return ErrStopped
		}

		if tick != nil {
			select {
			case <-tick:
			case <-ctx.Done():
				c.drain()
				return ctx.Err()
			}
		} else if err := ctx.Err(); err != nil {
			c.drain()
			return err
		}

		last, err := c.Cycle()
		if err != nil {
			return err
		}
		if last {
			return nil
		}
	}
}

// drain hands queued blocks back unrendered.
func (c *Consumer[R]) drain() {
	for {
		h, ok := c.Queue.Pop()
		if !ok {
			return
		}
		c.Free.Push(h)
		c.stats.dropped.Add(1)
	}
}

// Stats returns a snapshot of the counters. Safe from any goroutine.
func (c *Consumer[R]) Stats() Stats { return c.stats.snapshot() }

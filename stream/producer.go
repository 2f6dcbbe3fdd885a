// SPDX-License-Identifier: EPL-2.0

package stream

import (
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"

	"github.com/ik5/rtmix/audio"
	"github.com/ik5/rtmix/queue"
)

// Producer fills blocks from two sources and queues them for the consumer.
// It is the slow side: it may block on I/O and waits when the queue is full.
type Producer struct {
	A, B  audio.Source
	Pool  *Pool
	Queue *queue.SPSC[int] // filled blocks, producer to consumer
	Free  *queue.SPSC[int] // spent blocks, consumer to producer
	Stop  *Flag

	doneA, doneB bool
}

// Run produces blocks until both sources are exhausted. The final block is
// marked Last, even when it holds no samples. It returns early with
// ErrStopped, ctx's error or the first source error.
func (p *Producer) Run(ctx context.Context) error {
	for {
		h, err := p.take(ctx)
		if err != nil {
			return err
		}

		blk := p.Pool.Block(h)
		na, err := fill(p.A, blk.A, &p.doneA)
		if err != nil {
			return fmt.Errorf("source a: %w", err)
		}
		nb, err := fill(p.B, blk.B, &p.doneB)
		if err != nil {
			return fmt.Errorf("source b: %w", err)
		}

		// The shorter side reads as silence.
		n := max(na, nb)
		clear(blk.A[na:n])
		clear(blk.B[nb:n])
		blk.N = n
		blk.Last = p.doneA && p.doneB

		if err := p.push(ctx, h); err != nil {
			return err
		}
		if blk.Last {
			return nil
		}
	}
}

// take pops a free block, yielding while the consumer holds them all.
func (p *Producer) take(ctx context.Context) (int, error) {
	for {
		if h, ok := p.Free.Pop(); ok {
			return h, nil
		}
		if err := p.interrupted(ctx); err != nil {
			return 0, err
		}
		runtime.Gosched()
	}
}

// push waits for room in the queue. A full queue means the consumer is
// behind, so the producer waits rather than dropping.
func (p *Producer) push(ctx context.Context, h int) error {
	for !p.Queue.Push(h) {
		if err := p.interrupted(ctx); err != nil {
			return err
		}
		runtime.Gosched()
	}
	return nil
}

func (p *Producer) interrupted(ctx context.Context) error {
	if p.Stop != nil && p.Stop.Stopped() {
		return ErrStopped
	}
	return ctx.Err()
}

// fill reads from src until dst is full or src ends, and returns the number
// of samples read. An exhausted source reads nothing.
func fill(src audio.Source, dst []float32, done *bool) (int, error) {
	n := 0
	for n < len(dst) && !*done {
		m, err := src.ReadSamples(dst[n:])
		n += m

		if errors.Is(err, io.EOF) {
			*done = true
			break
		}
		if err != nil {
			return n, err
		}
		if m == 0 {
			// No progress and no EOF: treat as the end.
			*done = true
		}
	}
	return n, nil
}

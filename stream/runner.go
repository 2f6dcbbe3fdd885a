// SPDX-License-Identifier: EPL-2.0

package stream

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"github.com/ik5/rtmix/arena"
	"github.com/ik5/rtmix/audio"
	"github.com/ik5/rtmix/queue"
)

// Runner wires a producer and a consumer around one graph and runs them.
// A Runner runs once.
type Runner[R Renderer] struct {
	cfg      Config
	stop     Flag
	producer *Producer
	consumer *Consumer[R]
}

// NewRunner carves the block pool and output buffer for cfg out of a. The
// arena must not be reset until Run has returned.
func NewRunner[R Renderer](a *arena.Arena, cfg Config, srcA, srcB audio.Source, graph R, sink Sink) (*Runner[R], error) {
	cfg = cfg.withDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if srcA.Channels() != cfg.Channels || srcB.Channels() != cfg.Channels {
		return nil, fmt.Errorf("%w: %d and %d, want %d",
			ErrChannelMismatch, srcA.Channels(), srcB.Channels(), cfg.Channels)
	}

	pool, err := NewPool(a, cfg.Blocks(), cfg.BlockSamples())
	if err != nil {
		return nil, err
	}
	out, err := arena.AllocSlice[float32](a, cfg.BlockSamples())
	if err != nil {
		return nil, fmt.Errorf("output block: %w", err)
	}

	filled := queue.New[int](cfg.QueueCapacity)
	// One slot more than there are blocks, so returning a block never fails.
	free := queue.New[int](pool.Len() + 1)
	for h := range pool.Len() {
		free.Push(h)
	}

	r := &Runner[R]{cfg: cfg}
	r.producer = &Producer{
		A:     srcA,
		B:     srcB,
		Pool:  pool,
		Queue: filled,
		Free:  free,
		Stop:  &r.stop,
	}
	r.consumer = &Consumer[R]{
		Graph:    graph,
		Pool:     pool,
		Queue:    filled,
		Free:     free,
		Out:      out,
		Channels: cfg.Channels,
		Sink:     sink,
		Stop:     &r.stop,
		Period:   cfg.Period,
	}

	return r, nil
}

// Run starts the producer and the consumer and waits for both. The first
// error either side hits cancels the other and is returned.
func (r *Runner[R]) Run(ctx context.Context) (Stats, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		wg       sync.WaitGroup
		once     sync.Once
		firstErr error
	)
	fail := func(err error) {
		if err == nil {
			return
		}
		once.Do(func() {
			firstErr = err
			cancel()
		})
	}

	wg.Add(2)
	go func() {
		defer wg.Done()
		fail(r.producer.Run(ctx))
	}()
	go func() {
		defer wg.Done()
		if r.cfg.Pin {
			// Never unlocked: the thread exits with the goroutine instead
			// of going back to the scheduler with a narrowed mask.
			runtime.LockOSThread()
			if err := PinCPU(r.cfg.CPU); err != nil {
				fail(err)
				return
			}
		}
		fail(r.consumer.Run(ctx))
	}()
	wg.Wait()

	return r.consumer.Stats(), firstErr
}

// Stop asks both goroutines to finish. Run then returns ErrStopped.
func (r *Runner[R]) Stop() { r.stop.Stop() }

// Stats returns a snapshot of the consumer's counters.
func (r *Runner[R]) Stats() Stats { return r.consumer.Stats() }

// Config returns the configuration after defaults were applied.
func (r *Runner[R]) Config() Config { return r.cfg }

// SPDX-License-Identifier: EPL-2.0

package rtmix

import (
	"time"

	"github.com/ik5/rtmix/arena"
	"github.com/ik5/rtmix/audio"
	"github.com/ik5/rtmix/log"
	"github.com/ik5/rtmix/stream"
)

// Option configures an Engine.
type Option func(*Engine)

// WithArenaSize fixes the arena capacity in bytes. Without it the arena
// starts at DefaultArenaSize and grows on load to fit the inputs; with it,
// inputs too long for n bytes fail in Process with arena.ErrOutOfMemory.
func WithArenaSize(n int) Option {
	return func(e *Engine) {
		e.arenaSize = n
		e.arenaFixed = true
	}
}

// WithBlockSize sets the streaming block size in frames.
func WithBlockSize(frames int) Option {
	return func(e *Engine) {
		e.blockSize = frames
	}
}

// WithQueueCapacity sets the number of slots in the streaming queue.
func WithQueueCapacity(n int) Option {
	return func(e *Engine) {
		e.queueCapacity = n
	}
}

// WithFadeIn ramps the output in over its first frames.
func WithFadeIn(frames int) Option {
	return func(e *Engine) {
		e.fadeIn = max(frames, 0)
	}
}

// WithFadeOut ramps the output out over its last frames.
func WithFadeOut(frames int) Option {
	return func(e *Engine) {
		e.fadeOut = max(frames, 0)
	}
}

// WithLogger replaces the logger from log.GetLogger.
func WithLogger(l log.Logger) Option {
	return func(e *Engine) {
		e.log = l
	}
}

// WithRegistry replaces the decoders Load picks from.
func WithRegistry(r *audio.Registry) Option {
	return func(e *Engine) {
		e.registry = r
	}
}

// WithPinCPU pins the streaming consumer to cpu.
func WithPinCPU(cpu int) Option {
	return func(e *Engine) {
		e.pin = true
		e.cpu = cpu
	}
}

// WithPeriod paces streaming cycles. Zero, the default, renders as fast as
// the sink accepts blocks.
func WithPeriod(d time.Duration) Option {
	return func(e *Engine) {
		e.period = d
	}
}

const (
	DefaultArenaSize     = arena.DefaultCapacity
	DefaultBlockSize     = stream.DefaultBlockSize
	DefaultQueueCapacity = stream.DefaultQueueCapacity
)

// SPDX-License-Identifier: EPL-2.0

package stream

import (
	"fmt"
	"time"
)

const (
	DefaultBlockSize     = 512 // frames
	DefaultQueueCapacity = 8   // slots, one always stays empty
)

// Config sizes a run.
type Config struct {
	// BlockSize is the number of frames per block.
	BlockSize int
	// QueueCapacity is the number of slots in the block queue.
	QueueCapacity int
	// Channels is the interleaved channel count of both sources.
	Channels int
	// Period paces consumer cycles. Zero runs them back to back.
	Period time.Duration
	// Pin locks the consumer to its own OS thread bound to CPU.
	Pin bool
	CPU int
}

func (c Config) withDefaults() Config {
	if c.BlockSize == 0 {
		c.BlockSize = DefaultBlockSize
	}
	if c.QueueCapacity == 0 {
		c.QueueCapacity = DefaultQueueCapacity
	}
	if c.Channels == 0 {
		c.Channels = 1
	}
	return c
}

func (c Config) validate() error {
	switch {
	case c.BlockSize < 0:
		return fmt.Errorf("%w: block size %d", ErrBadConfig, c.BlockSize)
	case c.QueueCapacity < 2:
		return fmt.Errorf("%w: queue capacity %d, need at least 2", ErrBadConfig, c.QueueCapacity)
	case c.Channels < 0:
		return fmt.Errorf("%w: %d channels", ErrBadConfig, c.Channels)
	case c.Period < 0:
		return fmt.Errorf("%w: period %v", ErrBadConfig, c.Period)
	case c.Pin && c.CPU < 0:
		return fmt.Errorf("%w: cpu %d", ErrBadConfig, c.CPU)
	}
	return nil
}

// BlockSamples is the number of interleaved samples in one block.
func (c Config) BlockSamples() int { return c.BlockSize * c.Channels }

// Blocks is how many blocks the pool needs: every queue slot can be full
// while the producer fills one more and the consumer renders another.
func (c Config) Blocks() int { return c.QueueCapacity + 1 }

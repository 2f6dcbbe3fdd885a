// SPDX-License-Identifier: EPL-2.0

package stream

import (
	"fmt"

	"github.com/ik5/rtmix/arena"
)

// Block is one unit of work: a slice of each input and how much of it is
// valid.
type Block struct {
	A, B []float32
	// N is the number of valid samples in A and B.
	N int
	// Last marks the final block of the run.
	Last bool
}

// Pool is a fixed set of blocks whose sample storage lives in an arena.
// Blocks are referred to by handle, an index into the pool, so moving one
// between goroutines copies an int.
type Pool struct {
	blocks []Block
}

// NewPool carves n blocks of samples samples per input out of a.
func NewPool(a *arena.Arena, n, samples int) (*Pool, error) {
	if n <= 0 || samples <= 0 {
		return nil, fmt.Errorf("%w: %d blocks of %d samples", ErrBadConfig, n, samples)
	}

	p := &Pool{blocks: make([]Block, n)}
	for i := range p.blocks {
		buf, err := arena.AllocSlice[float32](a, 2*samples)
		if err != nil {
			return nil, fmt.Errorf("block pool: %w", err)
		}
		p.blocks[i].A = buf[:samples:samples]
		p.blocks[i].B = buf[samples:]
	}

	return p, nil
}

// Block returns the block behind handle h.
func (p *Pool) Block(h int) *Block { return &p.blocks[h] }

// Len returns the number of blocks.
func (p *Pool) Len() int { return len(p.blocks) }

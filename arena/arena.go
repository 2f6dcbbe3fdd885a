// SPDX-License-Identifier: EPL-2.0

package arena

import (
	"fmt"
	"unsafe"
)

const (
	// MaxAlign is the largest supported alignment and the alignment of the pool base.
	MaxAlign = 64

	// DefaultCapacity is the pool size used when none is configured (10 MiB).
	DefaultCapacity = 10 << 20
)

// noCopy lets go vet's copylocks check flag copies of an Arena.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Arena is a fixed-capacity bump allocator.
//
// Allocation advances a single offset through a pool reserved up front; the
// only way to give memory back is Reset, which releases everything at once.
// An Arena must not be copied and is not safe for concurrent use.
type Arena struct {
	noCopy noCopy

	buf    []byte // pool, base aligned to MaxAlign
	offset int    // next free byte, 0 <= offset <= len(buf)
}

// New reserves a pool of capacity bytes. A negative capacity is treated as 0.
func New(capacity int) *Arena {
	if capacity < 0 {
		capacity = 0
	}

	// Over-reserve so the usable window can start on a MaxAlign boundary;
	// offset arithmetic then matches address arithmetic.
	raw := make([]byte, capacity+MaxAlign)
	base := uintptr(unsafe.Pointer(unsafe.SliceData(raw)))
	shift := int(alignUp(base, MaxAlign) - base)

	return &Arena{buf: raw[shift : shift+capacity : shift+capacity]}
}

// Allocate reserves size bytes aligned to alignment and returns the region.
//
// The region is not zeroed: after Reset it may hold data from a previous pass.
// On failure the offset is left unchanged.
func (a *Arena) Allocate(size, alignment int) ([]byte, error) {
	if size < 0 {
		return nil, ErrBadSize
	}
	if alignment <= 0 || alignment > MaxAlign || alignment&(alignment-1) != 0 {
		return nil, fmt.Errorf("%w: got %d", ErrBadAlignment, alignment)
	}

	padding := (alignment - a.offset%alignment) % alignment
	if size > len(a.buf)-a.offset-padding {
		return nil, fmt.Errorf("%w: need %d bytes (+%d padding), %d of %d in use",
			ErrOutOfMemory, size, padding, a.offset, len(a.buf))
	}

	start := a.offset + padding
	a.offset = start + size

	// Cap the region so append on it can never spill into the next one.
	return a.buf[start:a.offset:a.offset], nil
}

// Reset makes the whole pool available again in O(1).
//
// Every region returned so far becomes invalid. Nothing is torn down, which is
// why typed allocation is limited to Plain element types.
func (a *Arena) Reset() {
	a.offset = 0
}

// Used returns the bytes consumed so far, padding included.
func (a *Arena) Used() int { return a.offset }

// Capacity returns the fixed pool size.
func (a *Arena) Capacity() int { return len(a.buf) }

// Remaining returns Capacity() - Used().
func (a *Arena) Remaining() int { return len(a.buf) - a.offset }

func alignUp(p, align uintptr) uintptr {
	return (p + align - 1) &^ (align - 1)
}

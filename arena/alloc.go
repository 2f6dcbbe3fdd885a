// SPDX-License-Identifier: EPL-2.0

package arena

import (
	"fmt"
	"unsafe"
)

// Plain lists the element types the arena may hold.
//
// They carry no Go pointers and need no teardown, so a bulk Reset can never
// leak a resource or hide a live reference from the garbage collector.
type Plain interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~int |
		~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint |
		~float32 | ~float64
}

// AllocSlice returns a zeroed slice of n elements of T placed inside the arena
// and aligned to T's natural alignment. n == 0 yields a nil slice.
func AllocSlice[T Plain](a *Arena, n int) ([]T, error) {
	if n < 0 {
		return nil, ErrBadSize
	}

	var zero T
	size := int(unsafe.Sizeof(zero))
	if n > a.Capacity()/size {
		return nil, fmt.Errorf("%w: %d elements of %d bytes exceed capacity %d",
			ErrOutOfMemory, n, size, a.Capacity())
	}

	b, err := a.Allocate(size*n, int(unsafe.Alignof(zero)))
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil
	}

	clear(b)
	return unsafe.Slice((*T)(unsafe.Pointer(unsafe.SliceData(b))), n), nil
}

// MustAllocSlice is AllocSlice for start-up code where exhaustion is a
// configuration bug. It panics on error.
func MustAllocSlice[T Plain](a *Arena, n int) []T {
	s, err := AllocSlice[T](a, n)
	if err != nil {
		panic(err)
	}
	return s
}

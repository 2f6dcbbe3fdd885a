// SPDX-License-Identifier: EPL-2.0

// Package arena provides a fixed-capacity bump allocator for the audio path.
//
// An Arena reserves its whole pool when it is created. Allocate hands out
// aligned regions by advancing an offset; Reset rewinds the offset to zero in
// O(1) and invalidates every region handed out before it. The arena never
// grows: a request that does not fit returns ErrOutOfMemory, which callers
// treat as fatal for the current processing pass.
//
// # Usage
//
//	a := arena.New(1 << 20)
//	left, err := arena.AllocSlice[float32](a, 4096)
//	if err != nil {
//	    return err // errors.Is(err, arena.ErrOutOfMemory)
//	}
//	// ... process left ...
//	a.Reset() // only once nothing reads left any more
//
// # Rules
//
//   - Typed allocations are limited to Plain numeric types. They hold no Go
//     pointers and need no teardown, so Reset cannot leak anything.
//   - Reset must be serialized with every reader of arena-backed memory. The
//     arena does not enforce this; its owner does.
//   - An Arena is not safe for concurrent use and must not be copied.
//   - Allocating the same sequence after Reset yields the same addresses.
package arena

// SPDX-License-Identifier: EPL-2.0

package queue

import (
	"sync/atomic"
)

// cacheLine is the padding unit that keeps the two counters apart.
const cacheLine = 64

// SPSC is a bounded lock-free queue for exactly one producer goroutine and
// one consumer goroutine.
//
// N slots hold at most N-1 items: one slot always stays empty so that
// writePos == readPos means empty and writePos+1 == readPos (mod N) means
// full. Push and Pop never block and never allocate.
type SPSC[T any] struct {
	_        [cacheLine]byte
	writePos atomic.Uint64 // advanced by the producer only
	_        [cacheLine - 8]byte
	readPos  atomic.Uint64 // advanced by the consumer only
	_        [cacheLine - 8]byte

	slots []T
	size  uint64
}

// New returns a queue with n slots (n-1 usable). It panics if n < 2.
func New[T any](n int) *SPSC[T] {
	if n < 2 {
		panic("queue: need at least 2 slots")
	}

	return &SPSC[T]{
		slots: make([]T, n),
		size:  uint64(n),
	}
}

// Push appends item and reports whether there was room. Producer only.
//
// A full queue is left untouched.
func (q *SPSC[T]) Push(item T) bool {
	// Only this goroutine ever stores writePos, so this load cannot race.
	w := q.writePos.Load()
	next := w + 1
	if next == q.size {
		next = 0
	}

	// Pairs with the consumer's store of readPos: the slot at w is free
	// once the consumer has published that it finished reading it.
	if next == q.readPos.Load() {
		return false
	}

	q.slots[w] = item
	// Publishes the slot write above to the consumer.
	q.writePos.Store(next)

	return true
}

// Pop removes the oldest item. ok is false when the queue is empty.
// Consumer only.
func (q *SPSC[T]) Pop() (item T, ok bool) {
	r := q.readPos.Load()

	// Pairs with the producer's store of writePos: everything written to
	// slot r happened before that store.
	if r == q.writePos.Load() {
		return item, false
	}

	item = q.slots[r]
	var zero T
	q.slots[r] = zero

	next := r + 1
	if next == q.size {
		next = 0
	}
	// Hands slot r back to the producer.
	q.readPos.Store(next)

	return item, true
}

// Len returns the number of queued items. It is a snapshot and may already
// be stale when called from a third goroutine.
func (q *SPSC[T]) Len() int {
	w := q.writePos.Load()
	r := q.readPos.Load()
	if w >= r {
		return int(w - r)
	}
	return int(q.size - r + w)
}

// Empty reports whether the queue held no items at the time of the call.
func (q *SPSC[T]) Empty() bool {
	return q.readPos.Load() == q.writePos.Load()
}

// Cap returns the usable capacity, one less than the slot count.
func (q *SPSC[T]) Cap() int {
	return int(q.size - 1)
}

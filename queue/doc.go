// SPDX-License-Identifier: EPL-2.0

// Package queue provides the bounded single-producer/single-consumer queue
// that hands sample blocks from the loading goroutine to the real-time one.
//
// The queue is a fixed ring of slots with two position counters. The producer
// owns writePos and the consumer owns readPos; each side only reads the
// other's counter. Publishing works as an acquire/release pair:
//
//   - the producer writes the slot, then stores writePos;
//   - the consumer loads writePos, then reads the slot.
//
// The store/load pair gives the consumer a happens-before edge to the slot
// write, so it never sees a half-written item. The same pair on readPos tells
// the producer a slot is free to reuse. Go's sync/atomic operations are
// sequentially consistent, which is stronger than acquire/release.
//
// There is no mutex, no channel and no condition variable: Push on a full
// queue and Pop on an empty one return false immediately. Callers decide
// whether to retry, wait or substitute (the real-time side emits silence).
//
// # Usage
//
//	q := queue.New[int](8) // 7 usable slots
//
//	go func() { // producer
//	    for i := 0; i < 100; i++ {
//	        for !q.Push(i) {
//	            runtime.Gosched()
//	        }
//	    }
//	}()
//
//	for { // consumer
//	    v, ok := q.Pop()
//	    if !ok {
//	        continue // nothing yet, do not wait
//	    }
//	    _ = v
//	}
//
// The queue is NOT safe for more than one producer or more than one consumer.
// That needs a different algorithm, not more goroutines on this one.
package queue

// SPDX-License-Identifier: EPL-2.0

// Package stream runs two sources through a node graph in real time.
//
// Two goroutines share the work. The producer decodes fixed-size blocks from
// both sources into a block pool and hands them over through an SPSC queue.
// The consumer pops a block per cycle, renders it through the graph and
// writes the result to a Sink, then returns the block to the producer
// through a second SPSC queue running the other way.
//
// The consumer never waits for data: when the queue is empty it writes a
// block of silence and counts an underrun. It never allocates or locks
// either; every buffer it touches comes from an arena carved out before the
// run starts.
//
//	r, err := stream.NewRunner(a, cfg, srcA, srcB, graph, sink)
//	stats, err := r.Run(ctx)
//
// Run returns once both goroutines have exited, after the last block, on
// Stop, on ctx cancellation or on the first error.
package stream

// SPDX-License-Identifier: EPL-2.0

// Package rtmix mixes two PCM inputs into one output without allocating on
// the processing path.
//
// The Engine loads two WAV files, applies a gain to each, sums them and
// optionally fades the result in and out:
//
//	e := rtmix.New(rtmix.WithFadeOut(4410))
//	if err := e.Load("voice.wav", "music.wav"); err != nil {
//	    return err
//	}
//	if err := e.Process(0.8, 0.6); err != nil {
//	    return err
//	}
//	return e.Save("mix.wav")
//
// # Memory
//
// Every buffer a pass touches comes from a bump arena reserved when the
// engine is created (10 MiB). Each pass resets the arena and carves three
// views of the longer input's length, RequiredArenaSize bytes in all. Load
// grows the arena to that size when the inputs need it, so the allocation
// happens before any processing. An arena sized with WithArenaSize is never
// grown: a pass that does not fit fails with an error wrapping
// arena.ErrOutOfMemory.
//
// # Streaming
//
// Stream renders the same mix block by block through the real-time runtime
// in package stream: a producer goroutine feeds blocks through a lock-free
// SPSC queue to a consumer that never blocks, emitting silence when data is
// late.
//
//	rec := stream.NewRecorder(0)
//	stats, err := e.Stream(ctx, 0.8, 0.6, rec)
//
// # Subpackages
//
//   - arena: the bump allocator
//   - queue: the SPSC queue
//   - audio: buffers, nodes and their static composition
//   - formats/wav: WAV decoding and encoding
//   - stream: the producer/consumer runtime
//   - log: the logrus logger factory
//
// Set RTMIX_DEBUG=true for debug logging.
package rtmix

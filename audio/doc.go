// SPDX-License-Identifier: EPL-2.0

// Package audio provides low-level audio processing primitives.
//
// This package contains the core audio processing building blocks:
//   - Source and Decoder interfaces for audio input, plus the format Registry
//   - Clip, a fully decoded stream, and NewClipSource to stream it back
//   - Buffer, a borrowed view over interleaved samples
//   - processing nodes: Gain, Fade, Identity and the two-input Mix
//   - Chain and Graph for composing nodes into a fixed chain
//   - MonoMixer for folding multi-channel sources to mono while loading
//
// # Buffers
//
// A Buffer never owns its samples. Nodes read and write through it and never
// allocate, so the same views can point into an arena, a decoder's output or
// a caller's slice:
//
//	data := make([]float32, 512)
//	buf := audio.NewBuffer(data, 2)
//	audio.NewGain(0.5).Process(buf)
//
// # Nodes
//
// Gain multiplies every sample by a fixed factor. Fade ramps linearly in or
// out over a number of samples and remembers its position across calls;
// NewFadeAt delays the ramp, which is how a fade-out lands on the tail of a
// stream rendered block by block. Mix
// sums two inputs into an output over the shortest of the three lengths and
// leaves the rest of the output alone.
//
// Gain and Mix have two loops each: an unrolled one handling 8 samples per
// step over the lane-aligned prefix and a plain one for the remainder. Both
// perform the same per-element operation.
//
// # Composition
//
// The node kinds are closed: Node has an unexported method, so only this
// package defines nodes. Chains are generic structs built from concrete node
// types:
//
//	fade := audio.NewFade(4410, audio.FadeOut)
//	g := audio.NewGraph(audio.NewGain(0.8), audio.NewGain(0.6), fade)
//	n := g.Render(a, b, out) // gain, gain, mix, fade
//
// Nothing is looked up per sample: the types in the Graph decide which code
// runs. Value nodes such as Gain compile to direct calls; pointer nodes such
// as *Fade share one GC shape and are reached through the generic
// dictionary, an indirect call once per block. Adding a node kind means
// adding a type here.
//
// # Sample Format
//
// Audio samples are represented as float32 in the range [-1.0, 1.0]:
//   - 0.0 represents silence
//   - 1.0 represents maximum positive amplitude
//   - -1.0 represents maximum negative amplitude
//
// Mixing may leave that range; converting back to 16-bit PCM clamps.
//
// # Error Handling
//
// Sources return io.EOF when no more data is available:
//
//	for {
//	    n, err := source.ReadSamples(buf)
//	    // use buf[:n] first, it may hold the final samples
//	    if err == io.EOF {
//	        break
//	    }
//	    if err != nil {
//	        return err
//	    }
//	}
package audio

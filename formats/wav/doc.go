// SPDX-License-Identifier: EPL-2.0

// Package wav reads and writes 16-bit PCM WAV files.
//
// Decoding and seekable encoding go through github.com/go-audio/wav.
// WriteWAV16 writes the canonical 44-byte header itself and never seeks,
// so it also serves pipes and stdout.
//
// # Decoding
//
//	src, err := wav.Decoder{}.Decode(file)
//	clip, err := wav.ReadFile("in.wav") // whole file, or nothing on error
//
// Samples come out interleaved in [-1, 1) as int16/32768. Anything other than
// 16-bit integer PCM is rejected with ErrOnlyPCM16bitSupported; input that is
// not RIFF/WAVE fails with ErrNotWavFile.
//
// # Encoding
//
//	err := wav.Encode(f, 44100, 2, samples) // f must be an io.WriteSeeker
//	err := wav.WriteWAV16(os.Stdout, 44100, 2, pcm)
//
// Float samples are clamped to [-1, 1], scaled by 32767 and truncated.
package wav

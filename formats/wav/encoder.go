// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"
	"os"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/ik5/rtmix/audio"
	"github.com/ik5/rtmix/utils"
)

// encodeChunk is how many samples are converted per encoder write.
const encodeChunk = 8192

// Encode writes samples as a 16-bit PCM WAV through the go-audio encoder.
// The header sizes are patched on completion, so w must be seekable.
func Encode(w io.WriteSeeker, sampleRate, channels int, samples []float32) error {
	if channels <= 0 {
		return ErrInvalidChannels
	}

	enc := wav.NewEncoder(w, sampleRate, bitDepth, channels, formatPCM)
	buf := &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: channels,
			SampleRate:  sampleRate,
		},
		Data:           make([]int, min(len(samples), encodeChunk)),
		SourceBitDepth: bitDepth,
	}

	// An empty write still emits the RIFF and data headers.
	if len(samples) == 0 {
		if err := enc.Write(buf); err != nil {
			return fmt.Errorf("writing wav header: %w", err)
		}
	}

	for i := 0; i < len(samples); i += encodeChunk {
		chunk := samples[i:min(i+encodeChunk, len(samples))]
		buf.Data = buf.Data[:len(chunk)]
		for j, s := range chunk {
			buf.Data[j] = int(utils.Float32ToInt16(s))
		}

		if err := enc.Write(buf); err != nil {
			return fmt.Errorf("writing wav data: %w", err)
		}
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("closing wav encoder: %w", err)
	}

	return nil
}

// WriteFile encodes clip into a new file at path.
func WriteFile(path string, clip audio.Clip) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	if err := Encode(f, clip.SampleRate, clip.Channels, clip.Samples); err != nil {
		_ = f.Close()
		return fmt.Errorf("%s: %w", path, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// SPDX-License-Identifier: EPL-2.0

package wav_test

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/ik5/rtmix/formats/wav"
)

// Example_decoding demonstrates decoding a WAV stream.
func Example_decoding() {
	samples := []int16{100, 200, 300, 400, 500, 600}
	wavData := new(bytes.Buffer)
	_ = wav.WriteWAV16(wavData, 16000, 2, samples)

	source, err := wav.Decoder{}.Decode(wavData)
	if err != nil {
		fmt.Printf("Decode error: %v\n", err)
		return
	}

	fmt.Printf("Sample rate: %d Hz\n", source.SampleRate())
	fmt.Printf("Channels: %d\n", source.Channels())

	buf := make([]float32, 10)
	n, err := source.ReadSamples(buf)
	if err != nil && err != io.EOF {
		fmt.Printf("Read error: %v\n", err)
		return
	}

	fmt.Printf("Read %d samples\n", n)
	// Output:
	// Sample rate: 16000 Hz
	// Channels: 2
	// Read 6 samples
}

// Example_streamingWriter writes a WAV without seeking, as needed for stdout.
func Example_streamingWriter() {
	samples := make([]int16, 1000)
	for i := range samples {
		samples[i] = int16((i % 100) * 100)
	}

	output := new(bytes.Buffer)
	if err := wav.WriteWAV16(output, 8000, 1, samples); err != nil {
		fmt.Printf("Write error: %v\n", err)
		return
	}

	fmt.Printf("Wrote %d bytes\n", output.Len())
	// Output:
	// Wrote 2044 bytes
}

// Example_files encodes a clip to disk and reads it back.
func Example_files() {
	dir, err := os.MkdirTemp("", "wav-example")
	if err != nil {
		fmt.Println(err)
		return
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "tone.wav")
	f, err := os.Create(path)
	if err != nil {
		fmt.Println(err)
		return
	}

	if err := wav.Encode(f, 8000, 1, []float32{0, 0.5, -0.5, 1}); err != nil {
		fmt.Println(err)
		return
	}
	_ = f.Close()

	clip, err := wav.ReadFile(path)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Printf("%d Hz, %d channel, %d frames\n", clip.SampleRate, clip.Channels, clip.Frames())
	// Output:
	// 8000 Hz, 1 channel, 4 frames
}

// Example_errorNotWAV shows the error for non-WAV input.
func Example_errorNotWAV() {
	_, err := wav.Decoder{}.Decode(bytes.NewReader([]byte("this is not a wav file")))
	if errors.Is(err, wav.ErrNotWavFile) {
		fmt.Println("Not a WAV file")
	}
	// Output:
	// Not a WAV file
}

// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"
)

// Clip is a fully decoded stream held in memory.
type Clip struct {
	Samples    []float32 // interleaved, normalized to [-1, 1]
	SampleRate int
	Channels   int
}

// Frames returns the number of sample frames in the clip.
func (c Clip) Frames() int {
	if c.Channels <= 0 {
		return 0
	}
	return len(c.Samples) / c.Channels
}

// ReadAll drains src into a Clip. Nothing is returned unless the whole
// stream was read.
func ReadAll(src Source) (Clip, error) {
	clip := Clip{SampleRate: src.SampleRate(), Channels: src.Channels()}
	if clip.Channels <= 0 {
		return Clip{}, ErrInvalidChannels
	}

	buf := make([]float32, 4096*clip.Channels)
	var samples []float32

	for {
		n, err := src.ReadSamples(buf)
		samples = append(samples, buf[:n]...)

		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return Clip{}, fmt.Errorf("%w", err)
		}
		if n == 0 {
			// A source with nothing left and no EOF is treated as finished.
			break
		}
	}

	clip.Samples = samples
	return clip, nil
}

// clipSource streams a Clip.
type clipSource struct {
	clip Clip
	pos  int
}

// NewClipSource returns a Source reading clip from the start. The samples are
// borrowed, not copied.
func NewClipSource(clip Clip) Source {
	return &clipSource{clip: clip}
}

func (s *clipSource) SampleRate() int { return s.clip.SampleRate }
func (s *clipSource) Channels() int   { return s.clip.Channels }
func (s *clipSource) Close() error    { return nil }

func (s *clipSource) ReadSamples(dst []float32) (int, error) {
	if s.pos >= len(s.clip.Samples) {
		return 0, io.EOF
	}

	n := copy(dst, s.clip.Samples[s.pos:])
	s.pos += n
	if s.pos >= len(s.clip.Samples) {
		return n, io.EOF
	}

	return n, nil
}

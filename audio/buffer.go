// SPDX-License-Identifier: EPL-2.0

package audio

// Buffer is a borrowed view over interleaved samples.
//
// It never owns Data: whoever created the backing storage (an arena, a
// decoder, the caller) keeps it alive for as long as the view is used.
type Buffer struct {
	Data     []float32
	Channels int
}

// NewBuffer wraps data without copying. A non-positive channel count means mono.
func NewBuffer(data []float32, channels int) Buffer {
	if channels <= 0 {
		channels = 1
	}
	return Buffer{Data: data, Channels: channels}
}

// Len returns the number of samples in the view.
func (b Buffer) Len() int { return len(b.Data) }

// Frames returns the number of whole frames in the view.
func (b Buffer) Frames() int {
	if b.Channels <= 0 {
		return len(b.Data)
	}
	return len(b.Data) / b.Channels
}

// Slice narrows the view to samples [from, to), clamped to the view.
func (b Buffer) Slice(from, to int) Buffer {
	to = min(max(to, 0), len(b.Data))
	from = min(max(from, 0), to)
	return Buffer{Data: b.Data[from:to:to], Channels: b.Channels}
}

// Silence zeroes every sample in b.
func Silence(b Buffer) {
	clear(b.Data)
}

// Peak returns the largest absolute sample value in b.
func Peak(b Buffer) float32 {
	var peak float32
	for _, s := range b.Data {
		if s < 0 {
			s = -s
		}
		if s > peak {
			peak = s
		}
	}
	return peak
}

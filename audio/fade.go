// SPDX-License-Identifier: EPL-2.0

package audio

// Direction selects which way a Fade ramps.
type Direction uint8

const (
	FadeIn  Direction = iota // 0 -> 1
	FadeOut                  // 1 -> 0
)

func (d Direction) String() string {
	if d == FadeOut {
		return "out"
	}
	return "in"
}

// Fade applies a linear ramp over a fixed number of samples.
//
// The position carries over between Process calls, so a ramp may span many
// blocks. A ramp may start late: before it a fade-in holds silence and a
// fade-out passes audio through. Past the end of the ramp the factor stays
// at 1 (in) or 0 (out) until Reset.
type Fade struct {
	start    int64
	duration int64
	pos      int64
	dir      Direction
}

// NewFade returns a fade lasting duration samples. A non-positive duration
// ramps instantly.
func NewFade(duration int, dir Direction) *Fade {
	return NewFadeAt(0, duration, dir)
}

// NewFadeAt returns a fade whose ramp begins after start samples.
func NewFadeAt(start, duration int, dir Direction) *Fade {
	return &Fade{start: int64(max(start, 0)), duration: int64(duration), dir: dir}
}

// Process multiplies each sample by the ramp factor and advances the position.
func (f *Fade) Process(b Buffer) {
	s := b.Data
	i := 0

	if f.pos < f.start {
		i = int(min(int64(len(s)), f.start-f.pos))
		if f.dir == FadeIn {
			clear(s[:i])
		}
		f.pos += int64(i)
	}

	d := float32(f.duration)
	end := f.start + f.duration
	for ; i < len(s) && f.pos < end; i++ {
		p := float32(f.pos-f.start) / d
		if f.dir == FadeIn {
			s[i] *= min(p, 1)
		} else {
			s[i] *= max(1-p, 0)
		}
		f.pos++
	}

	// Past the ramp the factor is constant.
	rest := s[i:]
	if f.dir == FadeOut {
		clear(rest)
	}
	f.pos += int64(len(rest))
}

func (*Fade) node() {}

// Reset rewinds the fade to its first sample.
func (f *Fade) Reset() { f.pos = 0 }

// Position returns how many samples the fade has processed since Reset.
func (f *Fade) Position() int64 { return f.pos }

// Start returns the sample the ramp begins at.
func (f *Fade) Start() int { return int(f.start) }

func (f *Fade) Duration() int { return int(f.duration) }

func (f *Fade) Direction() Direction { return f.dir }

// Done reports whether the ramp has reached its final factor.
func (f *Fade) Done() bool { return f.pos >= f.start+f.duration }

// SPDX-License-Identifier: EPL-2.0

package rtmix

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/xid"
	"github.com/sirupsen/logrus"

	"github.com/ik5/rtmix/arena"
	"github.com/ik5/rtmix/audio"
	"github.com/ik5/rtmix/formats/wav"
	"github.com/ik5/rtmix/log"
	"github.com/ik5/rtmix/stream"
	"github.com/ik5/rtmix/utils"
)

// Engine loads two inputs, mixes them and writes the result.
//
// Loading runs on the slow path and may allocate. Processing draws every
// buffer from the engine's arena, which is reset at the start of each pass,
// so the output of one pass is valid until the next Process or Stream.
//
// An Engine is not safe for concurrent use.
type Engine struct {
	id       string
	arena    *arena.Arena
	registry *audio.Registry
	log      log.Logger

	arenaSize     int
	arenaFixed    bool
	blockSize     int
	queueCapacity int
	fadeIn        int // frames
	fadeOut       int // frames
	pin           bool
	cpu           int
	period        time.Duration

	a, b   audio.Clip
	loaded bool
	out    audio.Buffer
	ready  bool
}

// New returns an engine with a freshly reserved arena. WAV files are
// decodable out of the box.
func New(opts ...Option) *Engine {
	e := &Engine{
		id:            xid.New().String(),
		arenaSize:     DefaultArenaSize,
		blockSize:     DefaultBlockSize,
		queueCapacity: DefaultQueueCapacity,
	}
	for _, opt := range opts {
		opt(e)
	}

	if e.registry == nil {
		e.registry = audio.NewRegistry()
		e.registry.Register("wav", wav.Decoder{})
	}
	if e.log == nil {
		e.log = log.GetLogger()
	}
	e.log = e.log.WithField("engine", e.id)
	e.arena = arena.New(e.arenaSize)

	return e
}

// ID returns the engine's unique id, also attached to its log entries.
func (e *Engine) ID() string { return e.id }

// Load decodes both files through the decoder registered for their
// extension. On failure the previously loaded inputs are kept.
func (e *Engine) Load(pathA, pathB string) error {
	a, err := e.decode(pathA)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrLoad, err)
	}
	b, err := e.decode(pathB)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrLoad, err)
	}

	return e.LoadClips(a, b)
}

func (e *Engine) decode(path string) (audio.Clip, error) {
	dec, err := e.registry.ForPath(path)
	if err != nil {
		return audio.Clip{}, fmt.Errorf("%s: %w", path, err)
	}

	f, err := os.Open(path)
	if err != nil {
		return audio.Clip{}, fmt.Errorf("%w", err)
	}
	defer f.Close()

	src, err := dec.Decode(f)
	if err != nil {
		return audio.Clip{}, fmt.Errorf("%s: %w", path, err)
	}
	defer src.Close()

	clip, err := audio.ReadAll(src)
	if err != nil {
		return audio.Clip{}, fmt.Errorf("%s: %w", path, err)
	}

	return clip, nil
}

// LoadClips takes two decoded inputs. They must share a sample rate. When
// one is mono the other is folded down to mono; any other channel mismatch
// is an error. On failure the previously loaded inputs are kept.
func (e *Engine) LoadClips(a, b audio.Clip) error {
	if a.Channels <= 0 || b.Channels <= 0 {
		return fmt.Errorf("%w: %w", ErrLoad, audio.ErrInvalidChannels)
	}
	if a.SampleRate != b.SampleRate {
		return fmt.Errorf("%w: %w: %d Hz and %d Hz", ErrLoad, ErrFormatMismatch, a.SampleRate, b.SampleRate)
	}

	var err error
	switch {
	case a.Channels == b.Channels:
	case a.Channels == 1:
		b, err = downmix(b)
	case b.Channels == 1:
		a, err = downmix(a)
	default:
		err = fmt.Errorf("%w: %d and %d channels", ErrFormatMismatch, a.Channels, b.Channels)
	}
	if err != nil {
		return fmt.Errorf("%w: %w", ErrLoad, err)
	}

	e.a, e.b = a, b
	e.loaded = true
	e.out = audio.Buffer{}
	e.ready = false
	e.reserve()

	e.log.WithFields(logrus.Fields{
		"sample_rate": a.SampleRate,
		"channels":    a.Channels,
		"frames_a":    a.Frames(),
		"frames_b":    b.Frames(),
	}).Info("inputs loaded")

	return nil
}

// sampleSize is the size of one float32 sample in bytes.
const sampleSize = 4

// RequiredArenaSize returns the arena capacity Process needs to mix inputs
// whose longer side holds frames frames of channels channels.
func RequiredArenaSize(frames, channels int) int {
	return 3 * frames * channels * sampleSize
}

// reserve grows the arena to fit the loaded inputs, unless its size was set
// with WithArenaSize.
func (e *Engine) reserve() {
	need := RequiredArenaSize(e.length()/e.a.Channels, e.a.Channels)
	if e.arenaFixed || need <= e.arena.Capacity() {
		return
	}

	e.arena = arena.New(need)
	e.log.WithField("arena_capacity", need).Debug("arena grown to fit inputs")
}

func downmix(c audio.Clip) (audio.Clip, error) {
	return audio.ReadAll(audio.NewMonoMixer(audio.NewClipSource(c)))
}

// Channels returns the channel count of the loaded inputs.
func (e *Engine) Channels() int { return e.a.Channels }

// SampleRate returns the sample rate of the loaded inputs.
func (e *Engine) SampleRate() int { return e.a.SampleRate }

// length is the output length in samples: the longer input wins and the
// shorter one reads as silence past its end.
func (e *Engine) length() int {
	return max(len(e.a.Samples), len(e.b.Samples))
}

// fades builds the output stage for an output of n samples.
func (e *Engine) fades(n int) audio.Chain[*audio.Fade, *audio.Fade] {
	ch := e.a.Channels
	in := min(e.fadeIn*ch, n)
	out := min(e.fadeOut*ch, n)

	return audio.NewChain(
		audio.NewFade(in, audio.FadeIn),
		audio.NewFadeAt(n-out, out, audio.FadeOut),
	)
}

// Process renders the whole output in one pass: gainA on the first input,
// gainB on the second, the sum of both, then the configured fades.
//
// All three buffers are carved out of the arena after resetting it. When
// the arena is too small the pass stops with an error wrapping
// arena.ErrOutOfMemory and no output.
func (e *Engine) Process(gainA, gainB float32) error {
	if !e.loaded {
		return ErrNotLoaded
	}

	e.arena.Reset()
	e.out = audio.Buffer{}
	e.ready = false

	n := e.length()
	ch := e.a.Channels

	bufA, err := arena.AllocSlice[float32](e.arena, n)
	if err != nil {
		return fmt.Errorf("input a: %w", err)
	}
	bufB, err := arena.AllocSlice[float32](e.arena, n)
	if err != nil {
		return fmt.Errorf("input b: %w", err)
	}
	out, err := arena.AllocSlice[float32](e.arena, n)
	if err != nil {
		return fmt.Errorf("output: %w", err)
	}

	copy(bufA, e.a.Samples)
	copy(bufB, e.b.Samples)

	g := audio.NewGraph(audio.NewGain(gainA), audio.NewGain(gainB), e.fades(n))
	g.Render(audio.NewBuffer(bufA, ch), audio.NewBuffer(bufB, ch), audio.NewBuffer(out, ch))

	e.out = audio.NewBuffer(out, ch)
	e.ready = true

	l := e.log.WithFields(logrus.Fields{
		"arena_used":     e.arena.Used(),
		"arena_capacity": e.arena.Capacity(),
		"frames":         e.out.Frames(),
	})
	l.Debug("processed")
	if peak := audio.Peak(e.out); peak > 1 {
		l.WithField("peak", peak).Warn("output exceeds full scale and will be clipped")
	}

	return nil
}

// Output returns the output of the last pass. It aliases the arena and is
// only valid until the next Process or Stream.
func (e *Engine) Output() audio.Buffer { return e.out }

func (e *Engine) clip() audio.Clip {
	return audio.Clip{Samples: e.out.Data, SampleRate: e.a.SampleRate, Channels: e.a.Channels}
}

// Save writes the output to path as 16-bit PCM WAV.
func (e *Engine) Save(path string) error {
	if !e.ready {
		return ErrNotProcessed
	}

	if err := wav.WriteFile(path, e.clip()); err != nil {
		return err
	}

	e.log.WithField("path", path).Info("output saved")
	return nil
}

// WriteTo writes the output as 16-bit PCM WAV to a stream that need not be
// seekable, such as stdout.
func (e *Engine) WriteTo(w io.Writer) (int64, error) {
	if !e.ready {
		return 0, ErrNotProcessed
	}

	pcm := make([]int16, e.out.Len())
	utils.Float32sToInt16s(pcm, e.out.Data)

	cw := &countingWriter{w: w}
	err := wav.WriteWAV16(cw, e.a.SampleRate, e.a.Channels, pcm)
	return cw.n, err
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}

// Stream runs the loaded inputs through the real-time runtime into sink and
// returns once it has finished. The gains and fades are the same as for
// Process, so a Recorder sink ends up with the samples Process renders.
func (e *Engine) Stream(ctx context.Context, gainA, gainB float32, sink stream.Sink) (stream.Stats, error) {
	if !e.loaded {
		return stream.Stats{}, ErrNotLoaded
	}

	// Runner.Run joins both goroutines before returning, so nothing uses
	// the arena once Stream returns.
	e.arena.Reset()
	e.out = audio.Buffer{}
	e.ready = false

	cfg := stream.Config{
		BlockSize:     e.blockSize,
		QueueCapacity: e.queueCapacity,
		Channels:      e.a.Channels,
		Period:        e.period,
		Pin:           e.pin,
		CPU:           e.cpu,
	}
	g := audio.NewGraph(audio.NewGain(gainA), audio.NewGain(gainB), e.fades(e.length()))

	r, err := stream.NewRunner(e.arena, cfg, audio.NewClipSource(e.a), audio.NewClipSource(e.b), g, sink)
	if err != nil {
		return stream.Stats{}, err
	}

	l := e.log.WithFields(logrus.Fields{
		"arena_used":     e.arena.Used(),
		"arena_capacity": e.arena.Capacity(),
		"block_size":     r.Config().BlockSize,
	})
	l.Debug("stream starting")

	stats, err := r.Run(ctx)
	l.WithFields(logrus.Fields{
		"blocks":    stats.Blocks,
		"underruns": stats.Underruns,
		"dropped":   stats.Dropped,
	}).Info("stream finished")

	return stats, err
}

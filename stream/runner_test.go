// SPDX-License-Identifier: EPL-2.0

package stream

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ik5/rtmix/arena"
	"github.com/ik5/rtmix/audio"
	"github.com/ik5/rtmix/internal/audiotest"
)

// offline renders both sources in one pass over whole buffers.
func offline(t *testing.T, a, b audio.Clip, gainA, gainB float32, fade *audio.Fade) []float32 {
	t.Helper()

	n := max(len(a.Samples), len(b.Samples))
	bufA := make([]float32, n)
	bufB := make([]float32, n)
	out := make([]float32, n)
	copy(bufA, a.Samples)
	copy(bufB, b.Samples)

	g := audio.NewGraph(audio.NewGain(gainA), audio.NewGain(gainB), fade)
	g.Render(audio.NewBuffer(bufA, a.Channels), audio.NewBuffer(bufB, b.Channels), audio.NewBuffer(out, a.Channels))
	return out
}

func TestRunner_MatchesOffline(t *testing.T) {
	t.Parallel()

	clipA, err := audio.ReadAll(audiotest.NewSineSource(8000, 2, 3001, 440))
	require.NoError(t, err)
	clipB, err := audio.ReadAll(audiotest.NewRampSource(8000, 2, 1777))
	require.NoError(t, err)

	want := offline(t, clipA, clipB, 0.8, 0.6, audio.NewFade(1000, audio.FadeOut))

	rec := NewRecorder(len(want))
	g := audio.NewGraph(audio.NewGain(0.8), audio.NewGain(0.6), audio.NewFade(1000, audio.FadeOut))
	r, err := NewRunner(arena.New(1<<20), Config{BlockSize: 256, QueueCapacity: 4, Channels: 2},
		audio.NewClipSource(clipA), audio.NewClipSource(clipB), g, rec)
	require.NoError(t, err)

	stats, err := r.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, want, rec.Samples())
	assert.Equal(t, uint64(3001*2/(256*2)+1), stats.Blocks)
	assert.Equal(t, stats.Underruns, uint64(rec.SilentBlocks()))
	assert.Zero(t, stats.Dropped)
}

func TestRunner_Stop(t *testing.T) {
	t.Parallel()

	src := func() audio.Source { return audiotest.NewConstantSource(48000, 1, 1<<30, 0.1) }
	r, err := NewRunner(arena.New(1<<20), Config{BlockSize: 64, Period: time.Millisecond},
		src(), src(), audio.NewGraph(audio.Identity{}, audio.Identity{}, audio.Identity{}), Discard{})
	require.NoError(t, err)

	time.AfterFunc(20*time.Millisecond, r.Stop)

	stats, err := r.Run(context.Background())
	if !errors.Is(err, ErrStopped) {
		t.Fatalf("Run() error = %v, want %v", err, ErrStopped)
	}
	assert.Positive(t, stats.Blocks)
	assert.Equal(t, stats, r.Stats())
}

func TestRunner_ContextCancel(t *testing.T) {
	t.Parallel()

	src := func() audio.Source { return audiotest.NewSilentSource(48000, 2, 1<<30) }
	r, err := NewRunner(arena.New(1<<20), Config{BlockSize: 32, Channels: 2, Period: time.Millisecond},
		src(), src(), audio.NewGraph(audio.NewGain(1), audio.NewGain(1), audio.Identity{}), Discard{})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	if _, err := r.Run(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Run() error = %v, want %v", err, context.DeadlineExceeded)
	}
}

func TestRunner_SourceError(t *testing.T) {
	t.Parallel()

	r, err := NewRunner(arena.New(1<<20), Config{BlockSize: 16},
		audiotest.NewConstantSource(8000, 1, 1<<20, 1),
		audiotest.NewFailingSource(8000, 1, 100),
		audio.NewGraph(audio.Identity{}, audio.Identity{}, audio.Identity{}), Discard{})
	require.NoError(t, err)

	if _, err := r.Run(context.Background()); !errors.Is(err, audiotest.ErrInjected) {
		t.Errorf("Run() error = %v, want %v", err, audiotest.ErrInjected)
	}
}

func TestRunner_SinkError(t *testing.T) {
	t.Parallel()

	boom := errors.New("device gone")
	src := func() audio.Source { return audiotest.NewConstantSource(8000, 1, 1<<20, 1) }
	r, err := NewRunner(arena.New(1<<20), Config{BlockSize: 16},
		src(), src(), audio.NewGraph(audio.Identity{}, audio.Identity{}, audio.Identity{}), failingSink{err: boom})
	require.NoError(t, err)

	if _, err := r.Run(context.Background()); !errors.Is(err, boom) {
		t.Errorf("Run() error = %v, want %v", err, boom)
	}
}

func TestNewRunner_Errors(t *testing.T) {
	t.Parallel()

	g := audio.NewGraph(audio.Identity{}, audio.Identity{}, audio.Identity{})

	_, err := NewRunner(arena.New(1<<20), Config{Channels: 2},
		audiotest.NewSilentSource(8000, 2, 10), audiotest.NewSilentSource(8000, 1, 10), g, Discard{})
	if !errors.Is(err, ErrChannelMismatch) {
		t.Errorf("NewRunner(mismatch) error = %v, want %v", err, ErrChannelMismatch)
	}

	_, err = NewRunner(arena.New(1<<20), Config{QueueCapacity: 1},
		audiotest.NewSilentSource(8000, 1, 10), audiotest.NewSilentSource(8000, 1, 10), g, Discard{})
	if !errors.Is(err, ErrBadConfig) {
		t.Errorf("NewRunner(bad config) error = %v, want %v", err, ErrBadConfig)
	}

	_, err = NewRunner(arena.New(1024), Config{BlockSize: 4096},
		audiotest.NewSilentSource(8000, 1, 10), audiotest.NewSilentSource(8000, 1, 10), g, Discard{})
	if !errors.Is(err, arena.ErrOutOfMemory) {
		t.Errorf("NewRunner(small arena) error = %v, want %v", err, arena.ErrOutOfMemory)
	}
}

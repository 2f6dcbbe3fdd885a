// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMix_SumsSignals(t *testing.T) {
	t.Parallel()

	a := []float32{0.1, 0.2, 0.3}
	b := []float32{0.1, 0.2, 0.3}
	out := make([]float32, 3)

	n := Mix(NewBuffer(a, 1), NewBuffer(b, 1), NewBuffer(out, 1))

	assert.Equal(t, 3, n)
	assert.InDeltaSlice(t, []float32{0.2, 0.4, 0.6}, out, epsilon)
}

func TestMix_ShortestLengthWins(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		lenA, lenB, lo int
		want           int
	}{
		{"a shortest", 5, 20, 20, 5},
		{"b shortest", 20, 11, 20, 11},
		{"out shortest", 20, 20, 9, 9},
		{"all equal", 16, 16, 16, 16},
		{"empty input", 0, 16, 16, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			a := make([]float32, tt.lenA)
			b := make([]float32, tt.lenB)
			for i := range a {
				a[i] = float32(i)
			}
			for i := range b {
				b[i] = 100
			}

			const sentinel = -7
			out := make([]float32, tt.lo)
			for i := range out {
				out[i] = sentinel
			}

			n := Mixer{}.Mix(NewBuffer(a, 1), NewBuffer(b, 1), NewBuffer(out, 1))
			if n != tt.want {
				t.Fatalf("Mix() = %d, want %d", n, tt.want)
			}

			for i := range n {
				if out[i] != a[i]+b[i] {
					t.Errorf("out[%d] = %v, want %v", i, out[i], a[i]+b[i])
				}
			}
			for i := n; i < len(out); i++ {
				if out[i] != sentinel {
					t.Errorf("out[%d] = %v, modified past the mixed length", i, out[i])
				}
			}
		})
	}
}

func TestMix_WideMatchesScalar(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewPCG(3, 4))
	for _, n := range []int{1, 7, 8, 9, 100, 4097} {
		a := make([]float32, n)
		b := make([]float32, n)
		for i := range a {
			a[i] = rng.Float32()*2 - 1
			b[i] = rng.Float32()*2 - 1
		}

		wide := make([]float32, n)
		scalar := make([]float32, n)
		mixWide(a, b, wide)
		mixScalar(a, b, scalar)

		assert.InDeltaSlice(t, scalar, wide, epsilon, "n=%d", n)
	}
}

func TestMix_InPlace(t *testing.T) {
	t.Parallel()

	// out may alias an input element for element.
	a := []float32{1, 2, 3, 4, 5, 6, 7, 8, 9}
	b := []float32{1, 1, 1, 1, 1, 1, 1, 1, 1}
	Mix(NewBuffer(a, 1), NewBuffer(b, 1), NewBuffer(a, 1))

	assert.Equal(t, []float32{2, 3, 4, 5, 6, 7, 8, 9, 10}, a)
}

func TestMix_NoAllocs(t *testing.T) {
	a := NewBuffer(make([]float32, 2048), 2)
	b := NewBuffer(make([]float32, 2048), 2)
	out := NewBuffer(make([]float32, 2048), 2)

	allocs := testing.AllocsPerRun(100, func() {
		Mix(a, b, out)
	})
	if allocs != 0 {
		t.Errorf("Mix() allocated %v times, want 0", allocs)
	}
}

func BenchmarkMix(b *testing.B) {
	x := NewBuffer(make([]float32, 4096), 2)
	y := NewBuffer(make([]float32, 4096), 2)
	out := NewBuffer(make([]float32, 4096), 2)

	b.ReportAllocs()
	for b.Loop() {
		Mix(x, y, out)
	}
}

// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"math"
	"testing"
)

func TestFloat32ToInt16(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input float32
		want  int16
	}{
		{name: "zero", input: 0.0, want: 0},
		{name: "max positive", input: 1.0, want: math.MaxInt16},
		{name: "max negative", input: -1.0, want: -math.MaxInt16},
		{name: "half positive", input: 0.5, want: 16383},  // 16383.5 truncated
		{name: "half negative", input: -0.5, want: -16383}, // truncation is toward zero
		{name: "quarter positive", input: 0.25, want: 8191},
		{name: "small positive", input: 0.001, want: 32},
		{name: "small negative", input: -0.001, want: -32},
		{name: "clamp over max", input: 1.5, want: math.MaxInt16},
		{name: "clamp over min", input: -1.5, want: -math.MaxInt16},
		{name: "clamp way over max", input: 100.0, want: math.MaxInt16},
		{name: "clamp way under min", input: -100.0, want: -math.MaxInt16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Float32ToInt16(tt.input); got != tt.want {
				t.Errorf("Float32ToInt16(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestInt16ToFloat32(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input int16
		want  float32
	}{
		{0, 0},
		{math.MinInt16, -1},
		{16384, 0.5},
		{-16384, -0.5},
		{math.MaxInt16, 32767.0 / 32768.0},
	}

	for _, tt := range tests {
		if got := Int16ToFloat32(tt.input); got != tt.want {
			t.Errorf("Int16ToFloat32(%d) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

// Decoded samples always land in [-1, 1).
func TestInt16ToFloat32Range(t *testing.T) {
	t.Parallel()

	for v := math.MinInt16; v <= math.MaxInt16; v++ {
		f := Int16ToFloat32(int16(v))
		if f < -1 || f >= 1 {
			t.Fatalf("Int16ToFloat32(%d) = %v, outside [-1, 1)", v, f)
		}
	}
}

func TestFloat32ToInt16Monotonic(t *testing.T) {
	t.Parallel()

	prev := Float32ToInt16(-1.0)

	for f := -0.99; f <= 1.0; f += 0.01 {
		curr := Float32ToInt16(float32(f))
		if curr < prev {
			t.Errorf("Float32ToInt16 not monotonic: f=%v gives %v, but previous was %v",
				f, curr, prev)
		}
		prev = curr
	}
}

func TestFloat32sToInt16s(t *testing.T) {
	t.Parallel()

	src := []float32{0, 0.5, -0.5, 2}
	dst := make([]int16, 3)

	if n := Float32sToInt16s(dst, src); n != 3 {
		t.Fatalf("Float32sToInt16s() n = %d, want 3", n)
	}
	want := []int16{0, 16383, -16383}
	for i := range want {
		if dst[i] != want[i] {
			t.Errorf("dst[%d] = %d, want %d", i, dst[i], want[i])
		}
	}
}

func BenchmarkFloat32ToInt16Realistic(b *testing.B) {
	// 1 second of mono audio at 8kHz
	floatSamples := make([]float32, 8000)
	int16Samples := make([]int16, 8000)

	for i := range floatSamples {
		floatSamples[i] = float32(math.Sin(float64(i) * 0.1))
	}

	b.ResetTimer()
	b.ReportAllocs()

	for range b.N {
		Float32sToInt16s(int16Samples, floatSamples)
	}
}

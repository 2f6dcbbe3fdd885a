// SPDX-License-Identifier: EPL-2.0

package audio

// Mixer sums two inputs into an output. It has no state.
type Mixer struct{}

// Mix is the package-level Mix.
func (Mixer) Mix(a, b, out Buffer) int { return Mix(a, b, out) }

// Mix writes out[i] = a[i] + b[i] for every i below the shortest of the
// three views and returns that length. Samples of out past it are untouched.
func Mix(a, b, out Buffer) int {
	n := min(len(a.Data), len(b.Data), len(out.Data))
	mixWide(a.Data[:n], b.Data[:n], out.Data[:n])
	return n
}

// mixWide expects three slices of equal length.
func mixWide(a, b, out []float32) {
	n := len(out) &^ (lanes - 1)
	for i := 0; i < n; i += lanes {
		x := (*[lanes]float32)(a[i : i+lanes])
		y := (*[lanes]float32)(b[i : i+lanes])
		o := (*[lanes]float32)(out[i : i+lanes])
		o[0] = x[0] + y[0]
		o[1] = x[1] + y[1]
		o[2] = x[2] + y[2]
		o[3] = x[3] + y[3]
		o[4] = x[4] + y[4]
		o[5] = x[5] + y[5]
		o[6] = x[6] + y[6]
		o[7] = x[7] + y[7]
	}
	mixScalar(a[n:], b[n:], out[n:])
}

func mixScalar(a, b, out []float32) {
	for i := range out {
		out[i] = a[i] + b[i]
	}
}

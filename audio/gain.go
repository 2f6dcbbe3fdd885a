// SPDX-License-Identifier: EPL-2.0

package audio

// lanes is how many samples the wide loops handle per step, matching one
// 256-bit register of float32.
const lanes = 8

// Gain multiplies every sample by a fixed factor.
type Gain struct {
	factor float32
}

func NewGain(factor float32) Gain {
	return Gain{factor: factor}
}

func (g Gain) Factor() float32 { return g.factor }

// Process scales b in place.
func (g Gain) Process(b Buffer) {
	gainWide(b.Data, g.factor)
}

func (Gain) node() {}

// gainWide runs the unrolled loop over the lane-aligned prefix and the
// scalar loop over the tail. Per element it does the same single multiply as
// gainScalar.
func gainWide(s []float32, f float32) {
	n := len(s) &^ (lanes - 1)
	for i := 0; i < n; i += lanes {
		v := (*[lanes]float32)(s[i : i+lanes])
		v[0] *= f
		v[1] *= f
		v[2] *= f
		v[3] *= f
		v[4] *= f
		v[5] *= f
		v[6] *= f
		v[7] *= f
	}
	gainScalar(s[n:], f)
}

func gainScalar(s []float32, f float32) {
	for i := range s {
		s[i] *= f
	}
}

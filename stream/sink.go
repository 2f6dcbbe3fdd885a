// SPDX-License-Identifier: EPL-2.0

package stream

// Sink receives the consumer's output, one block per cycle.
//
// WriteBlock runs on the consumer goroutine and must not block. samples is
// only valid for the duration of the call. silent is set for the blocks
// emitted on underrun.
type Sink interface {
	WriteBlock(samples []float32, silent bool) error
}

// Recorder is a Sink that keeps every non-silent block in memory, so a run
// renders to the same samples as an offline pass.
//
// Its storage is reserved up front; writing past the reservation grows it.
// Samples must only be read once the run has returned.
type Recorder struct {
	samples []float32
	silent  int
}

// NewRecorder reserves room for capacity samples.
func NewRecorder(capacity int) *Recorder {
	return &Recorder{samples: make([]float32, 0, max(capacity, 0))}
}

func (r *Recorder) WriteBlock(samples []float32, silent bool) error {
	if silent {
		r.silent++
		return nil
	}
	r.samples = append(r.samples, samples...)
	return nil
}

// Samples returns everything recorded so far.
func (r *Recorder) Samples() []float32 { return r.samples }

// SilentBlocks returns how many silent blocks were skipped.
func (r *Recorder) SilentBlocks() int { return r.silent }

// Reset empties the recorder, keeping its storage.
func (r *Recorder) Reset() {
	r.samples = r.samples[:0]
	r.silent = 0
}

// Discard is a Sink that drops everything.
type Discard struct{}

func (Discard) WriteBlock([]float32, bool) error { return nil }

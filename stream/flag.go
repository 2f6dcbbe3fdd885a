// SPDX-License-Identifier: EPL-2.0

package stream

import "sync/atomic"

// Flag is a one-way stop signal shared by the producer and the consumer.
type Flag struct {
	v atomic.Bool
}

func (f *Flag) Stop() { f.v.Store(true) }

func (f *Flag) Stopped() bool { return f.v.Load() }

// SPDX-License-Identifier: EPL-2.0

//go:build linux

package stream

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// PinCPU binds the calling OS thread to cpu. Callers lock their goroutine to
// the thread first.
func PinCPU(cpu int) error {
	var set unix.CPUSet
	set.Zero()
	set.Set(cpu)

	// pid 0 is the calling thread.
	if err := unix.SchedSetaffinity(0, &set); err != nil {
		return fmt.Errorf("pin to cpu %d: %w", cpu, err)
	}
	return nil
}

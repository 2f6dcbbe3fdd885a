// SPDX-License-Identifier: EPL-2.0

//go:build linux

package stream

import (
	"runtime"
	"testing"

	"golang.org/x/sys/unix"
)

func TestPinCPU(t *testing.T) {
	var allowed unix.CPUSet
	if err := unix.SchedGetaffinity(0, &allowed); err != nil {
		t.Skipf("SchedGetaffinity: %v", err)
	}

	cpu := -1
	for i := range 1024 {
		if allowed.IsSet(i) {
			cpu = i
			break
		}
	}
	if cpu < 0 {
		t.Skip("no usable cpu")
	}

	errc := make(chan error, 1)
	go func() {
		// Left locked so the narrowed thread dies with the goroutine.
		runtime.LockOSThread()
		if err := PinCPU(cpu); err != nil {
			errc <- err
			return
		}

		var got unix.CPUSet
		if err := unix.SchedGetaffinity(0, &got); err != nil {
			errc <- err
			return
		}
		if got.Count() != 1 || !got.IsSet(cpu) {
			t.Errorf("affinity after PinCPU(%d) has %d cpus", cpu, got.Count())
		}
		errc <- nil
	}()

	if err := <-errc; err != nil {
		t.Fatalf("PinCPU(%d) error = %v", cpu, err)
	}
}

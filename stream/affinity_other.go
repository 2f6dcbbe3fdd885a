// SPDX-License-Identifier: EPL-2.0

//go:build !linux

package stream

// PinCPU is a no-op where thread affinity is not supported.
func PinCPU(int) error { return nil }

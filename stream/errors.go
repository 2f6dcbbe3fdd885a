// SPDX-License-Identifier: EPL-2.0

package stream

import "errors"

var (
	// ErrStopped is returned by Run after Stop was called.
	ErrStopped = errors.New("stream: stopped")

	ErrBadConfig       = errors.New("stream: invalid configuration")
	ErrChannelMismatch = errors.New("stream: sources differ in channel count")
)

// SPDX-License-Identifier: EPL-2.0

package arena

import "errors"

var (
	// ErrOutOfMemory is returned when a request does not fit in the remaining capacity.
	// It is fatal for the current pass: the arena never grows.
	ErrOutOfMemory = errors.New("arena: out of memory")

	// ErrBadAlignment is returned for an alignment that is not a power of two in [1, MaxAlign].
	ErrBadAlignment = errors.New("arena: alignment must be a power of two no larger than MaxAlign")

	// ErrBadSize is returned for a negative size or element count.
	ErrBadSize = errors.New("arena: negative size")
)

// SPDX-License-Identifier: EPL-2.0

package rtmix

import "errors"

var (
	// ErrLoad wraps every failure to load the two inputs.
	ErrLoad = errors.New("rtmix: load failed")
	// ErrNotLoaded is returned when processing before a successful Load.
	ErrNotLoaded = errors.New("rtmix: no inputs loaded")
	// ErrNotProcessed is returned when saving before a successful Process.
	ErrNotProcessed = errors.New("rtmix: no output rendered")
	// ErrFormatMismatch is returned when the inputs cannot be mixed together.
	ErrFormatMismatch = errors.New("rtmix: input formats differ")
)

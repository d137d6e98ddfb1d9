package cycle

import "errors"

// Error classes for a cycle run. Every failure returned by CycleHues wraps
// exactly one of these; callers distinguish them with errors.Is.
var (
	// ErrNotFound reports that the input path does not exist.
	ErrNotFound = errors.New("input image not found")

	// ErrValidation reports a bad argument: an unrecognized output
	// extension or a frame count below 1.
	ErrValidation = errors.New("invalid argument")

	// ErrDecode reports that the input exists but could not be parsed
	// as an image.
	ErrDecode = errors.New("failed to decode input image")

	// ErrEncode reports that the frame sequence could not be written
	// to the output path.
	ErrEncode = errors.New("failed to encode animation")
)

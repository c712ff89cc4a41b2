package analysis

import "errors"

var (
	ErrInvalidAlgorithm = errors.New("analysis: unsupported algorithm")
	ErrInvalidWindow    = errors.New("analysis: unsupported window function")
	ErrWindowSize       = errors.New("analysis: window size out of range")
	ErrShortInput       = errors.New("analysis: input shorter than one window")
	ErrShortOutput      = errors.New("analysis: output shorter than windowSize/2")
)

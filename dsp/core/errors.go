package core

import "errors"

// Errors shared by all conditioning stages. Stage packages wrap them with
// their own prefix; test with errors.Is.
var (
	ErrEmptyInput              = errors.New("empty input")
	ErrInvalidLength           = errors.New("invalid length")
	ErrUnknownShape            = errors.New("unknown window shape")
	ErrOddLength               = errors.New("odd-length input")
	ErrInsufficientSamples     = errors.New("insufficient samples")
	ErrDivisionByZero          = errors.New("division by zero")
	ErrDegenerateNoiseEstimate = errors.New("degenerate noise estimate")
	ErrSourceUnavailable       = errors.New("sample source unavailable")
)

package window

import (
	"errors"
	"fmt"

	"github.com/Vijay06092004/digital-signal-processing/dsp/core"
)

var (
	errEmptyCoeffs      = errors.New("window: coefficients must not be empty")
	errZeroCoherentGain = errors.New("window: coherent gain is zero")
)

func validateLength(size int) error {
	if size < MinLength {
		return fmt.Errorf("window: size must be >= %d, got %d: %w", MinLength, size, core.ErrInvalidLength)
	}

	return nil
}

func validateShape(name string) error {
	return fmt.Errorf("window: %q: %w", name, core.ErrUnknownShape)
}

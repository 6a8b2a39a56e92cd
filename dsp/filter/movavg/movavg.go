// Package movavg provides boundary-clipped moving averages.
//
// Two edge conventions are offered and they are not interchangeable:
// [Centered] averages a symmetric neighbourhood clipped at both ends of the
// sequence, [Causal] averages the trailing n samples clipped at the start.
// In both, the divisor is the number of samples that exist, not the nominal
// window length.
package movavg

import (
	"fmt"

	"github.com/Vijay06092004/digital-signal-processing/dsp/core"
)

// Centered returns out[i] = mean(in[j]) for j in [i-k/2, i+k/2] ∩ [0, len(in)).
// An even k therefore spans k+1 samples in the interior.
func Centered(in []float64, k int) ([]float64, error) {
	return CenteredTo(nil, in, k)
}

// CenteredTo is Centered writing into dst, which is grown when too short.
// dst must not alias in.
func CenteredTo(dst, in []float64, k int) ([]float64, error) {
	if err := validate(in, k); err != nil {
		return nil, err
	}

	half := k / 2
	n := len(in)
	dst = core.EnsureLen(dst, n)

	for i := range n {
		lo := max(i-half, 0)
		hi := min(i+half, n-1)

		sum := 0.0
		for j := lo; j <= hi; j++ {
			sum += in[j]
		}

		dst[i] = sum / float64(hi-lo+1)
	}

	return dst, nil
}

// Causal returns out[i] = mean(in[j]) for j in [i-n+1, i] ∩ [0, len(in)).
func Causal(in []float64, n int) ([]float64, error) {
	return CausalTo(nil, in, n)
}

// CausalTo is Causal writing into dst, which is grown when too short.
// dst must not alias in.
func CausalTo(dst, in []float64, n int) ([]float64, error) {
	if err := validate(in, n); err != nil {
		return nil, err
	}

	dst = core.EnsureLen(dst, len(in))

	for i := range in {
		lo := max(i-n+1, 0)

		sum := 0.0
		for j := lo; j <= i; j++ {
			sum += in[j]
		}

		dst[i] = sum / float64(i-lo+1)
	}

	return dst, nil
}

func validate(in []float64, window int) error {
	if len(in) == 0 {
		return fmt.Errorf("movavg: %w", core.ErrEmptyInput)
	}

	if window < 1 {
		return fmt.Errorf("movavg: window must be >= 1, got %d: %w", window, core.ErrInvalidLength)
	}

	return nil
}

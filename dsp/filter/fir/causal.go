package fir

import (
	"fmt"
	"math"

	"github.com/Vijay06092004/digital-signal-processing/dsp/core"
)

// partialSumTolerance is the fraction of the total coefficient weight below
// which a warm-up divisor is treated as zero.
const partialSumTolerance = 1e-9

// Option configures Causal.
type Option func(*config)

type config struct {
	totalNorm bool
}

// WithTotalNormalization divides every output by the full coefficient sum,
// including the warm-up outputs where only some taps have input. This is the
// convention of the bench firmware's FIR stage; it attenuates the first
// N-1 outputs.
func WithTotalNormalization() Option {
	return func(c *config) {
		c.totalNorm = true
	}
}

// Causal applies coeffs to in as a unity-gain causal FIR filter:
//
//	out[i] = sum_{j<=i} in[i-j]*w[j] / sum_{j<=i} w[j]
//
// When the weight of the contributing taps is zero (a tapered window whose
// leading coefficients vanish) the output is divided by the full sum instead.
// The result is invariant to scaling coeffs by any nonzero constant.
func Causal(in, coeffs []float64, opts ...Option) ([]float64, error) {
	return CausalTo(nil, in, coeffs, opts...)
}

// CausalTo is Causal writing into dst, which is grown when too short.
func CausalTo(dst, in, coeffs []float64, opts ...Option) ([]float64, error) {
	if len(in) == 0 {
		return nil, fmt.Errorf("fir: %w", core.ErrEmptyInput)
	}

	if len(coeffs) == 0 {
		return nil, fmt.Errorf("fir: empty kernel: %w", core.ErrInvalidLength)
	}

	cfg := config{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	divisors, err := warmupDivisors(coeffs, cfg.totalNorm)
	if err != nil {
		return nil, err
	}

	dst = core.EnsureLen(dst, len(in))

	f := New(coeffs)
	f.ProcessBlockTo(dst, in)

	total := divisors[len(divisors)-1]
	for i := range dst {
		d := total
		if i < len(divisors) {
			d = divisors[i]
		}

		dst[i] /= d
	}

	return dst, nil
}

// warmupDivisors returns the divisor for outputs 0..N-1; every later output
// uses the last entry, the full coefficient sum.
func warmupDivisors(coeffs []float64, totalNorm bool) ([]float64, error) {
	total := 0.0
	for _, c := range coeffs {
		total += c
	}

	if total == 0 || math.IsNaN(total) {
		return nil, fmt.Errorf("fir: coefficients sum to zero: %w", core.ErrDivisionByZero)
	}

	divisors := make([]float64, len(coeffs))

	partial := 0.0
	for i, c := range coeffs {
		partial += c

		switch {
		case totalNorm, i == len(coeffs)-1:
			divisors[i] = total
		case math.Abs(partial) <= partialSumTolerance*math.Abs(total):
			divisors[i] = total
		default:
			divisors[i] = partial
		}
	}

	return divisors, nil
}

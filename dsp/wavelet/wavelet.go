package wavelet

import (
	"fmt"
	"math"

	"github.com/Vijay06092004/digital-signal-processing/dsp/core"
	"gonum.org/v1/gonum/floats"
)

// DefaultThreshold is the detail threshold used by the load-cell pipeline.
const DefaultThreshold = 1.0

// Coefficients holds one Haar decomposition level.
type Coefficients struct {
	Approximation []float64
	Detail        []float64
}

// Len returns the length of the signal the coefficients reconstruct to.
func (c Coefficients) Len() int {
	return 2 * len(c.Approximation)
}

// Decompose computes approx[i] = (x[2i]+x[2i+1])/√2 and
// detail[i] = (x[2i]−x[2i+1])/√2.
func Decompose(x []float64) (Coefficients, error) {
	if err := validateInput(x); err != nil {
		return Coefficients{}, err
	}

	half := len(x) / 2
	c := Coefficients{
		Approximation: make([]float64, half),
		Detail:        make([]float64, half),
	}

	for i := range half {
		a, b := x[2*i], x[2*i+1]
		c.Approximation[i] = (a + b) / math.Sqrt2
		c.Detail[i] = (a - b) / math.Sqrt2
	}

	return c, nil
}

// HardThreshold zeroes every coefficient with |d| < tau in place.
// A non-positive tau leaves the coefficients untouched.
func HardThreshold(detail []float64, tau float64) {
	for i, d := range detail {
		if math.Abs(d) < tau {
			detail[i] = 0
		}
	}
}

// RelativeThreshold returns fraction times the largest coefficient
// magnitude, a threshold that follows the signal scale.
func RelativeThreshold(coeffs []float64, fraction float64) float64 {
	if len(coeffs) == 0 {
		return 0
	}

	peak := math.Max(math.Abs(floats.Max(coeffs)), math.Abs(floats.Min(coeffs)))

	return fraction * peak
}

// Reconstruct inverts Decompose.
func Reconstruct(c Coefficients) ([]float64, error) {
	return ReconstructTo(nil, c)
}

// ReconstructTo is Reconstruct writing into dst, which is grown when too
// short.
func ReconstructTo(dst []float64, c Coefficients) ([]float64, error) {
	if len(c.Approximation) != len(c.Detail) {
		return nil, fmt.Errorf("wavelet: approximation has %d coefficients, detail has %d: %w",
			len(c.Approximation), len(c.Detail), core.ErrInvalidLength)
	}

	if len(c.Approximation) == 0 {
		return nil, fmt.Errorf("wavelet: %w", core.ErrEmptyInput)
	}

	dst = core.EnsureLen(dst, c.Len())

	for i, a := range c.Approximation {
		d := c.Detail[i]
		dst[2*i] = (a + d) / math.Sqrt2
		dst[2*i+1] = (a - d) / math.Sqrt2
	}

	return dst, nil
}

// Denoise decomposes x, hard-thresholds the detail band at tau and
// reconstructs. With tau = 0 the output equals x to rounding.
func Denoise(x []float64, tau float64) ([]float64, error) {
	c, err := Decompose(x)
	if err != nil {
		return nil, err
	}

	HardThreshold(c.Detail, tau)

	return Reconstruct(c)
}

// DenoiseRelative is Denoise with tau set to fraction times the largest
// detail magnitude of x.
func DenoiseRelative(x []float64, fraction float64) ([]float64, error) {
	c, err := Decompose(x)
	if err != nil {
		return nil, err
	}

	HardThreshold(c.Detail, RelativeThreshold(c.Detail, fraction))

	return Reconstruct(c)
}

// TruncateEven returns the largest even-length prefix of x.
func TruncateEven(x []float64) []float64 {
	return core.EvenPrefix(x)
}

func validateInput(x []float64) error {
	if len(x) == 0 {
		return fmt.Errorf("wavelet: %w", core.ErrEmptyInput)
	}

	if len(x)%2 != 0 {
		return fmt.Errorf("wavelet: length %d: %w", len(x), core.ErrOddLength)
	}

	return nil
}

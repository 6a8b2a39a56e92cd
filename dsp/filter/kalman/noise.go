package kalman

import (
	"fmt"
	"math"

	"github.com/Vijay06092004/digital-signal-processing/dsp/core"
	"github.com/Vijay06092004/digital-signal-processing/dsp/filter/movavg"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// MinMeasurementNoise is the floor substituted for a measurement noise
// variance that is zero or smaller.
const MinMeasurementNoise = 1e-12

// Params are the noise variances consumed by the predict/update loop.
type Params struct {
	Q float64 // process noise variance
	R float64 // measurement noise variance
}

// Noise selects how Params are obtained. The implementations are FixedNoise
// and EstimatedNoise.
type Noise interface {
	resolve(in []float64) (Params, error)
	estimated() bool
}

// FixedNoise uses hand-tuned constants.
type FixedNoise struct {
	Q float64
	R float64
}

func (n FixedNoise) resolve([]float64) (Params, error) {
	return Params{Q: core.NonNegative(n.Q), R: core.NonNegative(n.R)}, nil
}

func (FixedNoise) estimated() bool { return false }

// EstimatedNoise derives Params from the data, using a centered moving
// average of Window taps as the reference trend. The estimate is taken from
// Reference when it is set and from the filtered input otherwise, so a
// pre-smoothed sequence can be filtered with noise measured on the raw one.
type EstimatedNoise struct {
	Window    int
	Reference []float64
}

func (n EstimatedNoise) resolve(in []float64) (Params, error) {
	if n.Reference != nil {
		return EstimateNoise(n.Reference, n.Window)
	}

	return EstimateNoise(in, n.Window)
}

func (EstimatedNoise) estimated() bool { return true }

// EstimateNoise fits Params to in. The input is smoothed with a centered
// moving average; R is the mean squared residual of in against the smoothed
// trend and Q is the population variance of the trend. Both estimates come
// from the same smoothed signal and are therefore correlated. The result is
// clamped to be non-negative but not floored.
func EstimateNoise(in []float64, window int) (Params, error) {
	smoothed, err := movavg.Centered(in, window)
	if err != nil {
		return Params{}, fmt.Errorf("kalman: estimate noise: %w", err)
	}

	dist := floats.Distance(in, smoothed, 2)
	r := dist * dist / float64(len(in))
	q := stat.PopVariance(smoothed, nil)

	if math.IsNaN(r) || math.IsNaN(q) {
		return Params{}, fmt.Errorf("kalman: non-finite noise estimate: %w", core.ErrDegenerateNoiseEstimate)
	}

	return Params{Q: core.NonNegative(q), R: core.NonNegative(r)}, nil
}

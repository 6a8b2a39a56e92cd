// Package time provides time-domain statistics over sample sequences: the
// steady-state bandwidth used to compare filter outputs and a single-pass
// summary for reports.
package time

import (
	"fmt"
	"math"

	"github.com/Vijay06092004/digital-signal-processing/dsp/core"
)

// BandwidthResult is the spread of a sequence after its transient prefix.
type BandwidthResult struct {
	Min   float64
	Max   float64
	Range float64 // Max - Min
}

// Bandwidth returns the minimum, maximum and range of signal[skip:].
// The first skip samples are treated as filter warm-up and ignored.
func Bandwidth(signal []float64, skip int) (BandwidthResult, error) {
	if skip < 0 {
		return BandwidthResult{}, fmt.Errorf("time: negative skip %d: %w", skip, core.ErrInvalidLength)
	}

	if len(signal) <= skip {
		return BandwidthResult{}, fmt.Errorf("time: %d samples with skip %d: %w",
			len(signal), skip, core.ErrInsufficientSamples)
	}

	tail := signal[skip:]
	lo, hi := tail[0], tail[0]

	for _, x := range tail[1:] {
		if x < lo {
			lo = x
		}

		if x > hi {
			hi = x
		}
	}

	return BandwidthResult{Min: lo, Max: hi, Range: hi - lo}, nil
}

// Stats holds a time-domain summary of a sequence.
type Stats struct {
	Length   int
	Mean     float64
	RMS      float64
	Max      float64
	MaxPos   int
	Min      float64
	MinPos   int
	Range    float64 // max - min
	Variance float64 // population variance
	StdDev   float64
}

// Calculate computes the summary in a single pass, using Welford's update for
// the variance. An empty signal yields the zero Stats.
func Calculate(signal []float64) Stats {
	if len(signal) == 0 {
		return Stats{}
	}

	var (
		mean, m2 float64
		sumSq    float64
		maxVal   = signal[0]
		maxPos   int
		minVal   = signal[0]
		minPos   int
	)

	for i, x := range signal {
		delta := x - mean
		mean += delta / float64(i+1)
		m2 += delta * (x - mean)

		sumSq += x * x

		if x > maxVal {
			maxVal = x
			maxPos = i
		}

		if x < minVal {
			minVal = x
			minPos = i
		}
	}

	nf := float64(len(signal))
	variance := m2 / nf

	return Stats{
		Length:   len(signal),
		Mean:     mean,
		RMS:      math.Sqrt(sumSq / nf),
		Max:      maxVal,
		MaxPos:   maxPos,
		Min:      minVal,
		MinPos:   minPos,
		Range:    maxVal - minVal,
		Variance: variance,
		StdDev:   math.Sqrt(variance),
	}
}

// Package frequency summarises the shape of a one-sided magnitude spectrum.
//
// Bin k is taken to sit at k·binWidth Hz. The DC bin is excluded from every
// statistic: captures carry a large calibration offset that would otherwise
// dominate them.
package frequency

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// DefaultRolloff is the energy fraction used by Calculate for Rolloff.
const DefaultRolloff = 0.85

// Stats holds frequency-domain statistics of bins 1..N-1.
type Stats struct {
	Bins     int     // bins considered, DC excluded
	Energy   float64 // sum of squared magnitudes
	Centroid float64 // Hz
	Spread   float64 // Hz, standard deviation around the centroid
	Flatness float64 // Wiener entropy, 0..1
	Rolloff  float64 // Hz below which DefaultRolloff of the energy lies
}

// Calculate computes all statistics. Spectra with fewer than two bins, or
// with no energy above DC, yield the zero Stats.
func Calculate(magnitude []float64, binWidth float64) Stats {
	if len(magnitude) < 2 {
		return Stats{}
	}

	ac := magnitude[1:]

	sum := floats.Sum(ac)
	energy := floats.Dot(ac, ac)

	if sum == 0 {
		return Stats{Bins: len(ac)}
	}

	c := centroid(ac, binWidth, sum)

	return Stats{
		Bins:     len(ac),
		Energy:   energy,
		Centroid: c,
		Spread:   spread(ac, binWidth, c, sum),
		Flatness: flatness(ac),
		Rolloff:  rolloff(ac, binWidth, DefaultRolloff, energy),
	}
}

// Centroid returns the magnitude-weighted mean frequency above DC.
func Centroid(magnitude []float64, binWidth float64) float64 {
	if len(magnitude) < 2 {
		return 0
	}

	ac := magnitude[1:]

	return centroid(ac, binWidth, floats.Sum(ac))
}

// Flatness returns exp(mean(log|X|)) / mean(|X|) over the bins above DC.
// A zero bin makes the geometric mean, and so the flatness, zero.
func Flatness(magnitude []float64) float64 {
	if len(magnitude) < 2 {
		return 0
	}

	return flatness(magnitude[1:])
}

// Rolloff returns the frequency below which fraction of the energy above DC
// lies.
func Rolloff(magnitude []float64, binWidth, fraction float64) float64 {
	if len(magnitude) < 2 {
		return 0
	}

	ac := magnitude[1:]

	return rolloff(ac, binWidth, fraction, floats.Dot(ac, ac))
}

// freq returns the frequency of ac[i], which is bin i+1.
func freq(i int, binWidth float64) float64 {
	return float64(i+1) * binWidth
}

func centroid(ac []float64, binWidth, sum float64) float64 {
	if sum == 0 {
		return 0
	}

	weighted := 0.0
	for i, v := range ac {
		weighted += freq(i, binWidth) * v
	}

	return weighted / sum
}

func spread(ac []float64, binWidth, cent, sum float64) float64 {
	weighted := 0.0
	for i, v := range ac {
		d := freq(i, binWidth) - cent
		weighted += d * d * v
	}

	return math.Sqrt(weighted / sum)
}

func flatness(ac []float64) float64 {
	sumLin, sumLog := 0.0, 0.0

	for _, v := range ac {
		if v <= 0 {
			return 0
		}

		sumLin += v
		sumLog += math.Log(v)
	}

	n := float64(len(ac))

	return math.Exp(sumLog/n) / (sumLin / n)
}

func rolloff(ac []float64, binWidth, fraction, energy float64) float64 {
	if energy == 0 {
		return 0
	}

	threshold := fraction * energy
	cum := 0.0

	for i, v := range ac {
		cum += v * v
		if cum >= threshold {
			return freq(i, binWidth)
		}
	}

	return freq(len(ac)-1, binWidth)
}

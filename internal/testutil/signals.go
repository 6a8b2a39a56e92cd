// Package testutil holds deterministic signal generators and comparison
// helpers shared by package tests.
package testutil

import (
	"math"
	"math/rand"
)

// DeterministicSine generates a deterministic sine wave.
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)

	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}

	return out
}

// DeterministicNoise generates uniform white noise in [-amplitude, amplitude)
// with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)

	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}

	return out
}

// NoisyConstant generates a constant level with additive deterministic noise,
// the shape of a settled load-cell reading.
func NoisyConstant(seed int64, level, amplitude float64, length int) []float64 {
	out := DeterministicNoise(seed, amplitude, length)
	for i := range out {
		out[i] += level
	}

	return out
}

// RawCodes generates length ADC codes scattered uniformly by up to spread
// around center.
func RawCodes(seed int64, center, spread int32, length int) []int32 {
	out := make([]int32, length)

	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = center + int32(rng.Int63n(2*int64(spread)+1)-int64(spread))
	}

	return out
}

// Ramp returns 1, 2, ..., n.
func Ramp(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(i + 1)
	}

	return out
}

// DC generates a constant-valued signal.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}

	return out
}

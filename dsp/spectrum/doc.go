// Package spectrum computes one-sided magnitude spectra of real sequences.
//
// DFTMagnitude is the direct O(L²) transform and is the reference for the
// other paths. FFTMagnitude produces the same bins through an FFT backend.
// Magnitude and Power operate on complex bins produced elsewhere.
package spectrum

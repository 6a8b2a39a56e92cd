// Package window generates the FIR weighting windows used by the causal
// filter stage: rectangular, triangular, Hamming, Hanning and Blackman.
//
// All shapes are evaluated in their symmetric form over n = 0..N-1 with
// N-1 in the denominator, so every window needs at least two coefficients.
package window

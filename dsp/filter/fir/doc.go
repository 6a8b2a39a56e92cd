// Package fir provides direct-form FIR filtering of calibrated sample
// sequences.
//
// [Filter] is the streaming runtime: a set of coefficients applied through a
// circular-buffer delay line. [Causal] builds the unity-gain conditioning
// filter on top of it. Samples before the start of the sequence are absent
// rather than zero, so the effective window grows over the first N-1 outputs
// and each output is divided by the weight of the taps that actually
// contributed.
//
// Window coefficients come from package window; this package does not
// design filters.
package fir

// Package kalman implements a scalar random-walk Kalman estimator for
// smoothing calibrated sample sequences.
//
// The process and measurement noise variances (Q, R) come from a [Noise]
// configuration: [FixedNoise] supplies them as constants, [EstimatedNoise]
// derives them from the input before filtering. Either way the same
// predict/update loop runs:
//
//	predict: p = p + Q
//	update:  K = p / (p + R); x = x + K*(z - x); p = (1 - K)*p
//
// Q and R are clamped to be non-negative. R is additionally floored at
// [MinMeasurementNoise] so that p + R stays positive after an update has
// driven p to zero; [WithStrictNoise] turns a degenerate estimated R into an
// error instead.
package kalman

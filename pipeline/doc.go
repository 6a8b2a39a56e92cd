// Package pipeline runs the load-cell filtering chain over one capture.
//
// A run reads raw converter codes from a Source, calibrates them, and then
// filters the calibrated sequence along independent paths: one causal FIR per
// window shape, causal and centered moving averages, a Kalman estimator with
// fixed and with estimated noise, and a Haar wavelet denoiser. Every path is
// persisted to a Sink and summarised by its steady-state bandwidth in the
// returned Report.
//
// The filter paths only read the shared calibrated sequence and run
// concurrently. Sink failures are logged and never fail a run.
package pipeline

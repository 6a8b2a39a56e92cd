// Package wavelet implements a single-level Haar wavelet denoiser.
//
// A signal of even length N is split into N/2 approximation and N/2 detail
// coefficients. Small detail coefficients are zeroed by hard thresholding
// and the signal is rebuilt with the exact inverse transform. The package
// never pads: callers holding odd-length data trim it with TruncateEven.
package wavelet

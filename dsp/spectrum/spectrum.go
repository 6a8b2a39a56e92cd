package spectrum

import (
	"fmt"
	"math"
	"sync"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/Vijay06092004/digital-signal-processing/dsp/core"
	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/dsp/fourier"
)

// scratchBuf holds pooled scratch memory for complex-to-real unpacking.
type scratchBuf struct {
	data []float64
}

var scratchPool = sync.Pool{
	New: func() any { return &scratchBuf{} },
}

func getScratch(n int) (re, im []float64, buf *scratchBuf) {
	buf = scratchPool.Get().(*scratchBuf)

	buf.data = core.EnsureLen(buf.data, 2*n)

	return buf.data[:n], buf.data[n:], buf
}

// Bins returns the number of one-sided bins reported for a sequence of
// length n.
func Bins(n int) int {
	return n / 2
}

// DFTMagnitude returns |Σ x[t]·e^{−2πi·tk/L}| / L for k in [0, L/2).
func DFTMagnitude(x []float64) ([]float64, error) {
	if len(x) == 0 {
		return nil, fmt.Errorf("spectrum: %w", core.ErrEmptyInput)
	}

	n := len(x)
	bins := Bins(n)
	out := make([]float64, bins)

	if bins == 0 {
		return out, nil
	}

	re, im, buf := getScratch(bins)
	defer scratchPool.Put(buf)

	for k := range bins {
		var sr, si float64

		for t, v := range x {
			angle := 2 * math.Pi * float64(t) * float64(k) / float64(n)
			sr += v * math.Cos(angle)
			si -= v * math.Sin(angle)
		}

		re[k], im[k] = sr, si
	}

	vecmath.Magnitude(out, re, im)
	scale(out, n)

	return out, nil
}

// FFTMagnitude returns the same bins as DFTMagnitude in O(L log L). Power-of-
// two lengths use the radix-2 complex plan; other lengths use a real FFT.
func FFTMagnitude(x []float64) ([]float64, error) {
	if len(x) == 0 {
		return nil, fmt.Errorf("spectrum: %w", core.ErrEmptyInput)
	}

	n := len(x)
	bins := Bins(n)

	if bins == 0 {
		return make([]float64, 0), nil
	}

	var spec []complex128

	if isPowerOfTwo(n) {
		plan, err := algofft.NewPlan64(n)
		if err != nil {
			return nil, fmt.Errorf("spectrum: fft plan for %d points: %w", n, err)
		}

		in := make([]complex128, n)
		for i, v := range x {
			in[i] = complex(v, 0)
		}

		spec = make([]complex128, n)
		if err := plan.Forward(spec, in); err != nil {
			return nil, fmt.Errorf("spectrum: forward fft: %w", err)
		}
	} else {
		spec = fourier.NewFFT(n).Coefficients(nil, x)
	}

	out := Magnitude(spec[:bins])
	scale(out, n)

	return out, nil
}

// BinFrequencies returns the centre frequency in Hz of each of the n/2
// one-sided bins of an n-point transform.
func BinFrequencies(n int, sampleRate float64) []float64 {
	out := make([]float64, Bins(n))
	if n <= 0 {
		return out
	}

	df := sampleRate / float64(n)
	for k := range out {
		out[k] = float64(k) * df
	}

	return out
}

// DominantBin returns the index of the largest magnitude, ignoring the DC bin.
// It returns -1 when mag has no bin above DC.
func DominantBin(mag []float64) int {
	best := -1
	for k := 1; k < len(mag); k++ {
		if best < 0 || mag[k] > mag[best] {
			best = k
		}
	}

	return best
}

// Magnitude returns |X[k]| for each complex spectrum bin.
func Magnitude(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}

	out := make([]float64, len(in))
	re, im, buf := getScratch(len(in))

	for i, c := range in {
		re[i] = real(c)
		im[i] = imag(c)
	}

	vecmath.Magnitude(out, re, im)
	scratchPool.Put(buf)

	return out
}

// Power returns |X[k]|² for each complex spectrum bin.
func Power(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}

	out := make([]float64, len(in))
	re, im, buf := getScratch(len(in))

	for i, c := range in {
		re[i] = real(c)
		im[i] = imag(c)
	}

	vecmath.Power(out, re, im)
	scratchPool.Put(buf)

	return out
}

func scale(x []float64, n int) {
	inv := 1 / float64(n)
	for i := range x {
		x[i] *= inv
	}
}

func isPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

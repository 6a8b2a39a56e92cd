package time

import (
	"errors"
	"math"
	"testing"

	"github.com/Vijay06092004/digital-signal-processing/dsp/core"
	"github.com/Vijay06092004/digital-signal-processing/internal/testutil"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

func TestBandwidth(t *testing.T) {
	tests := []struct {
		name   string
		signal []float64
		skip   int
		want   BandwidthResult
	}{
		{name: "skip one", signal: []float64{1, 5, 3, 9, 2}, skip: 1, want: BandwidthResult{Min: 2, Max: 9, Range: 7}},
		{name: "no skip", signal: []float64{1, 5, 3, 9, 2}, skip: 0, want: BandwidthResult{Min: 1, Max: 9, Range: 8}},
		{name: "last only", signal: []float64{100, -4}, skip: 1, want: BandwidthResult{Min: -4, Max: -4, Range: 0}},
		{name: "flat", signal: []float64{3, 3, 3}, skip: 0, want: BandwidthResult{Min: 3, Max: 3, Range: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Bandwidth(tt.signal, tt.skip)
			if err != nil {
				t.Fatal(err)
			}

			if got != tt.want {
				t.Fatalf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestBandwidthNonNegative(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		x := testutil.DeterministicNoise(seed, 5, 50)

		got, err := Bandwidth(x, 10)
		if err != nil {
			t.Fatal(err)
		}

		if got.Range < 0 || got.Min > got.Max {
			t.Fatalf("seed %d: %+v", seed, got)
		}

		if got.Max != floats.Max(x[10:]) || got.Min != floats.Min(x[10:]) {
			t.Fatalf("seed %d: %+v disagrees with floats.Max/Min", seed, got)
		}
	}
}

func TestBandwidthErrors(t *testing.T) {
	if _, err := Bandwidth([]float64{1, 2}, 2); !errors.Is(err, core.ErrInsufficientSamples) {
		t.Fatalf("err=%v, want ErrInsufficientSamples", err)
	}

	if _, err := Bandwidth(nil, 0); !errors.Is(err, core.ErrInsufficientSamples) {
		t.Fatalf("err=%v, want ErrInsufficientSamples", err)
	}

	if _, err := Bandwidth([]float64{1}, -1); !errors.Is(err, core.ErrInvalidLength) {
		t.Fatalf("err=%v, want ErrInvalidLength", err)
	}
}

func TestCalculate(t *testing.T) {
	x := []float64{2, -1, 4, 0, 5}
	s := Calculate(x)

	if s.Length != 5 || s.Max != 5 || s.MaxPos != 4 || s.Min != -1 || s.MinPos != 1 || s.Range != 6 {
		t.Fatalf("unexpected extrema: %+v", s)
	}

	if math.Abs(s.Mean-2) > 1e-12 {
		t.Fatalf("mean=%v, want 2", s.Mean)
	}

	if math.Abs(s.RMS-math.Sqrt(46.0/5)) > 1e-12 {
		t.Fatalf("rms=%v, want %v", s.RMS, math.Sqrt(46.0/5))
	}
}

func TestCalculateVarianceMatchesGonum(t *testing.T) {
	x := testutil.NoisyConstant(8, 4035.5, 2, 500)
	s := Calculate(x)

	want := stat.PopVariance(x, nil)
	if math.Abs(s.Variance-want) > 1e-9 {
		t.Fatalf("variance=%v, want %v", s.Variance, want)
	}

	if math.Abs(s.StdDev-math.Sqrt(want)) > 1e-9 {
		t.Fatalf("stddev=%v, want %v", s.StdDev, math.Sqrt(want))
	}
}

func TestCalculateEmpty(t *testing.T) {
	if s := Calculate(nil); s != (Stats{}) {
		t.Fatalf("got %+v, want zero Stats", s)
	}
}

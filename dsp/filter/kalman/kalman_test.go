package kalman

import (
	"errors"
	"math"
	"testing"

	"github.com/Vijay06092004/digital-signal-processing/dsp/core"
	"github.com/Vijay06092004/digital-signal-processing/dsp/filter/movavg"
	"github.com/Vijay06092004/digital-signal-processing/internal/testutil"
)

func TestStepMatchesRecurrence(t *testing.T) {
	tr := NewTracker(Params{Q: 0.001, R: 1}, 10, 1)

	// p = 1.001, K = 1.001/2.001, x = 10 + K*(12-10), p = (1-K)*1.001
	s := tr.Step(12)

	k := 1.001 / 2.001
	if math.Abs(s.Gain-k) > 1e-15 {
		t.Fatalf("gain=%v, want %v", s.Gain, k)
	}

	if math.Abs(s.Estimate-(10+2*k)) > 1e-12 {
		t.Fatalf("estimate=%v, want %v", s.Estimate, 10+2*k)
	}

	if math.Abs(s.ErrorCovariance-(1-k)*1.001) > 1e-15 {
		t.Fatalf("covariance=%v, want %v", s.ErrorCovariance, (1-k)*1.001)
	}

	if tr.State() != s {
		t.Fatal("State does not report the last step")
	}
}

func TestFilterFirstOutputStartsFromFirstSample(t *testing.T) {
	e, err := New(FixedNoise{Q: 0.001, R: 1})
	if err != nil {
		t.Fatal(err)
	}

	out, err := e.Filter([]float64{5, 5, 5})
	if err != nil {
		t.Fatal(err)
	}

	testutil.RequireSliceNearlyEqual(t, out, []float64{5, 5, 5}, 0)
}

func TestConstantInputConvergesMonotonically(t *testing.T) {
	var (
		prevP = math.Inf(1)
		steps int
	)

	e, err := New(FixedNoise{Q: 0.001, R: 1},
		WithInitialEstimate(0),
		WithObserver(func(i int, s State) {
			if s.ErrorCovariance > prevP {
				t.Fatalf("step %d: covariance rose from %v to %v", i, prevP, s.ErrorCovariance)
			}

			if s.ErrorCovariance < 0 {
				t.Fatalf("step %d: negative covariance %v", i, s.ErrorCovariance)
			}

			prevP = s.ErrorCovariance
			steps++
		}))
	if err != nil {
		t.Fatal(err)
	}

	res, err := e.Run(testutil.DC(7.5, 2000))
	if err != nil {
		t.Fatal(err)
	}

	if steps != 2000 {
		t.Fatalf("observer called %d times, want 2000", steps)
	}

	if math.Abs(res.Final.Estimate-7.5) > 1e-6 {
		t.Fatalf("final estimate=%v, want 7.5", res.Final.Estimate)
	}

	// Distance to the constant never grows.
	for i := 1; i < len(res.Output); i++ {
		if math.Abs(res.Output[i]-7.5) > math.Abs(res.Output[i-1]-7.5)+1e-12 {
			t.Fatalf("estimate diverged at %d: %v after %v", i, res.Output[i], res.Output[i-1])
		}
	}

	// Steady state of p = (p+Q)R/(p+Q+R) is (-Q+sqrt(Q^2+4QR))/2.
	q, r := 0.001, 1.0
	pStar := (-q + math.Sqrt(q*q+4*q*r)) / 2
	if math.Abs(res.Final.ErrorCovariance-pStar) > 1e-9 {
		t.Fatalf("final covariance=%v, want %v", res.Final.ErrorCovariance, pStar)
	}
}

func TestFilterSmoothsNoise(t *testing.T) {
	in := testutil.NoisyConstant(5, 4035, 3, 1000)

	e, err := New(FixedNoise{Q: 0.001, R: 1})
	if err != nil {
		t.Fatal(err)
	}

	out, err := e.Filter(in)
	if err != nil {
		t.Fatal(err)
	}

	spread := func(x []float64) float64 {
		lo, hi := x[0], x[0]
		for _, v := range x {
			lo, hi = math.Min(lo, v), math.Max(hi, v)
		}

		return hi - lo
	}

	if spread(out[100:]) >= spread(in[100:])/2 {
		t.Fatalf("expected strong smoothing: in spread %v, out spread %v", spread(in[100:]), spread(out[100:]))
	}
}

func TestEstimateNoise(t *testing.T) {
	in := []float64{1, 3, 2, 4, 3, 5}

	p, err := EstimateNoise(in, 2)
	if err != nil {
		t.Fatal(err)
	}

	smoothed, err := movavg.Centered(in, 2)
	if err != nil {
		t.Fatal(err)
	}

	var r, mean, meanSq float64
	for i := range in {
		d := in[i] - smoothed[i]
		r += d * d
		mean += smoothed[i]
		meanSq += smoothed[i] * smoothed[i]
	}

	n := float64(len(in))
	r /= n
	mean /= n
	q := meanSq/n - mean*mean

	if math.Abs(p.R-r) > 1e-12 {
		t.Fatalf("R=%v, want %v", p.R, r)
	}

	if math.Abs(p.Q-q) > 1e-12 {
		t.Fatalf("Q=%v, want %v", p.Q, q)
	}
}

func TestEstimatedModeUsesEstimate(t *testing.T) {
	in := testutil.NoisyConstant(13, 100, 2, 300)

	want, err := EstimateNoise(in, 10)
	if err != nil {
		t.Fatal(err)
	}

	est, err := New(EstimatedNoise{Window: 10})
	if err != nil {
		t.Fatal(err)
	}

	got, err := est.Run(in)
	if err != nil {
		t.Fatal(err)
	}

	if got.Params != want {
		t.Fatalf("params=%+v, want %+v", got.Params, want)
	}

	fixed, err := New(FixedNoise{Q: want.Q, R: want.R})
	if err != nil {
		t.Fatal(err)
	}

	ref, err := fixed.Filter(in)
	if err != nil {
		t.Fatal(err)
	}

	testutil.RequireSliceNearlyEqual(t, got.Output, ref, 0)
}

func TestDegenerateMeasurementNoise(t *testing.T) {
	in := testutil.DC(3, 50)

	floored, err := New(EstimatedNoise{Window: 5})
	if err != nil {
		t.Fatal(err)
	}

	res, err := floored.Run(in)
	if err != nil {
		t.Fatal(err)
	}

	if res.Params.R != MinMeasurementNoise {
		t.Fatalf("R=%v, want floor %v", res.Params.R, MinMeasurementNoise)
	}

	testutil.RequireFinite(t, res.Output)
	testutil.RequireSliceNearlyEqual(t, res.Output, in, 1e-12)

	strict, err := New(EstimatedNoise{Window: 5}, WithStrictNoise())
	if err != nil {
		t.Fatal(err)
	}

	if _, err := strict.Run(in); !errors.Is(err, core.ErrDegenerateNoiseEstimate) {
		t.Fatalf("err=%v, want ErrDegenerateNoiseEstimate", err)
	}
}

func TestFixedNoiseClampedAndFloored(t *testing.T) {
	e, err := New(FixedNoise{Q: -1, R: 0}, WithStrictNoise())
	if err != nil {
		t.Fatal(err)
	}

	res, err := e.Run([]float64{1, 2, 3, 2, 1})
	if err != nil {
		t.Fatalf("strict mode must not reject fixed constants: %v", err)
	}

	if res.Params.Q != 0 || res.Params.R != MinMeasurementNoise {
		t.Fatalf("params=%+v, want Q=0 and floored R", res.Params)
	}

	testutil.RequireFinite(t, res.Output)
}

func TestRunToReusesBuffer(t *testing.T) {
	e, err := New(FixedNoise{Q: 0.01, R: 0.5})
	if err != nil {
		t.Fatal(err)
	}

	buf := make([]float64, 0, 32)

	res, err := e.RunTo(buf, []float64{1, 2, 3})
	if err != nil {
		t.Fatal(err)
	}

	if len(res.Output) != 3 || cap(res.Output) != 32 {
		t.Fatalf("len=%d cap=%d", len(res.Output), cap(res.Output))
	}
}

func TestErrors(t *testing.T) {
	if _, err := New(nil); err == nil {
		t.Fatal("expected error for nil noise")
	}

	if _, err := New(EstimatedNoise{Window: 0}); !errors.Is(err, core.ErrInvalidLength) {
		t.Fatalf("err=%v, want ErrInvalidLength", err)
	}

	e, err := New(FixedNoise{Q: 0.001, R: 1})
	if err != nil {
		t.Fatal(err)
	}

	if _, err := e.Filter(nil); !errors.Is(err, core.ErrEmptyInput) {
		t.Fatalf("err=%v, want ErrEmptyInput", err)
	}

	if _, err := EstimateNoise(nil, 3); !errors.Is(err, core.ErrEmptyInput) {
		t.Fatalf("err=%v, want ErrEmptyInput", err)
	}
}

func TestEstimatedNoiseReference(t *testing.T) {
	raw := testutil.NoisyConstant(4, 50, 1, 200)

	smoothed, err := movavg.Centered(raw, 10)
	if err != nil {
		t.Fatal(err)
	}

	want, err := EstimateNoise(raw, 10)
	if err != nil {
		t.Fatal(err)
	}

	e, err := New(EstimatedNoise{Window: 10, Reference: raw})
	if err != nil {
		t.Fatal(err)
	}

	res, err := e.Run(smoothed)
	if err != nil {
		t.Fatal(err)
	}

	if res.Params != want {
		t.Fatalf("params=%+v, want %+v measured on the reference", res.Params, want)
	}
}

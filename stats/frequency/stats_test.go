package frequency

import (
	"math"
	"testing"
)

func TestCalculateSingleTone(t *testing.T) {
	// DC is large and ignored; all AC energy sits in bin 3.
	mag := []float64{100, 0, 0, 2, 0}

	s := Calculate(mag, 0.5)

	if s.Bins != 4 || s.Energy != 4 {
		t.Fatalf("bins=%d energy=%v", s.Bins, s.Energy)
	}

	if s.Centroid != 1.5 || s.Spread != 0 || s.Rolloff != 1.5 {
		t.Fatalf("centroid=%v spread=%v rolloff=%v, want 1.5/0/1.5", s.Centroid, s.Spread, s.Rolloff)
	}

	if s.Flatness != 0 {
		t.Fatalf("flatness=%v, want 0 with empty bins", s.Flatness)
	}
}

func TestCalculateFlatSpectrum(t *testing.T) {
	mag := []float64{7, 1, 1, 1, 1}

	s := Calculate(mag, 1)

	if math.Abs(s.Flatness-1) > 1e-12 {
		t.Fatalf("flatness=%v, want 1", s.Flatness)
	}

	if math.Abs(s.Centroid-2.5) > 1e-12 {
		t.Fatalf("centroid=%v, want 2.5", s.Centroid)
	}

	// Population spread of {1,2,3,4}.
	if math.Abs(s.Spread-math.Sqrt(1.25)) > 1e-12 {
		t.Fatalf("spread=%v, want %v", s.Spread, math.Sqrt(1.25))
	}

	// 85% of 4 units is reached at the fourth bin.
	if s.Rolloff != 4 {
		t.Fatalf("rolloff=%v, want 4", s.Rolloff)
	}
}

func TestHelpersMatchCalculate(t *testing.T) {
	mag := []float64{3, 0.5, 2, 1, 0.25, 0.1}
	s := Calculate(mag, 2)

	if got := Centroid(mag, 2); got != s.Centroid {
		t.Fatalf("Centroid=%v, want %v", got, s.Centroid)
	}

	if got := Flatness(mag); got != s.Flatness {
		t.Fatalf("Flatness=%v, want %v", got, s.Flatness)
	}

	if got := Rolloff(mag, 2, DefaultRolloff); got != s.Rolloff {
		t.Fatalf("Rolloff=%v, want %v", got, s.Rolloff)
	}
}

func TestDegenerate(t *testing.T) {
	if s := Calculate(nil, 1); s != (Stats{}) {
		t.Fatalf("got %+v", s)
	}

	if s := Calculate([]float64{5}, 1); s != (Stats{}) {
		t.Fatalf("got %+v", s)
	}

	if s := Calculate([]float64{5, 0, 0}, 1); s != (Stats{Bins: 2}) {
		t.Fatalf("got %+v", s)
	}

	if Centroid(nil, 1) != 0 || Flatness(nil) != 0 || Rolloff(nil, 1, 0.5) != 0 {
		t.Fatal("expected zero for empty spectra")
	}
}

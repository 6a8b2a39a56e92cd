package pipeline

import (
	"github.com/Vijay06092004/digital-signal-processing/dsp/filter/kalman"
	"github.com/Vijay06092004/digital-signal-processing/stats/frequency"
	timestats "github.com/Vijay06092004/digital-signal-processing/stats/time"
)

// PathReport summarises one filter output in weight units.
type PathReport struct {
	Name      string
	Bandwidth timestats.BandwidthResult
	Stats     timestats.Stats
}

// SpectrumReport describes the one-sided spectrum of the normalized capture.
type SpectrumReport struct {
	Bins              int
	DominantBin       int // -1 when there is no bin above DC
	DominantHz        float64
	DominantMagnitude float64
	Shape             frequency.Stats // DC excluded
}

// Report is the outcome of one run.
type Report struct {
	Samples         int
	Paths           []PathReport
	FixedParams     kalman.Params
	EstimatedParams kalman.Params
	Spectrum        SpectrumReport
}

// Path returns the report for the named path.
func (r *Report) Path(name string) (PathReport, bool) {
	for _, p := range r.Paths {
		if p.Name == name {
			return p, true
		}
	}

	return PathReport{}, false
}

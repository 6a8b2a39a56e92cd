package pipeline

import (
	"context"
	"errors"
	"fmt"

	"github.com/Vijay06092004/digital-signal-processing/dsp/calibrate"
	"github.com/Vijay06092004/digital-signal-processing/dsp/core"
	"github.com/Vijay06092004/digital-signal-processing/dsp/filter/fir"
	"github.com/Vijay06092004/digital-signal-processing/dsp/filter/kalman"
	"github.com/Vijay06092004/digital-signal-processing/dsp/filter/movavg"
	"github.com/Vijay06092004/digital-signal-processing/dsp/spectrum"
	"github.com/Vijay06092004/digital-signal-processing/dsp/wavelet"
	"github.com/Vijay06092004/digital-signal-processing/dsp/window"
	"github.com/Vijay06092004/digital-signal-processing/stats/frequency"
	timestats "github.com/Vijay06092004/digital-signal-processing/stats/time"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// DirectDFTLimit is the longest capture whose spectrum is computed with the
// direct transform. Longer captures use the FFT path, which yields the same
// bins.
const DirectDFTLimit = 4096

const persistConcurrency = 4

var errNilSource = errors.New("pipeline: nil source")

// Source supplies one capture of raw converter codes.
type Source interface {
	Samples(ctx context.Context) ([]int32, error)
}

// Sink persists a named sequence.
type Sink interface {
	Persist(ctx context.Context, name string, seq []float64) error
}

// Sequence names written to the Sink and used as Report path names.
const (
	NameNormalized      = "normalized"
	NameWeights         = "weights"
	NameSpectrum        = "fft"
	NameCausalMA        = "mov_avg"
	NameCausalMAWeights = "mov_avg_weights"
	NameCenteredMA      = "ma_weights"
	NameKalmanFixed     = "kalman_fixed"
	NameKalmanEstimated = "kalman_estimated"
	NameWavelet         = "wavelet_weights"
)

// FIRName returns the name of the normalized FIR output for shape t.
func FIRName(t window.Type) string {
	return "fir_" + t.String()
}

// FIRWeightsName returns the name of the FIR output for shape t in weight
// units.
func FIRWeightsName(t window.Type) string {
	return FIRName(t) + "_weights"
}

// Config holds the parameters of one run.
type Config struct {
	Calibration        calibrate.Config
	Shapes             []window.Type
	Order              int // FIR taps and causal moving-average length
	MovingAverage      int // centered moving-average window
	TotalNormalization bool
	KalmanQ            float64
	KalmanR            float64
	EstimationWindow   int
	StrictNoise        bool
	WaveletThreshold   float64
	WaveletRelative    bool // WaveletThreshold is a fraction of the peak detail magnitude
	Skip               int // warm-up samples excluded from bandwidth
	SampleRate         float64
}

// DefaultConfig returns the load-cell bench configuration.
func DefaultConfig() Config {
	return Config{
		Calibration:      calibrate.DefaultConfig(),
		Shapes:           window.Types(),
		Order:            10,
		MovingAverage:    10,
		KalmanQ:          0.001,
		KalmanR:          1,
		EstimationWindow: 10,
		WaveletThreshold: wavelet.DefaultThreshold,
		Skip:             10,
		SampleRate:       50,
	}
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(p *Pipeline) {
		if l != nil {
			p.log = l
		}
	}
}

// WithSink sets where sequences are persisted. Without a sink nothing is
// written.
func WithSink(s Sink) Option {
	return func(p *Pipeline) {
		p.sink = s
	}
}

// Pipeline runs the filtering chain. A Pipeline may be run repeatedly; runs
// share no mutable state.
type Pipeline struct {
	src    Source
	sink   Sink
	log    *zap.Logger
	cfg    Config
	cal    *calibrate.Calibrator
	firs   []firPath
	fixed  *kalman.Estimator
	kalOps []kalman.Option
}

type firPath struct {
	shape  window.Type
	coeffs []float64
}

// New validates cfg and prepares the filter kernels.
func New(src Source, cfg Config, opts ...Option) (*Pipeline, error) {
	if src == nil {
		return nil, errNilSource
	}

	if cfg.EstimationWindow < 1 || cfg.MovingAverage < 1 || cfg.Skip < 0 {
		return nil, fmt.Errorf("pipeline: estimation window %d, moving average %d, skip %d: %w",
			cfg.EstimationWindow, cfg.MovingAverage, cfg.Skip, core.ErrInvalidLength)
	}

	cal, err := calibrate.New(cfg.Calibration)
	if err != nil {
		return nil, fmt.Errorf("pipeline: %w", err)
	}

	p := &Pipeline{
		src: src,
		log: zap.NewNop(),
		cfg: cfg,
		cal: cal,
	}

	for _, opt := range opts {
		if opt != nil {
			opt(p)
		}
	}

	for _, shape := range cfg.Shapes {
		coeffs, err := window.Generate(shape, cfg.Order)
		if err != nil {
			return nil, fmt.Errorf("pipeline: %w", err)
		}

		p.firs = append(p.firs, firPath{shape: shape, coeffs: coeffs})
	}

	if cfg.StrictNoise {
		p.kalOps = append(p.kalOps, kalman.WithStrictNoise())
	}

	p.fixed, err = kalman.New(kalman.FixedNoise{Q: cfg.KalmanQ, R: cfg.KalmanR}, p.kalOps...)
	if err != nil {
		return nil, fmt.Errorf("pipeline: %w", err)
	}

	return p, nil
}

// output is one computed sequence. Only outputs with a bandwidth are in
// weight units.
type output struct {
	name      string
	seq       []float64
	bandwidth bool
}

// Run executes the chain once.
func (p *Pipeline) Run(ctx context.Context) (*Report, error) {
	raw, err := p.src.Samples(ctx)
	if err != nil {
		return nil, fmt.Errorf("pipeline: %w", err)
	}

	p.log.Debug("capture read", zap.Int("samples", len(raw)))

	normalized := p.cal.NormalizeSequence(raw)
	weights := p.cal.FromNormalizedSequence(normalized)

	centered, err := movavg.Centered(weights, p.cfg.MovingAverage)
	if err != nil {
		return nil, fmt.Errorf("pipeline: centered moving average: %w", err)
	}

	if len(raw) <= p.cfg.Skip {
		return nil, fmt.Errorf("pipeline: %d samples with skip %d: %w",
			len(raw), p.cfg.Skip, core.ErrInsufficientSamples)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Fixed slots let the paths write without locking.
	outs := make([]output, 0, 9+2*len(p.firs))
	outs = append(outs,
		output{name: NameNormalized, seq: normalized},
		output{name: NameWeights, seq: weights, bandwidth: true},
		output{name: NameCenteredMA, seq: centered, bandwidth: true},
	)

	base := len(outs)
	outs = outs[:base+6+2*len(p.firs)]

	var (
		fixedRes, estRes kalman.Result
		spec             SpectrumReport
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		mag, err := p.spectrum(gctx, normalized)
		if err != nil {
			return err
		}

		outs[base] = output{name: NameSpectrum, seq: mag}
		spec = p.spectrumReport(mag, len(normalized))

		return nil
	})

	g.Go(func() error {
		ma, err := movavg.Causal(normalized, p.cfg.Order)
		if err != nil {
			return fmt.Errorf("causal moving average: %w", err)
		}

		outs[base+1] = output{name: NameCausalMA, seq: ma}
		outs[base+2] = output{name: NameCausalMAWeights, seq: p.cal.FromNormalizedSequence(ma), bandwidth: true}

		return nil
	})

	g.Go(func() error {
		res, err := p.fixed.Run(centered)
		if err != nil {
			return fmt.Errorf("kalman fixed: %w", err)
		}

		fixedRes = res
		outs[base+3] = output{name: NameKalmanFixed, seq: res.Output, bandwidth: true}

		return nil
	})

	g.Go(func() error {
		est, err := kalman.New(kalman.EstimatedNoise{Window: p.cfg.EstimationWindow, Reference: weights}, p.kalOps...)
		if err != nil {
			return err
		}

		res, err := est.Run(centered)
		if err != nil {
			return fmt.Errorf("kalman estimated: %w", err)
		}

		estRes = res
		outs[base+4] = output{name: NameKalmanEstimated, seq: res.Output, bandwidth: true}

		return nil
	})

	g.Go(func() error {
		even := wavelet.TruncateEven(centered)
		if len(even) == 0 {
			p.log.Debug("wavelet path skipped", zap.Int("samples", len(centered)))

			return nil
		}

		denoise := wavelet.Denoise
		if p.cfg.WaveletRelative {
			denoise = wavelet.DenoiseRelative
		}

		den, err := denoise(even, p.cfg.WaveletThreshold)
		if err != nil {
			return fmt.Errorf("wavelet: %w", err)
		}

		outs[base+5] = output{name: NameWavelet, seq: den, bandwidth: true}

		return nil
	})

	for i, f := range p.firs {
		slot := base + 6 + 2*i

		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			var opts []fir.Option
			if p.cfg.TotalNormalization {
				opts = append(opts, fir.WithTotalNormalization())
			}

			y, err := fir.Causal(normalized, f.coeffs, opts...)
			if err != nil {
				return fmt.Errorf("fir %s: %w", f.shape, err)
			}

			outs[slot] = output{name: FIRName(f.shape), seq: y}
			outs[slot+1] = output{name: FIRWeightsName(f.shape), seq: p.cal.FromNormalizedSequence(y), bandwidth: true}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("pipeline: %w", err)
	}

	report := &Report{
		Samples:         len(raw),
		FixedParams:     fixedRes.Params,
		EstimatedParams: estRes.Params,
		Spectrum:        spec,
	}

	for _, o := range outs {
		if o.name == "" || !o.bandwidth {
			continue
		}

		// Only the wavelet path can be shorter than the capture.
		if len(o.seq) <= p.cfg.Skip {
			p.log.Debug("path too short for bandwidth",
				zap.String("name", o.name), zap.Int("len", len(o.seq)), zap.Int("skip", p.cfg.Skip))

			continue
		}

		bw, err := timestats.Bandwidth(o.seq, p.cfg.Skip)
		if err != nil {
			return nil, fmt.Errorf("pipeline: bandwidth of %s: %w", o.name, err)
		}

		report.Paths = append(report.Paths, PathReport{
			Name:      o.name,
			Bandwidth: bw,
			Stats:     timestats.Calculate(o.seq),
		})
	}

	p.persist(ctx, outs)

	p.log.Info("run complete",
		zap.Int("samples", report.Samples),
		zap.Int("paths", len(report.Paths)),
		zap.Float64("estimated_q", report.EstimatedParams.Q),
		zap.Float64("estimated_r", report.EstimatedParams.R),
		zap.Float64("dominant_hz", report.Spectrum.DominantHz),
	)

	return report, nil
}

func (p *Pipeline) spectrum(ctx context.Context, normalized []float64) ([]float64, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var (
		mag []float64
		err error
	)

	if len(normalized) <= DirectDFTLimit {
		mag, err = spectrum.DFTMagnitude(normalized)
	} else {
		mag, err = spectrum.FFTMagnitude(normalized)
	}

	if err != nil {
		return nil, fmt.Errorf("spectrum: %w", err)
	}

	return mag, nil
}

func (p *Pipeline) spectrumReport(mag []float64, n int) SpectrumReport {
	r := SpectrumReport{
		Bins:        len(mag),
		DominantBin: spectrum.DominantBin(mag),
		Shape:       frequency.Calculate(mag, p.cfg.SampleRate/float64(n)),
	}

	if r.DominantBin < 0 {
		return r
	}

	r.DominantHz = spectrum.BinFrequencies(n, p.cfg.SampleRate)[r.DominantBin]
	r.DominantMagnitude = mag[r.DominantBin]

	return r
}

// persist writes every output. Failures are logged and dropped.
func (p *Pipeline) persist(ctx context.Context, outs []output) {
	if p.sink == nil {
		return
	}

	var g errgroup.Group
	g.SetLimit(persistConcurrency)

	for _, o := range outs {
		if o.name == "" {
			continue
		}

		g.Go(func() error {
			if err := p.sink.Persist(ctx, o.name, o.seq); err != nil {
				p.log.Warn("persist failed", zap.String("name", o.name), zap.Error(err))

				return nil
			}

			p.log.Debug("persisted", zap.String("name", o.name), zap.Int("len", len(o.seq)))

			return nil
		})
	}

	_ = g.Wait()
}

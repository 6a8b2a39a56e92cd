package kalman

import (
	"errors"
	"fmt"

	"github.com/Vijay06092004/digital-signal-processing/dsp/core"
)

var errNilNoise = errors.New("kalman: nil noise configuration")

// DefaultInitialCovariance is the error covariance the estimator starts from.
const DefaultInitialCovariance = 1.0

// State is the estimator state after a measurement has been absorbed.
type State struct {
	Estimate        float64
	ErrorCovariance float64
	Gain            float64
}

// Option configures an Estimator.
type Option func(*config)

type config struct {
	p0      float64
	x0      *float64
	strict  bool
	observe func(i int, s State)
}

func defaultConfig() config {
	return config{p0: DefaultInitialCovariance}
}

// WithInitialCovariance sets p0. Non-positive values are ignored.
func WithInitialCovariance(p0 float64) Option {
	return func(c *config) {
		if p0 > 0 {
			c.p0 = p0
		}
	}
}

// WithInitialEstimate starts the estimate at x0 instead of the first sample.
func WithInitialEstimate(x0 float64) Option {
	return func(c *config) {
		c.x0 = &x0
	}
}

// WithStrictNoise makes an estimated measurement noise below
// MinMeasurementNoise fail with core.ErrDegenerateNoiseEstimate instead of
// being floored.
func WithStrictNoise() Option {
	return func(c *config) {
		c.strict = true
	}
}

// WithObserver calls fn with the state after every sample.
func WithObserver(fn func(i int, s State)) Option {
	return func(c *config) {
		c.observe = fn
	}
}

// Result is the outcome of one estimator run.
type Result struct {
	Output []float64
	Params Params // noise variances actually used, after clamping and flooring
	Final  State
}

// Estimator filters sequences with a fixed noise configuration. It holds no
// per-run state; every Run creates its own Tracker.
type Estimator struct {
	noise Noise
	cfg   config
}

// New returns an Estimator for the given noise configuration.
func New(noise Noise, opts ...Option) (*Estimator, error) {
	if noise == nil {
		return nil, errNilNoise
	}

	if n, ok := noise.(EstimatedNoise); ok && n.Window < 1 {
		return nil, fmt.Errorf("kalman: estimation window must be >= 1, got %d: %w", n.Window, core.ErrInvalidLength)
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return &Estimator{noise: noise, cfg: cfg}, nil
}

// Filter returns the estimate sequence for in.
func (e *Estimator) Filter(in []float64) ([]float64, error) {
	res, err := e.RunTo(nil, in)
	if err != nil {
		return nil, err
	}

	return res.Output, nil
}

// Run filters in and reports the parameters used.
func (e *Estimator) Run(in []float64) (Result, error) {
	return e.RunTo(nil, in)
}

// RunTo is Run writing the estimates into dst, which is grown when too short.
func (e *Estimator) RunTo(dst, in []float64) (Result, error) {
	if len(in) == 0 {
		return Result{}, fmt.Errorf("kalman: %w", core.ErrEmptyInput)
	}

	params, err := e.noise.resolve(in)
	if err != nil {
		return Result{}, err
	}

	if params.R < MinMeasurementNoise {
		if e.cfg.strict && e.noise.estimated() {
			return Result{}, fmt.Errorf("kalman: measurement noise %g: %w", params.R, core.ErrDegenerateNoiseEstimate)
		}

		params.R = MinMeasurementNoise
	}

	x0 := in[0]
	if e.cfg.x0 != nil {
		x0 = *e.cfg.x0
	}

	tr := NewTracker(params, x0, e.cfg.p0)
	dst = core.EnsureLen(dst, len(in))

	for i, z := range in {
		s := tr.Step(z)
		dst[i] = s.Estimate

		if e.cfg.observe != nil {
			e.cfg.observe(i, s)
		}
	}

	return Result{Output: dst, Params: params, Final: tr.State()}, nil
}

// Tracker is the mutable single-sample form of the estimator.
// A Tracker belongs to one sequence and must not be shared.
type Tracker struct {
	q, r  float64
	state State
}

// NewTracker starts a tracker at estimate x0 with error covariance p0.
// Params are used as given; callers are responsible for keeping R > 0.
func NewTracker(p Params, x0, p0 float64) *Tracker {
	return &Tracker{
		q:     p.Q,
		r:     p.R,
		state: State{Estimate: x0, ErrorCovariance: p0},
	}
}

// Step absorbs measurement z and returns the updated state.
func (t *Tracker) Step(z float64) State {
	p := t.state.ErrorCovariance + t.q

	k := p / (p + t.r)
	t.state.Estimate += k * (z - t.state.Estimate)
	t.state.ErrorCovariance = (1 - k) * p
	t.state.Gain = k

	return t.state
}

// State returns the current state.
func (t *Tracker) State() State {
	return t.state
}

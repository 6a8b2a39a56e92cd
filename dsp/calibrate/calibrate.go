package calibrate

import (
	"fmt"

	"github.com/Vijay06092004/digital-signal-processing/dsp/core"
)

// Default calibration constants of the load-cell front end.
const (
	DefaultFullScale   = 2147483648.0
	DefaultZeroOffset  = 0.01823035255075
	DefaultScaleFactor = 0.00000451794631
)

// Config holds the calibration constants supplied once per run.
type Config struct {
	FullScale   float64
	ZeroOffset  float64
	ScaleFactor float64
}

// DefaultConfig returns the factory calibration for a 32-bit converter.
func DefaultConfig() Config {
	return Config{
		FullScale:   DefaultFullScale,
		ZeroOffset:  DefaultZeroOffset,
		ScaleFactor: DefaultScaleFactor,
	}
}

// Option mutates a Config.
type Option func(*Config)

// WithFullScale sets the converter full-scale code. Non-positive values are ignored.
func WithFullScale(v float64) Option {
	return func(c *Config) {
		if v > 0 {
			c.FullScale = v
		}
	}
}

// WithZeroOffset sets the normalized zero offset.
func WithZeroOffset(v float64) Option {
	return func(c *Config) {
		c.ZeroOffset = v
	}
}

// WithScaleFactor sets the normalized-units-per-physical-unit scale.
func WithScaleFactor(v float64) Option {
	return func(c *Config) {
		c.ScaleFactor = v
	}
}

// Calibrator applies a fixed Config. It is immutable and safe for concurrent use.
type Calibrator struct {
	cfg Config
}

// New validates cfg and returns a Calibrator. It fails with
// core.ErrDivisionByZero when either divisor is zero.
func New(cfg Config, opts ...Option) (*Calibrator, error) {
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if cfg.FullScale == 0 {
		return nil, fmt.Errorf("calibrate: full scale is zero: %w", core.ErrDivisionByZero)
	}

	if cfg.ScaleFactor == 0 {
		return nil, fmt.Errorf("calibrate: scale factor is zero: %w", core.ErrDivisionByZero)
	}

	return &Calibrator{cfg: cfg}, nil
}

// Config returns the constants in use.
func (c *Calibrator) Config() Config {
	return c.cfg
}

// Normalize maps a raw code onto the converter's unit range.
func (c *Calibrator) Normalize(raw int32) float64 {
	return float64(raw) / c.cfg.FullScale
}

// FromNormalized converts a normalized value into physical units.
func (c *Calibrator) FromNormalized(v float64) float64 {
	return (v - c.cfg.ZeroOffset) / c.cfg.ScaleFactor
}

// Sample converts one raw code into physical units.
func (c *Calibrator) Sample(raw int32) float64 {
	return c.FromNormalized(c.Normalize(raw))
}

// ToRaw is the inverse of Sample, rounded to the nearest code and
// saturated to the int32 range.
func (c *Calibrator) ToRaw(physical float64) int32 {
	code := (physical*c.cfg.ScaleFactor + c.cfg.ZeroOffset) * c.cfg.FullScale

	switch {
	case code >= 2147483647:
		return 2147483647
	case code <= -2147483648:
		return -2147483648
	case code >= 0:
		return int32(code + 0.5)
	default:
		return int32(code - 0.5)
	}
}

// Sequence converts raw codes into physical units, preserving length and order.
func (c *Calibrator) Sequence(raw []int32) []float64 {
	return c.SequenceTo(nil, raw)
}

// SequenceTo is Sequence writing into dst, which is grown when too short.
func (c *Calibrator) SequenceTo(dst []float64, raw []int32) []float64 {
	dst = core.EnsureLen(dst, len(raw))
	for i, r := range raw {
		dst[i] = c.Sample(r)
	}

	return dst
}

// NormalizeSequence applies Normalize to every raw code.
func (c *Calibrator) NormalizeSequence(raw []int32) []float64 {
	out := make([]float64, len(raw))
	for i, r := range raw {
		out[i] = c.Normalize(r)
	}

	return out
}

// FromNormalizedSequence applies FromNormalized to every value.
func (c *Calibrator) FromNormalizedSequence(norm []float64) []float64 {
	out := make([]float64, len(norm))
	for i, v := range norm {
		out[i] = c.FromNormalized(v)
	}

	return out
}

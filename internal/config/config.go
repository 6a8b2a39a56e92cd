// Package config loads the adcfilter run configuration from YAML with
// built-in defaults and ADC_* environment overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/Vijay06092004/digital-signal-processing/dsp/calibrate"
	"github.com/Vijay06092004/digital-signal-processing/dsp/window"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the file LoadConfig looks for when no path is given.
const DefaultPath = "adcfilter.yaml"

// Config is the full run configuration.
type Config struct {
	LogLevel    string            `yaml:"log_level"`   // debug, info, warn, error
	Development bool              `yaml:"development"` // human-readable console logs
	Input       InputConfig       `yaml:"input"`
	Output      OutputConfig      `yaml:"output"`
	Calibration CalibrationConfig `yaml:"calibration"`
	Filter      FilterConfig      `yaml:"filter"`
	Kalman      KalmanConfig      `yaml:"kalman"`
	Wavelet     WaveletConfig     `yaml:"wavelet"`
	Analysis    AnalysisConfig    `yaml:"analysis"`
}

// InputConfig locates the raw ADC capture.
type InputConfig struct {
	Path     string `yaml:"path"`
	Capacity int    `yaml:"capacity"` // maximum samples read
}

// OutputConfig controls where filtered sequences are written.
type OutputConfig struct {
	Enabled bool   `yaml:"enabled"`
	Dir     string `yaml:"dir"`
	CSV     bool   `yaml:"csv"` // write name.csv with a header line instead of name.txt
}

// CalibrationConfig holds the converter constants.
type CalibrationConfig struct {
	FullScale   float64 `yaml:"full_scale"`
	ZeroOffset  float64 `yaml:"zero_offset"`
	ScaleFactor float64 `yaml:"scale_factor"`
}

// FilterConfig configures the FIR and moving-average stages.
type FilterConfig struct {
	Order              int      `yaml:"order"`
	Shapes             []string `yaml:"shapes"`
	MovingAverage      int      `yaml:"moving_average_window"`
	TotalNormalization bool     `yaml:"total_normalization"`
}

// KalmanConfig configures the fixed and estimated Kalman paths.
type KalmanConfig struct {
	Q                float64 `yaml:"q"`
	R                float64 `yaml:"r"`
	EstimationWindow int     `yaml:"estimation_window"`
	StrictNoise      bool    `yaml:"strict_noise"`
}

// WaveletConfig configures the Haar denoiser.
type WaveletConfig struct {
	Threshold float64 `yaml:"threshold"`
	// Relative treats Threshold as a fraction of the largest detail
	// coefficient magnitude.
	Relative  bool    `yaml:"relative_threshold"`
}

// AnalysisConfig configures bandwidth and spectrum reporting.
type AnalysisConfig struct {
	Skip       int     `yaml:"skip"`
	SampleRate float64 `yaml:"sample_rate"`
}

// Default returns the load-cell bench configuration.
func Default() Config {
	return Config{
		LogLevel: "info",
		Input: InputConfig{
			Path:     "adc_values60.txt",
			Capacity: 100000,
		},
		Output: OutputConfig{
			Enabled: true,
			Dir:     "out",
		},
		Calibration: CalibrationConfig{
			FullScale:   calibrate.DefaultFullScale,
			ZeroOffset:  calibrate.DefaultZeroOffset,
			ScaleFactor: calibrate.DefaultScaleFactor,
		},
		Filter: FilterConfig{
			Order:         10,
			Shapes:        []string{"rect", "tri", "hamming", "hanning", "blackman"},
			MovingAverage: 10,
		},
		Kalman: KalmanConfig{
			Q:                0.001,
			R:                1,
			EstimationWindow: 10,
		},
		Wavelet: WaveletConfig{
			Threshold: 1,
		},
		Analysis: AnalysisConfig{
			Skip:       10,
			SampleRate: 50,
		},
	}
}

// LoadConfig loads configuration from the YAML file at path. An empty path
// tries DefaultPath and falls back to the built-in defaults when it does not
// exist. Environment overrides are applied after the file and the result is
// validated.
func LoadConfig(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		if _, err := os.Stat(DefaultPath); err != nil {
			cfg.applyEnvOverrides()

			if err := cfg.Validate(); err != nil {
				return nil, fmt.Errorf("invalid default configuration: %w", err)
			}

			return &cfg, nil
		}

		path = DefaultPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// Validate reports every invalid field.
func (c *Config) Validate() error {
	var errs []error

	if c.Input.Path == "" {
		errs = append(errs, errors.New("input.path must be set"))
	}

	if c.Input.Capacity < 1 {
		errs = append(errs, fmt.Errorf("input.capacity must be positive, got %d", c.Input.Capacity))
	}

	if c.Output.Enabled && c.Output.Dir == "" {
		errs = append(errs, errors.New("output.dir must be set when output is enabled"))
	}

	if c.Calibration.FullScale == 0 {
		errs = append(errs, errors.New("calibration.full_scale must be non-zero"))
	}

	if c.Calibration.ScaleFactor == 0 {
		errs = append(errs, errors.New("calibration.scale_factor must be non-zero"))
	}

	if c.Filter.Order < window.MinLength {
		errs = append(errs, fmt.Errorf("filter.order must be >= %d, got %d", window.MinLength, c.Filter.Order))
	}

	if len(c.Filter.Shapes) == 0 {
		errs = append(errs, errors.New("filter.shapes must list at least one window"))
	}

	for _, s := range c.Filter.Shapes {
		if _, err := window.ParseType(s); err != nil {
			errs = append(errs, fmt.Errorf("filter.shapes: %w", err))
		}
	}

	if c.Filter.MovingAverage < 1 {
		errs = append(errs, fmt.Errorf("filter.moving_average_window must be positive, got %d", c.Filter.MovingAverage))
	}

	if c.Kalman.EstimationWindow < 1 {
		errs = append(errs, fmt.Errorf("kalman.estimation_window must be positive, got %d", c.Kalman.EstimationWindow))
	}

	if c.Kalman.Q < 0 || c.Kalman.R < 0 {
		errs = append(errs, errors.New("kalman.q and kalman.r must be non-negative"))
	}

	if c.Wavelet.Threshold < 0 {
		errs = append(errs, fmt.Errorf("wavelet.threshold must be non-negative, got %g", c.Wavelet.Threshold))
	}

	if c.Wavelet.Relative && c.Wavelet.Threshold > 1 {
		errs = append(errs, fmt.Errorf("relative wavelet.threshold must not exceed 1, got %g", c.Wavelet.Threshold))
	}

	if c.Analysis.Skip < 0 {
		errs = append(errs, fmt.Errorf("analysis.skip must be non-negative, got %d", c.Analysis.Skip))
	}

	if c.Analysis.SampleRate <= 0 {
		errs = append(errs, fmt.Errorf("analysis.sample_rate must be positive, got %g", c.Analysis.SampleRate))
	}

	return errors.Join(errs...)
}

// Calibrator returns the calibrate.Config described by c.
func (c *Config) Calibrator() calibrate.Config {
	return calibrate.Config{
		FullScale:   c.Calibration.FullScale,
		ZeroOffset:  c.Calibration.ZeroOffset,
		ScaleFactor: c.Calibration.ScaleFactor,
	}
}

// applyEnvOverrides applies ADC_* variables. Unparsable values are ignored.
func (c *Config) applyEnvOverrides() {
	if val, ok := os.LookupEnv("ADC_LOG_LEVEL"); ok {
		c.LogLevel = val
	}

	if val, ok := os.LookupEnv("ADC_INPUT"); ok {
		c.Input.Path = val
	}

	if val, ok := os.LookupEnv("ADC_OUTPUT_DIR"); ok {
		c.Output.Dir = val
	}

	if val, ok := os.LookupEnv("ADC_CAPACITY"); ok {
		if n, err := strconv.Atoi(val); err == nil {
			c.Input.Capacity = n
		}
	}

	if val, ok := os.LookupEnv("ADC_SHAPES"); ok {
		var shapes []string
		for _, s := range strings.Split(val, ",") {
			if s = strings.TrimSpace(s); s != "" {
				shapes = append(shapes, s)
			}
		}

		c.Filter.Shapes = shapes
	}

	envFloat("ADC_ZERO_OFFSET", &c.Calibration.ZeroOffset)
	envFloat("ADC_SCALE_FACTOR", &c.Calibration.ScaleFactor)
	envFloat("ADC_WAVELET_THRESHOLD", &c.Wavelet.Threshold)
	envFloat("ADC_SAMPLE_RATE", &c.Analysis.SampleRate)
}

func envFloat(key string, dst *float64) {
	val, ok := os.LookupEnv(key)
	if !ok {
		return
	}

	if f, err := strconv.ParseFloat(val, 64); err == nil {
		*dst = f
	}
}

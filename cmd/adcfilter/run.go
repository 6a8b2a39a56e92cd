package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/Vijay06092004/digital-signal-processing/dsp/window"
	"github.com/Vijay06092004/digital-signal-processing/internal/config"
	"github.com/Vijay06092004/digital-signal-processing/internal/logging"
	"github.com/Vijay06092004/digital-signal-processing/internal/sink"
	"github.com/Vijay06092004/digital-signal-processing/internal/source"
	"github.com/Vijay06092004/digital-signal-processing/pipeline"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type runFlags struct {
	configPath string
	input      string
	outputDir  string
	csv        bool
	noOutput   bool
	logLevel   string
}

func newRunCmd() *cobra.Command {
	var f runFlags

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the filter chain over a capture",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadConfig(f.configPath)
			if err != nil {
				return err
			}

			f.apply(cmd, cfg)

			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}

			return run(cmd, cfg)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&f.configPath, "config", "c", "", "YAML configuration file (default "+config.DefaultPath+" when present)")
	flags.StringVarP(&f.input, "input", "i", "", "capture of whitespace-separated ADC codes")
	flags.StringVarP(&f.outputDir, "output", "o", "", "directory for filtered sequences")
	flags.BoolVar(&f.csv, "csv", false, "write name.csv files with a header line")
	flags.BoolVar(&f.noOutput, "no-output", false, "do not write filtered sequences")
	flags.StringVar(&f.logLevel, "log-level", "", "debug, info, warn or error")

	return cmd
}

// apply lets explicitly set flags win over the file and environment.
func (f *runFlags) apply(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()

	if flags.Changed("input") {
		cfg.Input.Path = f.input
	}

	if flags.Changed("output") {
		cfg.Output.Dir = f.outputDir
	}

	if flags.Changed("csv") {
		cfg.Output.CSV = f.csv
	}

	if f.noOutput {
		cfg.Output.Enabled = false
	}

	if flags.Changed("log-level") {
		cfg.LogLevel = f.logLevel
	}
}

func run(cmd *cobra.Command, cfg *config.Config) error {
	logger, err := logging.New(
		logging.WithLevel(cfg.LogLevel),
		logging.WithDevelopment(cfg.Development),
		logging.WithFields(map[string]any{"input": cfg.Input.Path}),
	)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	pcfg, err := pipelineConfig(cfg)
	if err != nil {
		return err
	}

	opts := []pipeline.Option{pipeline.WithLogger(logger)}

	if cfg.Output.Enabled {
		dir, err := sink.NewDir(cfg.Output.Dir, cfg.Output.CSV)
		if err != nil {
			return err
		}

		opts = append(opts, pipeline.WithSink(dir))
	}

	p, err := pipeline.New(source.NewFile(cfg.Input.Path, cfg.Input.Capacity), pcfg, opts...)
	if err != nil {
		return err
	}

	report, err := p.Run(cmd.Context())
	if err != nil {
		logger.Error("run failed", zap.Error(err))

		return err
	}

	return printReport(cmd.OutOrStdout(), report)
}

func pipelineConfig(cfg *config.Config) (pipeline.Config, error) {
	shapes := make([]window.Type, 0, len(cfg.Filter.Shapes))
	for _, name := range cfg.Filter.Shapes {
		t, err := window.ParseType(name)
		if err != nil {
			return pipeline.Config{}, err
		}

		shapes = append(shapes, t)
	}

	return pipeline.Config{
		Calibration:        cfg.Calibrator(),
		Shapes:             shapes,
		Order:              cfg.Filter.Order,
		MovingAverage:      cfg.Filter.MovingAverage,
		TotalNormalization: cfg.Filter.TotalNormalization,
		KalmanQ:            cfg.Kalman.Q,
		KalmanR:            cfg.Kalman.R,
		EstimationWindow:   cfg.Kalman.EstimationWindow,
		StrictNoise:        cfg.Kalman.StrictNoise,
		WaveletThreshold:   cfg.Wavelet.Threshold,
		WaveletRelative:    cfg.Wavelet.Relative,
		Skip:               cfg.Analysis.Skip,
		SampleRate:         cfg.Analysis.SampleRate,
	}, nil
}

func printReport(w io.Writer, r *pipeline.Report) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "Samples: %d\n\n", r.Samples)
	fmt.Fprintf(tw, "Path\tMin\tMax\tBandwidth\tMean\tStdDev\n")
	fmt.Fprintf(tw, "----\t---\t---\t---------\t----\t------\n")

	for _, p := range r.Paths {
		fmt.Fprintf(tw, "%s\t%.6f\t%.6f\t%.6f\t%.6f\t%.6f\n",
			p.Name, p.Bandwidth.Min, p.Bandwidth.Max, p.Bandwidth.Range, p.Stats.Mean, p.Stats.StdDev)
	}

	fmt.Fprintf(tw, "\nKalman fixed\tQ=%.6f\tR=%.6f\n", r.FixedParams.Q, r.FixedParams.R)
	fmt.Fprintf(tw, "Kalman estimated\tQ=%.6f\tR=%.6f\n", r.EstimatedParams.Q, r.EstimatedParams.R)

	if r.Spectrum.DominantBin >= 0 {
		fmt.Fprintf(tw, "Dominant bin\t%d\t%.4f Hz\t%.6g\n",
			r.Spectrum.DominantBin, r.Spectrum.DominantHz, r.Spectrum.DominantMagnitude)
	}

	sh := r.Spectrum.Shape
	fmt.Fprintf(tw, "Spectral centroid\t%.4f Hz\tspread %.4f Hz\tflatness %.4f\trolloff %.4f Hz\n",
		sh.Centroid, sh.Spread, sh.Flatness, sh.Rolloff)

	return tw.Flush()
}

package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/Vijay06092004/digital-signal-processing/dsp/filter/fir"
	"github.com/Vijay06092004/digital-signal-processing/dsp/window"
	"github.com/spf13/cobra"
)

func newWindowsCmd() *cobra.Command {
	var (
		size  int
		list  bool
		coefs bool
	)

	cmd := &cobra.Command{
		Use:   "windows [shape ...]",
		Short: "Print properties of the FIR window shapes",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			if list {
				return printList(out)
			}

			types, err := resolveTypes(args)
			if err != nil {
				return err
			}

			if coefs {
				return printCoefficients(out, types, size)
			}

			return printAnalysis(out, types, size)
		},
	}

	cmd.Flags().IntVar(&size, "size", 10, "window length in taps")
	cmd.Flags().BoolVar(&list, "list", false, "list shape names and aliases")
	cmd.Flags().BoolVar(&coefs, "coefficients", false, "print the generated coefficients")

	return cmd
}

func resolveTypes(names []string) ([]window.Type, error) {
	if len(names) == 0 {
		return window.Types(), nil
	}

	types := make([]window.Type, 0, len(names))
	for _, name := range names {
		t, err := window.ParseType(name)
		if err != nil {
			return nil, err
		}

		types = append(types, t)
	}

	return types, nil
}

func printList(w io.Writer) error {
	for _, t := range window.Types() {
		if _, err := fmt.Fprintf(w, "%s\t%s\n", t, window.Info(t).Name); err != nil {
			return err
		}
	}

	return nil
}

func printAnalysis(w io.Writer, types []window.Type, size int) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "Window\tSize\tCoherent Gain\tENBW [bins]\tSidelobe [dB]\tFIR @ fs/4 [dB]\n")
	fmt.Fprintf(tw, "------\t----\t-------------\t-----------\t-------------\t---------------\n")

	for _, t := range types {
		coeffs, err := window.Generate(t, size)
		if err != nil {
			return err
		}

		cg, err := window.CoherentGain(coeffs)
		if err != nil {
			return err
		}

		enbw, err := window.EquivalentNoiseBandwidth(coeffs)
		if err != nil {
			return err
		}

		fmt.Fprintf(tw, "%s\t%d\t%.6f\t%.4f\t%.1f\t%.2f\n",
			t, size, cg, enbw, window.Info(t).HighestSidelobe, quarterRateGain(coeffs))
	}

	return tw.Flush()
}

// quarterRateGain is the unity-DC-gain FIR response at a quarter of the
// sample rate.
func quarterRateGain(coeffs []float64) float64 {
	sum := 0.0
	for _, c := range coeffs {
		sum += c
	}

	norm := make([]float64, len(coeffs))
	for i, c := range coeffs {
		norm[i] = c / sum
	}

	return fir.New(norm).MagnitudeDB(0.25, 1)
}

func printCoefficients(w io.Writer, types []window.Type, size int) error {
	for _, t := range types {
		coeffs, err := window.Generate(t, size)
		if err != nil {
			return err
		}

		if _, err := fmt.Fprintf(w, "%s %.6f\n", t, coeffs); err != nil {
			return err
		}
	}

	return nil
}

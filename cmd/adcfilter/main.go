// Command adcfilter filters load-cell ADC captures and reports the
// steady-state bandwidth of every filter path.
//
// Usage:
//
//	adcfilter run [flags]
//	adcfilter windows [flags] [shape ...]
//
// Examples:
//
//	adcfilter run -i adc_values60.txt -o out
//	adcfilter run -c adcfilter.yaml --csv
//	adcfilter windows -size 10 hamming blackman
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd := newRootCmd()
	cmd.SetArgs(os.Args[1:])

	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

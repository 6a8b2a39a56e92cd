package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "adcfilter",
		Short:         "Filter load-cell ADC captures and compare filter bandwidths",
		SilenceErrors: true,
		SilenceUsage:  true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	root.SetHelpCommand(&cobra.Command{Hidden: true})
	root.AddCommand(newRunCmd(), newWindowsCmd())

	return root
}

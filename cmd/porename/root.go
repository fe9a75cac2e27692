package main

import (
	"github.com/spf13/cobra"
)

type options struct {
	configPath string
	dir        string
}

func newRootCommand() *cobra.Command {
	opts := &options{}

	runCmd := newRunCommand(opts)

	rootCmd := &cobra.Command{
		Use:           "porename",
		Short:         "Rename purchase-order PDFs after their order numbers",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE:          runCmd.RunE,
	}

	rootCmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVarP(&opts.dir, "dir", "d", "", "Working directory (overrides work_dir)")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(newCheckCommand(opts))

	return rootCmd
}

package cmd

import (
	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:          "brio",
		Short:        "brio",
		SilenceUsage: true,
		Long:         `CLI for the lexical stage of the Brio toolchain: token stream dumps and source tree checks.`,
	}

	directory string
)

// Execute executes the root command.
func Execute() error {
	rootCmd.PersistentFlags().StringVarP(&directory, "directory", "d", ".", "path to directory and subtree which will be scanned for *.brio files")
	return rootCmd.Execute()
}

// Package cmd implements the CLI commands for detexml using Cobra.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "detexml",
	Short: "detexml — normalize LaTeX in bibliographic XML to Unicode",
	Long: `detexml converts LaTeX commands and special characters found in selected
fields of bibliographic XML records into Unicode, isolating $...$ math
regions into <tex-math> elements.

Usage:
  detexml convert <infile> -f title -f abstract [-o outfile]`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

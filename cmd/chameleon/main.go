// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "chameleon",
	Short: "Chameleon - white-label theme engine and configuration service",
	Long: `Chameleon turns a small set of admin-authored brand colors into a
validated, accessibility-checked design-token set, a derived dark-mode
palette and full tonal ramps, and serves the result as live CSS custom
properties the rest of the application reads.`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

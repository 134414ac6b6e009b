// Package cmd is for command line interactions with the ImmunoNodes tools
package cmd

import (
	"log"
	"os"

	"github.com/spf13/cobra"
)

// stderr is for logging to Stderr (without an annoying timestamp)
var stderr = log.New(os.Stderr, "", 0)

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use: "immunonodes",
	Short: `Immunoinformatics design tools.
Assemble epitope-based string-of-beads vaccines with optimal spacers`,
	Version: "1.0.0",
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		log.Fatalf("%v", err)
	}
}

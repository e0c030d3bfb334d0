package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "iconsmith",
	Short: "Placeholder app icon generator",
	Long:  "Iconsmith renders a full set of placeholder app icons into an Xcode asset catalog.",
}

func init() {
	rootCmd.PersistentFlags().String("config", "iconsmith.yaml", "path to config file")
	rootCmd.PersistentFlags().Bool("verbose", false, "enable verbose output")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

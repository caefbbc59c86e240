package main

import (
	"fmt"
	"os"
	"portfolio/internal/structures"

	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var flags structures.CliFlags

//nolint:gochecknoglobals // Cobra boilerplate
var rootCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Portfolio content daemon",
	Long: `portfolio serves the projects, skills, experience, education and about
content of a personal portfolio, with an authenticated admin API for editing it.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.PersistentFlags().StringVarP(&flags.ConfigPath, "config", "c", "config.yaml", "path to the YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&flags.DebugMode, "debug", "d", false, "log to the console as well")

	rootCmd.AddCommand(serveCmd, exportCmd, importCmd, resetCmd, restoreCmd)
}

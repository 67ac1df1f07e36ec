package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/speechmastery/coach-api/pkg/config"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "coach-api",
	Short: "Speech Mastery API server",
	Long: `Speech Mastery API - Speaking-effectiveness analysis and daily reporting

This API analyzes recording transcripts for speaking patterns such as filler
words, hedging, upspeak, passive voice, and pacing, scores each recording
across four effectiveness categories, and aggregates a user's recordings
into daily progress reports with trends and improvement suggestions.

Features:
  • Transcript analysis with configurable pattern lexicons
  • Category and overall effectiveness scoring
  • Critical moment extraction with per-moment suggestions
  • Daily reports with 24-hour and 7-day trend deltas
  • Background job processing for async analysis`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// NewRootCmd creates a new root command (exported for testing)
func NewRootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
}

// initConfig loads the configuration for commands that need it.
// Version and help run without a config file present.
func initConfig() {
	cmd, _, _ := rootCmd.Find(os.Args[1:])
	if cmd != nil && (cmd.Name() == "version" || cmd.Name() == "help") {
		return
	}

	if err := config.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing config: %v\n", err)
		os.Exit(1)
	}
}

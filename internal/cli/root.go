package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/cwray/audex/internal/config"
	"github.com/cwray/audex/internal/logging"
)

const version = "0.1.0"

// Exit codes.
const (
	ExitSuccess      = 0
	ExitLowScore     = 1
	ExitUsageError   = 2
	ExitAuthError    = 3
	ExitRuntimeError = 4
)

var rootCmd = &cobra.Command{
	Use:   "audex",
	Short: "AI-powered code audit CLI",
	Long:  "Audex sends source files to an LLM provider and renders a quality, security, and performance assessment with deterministic exit codes.",
}

var flagVerbose bool

// Run executes the root command and returns an exit code.
func Run() int {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(snippetCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(modelsCmd)
	rootCmd.AddCommand(cacheCmd)
	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		// Cobra already prints the error
		return ExitUsageError
	}

	return exitCode
}

// exitCode is set by command handlers to control the process exit code.
var exitCode = ExitSuccess

// newLogger builds the stderr logger for a command run. --verbose wins over
// the configured level.
func newLogger(cfg config.Config) zerolog.Logger {
	level := cfg.LogLevel
	if flagVerbose {
		level = "debug"
	}
	return logging.New(os.Stderr, level)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print audex version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(os.Stdout, "audex version %s\n", version)
	},
}

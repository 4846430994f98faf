package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/briandowns/spinner"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/cwray/audex/internal/analysis"
	"github.com/cwray/audex/internal/config"
	"github.com/cwray/audex/internal/output"
	"github.com/cwray/audex/internal/providers"
	"github.com/cwray/audex/internal/source"
)

// Shared audit flags
var (
	flagProvider      string
	flagModel         string
	flagFormat        string
	flagOut           string
	flagFailUnder     float64
	flagMaxTokens     int
	flagTemperature   float64
	flagNoStyle       bool
	flagNoSecurity    bool
	flagNoPerformance bool
	flagNoRedact      bool
	flagNoCache       bool
)

func addAuditFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagProvider, "provider", "", "LLM provider (openai, anthropic, gemini, ollama)")
	cmd.Flags().StringVar(&flagModel, "model", "", "Model name")
	cmd.Flags().StringVar(&flagFormat, "format", "", "Output format (text, json, markdown, yaml)")
	cmd.Flags().StringVar(&flagOut, "out", "", "Output file path (default: stdout)")
	cmd.Flags().Float64Var(&flagFailUnder, "fail-under", 0, "Exit non-zero if any overall score is below this value")
	cmd.Flags().IntVar(&flagMaxTokens, "max-tokens", 0, "Maximum response tokens")
	cmd.Flags().Float64Var(&flagTemperature, "temperature", 0, "Sampling temperature")
	cmd.Flags().BoolVar(&flagNoStyle, "no-style", false, "Skip quality and style analysis")
	cmd.Flags().BoolVar(&flagNoSecurity, "no-security", false, "Skip security analysis")
	cmd.Flags().BoolVar(&flagNoPerformance, "no-performance", false, "Skip performance analysis")
	cmd.Flags().BoolVar(&flagNoRedact, "no-redact", false, "Disable secret redaction (use with caution)")
	cmd.Flags().BoolVar(&flagNoCache, "no-cache", false, "Bypass the reply cache")
}

func buildOverrides() map[string]string {
	m := make(map[string]string)
	if flagProvider != "" {
		m["provider"] = flagProvider
	}
	if flagModel != "" {
		m["model"] = flagModel
	}
	if flagFormat != "" {
		m["format"] = flagFormat
	}
	if flagFailUnder > 0 {
		m["failUnder"] = strconv.FormatFloat(flagFailUnder, 'f', -1, 64)
	}
	if flagMaxTokens > 0 {
		m["maxTokens"] = strconv.Itoa(flagMaxTokens)
	}
	if flagTemperature > 0 {
		m["temperature"] = strconv.FormatFloat(flagTemperature, 'f', -1, 64)
	}
	return m
}

func applyToggles(cfg *config.Config) {
	if flagNoRedact {
		cfg.Privacy.RedactSecrets = false
		fmt.Fprintln(os.Stderr, "WARNING: secret redaction is disabled")
	}
	if flagNoCache {
		cfg.Cache.Enabled = false
	}
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze <file> [file...]",
	Short: "Audit one or more source files",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(buildOverrides())
		if err != nil {
			return err
		}
		applyToggles(&cfg)
		log := newLogger(cfg)

		files := make([]source.File, 0, len(args))
		for _, path := range args {
			f, err := source.LoadFile(path, cfg.MaxFileBytes)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Warning: skipping %s: %v\n", path, err)
				exitCode = ExitRuntimeError
				continue
			}
			files = append(files, f)
		}
		if len(files) == 0 {
			fmt.Fprintln(os.Stderr, "Error: no readable input files")
			return nil
		}

		runAudits(files, cfg, log)
		return nil
	},
}

var (
	flagSnippetPath string
	flagSnippetLang string
)

var snippetCmd = &cobra.Command{
	Use:   "snippet",
	Short: "Audit code from stdin",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(buildOverrides())
		if err != nil {
			return err
		}
		applyToggles(&cfg)
		log := newLogger(cfg)

		f, err := source.FromReader(os.Stdin, flagSnippetPath, flagSnippetLang, cfg.MaxFileBytes)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitCode = ExitRuntimeError
			return nil
		}

		runAudits([]source.File{f}, cfg, log)
		return nil
	},
}

func runAudits(files []source.File, cfg config.Config, log zerolog.Logger) {
	writer, err := output.GetWriter(cfg.Format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exitCode = ExitUsageError
		return
	}
	w, closeFn, err := output.Open(flagOut)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exitCode = ExitRuntimeError
		return
	}
	defer closeFn()

	ctx := context.Background()
	history := analysis.NewHistory()

	for _, f := range files {
		req := analysis.NewRequest(f.Content, f.Name, f.Language,
			!flagNoStyle, !flagNoSecurity, !flagNoPerformance)

		s := spinner.New(spinner.CharSets[11], 100*time.Millisecond,
			spinner.WithWriter(os.Stderr))
		s.Suffix = fmt.Sprintf(" Auditing %s...", f.Name)
		s.Start()

		report, runErr := analysis.Run(ctx, req, cfg, log)
		s.Stop()

		if runErr != nil {
			// The report still carries a valid degraded result; render it
			// and record the failure in the exit code.
			if providers.IsAuthError(runErr) {
				exitCode = ExitAuthError
			} else if exitCode == ExitSuccess {
				exitCode = ExitRuntimeError
			}
		}

		history.Add(report)
		if werr := writer.Write(w, report); werr != nil {
			fmt.Fprintf(os.Stderr, "Error writing output: %v\n", werr)
			exitCode = ExitRuntimeError
			return
		}
	}

	if history.Len() > 1 {
		stats := history.Stats()
		fmt.Fprintf(os.Stderr, "\nAnalyzed %d files, average score %.1f/10\n",
			stats.TotalAnalyses, stats.AverageScore)
	}

	if cfg.FailUnder > 0 && exitCode == ExitSuccess {
		for _, r := range history.Entries() {
			if r.Result.OverallScore < cfg.FailUnder {
				exitCode = ExitLowScore
				return
			}
		}
	}
}

func init() {
	addAuditFlags(analyzeCmd)
	addAuditFlags(snippetCmd)

	snippetCmd.Flags().StringVar(&flagSnippetPath, "path", "", "File path (for language detection and messages)")
	snippetCmd.Flags().StringVar(&flagSnippetLang, "lang", "", "Language hint")
}

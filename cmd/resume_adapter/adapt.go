package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-adapter/internal/config"
	"github.com/jonathan/resume-adapter/internal/observability"
	"github.com/jonathan/resume-adapter/internal/pipeline"
)

var adaptCommand = &cobra.Command{
	Use:   "adapt",
	Short: "Adapt a resume file, optionally targeting a job posting",
	Long: `Normalizes raw resume text into a structured document and, when a job posting is provided and a chat provider is configured, rewrites it for that posting.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	RunE: runAdaptCmd,
}

var (
	adaptConfigPath string
	adaptResume     string
	adaptJob        string
	adaptOutput     string
	adaptAPIKey     string
	adaptModel      string
	adaptVerbose    bool
)

func init() {
	// Config file flag (processed first)
	adaptCommand.Flags().StringVar(&adaptConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	adaptCommand.Flags().StringVarP(&adaptResume, "resume", "r", "", "Path to resume text file (required)")
	adaptCommand.Flags().StringVarP(&adaptJob, "job", "j", "", "Path to job posting text file (optional)")
	adaptCommand.Flags().StringVarP(&adaptOutput, "output", "o", "", "Path to write the adapted resume JSON (defaults to stdout)")
	adaptCommand.Flags().StringVar(&adaptModel, "model", "", "Chat model override")
	adaptCommand.Flags().BoolVarP(&adaptVerbose, "verbose", "v", false, "Print detailed debug information")

	// API key can be passed as a flag, or read from env var GEMINI_API_KEY
	adaptCommand.Flags().StringVar(&adaptAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")

	rootCmd.AddCommand(adaptCommand)
}

func runAdaptCmd(cmd *cobra.Command, _ []string) error {
	// Step 1: Load config file if provided
	var cfg config.Config
	if adaptConfigPath != "" {
		loadedCfg, err := config.LoadConfig(adaptConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		if err := loadedCfg.Validate(); err != nil {
			return err
		}

		cfg = *loadedCfg
		if adaptVerbose {
			_, _ = fmt.Fprintf(os.Stdout, "Loaded config from: %s\n", adaptConfigPath)
		}
	}

	// Step 2: Apply CLI overrides (command-line args take priority)
	// Only override if the flag was explicitly set
	if cmd.Flags().Changed("resume") {
		cfg.Resume = adaptResume
	}
	if cmd.Flags().Changed("job") {
		cfg.Job = adaptJob
	}
	if cmd.Flags().Changed("output") {
		cfg.Output = adaptOutput
	}
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = adaptAPIKey
	}
	if cmd.Flags().Changed("model") {
		cfg.Model = adaptModel
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = adaptVerbose
	}

	// Step 3: Validate required fields
	if cfg.Resume == "" {
		return fmt.Errorf("--resume must be provided (via flag or config)")
	}

	return executeAdapt(context.Background(), cfg, os.Stdout)
}

// executeAdapt runs one adaptation from files and writes the response JSON.
func executeAdapt(ctx context.Context, cfg config.Config, out io.Writer) error {
	resumeText, err := os.ReadFile(cfg.Resume)
	if err != nil {
		return fmt.Errorf("failed to read resume file: %w", err)
	}

	var jobText []byte
	if cfg.Job != "" {
		jobText, err = os.ReadFile(cfg.Job)
		if err != nil {
			return fmt.Errorf("failed to read job file: %w", err)
		}
	}

	adapter, closeFn, err := buildAdapter(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeFn()

	resp, err := adapter.Adapt(ctx, pipeline.AdaptRequest{
		ResumeText: string(resumeText),
		JobText:    string(jobText),
	})
	if err != nil {
		return fmt.Errorf("adaptation failed: %w", err)
	}

	if cfg.Verbose {
		printer := observability.NewPrinter(out)
		printer.PrintResume(resp.Resume)
		printer.PrintDiff(resp.Diff)
		printer.PrintCostLedger(resp.Ledger)
		printer.PrintWarnings(resp.Resume.Metadata.Warnings)
	}

	encoded, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode response: %w", err)
	}

	if cfg.Output != "" {
		if err := os.WriteFile(cfg.Output, append(encoded, '\n'), 0644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		fmt.Fprintf(out, "Adapted resume written to %s\n", cfg.Output)
		return nil
	}

	_, err = fmt.Fprintf(out, "%s\n", encoded)
	return err
}

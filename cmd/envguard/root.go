package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/envguard/envguard/config"
)

var (
	// Global flags
	cfgFile    string
	schemaFile string
	outFormat  string
	logLevel   string
	noColor    bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "envguard",
	Short: "Validate environment variables against a declarative schema",
	Long: `envguard checks named string inputs (environment variables) against a
declarative schema and reports every problem in one pass.

Quick start:
  envguard init      # Scaffold env.schema.yaml and envguard.yaml
  envguard check     # Validate the current environment

Schema-driven output:
  envguard example   # Generate a .env.example file
  envguard docs      # Render Markdown documentation for all keys`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "envguard.yaml", "config file path")
	rootCmd.PersistentFlags().StringVarP(&schemaFile, "schema", "s", "", "schema file path (overrides config)")
	rootCmd.PersistentFlags().StringVarP(&outFormat, "format", "f", "", "output format: text, json or github")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable ANSI colors")
}

// loadConfig resolves the tool configuration. Flags override both the
// config file and ENVGUARD_* environment variables.
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadWithFallback(cfgFile)
	if err != nil {
		return nil, err
	}
	if schemaFile != "" {
		cfg.Schema = schemaFile
	}
	if outFormat != "" {
		cfg.Output.Format = outFormat
	}
	if logLevel != "" {
		cfg.Logging.Level = logLevel
	}
	if noColor {
		cfg.Output.Color = false
	}
	return cfg, nil
}

// setupLogger builds the CLI logger. Logs go to stderr so reports on
// stdout stay machine-readable; every invocation carries a run_id for
// correlating CI log lines.
func setupLogger(cfg *config.Config) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Logging.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	var out io.Writer = os.Stderr
	if cfg.Logging.Format == "console" {
		out = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	}
	return zerolog.New(out).With().Timestamp().Str("run_id", uuid.NewString()).Logger()
}

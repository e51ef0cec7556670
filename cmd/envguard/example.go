package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/envguard/envguard/core/envfile"
	"github.com/envguard/envguard/core/schema"
)

var exampleCmd = &cobra.Command{
	Use:   "example",
	Short: "Generate an example env file from the schema",
	Long: `Generate a .env.example style file from the schema.

Each key gets its description and type as comments and its example or
default as the value. Secret keys are always written blank.

Examples:
  envguard example
  envguard example -o .env.example`,
	RunE: runExample,
}

var exampleOut string

func init() {
	rootCmd.AddCommand(exampleCmd)

	exampleCmd.Flags().StringVarP(&exampleOut, "out", "o", "", "output file (default: stdout)")
}

func runExample(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := setupLogger(cfg)

	sch, err := schema.ParseFile(cfg.Schema)
	if err != nil {
		return err
	}

	if exampleOut == "" {
		return envfile.Generate(os.Stdout, sch)
	}

	f, err := os.Create(exampleOut)
	if err != nil {
		return fmt.Errorf("create %s: %w", exampleOut, err)
	}
	defer f.Close()

	if err := envfile.Generate(f, sch); err != nil {
		return err
	}
	logger.Info().Str("path", exampleOut).Int("keys", sch.Len()).Msg("wrote example env file")
	return nil
}

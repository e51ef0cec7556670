package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/envguard/envguard/core/envfile"
	"github.com/envguard/envguard/core/formatter"
	"github.com/envguard/envguard/core/schema"
	"github.com/envguard/envguard/core/validation"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the environment against the schema",
	Long: `Validate environment variables against the declared schema.

The raw environment is assembled from the process environment first, then
any env files in order; later sources win. Every problem is reported in a
single pass, in schema declaration order.

Exit status is 1 when any variable is missing or invalid.

Examples:
  envguard check
  envguard check --env-file .env --env-file .env.local
  envguard check --pure --env-file .env.ci --format github`,
	RunE: runCheck,
}

var (
	checkEnvFiles []string
	checkPure     bool
)

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().StringArrayVar(&checkEnvFiles, "env-file", nil, "env file to load (repeatable, later files win)")
	checkCmd.Flags().BoolVar(&checkPure, "pure", false, "ignore the process environment")
}

func runCheck(cmd *cobra.Command, args []string) error {
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

	files := cfg.EnvFiles
	if len(checkEnvFiles) > 0 {
		files = checkEnvFiles
	}

	sources := make([]map[string]string, 0, len(files)+1)
	if !checkPure {
		sources = append(sources, envfile.FromEnviron(os.Environ()))
	}
	for _, path := range files {
		env, err := envfile.ParseFile(path)
		if err != nil {
			return err
		}
		sources = append(sources, env)
	}
	raw := envfile.Merge(sources...)

	logger.Debug().
		Str("schema", cfg.Schema).
		Int("keys", sch.Len()).
		Int("sources", len(sources)).
		Msg("running validation")

	values, runErr := validation.Run(sch, raw)
	rep := formatter.Build(sch, values, runErr)

	f, ok := formatter.Get(cfg.Output.Format)
	if !ok {
		return fmt.Errorf("unknown output format %q", cfg.Output.Format)
	}
	if err := f.Format(os.Stdout, rep, formatter.Options{Color: cfg.Output.Color}); err != nil {
		return err
	}

	if runErr != nil {
		var failure *validation.Failure
		if errors.As(runErr, &failure) {
			logger.Error().Int("issues", len(failure.Issues)).Msg("validation failed")
			os.Exit(1)
		}
		return runErr
	}

	logger.Debug().Int("values", len(values)).Msg("validation passed")
	return nil
}

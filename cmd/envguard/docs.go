package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/envguard/envguard/core/schema"
)

var docsCmd = &cobra.Command{
	Use:   "docs",
	Short: "Render Markdown documentation for the schema",
	Long: `Render a Markdown reference of every declared key: type, whether it
is required, its default, and its description. Secret keys are marked and
their defaults are never shown.

Examples:
  envguard docs
  envguard docs -o ENVIRONMENT.md`,
	RunE: runDocs,
}

var docsOut string

func init() {
	rootCmd.AddCommand(docsCmd)

	docsCmd.Flags().StringVarP(&docsOut, "out", "o", "", "output file (default: stdout)")
}

func runDocs(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	sch, err := schema.ParseFile(cfg.Schema)
	if err != nil {
		return err
	}

	w := io.Writer(os.Stdout)
	if docsOut != "" {
		f, err := os.Create(docsOut)
		if err != nil {
			return fmt.Errorf("create %s: %w", docsOut, err)
		}
		defer f.Close()
		w = f
	}

	return renderDocs(w, sch)
}

// renderDocs writes one Markdown table row per key, in schema order.
func renderDocs(w io.Writer, sch *schema.Schema) error {
	fmt.Fprintln(w, "# Environment variables")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "| Key | Type | Required | Default | Description |")
	fmt.Fprintln(w, "|-----|------|----------|---------|-------------|")

	for _, key := range sch.Keys() {
		decl, _ := sch.Get(key)
		spec, err := schema.Normalize(decl)
		if err != nil {
			return fmt.Errorf("key %s: %w", key, err)
		}

		fmt.Fprintf(w, "| `%s` | %s | %s | %s | %s |\n",
			key, docType(spec), docRequired(spec), docDefault(spec), docDescription(spec))
	}
	return nil
}

func docType(spec schema.Spec) string {
	label := ""
	switch spec.Kind {
	case schema.KindEnum:
		label = "one of `" + strings.Join(spec.Values, "`, `") + "`"
	case schema.KindRegex:
		label = "matching `" + spec.Display + "`"
	default:
		label = string(spec.Kind)
	}
	if spec.Secret {
		label += " (secret)"
	}
	return label
}

func docRequired(spec schema.Spec) string {
	if spec.Optional || spec.HasDefault {
		return "no"
	}
	return "yes"
}

func docDefault(spec schema.Spec) string {
	if !spec.HasDefault {
		return "—"
	}
	if spec.Secret {
		return "(redacted)"
	}
	return "`" + schema.FormatValue(spec.Default) + "`"
}

func docDescription(spec schema.Spec) string {
	desc := spec.Description
	if spec.Example != "" {
		if desc != "" {
			desc += " "
		}
		desc += fmt.Sprintf("Example: `%s`", spec.Example)
	}
	if desc == "" {
		return "—"
	}
	return desc
}

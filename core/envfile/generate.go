package envfile

import (
	"fmt"
	"io"
	"strings"

	"github.com/envguard/envguard/core/schema"
)

// Generate writes an example env file for a schema: one block per key in
// declaration order, with description and type comments, and the example
// or default as the value. Secret keys are always left blank.
func Generate(w io.Writer, sch *schema.Schema) error {
	for i, key := range sch.Keys() {
		decl, _ := sch.Get(key)
		spec, err := schema.Normalize(decl)
		if err != nil {
			return fmt.Errorf("key %s: %w", key, err)
		}

		if i > 0 {
			fmt.Fprintln(w)
		}
		if spec.Description != "" {
			fmt.Fprintf(w, "# %s\n", spec.Description)
		}
		fmt.Fprintf(w, "# %s\n", annotate(spec))
		fmt.Fprintf(w, "%s=%s\n", key, exampleValue(spec))
	}
	return nil
}

// annotate renders the type line for a key.
func annotate(spec schema.Spec) string {
	parts := []string{typeLabel(spec)}
	if spec.Optional {
		parts = append(parts, "optional")
	}
	if spec.HasDefault {
		parts = append(parts, fmt.Sprintf("default: %s", schema.FormatValue(spec.Default)))
	}
	if spec.Secret {
		parts = append(parts, "secret")
	}
	return strings.Join(parts, ", ")
}

func typeLabel(spec schema.Spec) string {
	switch spec.Kind {
	case schema.KindEnum:
		return "one of: " + strings.Join(spec.Values, ", ")
	case schema.KindRegex:
		return "matching " + spec.Display
	default:
		return string(spec.Kind)
	}
}

// exampleValue picks the value shown in the generated file.
func exampleValue(spec schema.Spec) string {
	if spec.Secret {
		return ""
	}
	if spec.Example != "" {
		return spec.Example
	}
	if spec.HasDefault {
		return schema.FormatValue(spec.Default)
	}
	return ""
}

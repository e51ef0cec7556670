package schema

import (
	"fmt"
	"math"
	"regexp"
	"strings"
)

// primitiveNames is the allowed set for shorthand and object-spec types,
// in the order used by error messages.
const primitiveNames = "string, number, boolean, json, url, email"

// Normalize converts a single declaration into its canonical Spec.
// Accepted shapes are a shorthand type string (optionally suffixed with "?")
// and an object spec as decoded from YAML or JSON (map with string keys).
// Anything else is a structural error.
func Normalize(decl any) (Spec, error) {
	switch d := decl.(type) {
	case string:
		return normalizeShorthand(d)
	case map[string]any:
		return normalizeObject(d)
	default:
		return Spec{}, fmt.Errorf("declaration must be a type string or an object spec")
	}
}

// normalizeShorthand handles the "type" / "type?" string form.
// Shorthand carries no default and no metadata.
func normalizeShorthand(decl string) (Spec, error) {
	name := decl
	optional := false
	if strings.HasSuffix(name, "?") {
		name = strings.TrimSuffix(name, "?")
		optional = true
	}

	kind := Kind(name)
	if !kind.IsPrimitive() {
		return Spec{}, fmt.Errorf("unsupported type %q: must be one of %s", name, primitiveNames)
	}

	return Spec{Kind: kind, Optional: optional}, nil
}

// normalizeObject dispatches an object spec on its "type" field.
func normalizeObject(m map[string]any) (Spec, error) {
	rawType, ok := m["type"]
	if !ok {
		return Spec{}, fmt.Errorf("object spec requires a %q field", "type")
	}
	name, ok := rawType.(string)
	if !ok {
		return Spec{}, fmt.Errorf("object spec %q field must be a string", "type")
	}

	var spec Spec
	var err error

	switch {
	case Kind(name).IsPrimitive():
		spec, err = normalizePrimitive(Kind(name), m)
	case name == string(KindEnum):
		spec, err = normalizeEnum(m)
	case name == string(KindRegex):
		spec, err = normalizeRegex(m)
	default:
		return Spec{}, fmt.Errorf("unsupported type %q: must be one of %s, enum, regex", name, primitiveNames)
	}
	if err != nil {
		return Spec{}, err
	}

	if err := applyCommon(&spec, m); err != nil {
		return Spec{}, err
	}
	return spec, nil
}

// applyCommon reads the fields shared by every object spec: optional and
// the metadata trio. Absent fields keep their zero defaults.
func applyCommon(spec *Spec, m map[string]any) error {
	if v, ok := m["optional"]; ok && v != nil {
		b, ok := v.(bool)
		if !ok {
			return fmt.Errorf("%q must be a boolean", "optional")
		}
		spec.Optional = b
	}
	if v, ok := m["description"]; ok && v != nil {
		s, ok := v.(string)
		if !ok {
			return fmt.Errorf("%q must be a string", "description")
		}
		spec.Description = s
	}
	if v, ok := m["example"]; ok && v != nil {
		s, ok := v.(string)
		if !ok {
			return fmt.Errorf("%q must be a string", "example")
		}
		spec.Example = s
	}
	if v, ok := m["secret"]; ok && v != nil {
		b, ok := v.(bool)
		if !ok {
			return fmt.Errorf("%q must be a boolean", "secret")
		}
		spec.Secret = b
	}
	return nil
}

// defaultValue looks up the "default" key by presence. A present-but-nil
// default (YAML null) counts as absent, so authors can write
// "default: null" to mean "no default".
func defaultValue(m map[string]any) (any, bool) {
	v, ok := m["default"]
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

// normalizePrimitive handles object specs for the six base types,
// coercing and validating a declared default up front.
func normalizePrimitive(kind Kind, m map[string]any) (Spec, error) {
	spec := Spec{Kind: kind}

	dv, ok := defaultValue(m)
	if !ok {
		return spec, nil
	}

	typed, err := coerceDefault(kind, dv)
	if err != nil {
		return Spec{}, err
	}
	spec.HasDefault = true
	spec.Default = typed
	return spec, nil
}

// coerceDefault validates a declared default against its own kind, using
// the same parsers applied to live values at resolution time.
func coerceDefault(kind Kind, dv any) (any, error) {
	switch kind {
	case KindString:
		s, ok := dv.(string)
		if !ok {
			return nil, fmt.Errorf("default for string must be a string")
		}
		return s, nil

	case KindNumber:
		switch v := dv.(type) {
		case string:
			n, err := parseNumber(v)
			if err != nil {
				return nil, fmt.Errorf("default for number must be finite, got %q", v)
			}
			return n, nil
		default:
			n, ok := toFloat64(dv)
			if !ok {
				return nil, fmt.Errorf("default for number must be a number or string")
			}
			if math.IsNaN(n) || math.IsInf(n, 0) {
				return nil, fmt.Errorf("default for number must be finite")
			}
			return n, nil
		}

	case KindBool:
		switch v := dv.(type) {
		case bool:
			return v, nil
		case string:
			b, err := parseBool(v)
			if err != nil {
				return nil, fmt.Errorf("default for boolean %q: must be one of %s", v, boolTokens)
			}
			return b, nil
		default:
			return nil, fmt.Errorf("default for boolean must be a boolean or string")
		}

	case KindJSON:
		// Any value passes through unmodified.
		return dv, nil

	case KindURL:
		s, ok := dv.(string)
		if !ok {
			return nil, fmt.Errorf("default for url must be a string")
		}
		typed, err := Coerce(KindURL, s)
		if err != nil {
			return nil, fmt.Errorf("default for url: %w", err)
		}
		return typed, nil

	case KindEmail:
		s, ok := dv.(string)
		if !ok {
			return nil, fmt.Errorf("default for email must be a string")
		}
		typed, err := Coerce(KindEmail, s)
		if err != nil {
			return nil, fmt.Errorf("default for email: %w", err)
		}
		return typed, nil
	}
	return nil, fmt.Errorf("cannot validate default for kind %q", kind)
}

// normalizeEnum handles {type: enum, values: [...]} specs.
func normalizeEnum(m map[string]any) (Spec, error) {
	values, err := enumValues(m["values"])
	if err != nil {
		return Spec{}, err
	}

	spec := Spec{Kind: KindEnum, Values: values}

	dv, ok := defaultValue(m)
	if !ok {
		return spec, nil
	}
	s, ok := dv.(string)
	if !ok {
		return Spec{}, fmt.Errorf("default for enum must be a string")
	}
	if !containsString(values, s) {
		return Spec{}, fmt.Errorf("default %q must be one of: %s", s, strings.Join(values, ", "))
	}
	spec.HasDefault = true
	spec.Default = s
	return spec, nil
}

// enumValues validates the values list: non-empty, all strings, distinct.
func enumValues(raw any) ([]string, error) {
	var items []any
	switch v := raw.(type) {
	case nil:
		return nil, fmt.Errorf("enum spec requires a non-empty %q list of strings", "values")
	case []any:
		items = v
	case []string:
		for _, s := range v {
			items = append(items, s)
		}
	default:
		return nil, fmt.Errorf("enum spec requires a non-empty %q list of strings", "values")
	}

	if len(items) == 0 {
		return nil, fmt.Errorf("enum spec requires a non-empty %q list of strings", "values")
	}

	values := make([]string, 0, len(items))
	seen := make(map[string]bool, len(items))
	for i, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, fmt.Errorf("enum value at index %d is not a string", i)
		}
		if seen[s] {
			return nil, fmt.Errorf("duplicate enum value %q", s)
		}
		seen[s] = true
		values = append(values, s)
	}
	return values, nil
}

// normalizeRegex handles {type: regex, pattern: ..., flags: ...} specs.
// Flag letters follow the common scripting convention and are translated
// to Go inline flags; unsupported letters are an error rather than being
// silently dropped.
func normalizeRegex(m map[string]any) (Spec, error) {
	rawPattern, ok := m["pattern"]
	if !ok {
		return Spec{}, fmt.Errorf("regex spec requires a non-empty %q string", "pattern")
	}
	pattern, ok := rawPattern.(string)
	if !ok || pattern == "" {
		return Spec{}, fmt.Errorf("regex spec requires a non-empty %q string", "pattern")
	}

	flags := ""
	if v, ok := m["flags"]; ok && v != nil {
		s, ok := v.(string)
		if !ok {
			return Spec{}, fmt.Errorf("regex %q must be a string", "flags")
		}
		flags = s
	}

	re, err := compilePattern(pattern, flags)
	if err != nil {
		return Spec{}, fmt.Errorf("compile pattern %q: %w", pattern, err)
	}

	spec := Spec{
		Kind:    KindRegex,
		Pattern: re,
		Display: "/" + pattern + "/" + flags,
	}

	dv, ok := defaultValue(m)
	if !ok {
		return spec, nil
	}
	s, ok := dv.(string)
	if !ok {
		return Spec{}, fmt.Errorf("default for regex must be a string")
	}
	if !re.MatchString(s) {
		return Spec{}, fmt.Errorf("default %q does not match %s", s, spec.Display)
	}
	spec.HasDefault = true
	spec.Default = s
	return spec, nil
}

// compilePattern translates flag letters into Go inline flags and compiles.
func compilePattern(pattern, flags string) (*regexp.Regexp, error) {
	var inline strings.Builder
	for _, f := range flags {
		switch f {
		case 'i', 'm', 's':
			inline.WriteRune(f)
		default:
			return nil, fmt.Errorf("unsupported flag %q", string(f))
		}
	}
	if inline.Len() > 0 {
		pattern = "(?" + inline.String() + ")" + pattern
	}
	return regexp.Compile(pattern)
}

// toFloat64 converts the numeric types YAML and JSON decoders produce.
func toFloat64(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}

// containsString checks if a string is in a slice.
func containsString(slice []string, s string) bool {
	for _, v := range slice {
		if v == s {
			return true
		}
	}
	return false
}

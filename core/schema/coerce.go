package schema

import (
	"encoding/json"
	"fmt"
	"math"
	"net/url"
	"regexp"
	"strconv"
	"strings"
)

// emailPattern is a deliberately simple local@domain.tld shape. Values are
// validated, not normalized: the stored value is the trimmed input.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// boolTokens lists every accepted boolean spelling, for error messages.
const boolTokens = "true, false, 1, 0, yes, no, y, n, on, off"

// Coerce converts a raw string into the typed value for a primitive kind.
// It is the single coercion routine shared by live-value resolution and
// default pre-validation, so the two can never disagree.
func Coerce(kind Kind, raw string) (any, error) {
	switch kind {
	case KindString:
		return raw, nil

	case KindNumber:
		n, err := parseNumber(raw)
		if err != nil {
			return nil, fmt.Errorf("expected number, got %q", raw)
		}
		return n, nil

	case KindBool:
		b, err := parseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("expected boolean, got %q: must be one of %s", raw, boolTokens)
		}
		return b, nil

	case KindJSON:
		var v any
		if err := json.Unmarshal([]byte(raw), &v); err != nil {
			return nil, fmt.Errorf("expected json, got %q", raw)
		}
		return v, nil

	case KindURL:
		u, err := url.ParseRequestURI(raw)
		if err != nil || u.Scheme == "" {
			return nil, fmt.Errorf("expected url, got %q", raw)
		}
		// Validate, don't normalize: keep the original string.
		return raw, nil

	case KindEmail:
		trimmed := strings.TrimSpace(raw)
		if !emailPattern.MatchString(trimmed) {
			return nil, fmt.Errorf("expected email, got %q", raw)
		}
		return trimmed, nil

	default:
		return nil, fmt.Errorf("cannot coerce kind %q", kind)
	}
}

// FormatValue renders a typed value the way it would be written in an env
// file. Whole numbers drop the decimal point; nil renders empty.
func FormatValue(v any) string {
	switch n := v.(type) {
	case nil:
		return ""
	case float64:
		if n == float64(int64(n)) {
			return strconv.FormatInt(int64(n), 10)
		}
		return strconv.FormatFloat(n, 'g', -1, 64)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// parseNumber parses a numeric literal, tolerating surrounding whitespace.
// Non-finite results (NaN, Inf) are rejected.
func parseNumber(raw string) (float64, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, fmt.Errorf("empty number")
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("not finite: %s", s)
	}
	return f, nil
}

// parseBool matches the accepted boolean tokens case-insensitively.
func parseBool(raw string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "true", "1", "yes", "y", "on":
		return true, nil
	case "false", "0", "no", "n", "off":
		return false, nil
	default:
		return false, fmt.Errorf("unrecognized boolean %q", raw)
	}
}

// Package validation resolves raw environment values against a schema and
// aggregates every failure into a single ordered report. Expected
// validation failures are values, not panics: a failing run returns a
// *Failure carrying one Issue per problem, in schema declaration order.
package validation

import (
	"fmt"
	"strings"

	"github.com/envguard/envguard/core/schema"
)

// IssueKind classifies a reported problem.
type IssueKind string

const (
	// IssueMissing means the key was absent or empty with no default and
	// not optional.
	IssueMissing IssueKind = "missing"

	// IssueInvalid means the value failed its type, membership or pattern
	// check, or the key's own declaration is malformed.
	IssueInvalid IssueKind = "invalid"
)

// Issue is one reported problem tied to a specific key.
type Issue struct {
	Key     string    `json:"key"`
	Kind    IssueKind `json:"kind"`
	Message string    `json:"message"`
}

func (i Issue) Error() string {
	return fmt.Sprintf("%s: %s", i.Key, i.Message)
}

// Failure aggregates every issue found in one run. It implements error so
// callers can return it directly, but the issue list is the real payload.
type Failure struct {
	Issues []Issue
}

func (f *Failure) Error() string {
	msgs := make([]string, 0, len(f.Issues))
	for _, i := range f.Issues {
		msgs = append(msgs, "  - "+i.Error())
	}
	return "ENV validation failed:\n" + strings.Join(msgs, "\n")
}

// Run validates a raw-env mapping against a schema.
//
// On success it returns one entry per declared key: the coerced live value,
// the declared default, or nil for an optional key with no value. On
// failure it returns a *Failure with the full ordered issue list and no
// values; failed runs never expose partial output.
//
// A raw value that is absent or the empty string counts as missing, so an
// unset shell variable and a present-but-blank env file entry behave the
// same.
func Run(sch *schema.Schema, env map[string]string) (map[string]any, error) {
	values := make(map[string]any, sch.Len())
	var issues []Issue

	for _, key := range sch.Keys() {
		decl, _ := sch.Get(key)

		spec, err := schema.Normalize(decl)
		if err != nil {
			// A malformed declaration surfaces as an invalid issue on
			// the same key, keeping one uniform issue stream.
			issues = append(issues, Issue{Key: key, Kind: IssueInvalid, Message: err.Error()})
			continue
		}

		raw, ok := env[key]
		if !ok || raw == "" {
			switch {
			case spec.HasDefault:
				values[key] = spec.Default
			case spec.Optional:
				values[key] = nil
			default:
				issues = append(issues, Issue{Key: key, Kind: IssueMissing, Message: "missing required environment variable"})
			}
			continue
		}

		v, err := resolve(spec, raw)
		if err != nil {
			issues = append(issues, Issue{Key: key, Kind: IssueInvalid, Message: err.Error()})
			continue
		}
		values[key] = v
	}

	if len(issues) > 0 {
		return nil, &Failure{Issues: issues}
	}
	return values, nil
}

// resolve checks a present raw value against its normalized spec.
func resolve(spec schema.Spec, raw string) (any, error) {
	switch spec.Kind {
	case schema.KindEnum:
		if !contains(spec.Values, raw) {
			return nil, fmt.Errorf("invalid value %q: must be one of: %s", raw, strings.Join(spec.Values, ", "))
		}
		return raw, nil

	case schema.KindRegex:
		if !spec.Pattern.MatchString(raw) {
			return nil, fmt.Errorf("value %q does not match %s", raw, spec.Display)
		}
		return raw, nil

	default:
		return schema.Coerce(spec.Kind, raw)
	}
}

func contains(slice []string, s string) bool {
	for _, v := range slice {
		if v == s {
			return true
		}
	}
	return false
}

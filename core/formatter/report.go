package formatter

import (
	"errors"

	"github.com/envguard/envguard/core/schema"
	"github.com/envguard/envguard/core/validation"
)

// Redacted replaces secret values everywhere outside the typed result.
const Redacted = "[redacted]"

// Status classifies one report entry.
type Status string

const (
	// StatusOK means the key resolved to a value, a default, or is
	// optional and absent.
	StatusOK Status = "ok"

	// StatusMissing mirrors validation.IssueMissing.
	StatusMissing Status = "missing"

	// StatusInvalid mirrors validation.IssueInvalid.
	StatusInvalid Status = "invalid"
)

// Entry is the per-key line of a report. Value is already rendered and
// already redacted for secret keys; formatters write it as-is.
type Entry struct {
	Key     string `json:"key"`
	Status  Status `json:"status"`
	Message string `json:"message,omitempty"`
	Value   string `json:"value,omitempty"`
	Secret  bool   `json:"secret,omitempty"`
}

// Report is a validation run prepared for output, one entry per declared
// key in schema order.
type Report struct {
	OK      bool    `json:"ok"`
	Entries []Entry `json:"entries"`
}

// Counts returns the number of entries per status.
func (r *Report) Counts() (ok, missing, invalid int) {
	for _, e := range r.Entries {
		switch e.Status {
		case StatusMissing:
			missing++
		case StatusInvalid:
			invalid++
		default:
			ok++
		}
	}
	return ok, missing, invalid
}

// Issues returns the failing entries in order.
func (r *Report) Issues() []Entry {
	var out []Entry
	for _, e := range r.Entries {
		if e.Status != StatusOK {
			out = append(out, e)
		}
	}
	return out
}

// Build turns a validation outcome into a Report. On failure no values are
// shown, not even for keys that individually passed; on success secret
// values are redacted before any formatter sees them.
func Build(sch *schema.Schema, values map[string]any, runErr error) *Report {
	rep := &Report{OK: runErr == nil}

	byKey := make(map[string]validation.Issue)
	var failure *validation.Failure
	if errors.As(runErr, &failure) {
		for _, issue := range failure.Issues {
			byKey[issue.Key] = issue
		}
	}

	for _, key := range sch.Keys() {
		if issue, failed := byKey[key]; failed {
			rep.Entries = append(rep.Entries, Entry{
				Key:     key,
				Status:  Status(issue.Kind),
				Message: issue.Message,
			})
			continue
		}

		entry := Entry{Key: key, Status: StatusOK}
		if decl, ok := sch.Get(key); ok {
			if spec, err := schema.Normalize(decl); err == nil {
				entry.Secret = spec.Secret
			}
		}
		if rep.OK {
			if v, ok := values[key]; ok && v != nil {
				entry.Value = schema.FormatValue(v)
				if entry.Secret {
					entry.Value = Redacted
				}
			}
		}
		rep.Entries = append(rep.Entries, entry)
	}
	return rep
}

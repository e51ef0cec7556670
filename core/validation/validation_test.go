package validation

import (
	"errors"
	"strings"
	"testing"

	"github.com/envguard/envguard/core/schema"
)

func buildSchema(t *testing.T, pairs ...any) *schema.Schema {
	t.Helper()
	if len(pairs)%2 != 0 {
		t.Fatal("buildSchema needs key/decl pairs")
	}
	sch := schema.New()
	for i := 0; i < len(pairs); i += 2 {
		sch.Add(pairs[i].(string), pairs[i+1])
	}
	return sch
}

func asFailure(t *testing.T, err error) *Failure {
	t.Helper()
	if err == nil {
		t.Fatal("Run should fail")
	}
	var failure *Failure
	if !errors.As(err, &failure) {
		t.Fatalf("error is %T, want *Failure", err)
	}
	return failure
}

func TestRun_Success(t *testing.T) {
	sch := buildSchema(t,
		"PORT", "number",
		"HOST", "string",
		"DEBUG", map[string]any{"type": "boolean", "default": false},
	)
	env := map[string]string{
		"PORT":  "3000",
		"HOST":  "localhost",
		"DEBUG": "yes",
	}

	values, err := Run(sch, env)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if values["PORT"] != float64(3000) {
		t.Errorf("PORT = %v, want 3000", values["PORT"])
	}
	if values["HOST"] != "localhost" {
		t.Errorf("HOST = %v, want localhost", values["HOST"])
	}
	if values["DEBUG"] != true {
		t.Errorf("DEBUG = %v, want true", values["DEBUG"])
	}
}

func TestRun_AggregatesAllIssuesInSchemaOrder(t *testing.T) {
	sch := buildSchema(t,
		"PORT", "number",
		"DB_URL", "url",
	)
	env := map[string]string{
		"PORT":   "abc",
		"DB_URL": "not-a-url",
	}

	_, err := Run(sch, env)
	failure := asFailure(t, err)

	if len(failure.Issues) != 2 {
		t.Fatalf("len(Issues) = %d, want 2", len(failure.Issues))
	}
	if failure.Issues[0].Key != "PORT" || failure.Issues[0].Kind != IssueInvalid {
		t.Errorf("Issues[0] = %+v, want invalid PORT", failure.Issues[0])
	}
	if failure.Issues[1].Key != "DB_URL" || failure.Issues[1].Kind != IssueInvalid {
		t.Errorf("Issues[1] = %+v, want invalid DB_URL", failure.Issues[1])
	}
}

func TestRun_IssueOrderFollowsDeclarationOrder(t *testing.T) {
	sch := buildSchema(t,
		"ZULU", "number",
		"ALPHA", "number",
		"MIKE", "number",
	)

	_, err := Run(sch, map[string]string{})
	failure := asFailure(t, err)

	var keys []string
	for _, issue := range failure.Issues {
		keys = append(keys, issue.Key)
	}
	want := "ZULU,ALPHA,MIKE"
	if got := strings.Join(keys, ","); got != want {
		t.Errorf("issue order = %s, want %s", got, want)
	}
}

func TestRun_MissingRequired(t *testing.T) {
	sch := buildSchema(t, "API_KEY", "string")

	_, err := Run(sch, map[string]string{})
	failure := asFailure(t, err)

	issue := failure.Issues[0]
	if issue.Kind != IssueMissing {
		t.Errorf("Kind = %q, want missing", issue.Kind)
	}
	if !strings.Contains(issue.Message, "missing required environment variable") {
		t.Errorf("Message = %q", issue.Message)
	}
}

func TestRun_EmptyStringEqualsAbsent(t *testing.T) {
	sch := buildSchema(t, "API_KEY", "string")

	_, errAbsent := Run(sch, map[string]string{})
	_, errEmpty := Run(sch, map[string]string{"API_KEY": ""})

	fa := asFailure(t, errAbsent)
	fe := asFailure(t, errEmpty)
	if fa.Issues[0] != fe.Issues[0] {
		t.Errorf("empty and absent differ: %+v vs %+v", fa.Issues[0], fe.Issues[0])
	}
}

func TestRun_DefaultAppliedWhenMissing(t *testing.T) {
	sch := buildSchema(t,
		"NODE_ENV", map[string]any{"type": "enum", "values": []any{"dev", "prod"}, "default": "dev"},
	)

	for _, env := range []map[string]string{{}, {"NODE_ENV": ""}} {
		values, err := Run(sch, env)
		if err != nil {
			t.Fatalf("Run failed: %v", err)
		}
		if values["NODE_ENV"] != "dev" {
			t.Errorf("NODE_ENV = %v, want dev", values["NODE_ENV"])
		}
	}
}

func TestRun_OptionalAbsentIsPresentNil(t *testing.T) {
	sch := buildSchema(t, "DEBUG", "boolean?")

	values, err := Run(sch, map[string]string{"DEBUG": ""})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	v, ok := values["DEBUG"]
	if !ok {
		t.Fatal("DEBUG should be present in the output")
	}
	if v != nil {
		t.Errorf("DEBUG = %v, want nil", v)
	}
}

func TestRun_EnumMembership(t *testing.T) {
	sch := buildSchema(t,
		"MODE", map[string]any{"type": "enum", "values": []any{"dev", "prod"}},
	)

	values, err := Run(sch, map[string]string{"MODE": "prod"})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if values["MODE"] != "prod" {
		t.Errorf("MODE = %v, want prod", values["MODE"])
	}

	// Membership is case-sensitive.
	_, err = Run(sch, map[string]string{"MODE": "PROD"})
	failure := asFailure(t, err)
	issue := failure.Issues[0]
	if issue.Kind != IssueInvalid {
		t.Errorf("Kind = %q, want invalid", issue.Kind)
	}
	if !strings.Contains(issue.Message, `"PROD"`) || !strings.Contains(issue.Message, "dev, prod") {
		t.Errorf("Message = %q, want offending value and allowed set", issue.Message)
	}
}

func TestRun_RegexMatch(t *testing.T) {
	sch := buildSchema(t,
		"SLUG", map[string]any{"type": "regex", "pattern": "^[a-z0-9-]+$", "flags": "i"},
	)

	values, err := Run(sch, map[string]string{"SLUG": "My-Slug-1"})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if values["SLUG"] != "My-Slug-1" {
		t.Errorf("SLUG = %v, want My-Slug-1", values["SLUG"])
	}

	_, err = Run(sch, map[string]string{"SLUG": "bad slug!"})
	failure := asFailure(t, err)
	if !strings.Contains(failure.Issues[0].Message, "/^[a-z0-9-]+$/i") {
		t.Errorf("Message = %q, want display form", failure.Issues[0].Message)
	}
}

func TestRun_MalformedDeclarationBecomesInvalidIssue(t *testing.T) {
	sch := buildSchema(t,
		"X", map[string]any{"type": "enum", "values": []any{"dev", 123}},
		"PORT", "number",
	)

	// The malformed declaration fails regardless of raw input, and the
	// remaining keys are still processed.
	_, err := Run(sch, map[string]string{"X": "dev", "PORT": "nope"})
	failure := asFailure(t, err)

	if len(failure.Issues) != 2 {
		t.Fatalf("len(Issues) = %d, want 2", len(failure.Issues))
	}
	if failure.Issues[0].Key != "X" || failure.Issues[0].Kind != IssueInvalid {
		t.Errorf("Issues[0] = %+v, want invalid X", failure.Issues[0])
	}
	if failure.Issues[1].Key != "PORT" {
		t.Errorf("Issues[1] = %+v, want PORT", failure.Issues[1])
	}
}

func TestRun_FailureExposesNoValues(t *testing.T) {
	sch := buildSchema(t,
		"GOOD", map[string]any{"type": "string", "default": "fine"},
		"BAD", "number",
	)

	values, err := Run(sch, map[string]string{"BAD": "abc"})
	asFailure(t, err)
	if values != nil {
		t.Errorf("values = %v, want nil on failure", values)
	}
}

func TestFailure_ErrorHeader(t *testing.T) {
	f := &Failure{Issues: []Issue{
		{Key: "PORT", Kind: IssueInvalid, Message: `expected number, got "abc"`},
		{Key: "API_KEY", Kind: IssueMissing, Message: "missing required environment variable"},
	}}

	msg := f.Error()
	if !strings.HasPrefix(msg, "ENV validation failed:") {
		t.Errorf("Error() = %q, want ENV validation failed header", msg)
	}
	if !strings.Contains(msg, "PORT") || !strings.Contains(msg, "API_KEY") {
		t.Errorf("Error() = %q, want both keys", msg)
	}
}

func TestRun_DefaultNotRevalidated(t *testing.T) {
	// A default passes through exactly as normalized, including type.
	sch := buildSchema(t,
		"TIMEOUT", map[string]any{"type": "number", "default": "30"},
	)

	values, err := Run(sch, map[string]string{})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if values["TIMEOUT"] != float64(30) {
		t.Errorf("TIMEOUT = %#v, want float64(30)", values["TIMEOUT"])
	}
}

func TestRun_JSONAndEmailValues(t *testing.T) {
	sch := buildSchema(t,
		"FLAGS", "json",
		"CONTACT", "email",
	)
	env := map[string]string{
		"FLAGS":   `["a","b"]`,
		"CONTACT": " ops@example.com ",
	}

	values, err := Run(sch, env)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	flags, ok := values["FLAGS"].([]any)
	if !ok || len(flags) != 2 {
		t.Errorf("FLAGS = %#v, want two-element slice", values["FLAGS"])
	}
	if values["CONTACT"] != "ops@example.com" {
		t.Errorf("CONTACT = %v, want trimmed address", values["CONTACT"])
	}
}

package schema

import (
	"reflect"
	"strings"
	"testing"
)

func TestCoerce_Number(t *testing.T) {
	tests := []struct {
		raw  string
		want float64
		ok   bool
	}{
		{"3000", 3000, true},
		{" 3000 ", 3000, true},
		{"-1.5", -1.5, true},
		{"1e3", 1000, true},
		{"abc", 0, false},
		{"NaN", 0, false},
		{"Inf", 0, false},
		{"-inf", 0, false},
		{"", 0, false},
		{"  ", 0, false},
	}

	for _, tt := range tests {
		v, err := Coerce(KindNumber, tt.raw)
		if tt.ok {
			if err != nil {
				t.Errorf("Coerce(number, %q) failed: %v", tt.raw, err)
				continue
			}
			if v != tt.want {
				t.Errorf("Coerce(number, %q) = %v, want %v", tt.raw, v, tt.want)
			}
			continue
		}
		if err == nil {
			t.Errorf("Coerce(number, %q) should fail", tt.raw)
		} else if !strings.Contains(err.Error(), "expected number") {
			t.Errorf("Coerce(number, %q) error = %q, want expected number", tt.raw, err)
		}
	}
}

func TestCoerce_Boolean(t *testing.T) {
	truthy := []string{"true", "TRUE", "1", "yes", "Y", "on", "On"}
	falsy := []string{"false", "False", "0", "no", "N", "off", "OFF"}

	for _, raw := range truthy {
		v, err := Coerce(KindBool, raw)
		if err != nil || v != true {
			t.Errorf("Coerce(boolean, %q) = %v, %v; want true", raw, v, err)
		}
	}
	for _, raw := range falsy {
		v, err := Coerce(KindBool, raw)
		if err != nil || v != false {
			t.Errorf("Coerce(boolean, %q) = %v, %v; want false", raw, v, err)
		}
	}

	_, err := Coerce(KindBool, "maybe")
	if err == nil {
		t.Fatal("Coerce(boolean, maybe) should fail")
	}
	// The message names every accepted token.
	for _, token := range []string{"true", "false", "1", "0", "yes", "no", "y", "n", "on", "off"} {
		if !strings.Contains(err.Error(), token) {
			t.Errorf("boolean error %q missing token %q", err, token)
		}
	}
}

func TestCoerce_JSON(t *testing.T) {
	v, err := Coerce(KindJSON, `{"a":[1,2]}`)
	if err != nil {
		t.Fatalf("Coerce(json) failed: %v", err)
	}
	want := map[string]any{"a": []any{float64(1), float64(2)}}
	if !reflect.DeepEqual(v, want) {
		t.Errorf("Coerce(json) = %#v, want %#v", v, want)
	}

	if v, err := Coerce(KindJSON, "42"); err != nil || v != float64(42) {
		t.Errorf("Coerce(json, 42) = %v, %v; want 42", v, err)
	}

	if _, err := Coerce(KindJSON, "{nope"); err == nil {
		t.Error("Coerce(json, {nope) should fail")
	}
}

func TestCoerce_URL(t *testing.T) {
	valid := []string{
		"https://example.com",
		"http://localhost:3000/path?q=1",
		"postgres://user:pass@db:5432/app",
	}
	for _, raw := range valid {
		v, err := Coerce(KindURL, raw)
		if err != nil {
			t.Errorf("Coerce(url, %q) failed: %v", raw, err)
			continue
		}
		// Validate, don't normalize: the original string comes back.
		if v != raw {
			t.Errorf("Coerce(url, %q) = %v, want original string", raw, v)
		}
	}

	for _, raw := range []string{"not-a-url", "", "   ", "example.com"} {
		if _, err := Coerce(KindURL, raw); err == nil {
			t.Errorf("Coerce(url, %q) should fail", raw)
		}
	}
}

func TestCoerce_Email(t *testing.T) {
	v, err := Coerce(KindEmail, "  ops@example.com  ")
	if err != nil {
		t.Fatalf("Coerce(email) failed: %v", err)
	}
	if v != "ops@example.com" {
		t.Errorf("Coerce(email) = %v, want trimmed address", v)
	}

	for _, raw := range []string{"nope", "a@b", "a b@c.de", "@x.com", "a@.com"} {
		if _, err := Coerce(KindEmail, raw); err == nil {
			t.Errorf("Coerce(email, %q) should fail", raw)
		}
	}
}

func TestCoerce_String(t *testing.T) {
	v, err := Coerce(KindString, "  keep me  ")
	if err != nil || v != "  keep me  " {
		t.Errorf("Coerce(string) = %v, %v; want identity", v, err)
	}
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		v    any
		want string
	}{
		{nil, ""},
		{float64(3000), "3000"},
		{1.5, "1.5"},
		{true, "true"},
		{"x", "x"},
	}
	for _, tt := range tests {
		if got := FormatValue(tt.v); got != tt.want {
			t.Errorf("FormatValue(%#v) = %q, want %q", tt.v, got, tt.want)
		}
	}
}

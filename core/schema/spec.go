// Package schema defines the declaration model for environment variable
// schemas and normalizes author-facing declarations into canonical specs.
// A declaration is either a shorthand type string ("number", "url?") or an
// object spec carrying a type, optionality, default and metadata. Everything
// downstream of Normalize works on the closed Spec form only.
package schema

import "regexp"

// Kind identifies the value type of a normalized spec.
type Kind string

const (
	// Primitive kinds
	KindString Kind = "string"
	KindNumber Kind = "number"
	KindBool   Kind = "boolean"
	KindJSON   Kind = "json"

	// Semantic kinds (string with validation)
	KindURL   Kind = "url"
	KindEmail Kind = "email"

	// Special kinds
	KindEnum  Kind = "enum"  // Requires Values
	KindRegex Kind = "regex" // Requires Pattern
)

// Spec is the canonical, fully-resolved form of a declaration.
// A Spec with HasDefault set carries a Default that already passed the
// spec's own validation rule; consumers never re-check it.
type Spec struct {
	Kind Kind

	// Optional marks the key as allowed to be absent without a default.
	Optional bool

	// HasDefault distinguishes "no default" from a default that happens
	// to be the zero value.
	HasDefault bool

	// Default is the typed default value. Only meaningful when
	// HasDefault is true.
	Default any

	// Values lists the allowed values for enum kind.
	Values []string

	// Pattern is the compiled matcher for regex kind.
	Pattern *regexp.Regexp

	// Display is the /pattern/flags rendering of a regex kind, used in
	// messages.
	Display string

	// Description documents the key for generated docs and env files.
	Description string

	// Example is a sample value for generated env files.
	Example string

	// Secret marks the value for redaction in external reporting.
	Secret bool
}

// IsPrimitive reports whether the kind is one of the six base types.
func (k Kind) IsPrimitive() bool {
	switch k {
	case KindString, KindNumber, KindBool, KindJSON, KindURL, KindEmail:
		return true
	default:
		return false
	}
}

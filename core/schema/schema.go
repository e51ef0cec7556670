package schema

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Schema is an ordered mapping of key to declaration. Declaration order is
// preserved because issue ordering follows it; a plain Go map would not do.
type Schema struct {
	keys  []string
	decls map[string]any
}

// New creates an empty schema.
func New() *Schema {
	return &Schema{decls: make(map[string]any)}
}

// Add inserts or replaces a declaration. A replaced key keeps its
// original position.
func (s *Schema) Add(key string, decl any) {
	if s.decls == nil {
		s.decls = make(map[string]any)
	}
	if _, exists := s.decls[key]; !exists {
		s.keys = append(s.keys, key)
	}
	s.decls[key] = decl
}

// Keys returns the declared keys in declaration order.
func (s *Schema) Keys() []string {
	out := make([]string, len(s.keys))
	copy(out, s.keys)
	return out
}

// Get returns the declaration for a key.
func (s *Schema) Get(key string) (any, bool) {
	decl, ok := s.decls[key]
	return decl, ok
}

// Len returns the number of declared keys.
func (s *Schema) Len() int {
	return len(s.keys)
}

// UnmarshalYAML decodes a mapping node, keeping key order.
func (s *Schema) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("schema must be a mapping of key to declaration")
	}

	s.keys = nil
	s.decls = make(map[string]any, len(node.Content)/2)

	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode := node.Content[i]
		valNode := node.Content[i+1]

		var key string
		if err := keyNode.Decode(&key); err != nil {
			return fmt.Errorf("schema key at line %d: %w", keyNode.Line, err)
		}
		if _, exists := s.decls[key]; exists {
			return fmt.Errorf("duplicate schema key %q", key)
		}

		var decl any
		if err := valNode.Decode(&decl); err != nil {
			return fmt.Errorf("declaration for %q: %w", key, err)
		}
		s.Add(key, decl)
	}
	return nil
}

// Parse parses a schema from YAML bytes. The document must be a flat
// mapping of key to declaration; anything else is a fatal load error,
// distinct from the per-key issues Normalize reports.
func Parse(data []byte) (*Schema, error) {
	s := New()
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("parse schema: %w", err)
	}
	return s, nil
}

// ParseFile parses a schema from a YAML file.
func ParseFile(path string) (*Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read schema %s: %w", path, err)
	}
	sch, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return sch, nil
}

package emitter

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Manifest declares an application's event vocabulary out of code. It is
// the usual source for a ValidatedEmitter's allow-list:
//
//	events:
//	  - name: buffer.changed
//	    description: Buffer content was modified.
//	  - name: cursor.moved
type Manifest struct {
	Events []EventDecl `yaml:"events"`
}

// EventDecl declares one event type.
type EventDecl struct {
	// Name is the event type. Required and unique within a manifest.
	Name string `yaml:"name"`

	// Description documents what the event means. Optional.
	Description string `yaml:"description,omitempty"`
}

// ParseManifest parses a YAML event manifest. Declarations must have
// non-empty, unique names.
func ParseManifest(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse event manifest: %w", err)
	}

	seen := make(map[string]bool, len(m.Events))
	for _, decl := range m.Events {
		if decl.Name == "" {
			return nil, fmt.Errorf("event manifest: declaration with empty name")
		}
		if seen[decl.Name] {
			return nil, fmt.Errorf("event manifest: duplicate event type %q", decl.Name)
		}
		seen[decl.Name] = true
	}
	return &m, nil
}

// Types returns the declared event types in declaration order.
func (m *Manifest) Types() []EventType {
	types := make([]EventType, 0, len(m.Events))
	for _, decl := range m.Events {
		types = append(types, EventType(decl.Name))
	}
	return types
}

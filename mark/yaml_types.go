package mark

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Def is one mark definition as written in a definition file.
type Def struct {
	Name   string `yaml:"name"`
	Kind   string `yaml:"kind,omitempty"`
	Reason string `yaml:"reason,omitempty"`
}

// DefArray is a list of mark definitions.
type DefArray []Def

// File is the top-level structure of a mark definition file.
type File struct {
	Version string   `yaml:"version,omitempty"`
	Marks   DefArray `yaml:"marks"`
}

// UnmarshalYAML implements custom YAML unmarshaling for DefArray.
// Accepts per entry:
//   - String shorthand: "slow" (custom mark named slow)
//   - Full object: {name: flaky, kind: skip, reason: network dependent}
func (d *DefArray) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.SequenceNode {
		return fmt.Errorf("expected array of mark definitions, got %v", node.Kind)
	}

	defs := make([]Def, 0, len(node.Content))

	for _, item := range node.Content {
		switch item.Kind {
		case yaml.ScalarNode:
			// String item: "slow"
			var str string

			err := item.Decode(&str)
			if err != nil {
				return err
			}

			defs = append(defs, Def{Name: str})

		case yaml.MappingNode:
			// Full object item
			var def Def

			err := item.Decode(&def)
			if err != nil {
				return err
			}

			defs = append(defs, def)

		default:
			return fmt.Errorf("expected string or map in marks array, got %v", item.Kind)
		}
	}

	*d = defs

	return nil
}

// MarshalYAML implements custom YAML marshaling for DefArray.
// Custom marks without a reason collapse back to the string shorthand.
func (d DefArray) MarshalYAML() (any, error) {
	result := make([]any, len(d))

	for i, def := range d {
		if (def.Kind == "" || def.Kind == "custom") && def.Reason == "" {
			result[i] = def.Name
		} else {
			result[i] = def
		}
	}

	return result, nil
}

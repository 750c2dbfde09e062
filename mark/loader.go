package mark

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFile loads and parses a YAML mark definition file from the given path.
func LoadFile(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read mark file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a Registry of named marks.
func Parse(data []byte) (*Registry, error) {
	var mf File

	err := yaml.Unmarshal(data, &mf)
	if err != nil {
		return nil, fmt.Errorf("failed to parse mark YAML: %w", err)
	}

	applyDefaults(&mf)

	registry := NewRegistry()
	for _, def := range mf.Marks {
		if def.Name == "" {
			return nil, errors.New("mark definition has no name")
		}

		kind, err := ParseKind(def.Kind)
		if err != nil {
			return nil, fmt.Errorf("mark %q: %w", def.Name, err)
		}

		registry.put(Mark{Kind: kind, Name: def.Name, Reason: def.Reason})
	}

	return registry, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(mf *File) {
	if mf.Version == "" {
		mf.Version = "1"
	}

	for i := range mf.Marks {
		d := &mf.Marks[i]
		if d.Kind == "" {
			d.Kind = "custom"
		}
	}
}

// Marshal serializes a File to YAML. Output is Parse-compatible, so a
// definition file can be rewritten and loaded again; custom marks
// without a reason collapse back to the string shorthand.
func Marshal(mf *File) ([]byte, error) {
	return yaml.Marshal(mf)
}

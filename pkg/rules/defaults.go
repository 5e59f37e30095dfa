package rules

import (
	_ "embed"
	"fmt"

	"sigs.k8s.io/yaml"
)

//go:embed defaults.yaml
var defaultRules []byte

// entrySpec is the wire form of a rule entry in a rule-table YAML asset.
type entrySpec struct {
	Kind        string   `json:"kind"`
	Aliases     []string `json:"aliases,omitempty"`
	Required    []string `json:"required,omitempty"`
	Recommended []string `json:"recommended,omitempty"`
}

// LoadTable builds a Table from YAML rule definitions, validating every field
// path and name as it registers entries. Adding a resource kind is a table
// insertion, not new code.
func LoadTable(data []byte) (*Table, error) {
	var specs []entrySpec
	if err := yaml.Unmarshal(data, &specs); err != nil {
		return nil, fmt.Errorf("parsing rule table: %w", err)
	}

	table := NewTable()
	for _, spec := range specs {
		entry := RuleEntry{Kind: spec.Kind, Aliases: spec.Aliases}
		var err error
		if entry.Required, err = parsePaths(spec.Required); err != nil {
			return nil, fmt.Errorf("rule entry %s: %w", spec.Kind, err)
		}
		if entry.Recommended, err = parsePaths(spec.Recommended); err != nil {
			return nil, fmt.Errorf("rule entry %s: %w", spec.Kind, err)
		}
		if err := table.Register(entry); err != nil {
			return nil, err
		}
	}
	return table, nil
}

// DefaultTable returns the built-in rule table covering Pod, Deployment,
// Service, Ingress, PersistentVolume, PersistentVolumeClaim, StatefulSet,
// DaemonSet and StorageClass, with their kubectl short names as aliases.
func DefaultTable() (*Table, error) {
	return LoadTable(defaultRules)
}

func parsePaths(raw []string) ([]FieldPath, error) {
	paths := make([]FieldPath, 0, len(raw))
	for _, s := range raw {
		p, err := ParsePath(s)
		if err != nil {
			return nil, err
		}
		paths = append(paths, p)
	}
	return paths, nil
}

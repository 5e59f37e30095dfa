// Package rules defines the per-kind required/recommended field sets the
// validator checks, and the table that maps kind names and aliases to them.
package rules

import (
	"fmt"
	"strings"
)

// RuleEntry holds the field sets for one Kubernetes resource kind. Kind is the
// canonical name used in messages; Aliases are kubectl-style short names.
type RuleEntry struct {
	Kind        string
	Aliases     []string
	Required    []FieldPath
	Recommended []FieldPath
}

// DuplicateNameError reports a kind or alias registered twice. The table is
// process-wide configuration, so a collision is a startup failure rather than
// a validated input.
type DuplicateNameError struct {
	Name string
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("duplicate resource kind or alias %q in rule table", e.Name)
}

// Table maps resource kind names and aliases to their rule entries. Lookup is
// case-insensitive. Construct once at startup; read-only afterwards.
type Table struct {
	entries []*RuleEntry
	byKind  map[string]*RuleEntry
	byAlias map[string]*RuleEntry
}

func NewTable() *Table {
	return &Table{
		byKind:  make(map[string]*RuleEntry),
		byAlias: make(map[string]*RuleEntry),
	}
}

// Register adds an entry, failing with *DuplicateNameError when the kind or
// any alias collides with a name already in the table.
func (t *Table) Register(entry RuleEntry) error {
	kind := strings.ToLower(entry.Kind)
	if kind == "" {
		return fmt.Errorf("rule entry has no kind")
	}
	if t.lookup(kind) != nil {
		return &DuplicateNameError{Name: entry.Kind}
	}
	for _, alias := range entry.Aliases {
		if t.lookup(strings.ToLower(alias)) != nil {
			return &DuplicateNameError{Name: alias}
		}
	}

	e := entry
	t.entries = append(t.entries, &e)
	t.byKind[kind] = &e
	for _, alias := range entry.Aliases {
		t.byAlias[strings.ToLower(alias)] = &e
	}
	return nil
}

// Resolve looks a kind name or alias up case-insensitively, trying exact kind
// names before aliases.
func (t *Table) Resolve(name string) (*RuleEntry, bool) {
	e := t.lookup(strings.ToLower(name))
	return e, e != nil
}

func (t *Table) lookup(lower string) *RuleEntry {
	if e, ok := t.byKind[lower]; ok {
		return e
	}
	if e, ok := t.byAlias[lower]; ok {
		return e
	}
	return nil
}

// Kinds returns the canonical kind names in registration order.
func (t *Table) Kinds() []string {
	kinds := make([]string, len(t.entries))
	for i, e := range t.entries {
		kinds[i] = e.Kind
	}
	return kinds
}

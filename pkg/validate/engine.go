package validate

import (
	"errors"
	"fmt"

	"github.com/Preetu-Sharma/k8s-yaml-validator/pkg/manifest"
	"github.com/Preetu-Sharma/k8s-yaml-validator/pkg/rules"
)

// SelectorAll makes the engine infer each document's kind from its own kind
// field instead of a user-supplied one. It is never a rule-table entry.
const SelectorAll = "all"

// Engine checks documents against a read-only rule table. It holds no state
// between calls; checking the same document twice yields identical findings.
type Engine struct {
	table *rules.Table
}

func NewEngine(table *rules.Table) *Engine {
	return &Engine{table: table}
}

// Run checks every document in stream order and returns the concatenated
// findings. Each document is independent; a parse failure or unknown kind in
// one never stops the others.
func (e *Engine) Run(docs []manifest.Document, selector string) []Finding {
	var findings []Finding
	for _, doc := range docs {
		findings = append(findings, e.Check(doc, selector)...)
	}
	return findings
}

// Check produces the ordered findings for one document. Recommended-field
// warnings come first, then required-field errors, then a single success
// finding when no required field is missing. Warnings never block the
// success finding.
func (e *Engine) Check(doc manifest.Document, selector string) []Finding {
	if doc.ParseErr != nil {
		cause := doc.ParseErr
		var perr *manifest.ParseError
		if errors.As(doc.ParseErr, &perr) {
			cause = perr.Err
		}
		return []Finding{{
			SourceFile: doc.SourceFile,
			DocIndex:   doc.Index,
			Severity:   SeverityError,
			Message:    fmt.Sprintf("YAML parse error: %v", cause),
		}}
	}

	kindName := selector
	if selector == SelectorAll {
		kindName = doc.Kind()
	}
	entry, ok := e.table.Resolve(kindName)
	if !ok {
		msg := fmt.Sprintf("unknown Kubernetes resource kind '%s'", kindName)
		if kindName == "" {
			msg = "document has no 'kind' field; cannot determine resource type"
		}
		return []Finding{{
			SourceFile: doc.SourceFile,
			DocIndex:   doc.Index,
			Kind:       kindName,
			Severity:   SeverityError,
			Message:    msg,
		}}
	}

	var findings []Finding
	for _, path := range entry.Recommended {
		if !exists(doc.Root, path.Segments) {
			findings = append(findings, Finding{
				SourceFile: doc.SourceFile,
				DocIndex:   doc.Index,
				Kind:       entry.Kind,
				Severity:   SeverityWarning,
				Message:    fmt.Sprintf("non-required field '%s' is missing from %s spec.", path.SpecRelative(), entry.Kind),
			})
		}
	}

	missing := 0
	for _, path := range entry.Required {
		if !exists(doc.Root, path.Segments) {
			missing++
			findings = append(findings, Finding{
				SourceFile: doc.SourceFile,
				DocIndex:   doc.Index,
				Kind:       entry.Kind,
				Severity:   SeverityError,
				Message:    fmt.Sprintf("%s spec missing required field %s", entry.Kind, path),
			})
		}
	}
	if missing == 0 {
		findings = append(findings, Finding{
			SourceFile: doc.SourceFile,
			DocIndex:   doc.Index,
			Kind:       entry.Kind,
			Severity:   SeveritySuccess,
			Message:    fmt.Sprintf("K8s validation passed: all required fields in %s spec are present.", entry.Kind),
		})
	}
	return findings
}

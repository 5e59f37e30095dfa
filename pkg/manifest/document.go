// Package manifest loads Kubernetes YAML files into untyped document trees.
package manifest

import "fmt"

// Document is one parsed resource definition within a YAML stream. Index is
// the 1-based position of the document in its source file. When ParseErr is
// non-nil the document failed to parse and Root is nil; the slot is kept so
// that surrounding documents retain their stream positions.
type Document struct {
	SourceFile string
	Index      int
	Root       map[string]interface{}
	ParseErr   error
}

// Kind returns the document's top-level kind field, or "" if absent or not a
// scalar string.
func (d Document) Kind() string {
	k, _ := d.Root["kind"].(string)
	return k
}

// ParseError reports a YAML syntax failure for one document of a stream.
type ParseError struct {
	File string
	Doc  int
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing %s (doc #%d): %v", e.File, e.Doc, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

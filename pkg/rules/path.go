package rules

import (
	"fmt"
	"strings"
)

// Segment is one hop of a FieldPath. Key addresses a mapping entry; when
// AnyElement is set the entry must be a non-empty sequence and the remaining
// segments apply to every element ("every container must have X").
type Segment struct {
	Key        string
	AnyElement bool
}

// FieldPath is a structural address into a document tree, parsed from dotted
// notation such as "spec.template.spec.containers[*].image".
type FieldPath struct {
	Segments []Segment
}

const anyElementSuffix = "[*]"

// ParsePath parses dotted field-path notation. It fails on empty paths and
// empty segments; rule tables are validated with it at load time so malformed
// paths never reach the resolver.
func ParsePath(s string) (FieldPath, error) {
	if strings.TrimSpace(s) == "" {
		return FieldPath{}, fmt.Errorf("empty field path")
	}
	var segs []Segment
	for _, part := range strings.Split(s, ".") {
		seg := Segment{Key: part}
		if strings.HasSuffix(part, anyElementSuffix) {
			seg.Key = strings.TrimSuffix(part, anyElementSuffix)
			seg.AnyElement = true
		}
		if seg.Key == "" {
			return FieldPath{}, fmt.Errorf("field path %q has an empty segment", s)
		}
		segs = append(segs, seg)
	}
	return FieldPath{Segments: segs}, nil
}

// MustParsePath is for fixed paths in tests and table literals.
func MustParsePath(s string) FieldPath {
	p, err := ParsePath(s)
	if err != nil {
		panic(err)
	}
	return p
}

func (p FieldPath) String() string {
	parts := make([]string, len(p.Segments))
	for i, seg := range p.Segments {
		parts[i] = seg.Key
		if seg.AnyElement {
			parts[i] += anyElementSuffix
		}
	}
	return strings.Join(parts, ".")
}

// SpecRelative renders the path the way recommended-field warnings show it:
// with a leading plain "spec" segment stripped, since the message already
// names the kind's spec.
func (p FieldPath) SpecRelative() string {
	if len(p.Segments) > 1 && p.Segments[0].Key == "spec" && !p.Segments[0].AnyElement {
		return FieldPath{Segments: p.Segments[1:]}.String()
	}
	return p.String()
}

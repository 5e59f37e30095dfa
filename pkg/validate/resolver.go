package validate

import "github.com/Preetu-Sharma/k8s-yaml-validator/pkg/rules"

// exists walks the document tree along the path and reports whether it ends
// on a present, non-blank value. An any-element segment requires a non-empty
// sequence whose every element satisfies the remaining path; an empty
// sequence fails the segment. The walk is total: wrong shapes and missing
// keys yield false, never an error.
func exists(node interface{}, segs []rules.Segment) bool {
	if len(segs) == 0 {
		return present(node)
	}
	m, ok := node.(map[string]interface{})
	if !ok {
		return false
	}
	v, ok := m[segs[0].Key]
	if !ok {
		return false
	}
	if segs[0].AnyElement {
		seq, ok := v.([]interface{})
		if !ok || len(seq) == 0 {
			return false
		}
		for _, el := range seq {
			if !exists(el, segs[1:]) {
				return false
			}
		}
		return true
	}
	return exists(v, segs[1:])
}

// present treats nil, empty strings, empty mappings and empty sequences as
// absent: a blank field is not configured. Numeric zero and false stay
// present, so replicas: 0 counts as a configured value.
func present(v interface{}) bool {
	switch t := v.(type) {
	case nil:
		return false
	case string:
		return t != ""
	case map[string]interface{}:
		return len(t) > 0
	case []interface{}:
		return len(t) > 0
	}
	return true
}

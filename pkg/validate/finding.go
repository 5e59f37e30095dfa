// Package validate applies a rule table to parsed manifest documents and
// produces ordered findings. It performs no I/O; rendering is the reporter's
// job.
package validate

// Severity classifies a finding.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Finding is one validation outcome tied to a file, a document index within
// that file's stream, and a message. Immutable once created.
type Finding struct {
	SourceFile string
	DocIndex   int
	Kind       string
	Severity   Severity
	Message    string
}

// HasErrors reports whether any finding has Error severity. It drives the
// process exit code.
func HasErrors(findings []Finding) bool {
	for _, f := range findings {
		if f.Severity == SeverityError {
			return true
		}
	}
	return false
}

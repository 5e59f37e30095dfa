// Package report renders findings as color-coded console lines.
package report

import (
	"fmt"
	"io"

	"github.com/Preetu-Sharma/k8s-yaml-validator/pkg/validate"
	"github.com/fatih/color"
)

var (
	successLine = color.New(color.FgGreen)
	warningLine = color.New(color.FgYellow)
	errorLine   = color.New(color.FgRed)
)

// Reporter writes one line per finding:
//
//	<sourceFile> (doc #<docIndex>): <message>
//
// colored green/yellow/red by severity. It is the only component that writes
// validation output; the engine returns plain data.
type Reporter struct {
	out io.Writer
}

func NewReporter(out io.Writer) *Reporter {
	return &Reporter{out: out}
}

func (r *Reporter) Report(findings []validate.Finding) {
	for _, f := range findings {
		line := fmt.Sprintf("%s (doc #%d): %s", f.SourceFile, f.DocIndex, f.Message)
		switch f.Severity {
		case validate.SeveritySuccess:
			successLine.Fprintln(r.out, line)
		case validate.SeverityWarning:
			warningLine.Fprintln(r.out, line)
		default:
			errorLine.Fprintln(r.out, line)
		}
	}
}

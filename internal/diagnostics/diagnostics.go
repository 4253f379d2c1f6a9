// Package diagnostics formats compiler errors the way a developer reads
// them at a terminal: a colored severity line, the source snippet, and
// an underline under the offending span.
package diagnostics

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"

	"compiler/internal/source"
)

type Severity string

const (
	Info     Severity = "info"
	Warning  Severity = "warning"
	Error    Severity = "error"
	Critical Severity = "critical error"
)

type Phase string

const (
	LexingPhase    Phase = "lexing"
	ParsingPhase   Phase = "parsing"
	ManifestPhase  Phase = "reading manifest"
	ResolvingPhase Phase = "resolving dependencies"
	LoweringPhase  Phase = "lowering"
)

var severityColor = map[Severity]*color.Color{
	Critical: color.New(color.Bold, color.FgRed),
	Error:    color.New(color.FgRed),
	Warning:  color.New(color.FgYellow),
	Info:     color.New(color.FgBlue),
}

// Diagnostic is one reportable problem, carrying enough context to
// print a source snippet without re-reading the file from a caller.
type Diagnostic struct {
	File     string
	Location *source.Location
	Message  string
	Severity Severity
	Phase    Phase
}

type Report []*Diagnostic

func (r Report) HasErrors() bool {
	for _, d := range r {
		if d.Severity == Error || d.Severity == Critical {
			return true
		}
	}
	return false
}

func (r Report) Print(out *os.File) {
	for _, d := range r {
		printOne(out, d)
	}
}

func printOne(out *os.File, d *Diagnostic) {
	c := severityColor[d.Severity]
	if c == nil {
		c = color.New()
	}

	c.Fprintf(out, "[%s while %s]: ", strings.ToUpper(string(d.Severity)), d.Phase)
	c.Fprintln(out, d.Message)

	if d.Location == nil {
		return
	}

	numlen := len(fmt.Sprint(d.Location.Start.Line))
	grey := color.New(color.FgHiBlack)
	grey.Fprintf(out, "%s> [%s:%d:%d]\n", strings.Repeat("-", numlen+2), filepath.ToSlash(d.File), d.Location.Start.Line, d.Location.Start.Column)

	snippet, underline, ok := sourceSnippet(d.File, d.Location, numlen)
	if !ok {
		return
	}
	fmt.Fprint(out, snippet)
	c.Fprintln(out, underline)
}

func sourceSnippet(file string, loc *source.Location, numlen int) (snippet, underline string, ok bool) {
	data, err := os.ReadFile(filepath.FromSlash(file))
	if err != nil {
		return "", "", false
	}
	lines := strings.Split(string(data), "\n")
	if loc.Start.Line < 1 || loc.Start.Line > len(lines) {
		return "", "", false
	}
	line := lines[loc.Start.Line-1]

	gutter := fmt.Sprintf(" %*d | ", numlen, loc.Start.Line)
	snippet = gutter + line + "\n"

	col := loc.Start.Column
	if col < 1 {
		col = 1
	}
	width := loc.End.Column - loc.Start.Column
	if width < 1 {
		width = 1
	}
	underline = strings.Repeat(" ", len(gutter)+col-1) + strings.Repeat("^", width)
	return snippet, underline, true
}

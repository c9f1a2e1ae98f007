// ==============================================================================================
// FILE: interp/diagnostics.go
// ==============================================================================================
// PACKAGE: interp
// PURPOSE: Centralized fatal-error formatting (spec.md §7, §9: "Implementers should
//          centralize diagnostic formatting so test harnesses can reliably intercept it").
//          A Diagnostic carries a Kind from spec.md §7's table and renders with the
//          offending source line followed by a caret under the failing column.
// ==============================================================================================

package interp

import (
	"fmt"
	"strings"
)

// Kind classifies a fatal error per spec.md §7.
type Kind string

const (
	LexicalError    Kind = "LexicalError"
	SyntaxError     Kind = "SyntaxError"
	UndefinedSymbol Kind = "UndefinedSymbol"
	TypeError       Kind = "TypeError"
	DivisionByZero  Kind = "DivisionByZero"
	StackOverflow   Kind = "StackOverflow"
	ResourceLimit   Kind = "ResourceLimit"
)

// Diagnostic is the one error type the interpreter ever produces. All
// errors are fatal (spec.md §7: "Propagation policy. All errors are fatal").
type Diagnostic struct {
	Kind    Kind
	Message string
	Line    int
	Column  int
}

func (d *Diagnostic) Error() string {
	return fmt.Sprintf("%s at line %d:%d: %s", d.Kind, d.Line, d.Column, d.Message)
}

// Render produces the full diagnostic text: the error line, the offending
// source line, and a caret under the failing column (spec.md §4.9 /
// Glossary reference to source line + caret pointing at the failing
// column).
func (d *Diagnostic) Render(source string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s (line %d, column %d)\n", d.Kind, d.Message, d.Line, d.Column)

	lines := strings.Split(source, "\n")
	if d.Line >= 1 && d.Line <= len(lines) {
		srcLine := lines[d.Line-1]
		b.WriteString(srcLine)
		b.WriteByte('\n')
		col := d.Column
		if col < 0 {
			col = 0
		}
		if col > len(srcLine) {
			col = len(srcLine)
		}
		b.WriteString(strings.Repeat(" ", col))
		b.WriteString("^\n")
	}
	return b.String()
}

func newDiagnostic(kind Kind, line, column int, format string, args ...any) *Diagnostic {
	return &Diagnostic{Kind: kind, Message: fmt.Sprintf(format, args...), Line: line, Column: column}
}

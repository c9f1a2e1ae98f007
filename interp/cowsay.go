// ==============================================================================================
// FILE: interp/cowsay.go
// ==============================================================================================
// PACKAGE: interp
// PURPOSE: `cowsay(text)` — the novelty print variant hidden in the original implementation
//          behind an obfuscated byte-array token ("special_call"/"woc"). It is not part of
//          the tested core grammar (spec.md §8 never exercises it), but it is dispatched from
//          the same evalExpression switch as print/first/second (interp.go) rather than
//          hosted as an external collaborator — a dedicated AST node is simpler than a
//          pluggable sink for a single hard-coded primitive with no configurable behavior.
// ==============================================================================================

package interp

import (
	"io"
	"strings"

	"rinha/ast"
	"rinha/value"
)

// cow is the ASCII art the original embeds as a byte array; written out
// literally here since Go source has no obfuscation need for it.
const cow = `    \   ^__^
     \  (oo)\_______
        (__)\       )\/\
            ||----w |
            ||     ||`

func (interp *Interpreter) evalCowsayExpression(ce *ast.CowsayExpression) (value.Value, error) {
	val, err := interp.evalExpression(ce.Value)
	if err != nil {
		return value.Value{}, err
	}
	if val.Kind != value.StringKind {
		return value.Value{}, newDiagnostic(TypeError, ce.Token.Line, ce.Token.Column,
			"cowsay expects a string, got %s", val.Kind)
	}

	dialog := val.Str
	border := strings.Repeat("-", len(dialog))

	var b strings.Builder
	b.WriteByte(' ')
	b.WriteString(strings.Repeat("_", len(dialog)))
	b.WriteByte('\n')
	b.WriteString("< ")
	b.WriteString(dialog)
	b.WriteString(" >\n")
	b.WriteByte(' ')
	b.WriteString(border)
	b.WriteByte('\n')
	b.WriteString(cow)
	b.WriteByte('\n')

	io.WriteString(interp.out, b.String())
	interp.globalCacheEnabled = false

	return value.Str(b.String()), nil
}

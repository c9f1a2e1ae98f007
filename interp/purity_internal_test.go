// ==============================================================================================
// FILE: interp/purity_internal_test.go
// ==============================================================================================
// PURPOSE: White-box tests for the impurity scan's bookkeeping (package interp, not
//          interp_test), since FunctionRecord and its fields are unexported.
// ==============================================================================================

package interp

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"rinha/lexer"
	"rinha/parser"
	"rinha/symtab"
)

func parseAndRun(t *testing.T, src string) *Interpreter {
	t.Helper()
	syms := symtab.New()
	l := lexer.New(src, syms)
	p := parser.New(l, syms)
	prog := p.ParseProgram()
	require.Empty(t, p.Errors())

	var out bytes.Buffer
	it := New(syms, src, &out)
	_, err := it.Run(prog)
	require.NoError(t, err)
	return it
}

func TestObservedVarsCountsDistinctNonLocalSymbols(t *testing.T) {
	// add closes over two outer names (a, b) plus its own parameter x,
	// which must not be counted.
	src := `
let a = 1;
let b = 2;
let add = fn(x) => x + a + b + a;
add(10);
`
	it := parseAndRun(t, src)
	rec := findFunctionByName(t, it, "add")
	require.Equal(t, 2, rec.ObservedVars)
}

func TestObservedVarsIsZeroForASelfContainedFunction(t *testing.T) {
	src := `
let square = fn(x) => x * x;
square(4);
`
	it := parseAndRun(t, src)
	rec := findFunctionByName(t, it, "square")
	require.Equal(t, 0, rec.ObservedVars)
}

// findFunctionByName scans the interpreter's symbol table for name and
// returns its FunctionRecord, failing the test if either lookup misses.
func findFunctionByName(t *testing.T, it *Interpreter, name string) *FunctionRecord {
	t.Helper()
	for sym := 1; sym <= it.symbols.Len(); sym++ {
		if it.symbols.Name(symtab.ID(sym)) == name {
			rec, ok := it.functions.Get(sym)
			require.True(t, ok, "no function record for %q", name)
			return rec
		}
	}
	t.Fatalf("no symbol named %q", name)
	return nil
}

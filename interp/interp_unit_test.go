// ==============================================================================================
// FILE: interp/interp_unit_test.go
// ==============================================================================================
// PURPOSE: Unit tests for individual operator and expression rules.
// ==============================================================================================

package interp_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"rinha/interp"
	"rinha/lexer"
	"rinha/parser"
	"rinha/symtab"
	"rinha/value"
)

// ----------------------------------------------------------------------------
// TEST HELPERS (shared across this package's test files)
// ----------------------------------------------------------------------------

func runSource(t *testing.T, src string) (value.Value, string) {
	t.Helper()
	syms := symtab.New()
	l := lexer.New(src, syms)
	p := parser.New(l, syms)
	prog := p.ParseProgram()
	require.Empty(t, p.Errors(), "parse errors: %v", p.Errors())

	var out bytes.Buffer
	it := interp.New(syms, src, &out)
	result, err := it.Run(prog)
	require.NoError(t, err)
	return result, out.String()
}

func runSourceErr(t *testing.T, src string) error {
	t.Helper()
	syms := symtab.New()
	l := lexer.New(src, syms)
	p := parser.New(l, syms)
	prog := p.ParseProgram()
	require.Empty(t, p.Errors())

	var out bytes.Buffer
	it := interp.New(syms, src, &out)
	_, err := it.Run(prog)
	return err
}

// ----------------------------------------------------------------------------
// UNIT TESTS
// ----------------------------------------------------------------------------

func TestIntegerArithmetic(t *testing.T) {
	cases := []struct {
		src  string
		want int64
	}{
		{"1 + 2", 3},
		{"5 - 8", -3},
		{"3 * 4", 12},
		{"7 / 2", 3},
		{"-7 / 2", -3},
		{"7 % 2", 1},
		{"-7 % 2", -1},
		{"-5", -5},
	}
	for _, c := range cases {
		v, _ := runSource(t, c.src)
		require.Equal(t, value.IntegerKind, v.Kind, c.src)
		require.Equal(t, c.want, v.Int, c.src)
	}
}

func TestDivisionByZeroIsFatal(t *testing.T) {
	err := runSourceErr(t, "1 / 0")
	require.Error(t, err)
	diag, ok := err.(*interp.Diagnostic)
	require.True(t, ok)
	require.Equal(t, interp.DivisionByZero, diag.Kind)
}

func TestModuloByZeroIsFatal(t *testing.T) {
	err := runSourceErr(t, "1 % 0")
	diag, ok := err.(*interp.Diagnostic)
	require.True(t, ok)
	require.Equal(t, interp.DivisionByZero, diag.Kind)
}

func TestStringConcatenationWithNonString(t *testing.T) {
	v, _ := runSource(t, `"n = " + 5 + " ok=" + true`)
	require.Equal(t, value.StringKind, v.Kind)
	require.Equal(t, "n = 5 ok=true", v.Str)
}

func TestComparisonOperators(t *testing.T) {
	v, _ := runSource(t, "1 < 2")
	require.True(t, v.Bool)
	v, _ = runSource(t, "2 <= 2")
	require.True(t, v.Bool)
	v, _ = runSource(t, "3 > 2")
	require.True(t, v.Bool)
	v, _ = runSource(t, "2 >= 3")
	require.False(t, v.Bool)
}

func TestEqualityAcrossMixedTypesIsFatal(t *testing.T) {
	err := runSourceErr(t, `1 == "1"`)
	diag, ok := err.(*interp.Diagnostic)
	require.True(t, ok)
	require.Equal(t, interp.TypeError, diag.Kind)
}

func TestTupleEquality(t *testing.T) {
	v, _ := runSource(t, "(1, 2) == (1, 2)")
	require.True(t, v.Bool)
	v, _ = runSource(t, "(1, 2) == (1, 3)")
	require.False(t, v.Bool)
}

func TestLogicalOperatorsDoNotShortCircuit(t *testing.T) {
	// false && <side-effecting right> still evaluates the right side
	// (spec.md §4.3: "`&&` and `||` evaluate both sides (no
	// short-circuit)"). A short-circuiting engine would never print here.
	_, out := runSource(t, `let noisy = fn() => { print("evaluated"); true }; false && noisy();`)
	require.Contains(t, out, "evaluated")
}

func TestAndOr(t *testing.T) {
	v, _ := runSource(t, "true && false")
	require.False(t, v.Bool)
	v, _ = runSource(t, "true || false")
	require.True(t, v.Bool)
}

func TestUndefinedSymbolIsFatal(t *testing.T) {
	err := runSourceErr(t, "unknown")
	diag, ok := err.(*interp.Diagnostic)
	require.True(t, ok)
	require.Equal(t, interp.UndefinedSymbol, diag.Kind)
}

func TestAssignmentReturnsValue(t *testing.T) {
	v, _ := runSource(t, "let x = 0; (x = 41 + 1)")
	require.Equal(t, int64(42), v.Int)
}

func TestFirstAndSecondRoundTrip(t *testing.T) {
	v, _ := runSource(t, "first((10, 20))")
	require.Equal(t, int64(10), v.Int)
	v, _ = runSource(t, "second((10, 20))")
	require.Equal(t, int64(20), v.Int)
}

func TestFirstOnNonTupleIsFatal(t *testing.T) {
	err := runSourceErr(t, "first(5)")
	diag, ok := err.(*interp.Diagnostic)
	require.True(t, ok)
	require.Equal(t, interp.TypeError, diag.Kind)
}

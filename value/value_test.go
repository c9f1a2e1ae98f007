package value_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"rinha/value"
)

func TestZeroValueIsUndefined(t *testing.T) {
	var v value.Value
	require.True(t, v.IsUndefined())
}

func TestRenderPrimitives(t *testing.T) {
	require.Equal(t, "42", value.Int(42).Render())
	require.Equal(t, "true", value.Bool(true).Render())
	require.Equal(t, "false", value.Bool(false).Render())
	require.Equal(t, "hi", value.Str("hi").Render())
	require.Equal(t, "<#closure>", value.Function(0).Render())
}

func TestRenderTupleIsRecursive(t *testing.T) {
	inner := value.Tuple(value.Int(1), value.Int(2))
	outer := value.Tuple(inner, value.Bool(false))
	require.Equal(t, "((1, 2), false)", outer.Render())
}

func TestStringTruncatesAtBound(t *testing.T) {
	long := strings.Repeat("a", value.MaxStringLen+50)
	v := value.Str(long)
	require.Len(t, v.Str, value.MaxStringLen)
}

func TestCopyingAValueCopiesItsContents(t *testing.T) {
	original := value.Str("hello")
	copied := original
	copied.Str = "mutated"

	require.Equal(t, "hello", original.Str)
	require.Equal(t, "mutated", copied.Str)
}

func TestEqualComparesTuplesComponentwise(t *testing.T) {
	a := value.Tuple(value.Int(1), value.Str("x"))
	b := value.Tuple(value.Int(1), value.Str("x"))
	c := value.Tuple(value.Int(1), value.Str("y"))

	require.True(t, value.SameType(a, b))
	require.True(t, value.Equal(a, b))
	require.True(t, value.SameType(a, c))
	require.False(t, value.Equal(a, c))
}

func TestSameTypeRejectsMixedKinds(t *testing.T) {
	require.False(t, value.SameType(value.Int(1), value.Bool(true)))
}

func TestUndefinedEqualsUndefined(t *testing.T) {
	require.True(t, value.Equal(value.Value{}, value.Value{}))
}

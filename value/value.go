// ==============================================================================================
// FILE: value/value.go
// ==============================================================================================
// PACKAGE: value
// PURPOSE: The runtime value model of spec.md §3: a small discriminated union with
//          value-copy semantics. Unlike the teacher's object.Object (a heap-allocated
//          interface implementation per kind), Value here is a plain, fixed-size struct —
//          assigning one Value to another genuinely copies its contents, which is the
//          property spec.md §3 calls out explicitly ("copying a value copies its
//          contents"). This mirrors the original rinha_value_t tagged union more closely
//          than it mirrors the teacher's object.Object, because the spec's invariant
//          requires it.
// ==============================================================================================

package value

import (
	"fmt"
	"strings"
)

// Kind tags which field of a Value is meaningful.
type Kind uint8

const (
	// Undefined is the zero Kind: "slot not set" (spec.md §3). An empty
	// block, and an `if` whose condition is false and that has no else
	// branch, also evaluate to it.
	Undefined Kind = iota
	IntegerKind
	BooleanKind
	StringKind
	FunctionKind
	TupleKind
)

func (k Kind) String() string {
	switch k {
	case IntegerKind:
		return "Integer"
	case BooleanKind:
		return "Boolean"
	case StringKind:
		return "String"
	case FunctionKind:
		return "Function"
	case TupleKind:
		return "Tuple"
	default:
		return "Undefined"
	}
}

// FunctionID is an index into a FunctionTable (owned by package interp).
// value stays independent of interp so the value model has no knowledge of
// call frames or closures — it only carries the id.
type FunctionID int

// Pair is a tuple's two components. A Value holds it by pointer, so copying
// the Value shares the Pair; nothing modifies a Pair after Tuple builds it,
// so the shared Pair reads the same as a copy would.
type Pair struct {
	First  Value
	Second Value
}

// Value is the tagged union of spec.md §3. Only the field matching Kind is
// meaningful; the rest are zero.
type Value struct {
	Kind Kind
	Int  int64
	Bool bool
	Str  string
	Fn   FunctionID
	Tup  *Pair
}

// Int wraps an integer.
func Int(n int64) Value { return Value{Kind: IntegerKind, Int: n} }

// Bool wraps a boolean.
func Bool(b bool) Value { return Value{Kind: BooleanKind, Bool: b} }

// Str wraps a string, bounding it per MaxStringLen (spec.md §3, §4.1:
// "String size is bounded"; §8: "concatenation that would exceed it
// truncates without erroring").
func Str(s string) Value { return Value{Kind: StringKind, Str: Truncate(s)} }

// Function wraps a reference to a function record.
func Function(id FunctionID) Value { return Value{Kind: FunctionKind, Fn: id} }

// Tuple wraps a pair of values.
func Tuple(first, second Value) Value {
	return Value{Kind: TupleKind, Tup: &Pair{First: first, Second: second}}
}

// MaxStringLen is the bound of spec.md §3: "String(bounded text, up to
// 1024 bytes)".
const MaxStringLen = 1024

// Truncate clips s to MaxStringLen bytes without erroring, per spec.md §8's
// "String length cap" law.
func Truncate(s string) string {
	if len(s) <= MaxStringLen {
		return s
	}
	return s[:MaxStringLen]
}

// IsUndefined reports whether v is the reserved "slot not set" sentinel.
func (v Value) IsUndefined() bool { return v.Kind == Undefined }

// Render formats v the way spec.md §6 requires print output to look:
// integers as decimal, booleans as true/false, strings raw, functions as the
// literal "<#closure>", tuples as "(first, second)" recursively.
func (v Value) Render() string {
	switch v.Kind {
	case IntegerKind:
		return fmt.Sprintf("%d", v.Int)
	case BooleanKind:
		if v.Bool {
			return "true"
		}
		return "false"
	case StringKind:
		return v.Str
	case FunctionKind:
		return "<#closure>"
	case TupleKind:
		var b strings.Builder
		b.WriteByte('(')
		b.WriteString(v.Tup.First.Render())
		b.WriteString(", ")
		b.WriteString(v.Tup.Second.Render())
		b.WriteByte(')')
		return b.String()
	default:
		return "<#undefined>"
	}
}

// SameType reports whether a and b carry the same Kind, the precondition
// spec.md §4.3 requires before `==`/`!=` may compare two values ("mixed
// types fail fatally with comparison of different types").
func SameType(a, b Value) bool { return a.Kind == b.Kind }

// Equal compares a and b assuming SameType(a, b) already holds. Tuples
// compare componentwise (spec.md §4.3).
func Equal(a, b Value) bool {
	switch a.Kind {
	case IntegerKind:
		return a.Int == b.Int
	case BooleanKind:
		return a.Bool == b.Bool
	case StringKind:
		return a.Str == b.Str
	case FunctionKind:
		return a.Fn == b.Fn
	case TupleKind:
		return Equal(a.Tup.First, b.Tup.First) && Equal(a.Tup.Second, b.Tup.Second)
	default:
		return true // Undefined == Undefined
	}
}

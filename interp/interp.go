// ==============================================================================================
// FILE: interp/interp.go
// ==============================================================================================
// PACKAGE: interp
// PURPOSE: The tree-walking evaluator (spec.md §4.3, §9's AST-based alternative to
//          direct-on-tokens evaluation) and the Interpreter type that owns everything a run
//          needs — symbol table, function table, frame stack, and the global memoization
//          kill-switch — so that, per spec.md §9's design note, two Interpreters can
//          coexist instead of sharing process-wide state the way the original does.
// ==============================================================================================

package interp

import (
	"io"

	"rinha/ast"
	"rinha/symtab"
	"rinha/token"
	"rinha/value"
)

// Interpreter is all the state one program run needs.
type Interpreter struct {
	symbols   *symtab.Table
	functions *FunctionTable
	frames    *FrameStack
	source    string
	out       io.Writer

	// globalCacheEnabled is the process-wide kill-switch of spec.md §4.5:
	// cleared the first time `print` executes anywhere in the run, and
	// never re-raised (spec.md §9).
	globalCacheEnabled bool
}

// New builds an Interpreter over a program whose identifiers were interned
// into symbols, writing `print` output to out. source is kept only for
// Diagnostic.Render's line/caret rendering.
func New(symbols *symtab.Table, source string, out io.Writer) *Interpreter {
	// Symbol ids are minted 1-based (symtab reserves 0 for "no symbol"), so
	// after Len() ids have been interned the highest id in use equals
	// Len() itself — tables need room for indices 0..Len() inclusive.
	n := symbols.Len() + 1
	return &Interpreter{
		symbols:            symbols,
		functions:          NewFunctionTable(n),
		frames:             NewFrameStack(n),
		source:             source,
		out:                out,
		globalCacheEnabled: true,
	}
}

// Source returns the program text a Diagnostic was raised against, for
// callers that render it themselves.
func (interp *Interpreter) Source() string { return interp.source }

// Run evaluates every top-level statement in order and returns the value of
// the last one (spec.md §6: "Returns the value of the last top-level
// expression").
func (interp *Interpreter) Run(prog *ast.Program) (value.Value, error) {
	var result value.Value
	for _, stmt := range prog.Statements {
		v, err := interp.evalStatement(stmt)
		if err != nil {
			return value.Value{}, err
		}
		result = v
	}
	return result, nil
}

func (interp *Interpreter) evalStatement(stmt ast.Statement) (value.Value, error) {
	switch s := stmt.(type) {
	case *ast.LetStatement:
		val, err := interp.evalExpression(s.Value)
		if err != nil {
			return value.Value{}, err
		}
		interp.frames.Current().Set(int(s.Name.Symbol), val)
		return val, nil
	case *ast.ExpressionStatement:
		return interp.evalExpression(s.Expression)
	case *ast.Block:
		return interp.evalBlock(s)
	}
	return value.Value{}, nil
}

// evalBlock evaluates a statement list, returning the last statement's
// value (Undefined for an empty block).
func (interp *Interpreter) evalBlock(block *ast.Block) (value.Value, error) {
	var result value.Value
	for _, stmt := range block.Statements {
		v, err := interp.evalStatement(stmt)
		if err != nil {
			return value.Value{}, err
		}
		result = v
	}
	return result, nil
}

func (interp *Interpreter) evalExpression(expr ast.Expression) (value.Value, error) {
	switch e := expr.(type) {
	case *ast.IntegerLiteral:
		return value.Int(e.Value), nil
	case *ast.StringLiteral:
		return value.Str(e.Value), nil
	case *ast.BooleanLiteral:
		return value.Bool(e.Value), nil
	case *ast.Identifier:
		return interp.evalIdentifier(e)
	case *ast.TupleLiteral:
		return interp.evalTupleLiteral(e)
	case *ast.PrefixExpression:
		return interp.evalPrefixExpression(e)
	case *ast.InfixExpression:
		return interp.evalInfixExpression(e)
	case *ast.AssignmentExpression:
		return interp.evalAssignmentExpression(e)
	case *ast.IfExpression:
		return interp.evalIfExpression(e)
	case *ast.PrintExpression:
		return interp.evalPrintExpression(e)
	case *ast.FirstExpression:
		return interp.evalProjection(e.Value, e.Token, true)
	case *ast.SecondExpression:
		return interp.evalProjection(e.Value, e.Token, false)
	case *ast.FunctionLiteral:
		return interp.evalFunctionLiteral(e)
	case *ast.CallExpression:
		return interp.evalCallExpression(e)
	case *ast.CowsayExpression:
		return interp.evalCowsayExpression(e)
	case *ast.Block:
		return interp.evalBlock(e)
	}
	return value.Value{}, nil
}

func (interp *Interpreter) evalIdentifier(id *ast.Identifier) (value.Value, error) {
	if v, ok := interp.frames.Resolve(int(id.Symbol)); ok {
		return v, nil
	}
	return value.Value{}, newDiagnostic(UndefinedSymbol, id.Token.Line, id.Token.Column,
		"undefined symbol %q", id.Value)
}

func (interp *Interpreter) evalTupleLiteral(tl *ast.TupleLiteral) (value.Value, error) {
	first, err := interp.evalExpression(tl.First)
	if err != nil {
		return value.Value{}, err
	}
	second, err := interp.evalExpression(tl.Second)
	if err != nil {
		return value.Value{}, err
	}
	return value.Tuple(first, second), nil
}

func (interp *Interpreter) evalPrefixExpression(pe *ast.PrefixExpression) (value.Value, error) {
	right, err := interp.evalExpression(pe.Right)
	if err != nil {
		return value.Value{}, err
	}
	if pe.Operator != "-" {
		return value.Value{}, newDiagnostic(SyntaxError, pe.Token.Line, pe.Token.Column,
			"unknown prefix operator %q", pe.Operator)
	}
	if right.Kind != value.IntegerKind {
		return value.Value{}, newDiagnostic(TypeError, pe.Token.Line, pe.Token.Column,
			"unary - requires an integer, got %s", right.Kind)
	}
	return value.Int(-right.Int), nil
}

func (interp *Interpreter) evalAssignmentExpression(ae *ast.AssignmentExpression) (value.Value, error) {
	val, err := interp.evalExpression(ae.Value)
	if err != nil {
		return value.Value{}, err
	}
	interp.frames.Assign(int(ae.Name.Symbol), val)
	return val, nil
}

func (interp *Interpreter) evalIfExpression(ie *ast.IfExpression) (value.Value, error) {
	cond, err := interp.evalExpression(ie.Condition)
	if err != nil {
		return value.Value{}, err
	}
	if cond.Kind != value.BooleanKind {
		return value.Value{}, newDiagnostic(TypeError, ie.Token.Line, ie.Token.Column,
			"if condition must be boolean, got %s", cond.Kind)
	}
	if cond.Bool {
		return interp.evalBlock(ie.Consequence)
	}
	if ie.Alternative != nil {
		return interp.evalBlock(ie.Alternative)
	}
	return value.Value{}, nil
}

func (interp *Interpreter) evalPrintExpression(pe *ast.PrintExpression) (value.Value, error) {
	val, err := interp.evalExpression(pe.Value)
	if err != nil {
		return value.Value{}, err
	}
	io.WriteString(interp.out, val.Render())
	io.WriteString(interp.out, "\n")
	// spec.md §4.5: the global cache kill-switch clears the first time
	// print executes, and never re-raises.
	interp.globalCacheEnabled = false
	return val, nil
}

func (interp *Interpreter) evalProjection(expr ast.Expression, tok token.Token, first bool) (value.Value, error) {
	val, err := interp.evalExpression(expr)
	if err != nil {
		return value.Value{}, err
	}
	if val.Kind != value.TupleKind {
		name := "second"
		if first {
			name = "first"
		}
		return value.Value{}, newDiagnostic(TypeError, tok.Line, tok.Column,
			"%s expects a tuple, got %s", name, val.Kind)
	}
	if first {
		return val.Tup.First, nil
	}
	return val.Tup.Second, nil
}

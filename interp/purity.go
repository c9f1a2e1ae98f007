// ==============================================================================================
// FILE: interp/purity.go
// ==============================================================================================
// PACKAGE: interp
// PURPOSE: The impurity scan of spec.md §4.5: before a function is ever considered for
//          caching, its body is scanned once for a `print` call, an assignment to a
//          non-local variable, or a call into an already-impure function. The result is
//          latched into FunctionRecord.CacheEnabled/CacheChecked so the scan never repeats.
//          CacheEnabled starts optimistically true for the duration of the scan so that a
//          function's own recursive calls to itself — the common case this cache exists
//          for — are not mistaken for "calling an already-impure function": the flag is
//          flipped in place the moment a genuine violation is found, and a self-call
//          observed before that point still reads the optimistic default. The same walk
//          also tallies FunctionRecord.ObservedVars (spec.md §3's "observed variable
//          count"): the number of distinct non-local symbols the body reads or assigns,
//          a cheap structural signal of how much outside state a function's purity
//          verdict actually depends on.
// ==============================================================================================

package interp

import "rinha/ast"

// checkPurity scans rec's body the first time it is about to be considered
// for memoization, setting rec.CacheEnabled and rec.ObservedVars
// accordingly. It is a no-op on subsequent calls (rec.CacheChecked latches
// the result, per spec.md §4.5 and the kill-switch invariant in §9: "either
// flag can be cleared but never re-raised").
func (interp *Interpreter) checkPurity(rec *FunctionRecord) {
	if rec.CacheChecked {
		return
	}
	rec.CacheChecked = true
	rec.CacheEnabled = true

	locals := make(map[int]bool, len(rec.Parameters))
	for _, p := range rec.Parameters {
		locals[p] = true
	}
	collectLocals(rec.Body, locals)

	observed := make(map[int]bool)
	interp.scanBlock(rec.Body, locals, observed, rec)
	rec.ObservedVars = len(observed)
}

// collectLocals walks stmts gathering every symbol a `let` binds directly
// within this function's body, without descending into nested function
// literals (those are separate activations with their own frame).
func collectLocals(block *ast.Block, locals map[int]bool) {
	for _, stmt := range block.Statements {
		collectLocalsStmt(stmt, locals)
	}
}

func collectLocalsStmt(stmt ast.Statement, locals map[int]bool) {
	switch s := stmt.(type) {
	case *ast.LetStatement:
		locals[int(s.Name.Symbol)] = true
		collectLocalsExpr(s.Value, locals)
	case *ast.ExpressionStatement:
		collectLocalsExpr(s.Expression, locals)
	case *ast.Block:
		collectLocals(s, locals)
	}
}

func collectLocalsExpr(expr ast.Expression, locals map[int]bool) {
	switch e := expr.(type) {
	case *ast.IfExpression:
		collectLocalsExpr(e.Condition, locals)
		collectLocals(e.Consequence, locals)
		if e.Alternative != nil {
			collectLocals(e.Alternative, locals)
		}
	case *ast.Block:
		collectLocals(e, locals)
	case *ast.PrintExpression:
		collectLocalsExpr(e.Value, locals)
	case *ast.CowsayExpression:
		collectLocalsExpr(e.Value, locals)
	case *ast.FirstExpression:
		collectLocalsExpr(e.Value, locals)
	case *ast.SecondExpression:
		collectLocalsExpr(e.Value, locals)
	case *ast.PrefixExpression:
		collectLocalsExpr(e.Right, locals)
	case *ast.InfixExpression:
		collectLocalsExpr(e.Left, locals)
		collectLocalsExpr(e.Right, locals)
	case *ast.AssignmentExpression:
		collectLocalsExpr(e.Value, locals)
	case *ast.CallExpression:
		collectLocalsExpr(e.Function, locals)
		for _, a := range e.Arguments {
			collectLocalsExpr(a, locals)
		}
	case *ast.TupleLiteral:
		collectLocalsExpr(e.First, locals)
		collectLocalsExpr(e.Second, locals)
	}
	// Identifier, IntegerLiteral, StringLiteral, BooleanLiteral,
	// FunctionLiteral (nested — its own activation) bind nothing here.
}

// scanBlock and scanExpr mutate rec.CacheEnabled to false in place the
// moment a violation is found; they keep walking afterward (no early
// return) since the scan is a one-time cost and simplicity beats a few
// skipped subtrees. observed accumulates every distinct non-local symbol
// touched along the way, for rec.ObservedVars.

func (interp *Interpreter) scanBlock(block *ast.Block, locals, observed map[int]bool, rec *FunctionRecord) {
	for _, stmt := range block.Statements {
		interp.scanStmt(stmt, locals, observed, rec)
	}
}

func (interp *Interpreter) scanStmt(stmt ast.Statement, locals, observed map[int]bool, rec *FunctionRecord) {
	switch s := stmt.(type) {
	case *ast.LetStatement:
		interp.scanExpr(s.Value, locals, observed, rec)
	case *ast.ExpressionStatement:
		interp.scanExpr(s.Expression, locals, observed, rec)
	case *ast.Block:
		interp.scanBlock(s, locals, observed, rec)
	}
}

func (interp *Interpreter) scanExpr(expr ast.Expression, locals, observed map[int]bool, rec *FunctionRecord) {
	switch e := expr.(type) {
	case *ast.Identifier:
		if sym := int(e.Symbol); !locals[sym] {
			observed[sym] = true
		}
	case *ast.PrintExpression:
		rec.CacheEnabled = false
		interp.scanExpr(e.Value, locals, observed, rec)
	case *ast.CowsayExpression:
		rec.CacheEnabled = false
		interp.scanExpr(e.Value, locals, observed, rec)
	case *ast.IfExpression:
		interp.scanExpr(e.Condition, locals, observed, rec)
		interp.scanBlock(e.Consequence, locals, observed, rec)
		if e.Alternative != nil {
			interp.scanBlock(e.Alternative, locals, observed, rec)
		}
	case *ast.Block:
		interp.scanBlock(e, locals, observed, rec)
	case *ast.FirstExpression:
		interp.scanExpr(e.Value, locals, observed, rec)
	case *ast.SecondExpression:
		interp.scanExpr(e.Value, locals, observed, rec)
	case *ast.PrefixExpression:
		interp.scanExpr(e.Right, locals, observed, rec)
	case *ast.InfixExpression:
		interp.scanExpr(e.Left, locals, observed, rec)
		interp.scanExpr(e.Right, locals, observed, rec)
	case *ast.TupleLiteral:
		interp.scanExpr(e.First, locals, observed, rec)
		interp.scanExpr(e.Second, locals, observed, rec)
	case *ast.AssignmentExpression:
		if sym := int(e.Name.Symbol); !locals[sym] {
			rec.CacheEnabled = false
			observed[sym] = true
		}
		interp.scanExpr(e.Value, locals, observed, rec)
	case *ast.CallExpression:
		interp.scanExpr(e.Function, locals, observed, rec)
		for _, a := range e.Arguments {
			interp.scanExpr(a, locals, observed, rec)
		}
		if ident, ok := e.Function.(*ast.Identifier); ok {
			if callee, ok := interp.functions.Get(int(ident.Symbol)); ok {
				interp.checkPurity(callee)
				if !callee.CacheEnabled {
					rec.CacheEnabled = false
				}
			}
		}
	}
}

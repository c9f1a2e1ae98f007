package ast_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"rinha/ast"
	"rinha/token"
)

func TestProgramTokenLiteralDelegatesToFirstStatement(t *testing.T) {
	prog := &ast.Program{
		Statements: []ast.Statement{
			&ast.LetStatement{Token: token.Token{Literal: "let"}},
		},
	}
	require.Equal(t, "let", prog.TokenLiteral())
}

func TestEmptyProgramTokenLiteralIsEmpty(t *testing.T) {
	require.Equal(t, "", (&ast.Program{}).TokenLiteral())
}

func TestNodesSatisfyInterfaces(t *testing.T) {
	var _ ast.Statement = &ast.LetStatement{}
	var _ ast.Statement = &ast.ExpressionStatement{}
	var _ ast.Statement = &ast.Block{}
	var _ ast.Expression = &ast.Block{}
	var _ ast.Expression = &ast.Identifier{}
	var _ ast.Expression = &ast.IntegerLiteral{}
	var _ ast.Expression = &ast.StringLiteral{}
	var _ ast.Expression = &ast.BooleanLiteral{}
	var _ ast.Expression = &ast.TupleLiteral{}
	var _ ast.Expression = &ast.FunctionLiteral{}
	var _ ast.Expression = &ast.CallExpression{}
	var _ ast.Expression = &ast.PrefixExpression{}
	var _ ast.Expression = &ast.InfixExpression{}
	var _ ast.Expression = &ast.AssignmentExpression{}
	var _ ast.Expression = &ast.IfExpression{}
	var _ ast.Expression = &ast.PrintExpression{}
	var _ ast.Expression = &ast.FirstExpression{}
	var _ ast.Expression = &ast.SecondExpression{}
	var _ ast.Expression = &ast.CowsayExpression{}
}

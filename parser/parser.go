// ==============================================================================================
// FILE: parser/parser.go
// ==============================================================================================
// PACKAGE: parser
// PURPOSE: Implements a recursive-descent Pratt parser that turns a token stream into an
//          AST (ast.Program). Structurally this is the teacher's parser — the same
//          prefixParseFn/infixParseFn table, the same expectPeek/peekError error style —
//          re-targeted at the grammar of spec.md §4.3: assignment < or < and < comparison
//          < add/sub < mul/div/mod < primary. Identifier occurrences and function-literal
//          occurrences are interned into a shared symtab.Table as they are parsed
//          (spec.md §4.2) so the evaluator can use symbol ids as frame-slot indices
//          instead of name lookups.
// ==============================================================================================

package parser

import (
	"fmt"
	"strconv"

	"rinha/ast"
	"rinha/lexer"
	"rinha/symtab"
	"rinha/token"
)

// Precedence constants. Higher binds tighter. These mirror spec.md §4.3's
// ladder exactly: assignment is loosest, primary is tightest.
const (
	_ int = iota
	LOWEST
	ASSIGNMENT  // '=' (right-associative, parsed via recursive descent into itself)
	OR          // '||'
	AND         // '&&'
	EQUALS      // '==' '!='
	LESSGREATER // '<' '<=' '>' '>='
	SUM         // '+' '-'
	PRODUCT     // '*' '/' '%'
	PREFIX      // unary '-'
	CALL        // f(args)
)

var precedences = map[token.TokenType]int{
	token.ASSIGN:   ASSIGNMENT,
	token.OR:       OR,
	token.AND:      AND,
	token.EQ:       EQUALS,
	token.NOT_EQ:   EQUALS,
	token.LT:       LESSGREATER,
	token.LT_EQ:    LESSGREATER,
	token.GT:       LESSGREATER,
	token.GT_EQ:    LESSGREATER,
	token.PLUS:     SUM,
	token.MINUS:    SUM,
	token.ASTERISK: PRODUCT,
	token.SLASH:    PRODUCT,
	token.PERCENT:  PRODUCT,
	token.LPAREN:   CALL,
}

type (
	prefixParseFn func() ast.Expression
	infixParseFn  func(ast.Expression) ast.Expression
)

// Parser holds the state of one parse. One Parser consumes one token stream
// to completion; it is not reused.
type Parser struct {
	l       *lexer.Lexer
	symbols *symtab.Table

	curToken  token.Token
	peekToken token.Token
	errors    []string

	prefixParseFns map[token.TokenType]prefixParseFn
	infixParseFns  map[token.TokenType]infixParseFn
}

// New builds a Parser reading from l, interning identifiers and anonymous
// function-literal occurrences into syms — the same table the Lexer already
// shares, so a name always maps to the same symbol id regardless of which
// component first saw it (spec.md §4.2).
func New(l *lexer.Lexer, syms *symtab.Table) *Parser {
	p := &Parser{l: l, symbols: syms, errors: []string{}}

	p.prefixParseFns = make(map[token.TokenType]prefixParseFn)
	p.registerPrefix(token.IDENT, p.parseIdentifier)
	p.registerPrefix(token.INT, p.parseIntegerLiteral)
	p.registerPrefix(token.STRING, p.parseStringLiteral)
	p.registerPrefix(token.TRUE, p.parseBooleanLiteral)
	p.registerPrefix(token.FALSE, p.parseBooleanLiteral)
	p.registerPrefix(token.MINUS, p.parsePrefixExpression)
	p.registerPrefix(token.LPAREN, p.parseGroupedOrTupleExpression)
	p.registerPrefix(token.IF, p.parseIfExpression)
	p.registerPrefix(token.FN, p.parseFunctionLiteral)
	p.registerPrefix(token.PRINT, p.parsePrintExpression)
	p.registerPrefix(token.FIRST, p.parseFirstExpression)
	p.registerPrefix(token.SECOND, p.parseSecondExpression)
	p.registerPrefix(token.WILDCARD, p.parseWildcardIdentifier)
	p.registerPrefix(token.COWSAY, p.parseCowsayExpression)

	p.infixParseFns = make(map[token.TokenType]infixParseFn)
	for _, tt := range []token.TokenType{
		token.PLUS, token.MINUS, token.ASTERISK, token.SLASH, token.PERCENT,
		token.EQ, token.NOT_EQ, token.LT, token.LT_EQ, token.GT, token.GT_EQ,
		token.AND, token.OR,
	} {
		p.registerInfix(tt, p.parseInfixExpression)
	}
	p.registerInfix(token.LPAREN, p.parseCallExpression)
	p.registerInfix(token.ASSIGN, p.parseAssignmentExpression)

	p.nextToken()
	p.nextToken()
	return p
}

func (p *Parser) registerPrefix(t token.TokenType, fn prefixParseFn) { p.prefixParseFns[t] = fn }
func (p *Parser) registerInfix(t token.TokenType, fn infixParseFn)   { p.infixParseFns[t] = fn }

func (p *Parser) Errors() []string { return p.errors }

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.l.NextToken()
}

func (p *Parser) curTokenIs(t token.TokenType) bool  { return p.curToken.Type == t }
func (p *Parser) peekTokenIs(t token.TokenType) bool { return p.peekToken.Type == t }

func (p *Parser) expectPeek(t token.TokenType) bool {
	if p.peekTokenIs(t) {
		p.nextToken()
		return true
	}
	p.peekError(t)
	return false
}

func (p *Parser) peekError(t token.TokenType) {
	p.errors = append(p.errors, fmt.Sprintf("line %d:%d - expected next token to be %s, got %s instead",
		p.peekToken.Line, p.peekToken.Column, t, p.peekToken.Type))
}

func (p *Parser) peekPrecedence() int {
	if pr, ok := precedences[p.peekToken.Type]; ok {
		return pr
	}
	return LOWEST
}

func (p *Parser) curPrecedence() int {
	if pr, ok := precedences[p.curToken.Type]; ok {
		return pr
	}
	return LOWEST
}

// ParseProgram is the entry point: consume every token, returning the root
// AST node.
func (p *Parser) ParseProgram() *ast.Program {
	program := &ast.Program{Statements: []ast.Statement{}}
	for !p.curTokenIs(token.EOF) {
		stmt := p.parseStatement()
		if stmt != nil {
			program.Statements = append(program.Statements, stmt)
		}
		// parseStatement already consumed a directly-following `;` (landing
		// curToken on it); advancing unconditionally here is what actually
		// makes progress whether or not that semicolon was present — the
		// last top-level statement in a program is not required to have one.
		p.nextToken()
	}
	return program
}

// parseStatement implements the `statement` rule of spec.md §4.3. `let` is
// the only true statement-only form; everything else is an expression
// wrapped for top-level use. A statement's parse ends with curToken on its
// own last token, so a trailing `;` is still only peeked at — consuming it
// here (curToken lands on the `;` itself) is what lets ParseProgram's and
// parseBlock's unconditional p.nextToken() make progress on every iteration,
// whether or not a semicolon was actually present.
func (p *Parser) parseStatement() ast.Statement {
	var stmt ast.Statement
	switch p.curToken.Type {
	case token.LET:
		stmt = p.parseLetStatement()
	case token.LBRACE:
		stmt = p.parseBlockAsStatement()
	default:
		stmt = p.parseExpressionStatement()
	}
	if p.peekTokenIs(token.SEMICOLON) {
		p.nextToken()
	}
	return stmt
}

func (p *Parser) parseLetStatement() ast.Statement {
	stmt := &ast.LetStatement{Token: p.curToken}

	if !p.peekTokenIs(token.IDENT) && !p.peekTokenIs(token.WILDCARD) {
		p.peekError(token.IDENT)
		return nil
	}
	p.nextToken()
	name := &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}
	if p.curToken.Type == token.IDENT {
		name.Symbol = p.curToken.Symbol
	} else {
		name.Symbol = p.symbols.Anonymous()
	}
	stmt.Name = name

	if !p.expectPeek(token.ASSIGN) {
		return nil
	}
	p.nextToken()

	// A function literal bound directly by `let` is named after the
	// binding (spec.md §4.4): propagate the symbol id and the display
	// name into the literal before it is parsed.
	if p.curTokenIs(token.FN) {
		stmt.Value = p.parseFunctionLiteralNamed(name.Symbol, name.Value)
	} else {
		stmt.Value = p.parseExpression(LOWEST)
	}
	return stmt
}

func (p *Parser) parseBlockAsStatement() ast.Statement {
	block := p.parseBlock()
	return &ast.ExpressionStatement{Token: block.Token, Expression: block}
}

func (p *Parser) parseExpressionStatement() *ast.ExpressionStatement {
	stmt := &ast.ExpressionStatement{Token: p.curToken}
	stmt.Expression = p.parseExpression(LOWEST)
	return stmt
}

// parseBlock implements `block := '{' statement* '}' | statement`
// (spec.md §4.3).
func (p *Parser) parseBlock() *ast.Block {
	if !p.curTokenIs(token.LBRACE) {
		tok := p.curToken
		stmt := p.parseStatement()
		stmts := []ast.Statement{}
		if stmt != nil {
			stmts = append(stmts, stmt)
		}
		return &ast.Block{Token: tok, Statements: stmts}
	}

	block := &ast.Block{Token: p.curToken}
	p.nextToken()
	for !p.curTokenIs(token.RBRACE) && !p.curTokenIs(token.EOF) {
		stmt := p.parseStatement()
		if stmt != nil {
			block.Statements = append(block.Statements, stmt)
		}
		// See ParseProgram: parseStatement already swallowed a directly
		// following `;`, so advancing here unconditionally is what moves
		// past a statement with no trailing semicolon (the block's final
		// statement before `}` is not required to have one).
		p.nextToken()
	}
	return block
}

// parseExpression is the Pratt driver: parse a prefix form, then keep
// consuming infix operators whose precedence exceeds the caller's floor.
// ASSIGNMENT is handled with right-associative recursion via
// parseAssignmentExpression rather than the usual left-fold, matching
// `assignment := or ('=' assignment)?` (spec.md §4.3).
func (p *Parser) parseExpression(precedence int) ast.Expression {
	prefix := p.prefixParseFns[p.curToken.Type]
	if prefix == nil {
		p.errors = append(p.errors, fmt.Sprintf("line %d:%d - no prefix parse function for %s",
			p.curToken.Line, p.curToken.Column, p.curToken.Type))
		return nil
	}
	left := prefix()

	for !p.peekTokenIs(token.SEMICOLON) && !p.peekTokenIs(token.EOF) && precedence < p.peekPrecedence() {
		infix := p.infixParseFns[p.peekToken.Type]
		if infix == nil {
			return left
		}
		p.nextToken()
		left = infix(left)
	}
	return left
}

func (p *Parser) parseIdentifier() ast.Expression {
	return &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal, Symbol: p.curToken.Symbol}
}

// parseWildcardIdentifier parses a bare `_` used as an expression as an
// identifier with a fresh anonymous symbol, so it never resolves to any
// binding (evaluating it is an undefined-symbol error). As a `let` target,
// `_` likewise binds to a fresh symbol that nothing can read back.
func (p *Parser) parseWildcardIdentifier() ast.Expression {
	return &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal, Symbol: p.symbols.Anonymous()}
}

func (p *Parser) parseIntegerLiteral() ast.Expression {
	lit := &ast.IntegerLiteral{Token: p.curToken}
	val, err := strconv.ParseInt(p.curToken.Literal, 10, 64)
	if err != nil {
		p.errors = append(p.errors, fmt.Sprintf("line %d:%d - could not parse %q as integer",
			p.curToken.Line, p.curToken.Column, p.curToken.Literal))
		return nil
	}
	lit.Value = val
	return lit
}

func (p *Parser) parseStringLiteral() ast.Expression {
	return &ast.StringLiteral{Token: p.curToken, Value: p.curToken.Literal}
}

func (p *Parser) parseBooleanLiteral() ast.Expression {
	return &ast.BooleanLiteral{Token: p.curToken, Value: p.curTokenIs(token.TRUE)}
}

func (p *Parser) parsePrefixExpression() ast.Expression {
	exp := &ast.PrefixExpression{Token: p.curToken, Operator: p.curToken.Literal}
	p.nextToken()
	exp.Right = p.parseExpression(PREFIX)
	return exp
}

// parseGroupedOrTupleExpression disambiguates `(expr)` from
// `(first, second)` (spec.md §4.3 primary rule) by checking for a comma
// after the first sub-expression.
func (p *Parser) parseGroupedOrTupleExpression() ast.Expression {
	tok := p.curToken
	p.nextToken()
	first := p.parseExpression(LOWEST)

	if p.peekTokenIs(token.COMMA) {
		p.nextToken() // consume ','
		p.nextToken()
		second := p.parseExpression(LOWEST)
		if !p.expectPeek(token.RPAREN) {
			return nil
		}
		return &ast.TupleLiteral{Token: tok, First: first, Second: second}
	}

	if !p.expectPeek(token.RPAREN) {
		return nil
	}
	return first
}

func (p *Parser) parseIfExpression() ast.Expression {
	exp := &ast.IfExpression{Token: p.curToken}
	if !p.expectPeek(token.LPAREN) {
		return nil
	}
	p.nextToken()
	exp.Condition = p.parseExpression(LOWEST)
	if !p.expectPeek(token.RPAREN) {
		return nil
	}
	p.nextToken()
	exp.Consequence = p.parseBlock()

	if p.peekTokenIs(token.ELSE) {
		p.nextToken()
		p.nextToken()
		exp.Alternative = p.parseBlock()
	}
	return exp
}

// parseFunctionLiteral handles a function literal that appears outside a
// `let` binding, which is registered under a fresh anonymous symbol id
// (spec.md §4.4).
func (p *Parser) parseFunctionLiteral() ast.Expression {
	return p.parseFunctionLiteralNamed(p.symbols.Anonymous(), "")
}

func (p *Parser) parseFunctionLiteralNamed(sym symtab.ID, name string) ast.Expression {
	lit := &ast.FunctionLiteral{Token: p.curToken, Symbol: sym, Name: name}
	if !p.expectPeek(token.LPAREN) {
		return nil
	}
	lit.Parameters = p.parseFunctionParameters()
	if !p.expectPeek(token.ARROW) {
		return nil
	}
	p.nextToken()
	lit.Body = p.parseBlock()
	return lit
}

// maxFunctionParams mirrors interp.MaxFunctionParams (spec.md §3: "parameter
// list … max 6"). Kept as a local constant rather than an import of interp
// to avoid a parser->interp dependency for a single budget check.
const maxFunctionParams = 6

func (p *Parser) parseFunctionParameters() []*ast.Identifier {
	params := []*ast.Identifier{}
	if p.peekTokenIs(token.RPAREN) {
		p.nextToken()
		return params
	}
	p.nextToken()
	params = append(params, p.parseParameter())
	for p.peekTokenIs(token.COMMA) {
		p.nextToken()
		p.nextToken()
		params = append(params, p.parseParameter())
	}
	if !p.expectPeek(token.RPAREN) {
		return nil
	}
	if len(params) > maxFunctionParams {
		p.errors = append(p.errors, fmt.Sprintf(
			"line %d:%d - function has %d parameters, exceeding the limit of %d",
			p.curToken.Line, p.curToken.Column, len(params), maxFunctionParams))
	}
	return params
}

func (p *Parser) parseParameter() *ast.Identifier {
	ident := &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}
	if p.curToken.Type == token.IDENT {
		ident.Symbol = p.curToken.Symbol
	} else {
		ident.Symbol = p.symbols.Anonymous()
	}
	return ident
}

func (p *Parser) parsePrintExpression() ast.Expression {
	exp := &ast.PrintExpression{Token: p.curToken}
	if !p.expectPeek(token.LPAREN) {
		return nil
	}
	p.nextToken()
	exp.Value = p.parseExpression(LOWEST)
	if !p.expectPeek(token.RPAREN) {
		return nil
	}
	return exp
}

func (p *Parser) parseFirstExpression() ast.Expression {
	exp := &ast.FirstExpression{Token: p.curToken}
	if !p.expectPeek(token.LPAREN) {
		return nil
	}
	p.nextToken()
	exp.Value = p.parseExpression(LOWEST)
	if !p.expectPeek(token.RPAREN) {
		return nil
	}
	return exp
}

func (p *Parser) parseSecondExpression() ast.Expression {
	exp := &ast.SecondExpression{Token: p.curToken}
	if !p.expectPeek(token.LPAREN) {
		return nil
	}
	p.nextToken()
	exp.Value = p.parseExpression(LOWEST)
	if !p.expectPeek(token.RPAREN) {
		return nil
	}
	return exp
}

func (p *Parser) parseCowsayExpression() ast.Expression {
	exp := &ast.CowsayExpression{Token: p.curToken}
	if !p.expectPeek(token.LPAREN) {
		return nil
	}
	p.nextToken()
	exp.Value = p.parseExpression(LOWEST)
	if !p.expectPeek(token.RPAREN) {
		return nil
	}
	return exp
}

func (p *Parser) parseInfixExpression(left ast.Expression) ast.Expression {
	exp := &ast.InfixExpression{Token: p.curToken, Operator: p.curToken.Literal, Left: left}
	precedence := p.curPrecedence()
	p.nextToken()
	exp.Right = p.parseExpression(precedence)
	return exp
}

func (p *Parser) parseCallExpression(fn ast.Expression) ast.Expression {
	exp := &ast.CallExpression{Token: p.curToken, Function: fn}
	exp.Arguments = p.parseExpressionList(token.RPAREN)
	return exp
}

func (p *Parser) parseExpressionList(end token.TokenType) []ast.Expression {
	list := []ast.Expression{}
	if p.peekTokenIs(end) {
		p.nextToken()
		return list
	}
	p.nextToken()
	list = append(list, p.parseExpression(LOWEST))
	for p.peekTokenIs(token.COMMA) {
		p.nextToken()
		p.nextToken()
		list = append(list, p.parseExpression(LOWEST))
	}
	if !p.expectPeek(end) {
		return nil
	}
	return list
}

// parseAssignmentExpression implements `lhs = rhs`, right-associative, and
// only valid when lhs is an identifier (spec.md §4.3).
func (p *Parser) parseAssignmentExpression(left ast.Expression) ast.Expression {
	name, ok := left.(*ast.Identifier)
	if !ok {
		p.errors = append(p.errors, fmt.Sprintf("line %d:%d - left-hand side of assignment must be an identifier",
			p.curToken.Line, p.curToken.Column))
		return nil
	}
	exp := &ast.AssignmentExpression{Token: p.curToken, Name: name}
	p.nextToken()
	exp.Value = p.parseExpression(ASSIGNMENT - 1)
	return exp
}

package lexer_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"rinha/lexer"
	"rinha/symtab"
	"rinha/token"
)

func TestNextTokenCoversGrammar(t *testing.T) {
	input := `
let fib = fn(n) => {
  if (n < 2) { n } else { fib(n-1) + fib(n-2) }
};
print(fib(20) >= 10 && true || false != "x" <= 'y');
// comment
/* block */
_;
`
	expected := []struct {
		Type    token.TokenType
		Literal string
	}{
		{token.LET, "let"},
		{token.IDENT, "fib"},
		{token.ASSIGN, "="},
		{token.FN, "fn"},
		{token.LPAREN, "("},
		{token.IDENT, "n"},
		{token.RPAREN, ")"},
		{token.ARROW, "=>"},
		{token.LBRACE, "{"},
		{token.IF, "if"},
		{token.LPAREN, "("},
		{token.IDENT, "n"},
		{token.LT, "<"},
		{token.INT, "2"},
		{token.RPAREN, ")"},
		{token.LBRACE, "{"},
		{token.IDENT, "n"},
		{token.RBRACE, "}"},
		{token.ELSE, "else"},
		{token.LBRACE, "{"},
		{token.IDENT, "fib"},
		{token.LPAREN, "("},
		{token.IDENT, "n"},
		{token.MINUS, "-"},
		{token.INT, "1"},
		{token.RPAREN, ")"},
		{token.PLUS, "+"},
		{token.IDENT, "fib"},
		{token.LPAREN, "("},
		{token.IDENT, "n"},
		{token.MINUS, "-"},
		{token.INT, "2"},
		{token.RPAREN, ")"},
		{token.RBRACE, "}"},
		{token.RBRACE, "}"},
		{token.SEMICOLON, ";"},
		{token.PRINT, "print"},
		{token.LPAREN, "("},
		{token.IDENT, "fib"},
		{token.LPAREN, "("},
		{token.INT, "20"},
		{token.RPAREN, ")"},
		{token.GT_EQ, ">="},
		{token.INT, "10"},
		{token.AND, "&&"},
		{token.TRUE, "true"},
		{token.OR, "||"},
		{token.FALSE, "false"},
		{token.NOT_EQ, "!="},
		{token.STRING, "x"},
		{token.LT_EQ, "<="},
		{token.STRING, "y"},
		{token.RPAREN, ")"},
		{token.SEMICOLON, ";"},
		{token.WILDCARD, "_"},
		{token.SEMICOLON, ";"},
		{token.EOF, ""},
	}

	l := lexer.New(input, symtab.New())
	for i, want := range expected {
		got := l.NextToken()
		require.Equal(t, want.Type, got.Type, "token %d literal=%q", i, got.Literal)
		require.Equal(t, want.Literal, got.Literal, "token %d", i)
	}
}

func TestIdenticalSpellingsShareSymbol(t *testing.T) {
	syms := symtab.New()
	l := lexer.New("fib fib other", syms)

	first := l.NextToken()
	second := l.NextToken()
	third := l.NextToken()

	require.Equal(t, first.Symbol, second.Symbol)
	require.NotEqual(t, first.Symbol, third.Symbol)
}

func TestUnterminatedCommentIsIllegal(t *testing.T) {
	l := lexer.New("/* never closes", symtab.New())
	tok := l.NextToken()
	require.Equal(t, token.ILLEGAL, tok.Type)
}

func TestUnterminatedStringIsIllegal(t *testing.T) {
	l := lexer.New(`"never closes`, symtab.New())
	tok := l.NextToken()
	require.Equal(t, token.ILLEGAL, tok.Type)
}

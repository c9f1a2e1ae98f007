package token_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"rinha/token"
)

func TestLookupIdentKeywords(t *testing.T) {
	cases := map[string]token.TokenType{
		"let":    token.LET,
		"fn":     token.FN,
		"if":     token.IF,
		"else":   token.ELSE,
		"true":   token.TRUE,
		"false":  token.FALSE,
		"print":  token.PRINT,
		"first":  token.FIRST,
		"second": token.SECOND,
		"_":      token.WILDCARD,
		"cowsay": token.COWSAY,
	}

	for spelling, want := range cases {
		require.Equal(t, want, token.LookupIdent(spelling), "spelling=%q", spelling)
	}
}

func TestLookupIdentUserDefined(t *testing.T) {
	require.Equal(t, token.IDENT, token.LookupIdent("fib"))
	require.Equal(t, token.IDENT, token.LookupIdent("printer"))
}

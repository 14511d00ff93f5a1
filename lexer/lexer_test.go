package lexer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func tokenKinds(t *testing.T, src string) []TokenType {
	t.Helper()
	tokens, err := New("<test>", src).Tokenize()
	require.Nil(t, err)
	kinds := make([]TokenType, len(tokens))
	for i, tok := range tokens {
		kinds[i] = tok.Kind
	}
	return kinds
}

func TestTokenizeArithmetic(t *testing.T) {
	kinds := tokenKinds(t, "1 + 2 * 3")
	require.Equal(t, []TokenType{INT, PLUS, INT, MUL, INT, EOF}, kinds)
}

func TestTokenizeKeywordsVsIdentifiers(t *testing.T) {
	tokens, err := New("<test>", "assign agent = 7").Tokenize()
	require.Nil(t, err)
	require.Equal(t, KEYWORD, tokens[0].Kind)
	require.Equal(t, "assign", tokens[0].Str)
	require.Equal(t, IDENTIFIER, tokens[1].Kind)
	require.Equal(t, "agent", tokens[1].Str)
}

func TestTokenizeRangeOperator(t *testing.T) {
	kinds := tokenKinds(t, "1..5")
	require.Equal(t, []TokenType{INT, RANGE, INT, EOF}, kinds)
}

func TestTokenizeLoneDotIsIllegal(t *testing.T) {
	_, err := New("<test>", "a.x").Tokenize()
	require.NotNil(t, err)
}

func TestTokenizeStringEscapes(t *testing.T) {
	tokens, err := New("<test>", `"line\nend"`).Tokenize()
	require.Nil(t, err)
	require.Equal(t, STRING, tokens[0].Kind)
	require.Equal(t, "line\nend", tokens[0].Str)
}

func TestTokenizeComparisonOperators(t *testing.T) {
	kinds := tokenKinds(t, "a == b != c <= d >= e")
	require.Equal(t, []TokenType{
		IDENTIFIER, EE, IDENTIFIER, NE, IDENTIFIER, LTE, IDENTIFIER, GTE, IDENTIFIER, EOF,
	}, kinds)
}

func TestTokenizeBangRequiresEquals(t *testing.T) {
	_, err := New("<test>", "a ! b").Tokenize()
	require.NotNil(t, err)
}

func TestTokenizeSkipsComments(t *testing.T) {
	kinds := tokenKinds(t, "1 # a comment\n+ 2")
	require.Equal(t, []TokenType{INT, NEWLINE, PLUS, INT, EOF}, kinds)
}

func TestTokenizeFloat(t *testing.T) {
	tokens, err := New("<test>", "3.5").Tokenize()
	require.Nil(t, err)
	require.Equal(t, FLOAT, tokens[0].Kind)
	require.InDelta(t, 3.5, tokens[0].Float, 1e-9)
}

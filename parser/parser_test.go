package parser

import (
	"testing"

	"github.com/stretchr/testify/require"

	"spylang/lexer"
)

func parseSource(t *testing.T, src string) []Node {
	t.Helper()
	tokens, lexErr := lexer.New("<test>", src).Tokenize()
	require.Nil(t, lexErr)
	stmts, parseErr := New(tokens).Parse()
	require.Nil(t, parseErr)
	return stmts
}

func TestParseArithmeticPrecedence(t *testing.T) {
	stmts := parseSource(t, "1 + 2 * 3")
	require.Len(t, stmts, 1)
	bin, ok := stmts[0].(BinOpNode)
	require.True(t, ok)
	require.Equal(t, "PLUS", bin.Op)
	_, ok = bin.Left.(NumberNode)
	require.True(t, ok)
	rightBin, ok := bin.Right.(BinOpNode)
	require.True(t, ok)
	require.Equal(t, "MUL", rightBin.Op)
}

func TestParsePowerIsRightAssociative(t *testing.T) {
	stmts := parseSource(t, "2 ^ 3 ^ 2")
	bin := stmts[0].(BinOpNode)
	require.Equal(t, "POW", bin.Op)
	_, leftIsNumber := bin.Left.(NumberNode)
	require.True(t, leftIsNumber)
	right := bin.Right.(BinOpNode)
	require.Equal(t, "POW", right.Op)
}

func TestParseVarAssignDeclare(t *testing.T) {
	stmts := parseSource(t, "assign code = 7")
	assign := stmts[0].(VarAssignNode)
	require.Equal(t, "code", assign.Name)
	require.True(t, assign.Declare)
}

func TestParseBareReassignment(t *testing.T) {
	stmts := parseSource(t, "code = 9")
	assign := stmts[0].(VarAssignNode)
	require.Equal(t, "code", assign.Name)
	require.False(t, assign.Declare)
}

func TestParseIfFollowupOtherwise(t *testing.T) {
	stmts := parseSource(t, `
check 1 { 2 }
followup 3 { 4 }
otherwise { 5 }
`)
	ifNode := stmts[0].(IfNode)
	require.Len(t, ifNode.Cases, 2)
	require.True(t, ifNode.HasElse)
}

func TestParseEachInRange(t *testing.T) {
	stmts := parseSource(t, "each i in 1..5 { i }")
	forNode := stmts[0].(ForNode)
	require.Equal(t, "i", forNode.VarName)
	_, ok := forNode.Iterable.(RangeNode)
	require.True(t, ok)
}

func TestParseMissionDefinitionAndCall(t *testing.T) {
	stmts := parseSource(t, `
mission add(a, b) {
	extract a + b
}
add(1, 2)
`)
	require.Len(t, stmts, 2)
	fn := stmts[0].(FuncDefNode)
	require.Equal(t, "add", fn.Name)
	require.Equal(t, []string{"a", "b"}, fn.ParamNames)
	require.False(t, fn.AutoReturn)

	call := stmts[1].(CallNode)
	_, ok := call.Callee.(VarAccessNode)
	require.True(t, ok)
	require.Len(t, call.Args, 2)
}

func TestParseChaseLoopWithAbort(t *testing.T) {
	stmts := parseSource(t, `
chase true {
	abort
}
`)
	while := stmts[0].(WhileNode)
	require.Len(t, while.Body, 1)
	_, ok := while.Body[0].(BreakNode)
	require.True(t, ok)
}

func TestParseListLiteral(t *testing.T) {
	stmts := parseSource(t, "[1, 2, 3]")
	list := stmts[0].(ListNode)
	require.Len(t, list.Elements, 3)
}

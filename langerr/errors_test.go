package langerr

import (
	"testing"

	"github.com/stretchr/testify/require"

	"spylang/position"
)

func TestLexicalErrorHasNoTraceback(t *testing.T) {
	pos := position.New("<test>", "!x")
	err := New(IllegalCharacter, pos, pos, "'!' unexpected")
	require.NotContains(t, err.String(), "Traceback")
}

func TestRuntimeErrorIncludesTraceback(t *testing.T) {
	pos := position.New("<test>", "factorial(0)")
	ctx := NewContext("factorial")
	err := NewRuntime(pos, pos, "division by zero", ctx)
	require.Contains(t, err.String(), "Traceback")
	require.Contains(t, err.String(), "factorial")
}

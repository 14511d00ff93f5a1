package builtins

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"spylang/eval"
	"spylang/values"
)

func newEvaluator(in string) (*eval.Evaluator, *bytes.Buffer) {
	var out bytes.Buffer
	ev := eval.New(&out, bufio.NewReader(strings.NewReader(in)))
	Register(ev.Root)
	return ev, &out
}

func TestGhostTrueFalseConstants(t *testing.T) {
	ev, _ := newEvaluator("")
	result, err := ev.RunSource("<test>", "true")
	require.Nil(t, err)
	require.Equal(t, values.Int(1), result)

	result, err = ev.RunSource("<test>", "false")
	require.Nil(t, err)
	require.Equal(t, values.Int(0), result)

	result, err = ev.RunSource("<test>", "ghost")
	require.Nil(t, err)
	require.Equal(t, values.Null{}, result)
}

func TestIntelIntReprompts(t *testing.T) {
	ev, out := newEvaluator("not a number\n42\n")
	result, err := ev.RunSource("<test>", `intel_int("enter code: ")`)
	require.Nil(t, err)
	require.Equal(t, values.Int(42), result)
	require.Contains(t, out.String(), "not a whole number, try again")
}

func TestIsPredicates(t *testing.T) {
	ev, _ := newEvaluator("")
	result, err := ev.RunSource("<test>", `is_code(7)`)
	require.Nil(t, err)
	require.Equal(t, values.Int(1), result)

	result, err = ev.RunSource("<test>", `is_msg(7)`)
	require.Nil(t, err)
	require.Equal(t, values.Int(0), result)
}

func TestWithdrawRemovesAndReturnsElement(t *testing.T) {
	ev, _ := newEvaluator("")
	result, err := ev.RunSource("<test>", `
assign agents = ["falcon", "viper"]
withdraw(agents, 0)
`)
	require.Nil(t, err)
	require.Equal(t, values.Str{Value: "falcon"}, result)
}

func TestExpandExtendsFirstListInPlace(t *testing.T) {
	ev, _ := newEvaluator("")
	result, err := ev.RunSource("<test>", `
assign a = [1, 2]
assign b = [3, 4]
expand(a, b)
length(a)
`)
	require.Nil(t, err)
	require.Equal(t, values.Int(4), result)
}

package eval

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"spylang/builtins"
	"spylang/values"
)

func run(t *testing.T, src string) (values.Value, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	ev := New(&out, bufio.NewReader(strings.NewReader("")))
	builtins.Register(ev.Root)
	result, err := ev.RunSource("<test>", src)
	require.Nil(t, err, "unexpected error: %v", err)
	return result, &out
}

func TestArithmeticPrecedence(t *testing.T) {
	result, _ := run(t, "1 + 2 * 3")
	require.Equal(t, values.Int(7), result)
}

func TestPowerIsRightAssociative(t *testing.T) {
	result, _ := run(t, "2 ^ 3 ^ 2")
	require.Equal(t, values.Float(512), result)
}

func TestDivisionByZeroReportsRuntimeError(t *testing.T) {
	var out bytes.Buffer
	ev := New(&out, bufio.NewReader(strings.NewReader("")))
	builtins.Register(ev.Root)
	_, err := ev.RunSource("<test>", "1 / 0")
	require.NotNil(t, err)
	require.Contains(t, err.Detail, "Division by zero")
}

func TestFactorialRecursion(t *testing.T) {
	result, _ := run(t, `
mission factorial(n) {
	check n <= 1 {
		extract 1
	}
	extract n * factorial(n - 1)
}
factorial(5)
`)
	require.Equal(t, values.Int(120), result)
}

func TestClosureCapturesByReference(t *testing.T) {
	result, _ := run(t, `
mission make_counter() {
	assign count = 0
	mission bump() {
		count = count + 1
		extract count
	}
	extract bump
}
assign counter = make_counter()
counter()
counter()
counter()
`)
	require.Equal(t, values.Int(3), result)
}

func TestListMutationViaAddAgentAndLength(t *testing.T) {
	result, _ := run(t, `
assign agents = []
add_agent(agents, "falcon")
add_agent(agents, "viper")
length(agents)
`)
	require.Equal(t, values.Int(2), result)
}

func TestRangeIteration(t *testing.T) {
	result, _ := run(t, `
assign total = 0
each i in 1..5 {
	total = total + i
}
total
`)
	require.Equal(t, values.Int(15), result)
}

func TestWhileLoopWithAbort(t *testing.T) {
	result, _ := run(t, `
assign n = 0
chase true {
	n = n + 1
	check n == 3 {
		abort
	}
}
n
`)
	require.Equal(t, values.Int(3), result)
}

func TestContinueSkipsRestOfIteration(t *testing.T) {
	result, _ := run(t, `
assign total = 0
each i in 1..5 {
	check i == 2 {
		proceed
	}
	total = total + i
}
total
`)
	require.Equal(t, values.Int(13), result) // 1 + 3 + 4 + 5 (2 skipped)
}

func TestTransmitPrintsAndReturnsEmptyString(t *testing.T) {
	result, out := run(t, `transmit("operation complete")`)
	require.Equal(t, values.Str{Value: ""}, result)
	require.Contains(t, out.String(), "operation complete")
}

func TestAutoReturnIsAlwaysFalse(t *testing.T) {
	result, _ := run(t, `
mission noop() {
	1 + 1
}
noop()
`)
	require.Equal(t, values.Null{}, result)
}

/*
File   : spylang/eval/signal.go

Control-flow signals propagate out of statement evaluation as their
own variant, never piggybacked onto a runtime Value the way the
teacher's Break/Continue sentinel objects are (compare
go-mix/eval/eval_loops.go's `result.GetType() == std.BreakType`
checks): a block that hits `extract`/`proceed`/`abort` produces a
Signal describing exactly that, and every loop/call site switches on
it explicitly instead of inspecting a value's runtime type.
*/
package eval

import "spylang/values"

// SignalKind distinguishes why an evaluation step stopped short.
type SignalKind int

const (
	// none means normal, unsignaled completion — execution should
	// continue to the next statement.
	none SignalKind = iota
	signalReturn
	signalBreak
	signalContinue
)

// Signal is returned alongside a Value from every statement-evaluation
// function. A Kind of `none` means "nothing special happened, treat
// Value as this statement's result and move on."
type Signal struct {
	Kind  SignalKind
	Value values.Value // populated only for signalReturn
}

var noSignal = Signal{Kind: none}

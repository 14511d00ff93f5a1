/*
File   : spylang/eval/evaluator.go

Evaluator walks the AST the parser produces and executes it directly
against a chain of scope.Scope environments — no bytecode, no second
compilation pass. Dispatch is a type switch over the concrete node
kind (see Eval below), the generalization spec.md asks for in place of
the teacher's ~25-method Visitor interface (go-mix/parser/node.go's
NodeVisitor): one dispatch point instead of a method per node type
spread across every pass.
*/
package eval

import (
	"bufio"
	"fmt"
	"io"

	"spylang/langerr"
	"spylang/parser"
	"spylang/position"
	"spylang/scope"
	"spylang/values"
)

// Evaluator holds the interpreter's I/O streams, root environment, and
// current call context (for traceback rendering).
type Evaluator struct {
	Root *scope.Scope
	out  io.Writer
	in   *bufio.Reader
	ctx  *langerr.Context
}

// New creates an Evaluator with a fresh root scope, writing results to
// out and reading `intel`/`intel_int` input from in.
func New(out io.Writer, in *bufio.Reader) *Evaluator {
	ev := &Evaluator{
		Root: scope.New(nil),
		out:  out,
		in:   in,
		ctx:  langerr.NewContext("<program>"),
	}
	return ev
}

func (e *Evaluator) Stdout() io.Writer       { return e.out }
func (e *Evaluator) Stdin() *bufio.Reader    { return e.in }
func (e *Evaluator) RootScope() *scope.Scope { return e.Root }

// Call implements function.Runtime for builtins that need to invoke a
// SpyLang callable themselves. None of the registered builtins calls
// it; `launch` goes through RunSource instead.
func (e *Evaluator) Call(callee values.Value, args []values.Value, callSite position.Position) (values.Value, *langerr.Error) {
	return e.callValue(callee, args, callSite, callSite)
}

// Run parses has already happened; Run evaluates a full program (a
// statement list) against env, returning the value of the last
// statement (the REPL prints this) or the first error encountered. A
// bare `proceed`/`abort`/`extract` at the top level is a misuse error,
// since there is no enclosing loop or mission to receive the signal.
func (e *Evaluator) Run(stmts []parser.Node, env *scope.Scope) (values.Value, *langerr.Error) {
	val, sig, err := e.evalBlock(stmts, env)
	if err != nil {
		return nil, err
	}
	if sig.Kind != none {
		return nil, langerr.NewRuntime(position.Position{}, position.Position{}, "control-flow statement used outside a loop or mission", e.ctx)
	}
	return val, nil
}

func (e *Evaluator) runtimeErrf(start, end position.Position, format string, args ...any) *langerr.Error {
	return langerr.NewRuntime(start, end, fmt.Sprintf(format, args...), e.ctx)
}

// evalBlock runs a statement list in order, short-circuiting as soon
// as one produces a non-none Signal (extract/proceed/abort) or an
// error, and otherwise returning the value of its final statement.
func (e *Evaluator) evalBlock(stmts []parser.Node, env *scope.Scope) (values.Value, Signal, *langerr.Error) {
	var last values.Value = values.Null{}
	for _, stmt := range stmts {
		val, sig, err := e.Eval(stmt, env)
		if err != nil {
			return nil, noSignal, err
		}
		if sig.Kind != none {
			return val, sig, nil
		}
		last = val
	}
	return last, noSignal, nil
}

// Eval dispatches a single node to its evaluation logic.
func (e *Evaluator) Eval(node parser.Node, env *scope.Scope) (values.Value, Signal, *langerr.Error) {
	switch n := node.(type) {

	case parser.NumberNode:
		if n.IsFloat {
			return values.Float(n.Float), noSignal, nil
		}
		return values.Int(n.Int), noSignal, nil

	case parser.StringNode:
		return values.Str{Value: n.Value}, noSignal, nil

	case parser.ListNode:
		elems := make([]values.Value, 0, len(n.Elements))
		for _, elExpr := range n.Elements {
			v, _, err := e.Eval(elExpr, env)
			if err != nil {
				return nil, noSignal, err
			}
			elems = append(elems, v)
		}
		return values.NewList(elems), noSignal, nil

	case parser.RangeNode:
		return e.evalRange(n, env)

	case parser.VarAccessNode:
		v, ok := env.LookUp(n.Name)
		if !ok {
			start, end := n.Pos()
			return nil, noSignal, e.runtimeErrf(start, end, "'%s' is not defined", n.Name)
		}
		return v, noSignal, nil

	case parser.VarAssignNode:
		return e.evalAssign(n, env)

	case parser.BinOpNode:
		return e.evalBinOp(n, env)

	case parser.UnaryOpNode:
		return e.evalUnaryOp(n, env)

	case parser.IfNode:
		return e.evalIf(n, env)

	case parser.ForNode:
		return e.evalFor(n, env)

	case parser.WhileNode:
		return e.evalWhile(n, env)

	case parser.FuncDefNode:
		return e.evalFuncDef(n, env)

	case parser.CallNode:
		return e.evalCall(n, env)

	case parser.ReturnNode:
		if n.Value == nil {
			return values.Null{}, Signal{Kind: signalReturn, Value: values.Null{}}, nil
		}
		v, _, err := e.Eval(n.Value, env)
		if err != nil {
			return nil, noSignal, err
		}
		return v, Signal{Kind: signalReturn, Value: v}, nil

	case parser.ContinueNode:
		return values.Null{}, Signal{Kind: signalContinue}, nil

	case parser.BreakNode:
		return values.Null{}, Signal{Kind: signalBreak}, nil
	}

	return nil, noSignal, e.runtimeErrf(position.Position{}, position.Position{}, "cannot evaluate node of type %T", node)
}

/*
File   : spylang/eval/eval_controls.go

Mission definition and call evaluation — the pair the teacher keeps
together in eval_controls.go (evalCallExpression alongside the
function-statement handling), since a call site and the definition it
invokes share the parameter-binding/return-unwrapping logic.
*/
package eval

import (
	"spylang/function"
	"spylang/langerr"
	"spylang/parser"
	"spylang/position"
	"spylang/scope"
	"spylang/values"
)

func (e *Evaluator) evalFuncDef(n parser.FuncDefNode, env *scope.Scope) (values.Value, Signal, *langerr.Error) {
	fn := &function.Function{
		Name:       n.Name,
		ParamNames: n.ParamNames,
		Body:       n.Body,
		// Reference the defining scope directly, not a copy: a mission
		// returned from another mission must still observe writes made
		// to its captured variables after it was created.
		Env: env,
	}
	if n.Name != "" {
		env.Declare(n.Name, fn)
	}
	return fn, noSignal, nil
}

func (e *Evaluator) evalCall(n parser.CallNode, env *scope.Scope) (values.Value, Signal, *langerr.Error) {
	callee, _, err := e.Eval(n.Callee, env)
	if err != nil {
		return nil, noSignal, err
	}

	args := make([]values.Value, 0, len(n.Args))
	for _, argExpr := range n.Args {
		v, _, err := e.Eval(argExpr, env)
		if err != nil {
			return nil, noSignal, err
		}
		args = append(args, v)
	}

	start, end := n.Pos()
	v, err := e.callValue(callee, args, start, end)
	if err != nil {
		if err.Kind == langerr.RuntimeError && err.Context == nil {
			err.Context = e.ctx
		}
		return nil, noSignal, err
	}
	return v, noSignal, nil
}

// callValue is the single call state machine every CallNode and every
// Runtime.Call made by a builtin goes through.
func (e *Evaluator) callValue(callee values.Value, args []values.Value, start, end position.Position) (values.Value, *langerr.Error) {
	switch fn := callee.(type) {

	case *function.Builtin:
		return fn.Fn(e, args, start)

	case *function.Function:
		if len(args) != len(fn.ParamNames) {
			return nil, e.runtimeErrf(start, end, "%s expects %d argument(s), got %d", fn.Name, len(fn.ParamNames), len(args))
		}
		callScope := scope.New(fn.Env)
		for i, p := range fn.ParamNames {
			callScope.Declare(p, args[i])
		}

		name := fn.Name
		if name == "" {
			name = "<anonymous mission>"
		}
		prevCtx := e.ctx
		e.ctx = e.ctx.Child(name, start)
		_, sig, err := e.evalBlock(fn.Body, callScope)
		e.ctx = prevCtx
		if err != nil {
			return nil, err
		}
		// AutoReturn is always false (SPEC_FULL.md §6): a mission that
		// falls off the end of its body without an `extract` yields
		// Null, never its last expression's value.
		switch sig.Kind {
		case signalReturn:
			return sig.Value, nil
		case signalBreak:
			return nil, e.runtimeErrf(start, end, "'abort' used outside a loop")
		case signalContinue:
			return nil, e.runtimeErrf(start, end, "'proceed' used outside a loop")
		}
		return values.Null{}, nil

	default:
		return nil, e.runtimeErrf(start, end, "'%s' is not callable", callee.Type())
	}
}

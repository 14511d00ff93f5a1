/*
File   : spylang/eval/eval_conditionals.go

`check`/`followup`/`otherwise` evaluation, grounded on the teacher's
eval_conditionals.go (first matching case wins, else falls to the
otherwise branch if present).
*/
package eval

import (
	"spylang/langerr"
	"spylang/parser"
	"spylang/scope"
	"spylang/values"
)

func (e *Evaluator) evalIf(n parser.IfNode, env *scope.Scope) (values.Value, Signal, *langerr.Error) {
	for _, c := range n.Cases {
		condVal, _, err := e.Eval(c.Condition, env)
		if err != nil {
			return nil, noSignal, err
		}
		if condVal.Truthy() {
			return e.evalBlock(c.Body, scope.New(env))
		}
	}
	if n.HasElse {
		return e.evalBlock(n.ElseBody, scope.New(env))
	}
	return values.Null{}, noSignal, nil
}

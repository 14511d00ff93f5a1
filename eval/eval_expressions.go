/*
File   : spylang/eval/eval_expressions.go

Assignment, binary/unary operator, and range evaluation — split out of
evaluator.go's dispatch switch the way the teacher spreads per-kind
logic across eval_assignments.go, eval_expressions.go et al.
*/
package eval

import (
	"spylang/langerr"
	"spylang/parser"
	"spylang/scope"
	"spylang/values"
)

func (e *Evaluator) evalAssign(n parser.VarAssignNode, env *scope.Scope) (values.Value, Signal, *langerr.Error) {
	val, _, err := e.Eval(n.Value, env)
	if err != nil {
		return nil, noSignal, err
	}
	if n.Declare {
		env.Declare(n.Name, val)
		return val, noSignal, nil
	}
	if !env.Assign(n.Name, val) {
		start, end := n.Pos()
		return nil, noSignal, e.runtimeErrf(start, end, "'%s' is not defined", n.Name)
	}
	return val, noSignal, nil
}

func (e *Evaluator) evalBinOp(n parser.BinOpNode, env *scope.Scope) (values.Value, Signal, *langerr.Error) {
	left, _, err := e.Eval(n.Left, env)
	if err != nil {
		return nil, noSignal, err
	}
	right, _, err := e.Eval(n.Right, env)
	if err != nil {
		return nil, noSignal, err
	}
	start, end := n.Pos()
	v, err := e.binOp(n.Op, left, right, start, end)
	if err != nil {
		err.Context = e.ctx
		return nil, noSignal, err
	}
	return v, noSignal, nil
}

func (e *Evaluator) evalUnaryOp(n parser.UnaryOpNode, env *scope.Scope) (values.Value, Signal, *langerr.Error) {
	operand, _, err := e.Eval(n.Operand, env)
	if err != nil {
		return nil, noSignal, err
	}
	start, end := n.Pos()
	v, err := e.unaryOp(n.Op, operand, start, end)
	if err != nil {
		return nil, noSignal, err
	}
	return v, noSignal, nil
}

// evalRange evaluates `start..end` into a values.Range. Both bounds
// must evaluate to integer-valued Numbers.
func (e *Evaluator) evalRange(n parser.RangeNode, env *scope.Scope) (values.Value, Signal, *langerr.Error) {
	startVal, _, err := e.Eval(n.StartExpr, env)
	if err != nil {
		return nil, noSignal, err
	}
	endVal, _, err := e.Eval(n.EndExpr, env)
	if err != nil {
		return nil, noSignal, err
	}
	start, end := n.Pos()
	startNum, ok := startVal.(values.Number)
	if !ok {
		return nil, noSignal, e.runtimeErrf(start, end, "range bounds must be numbers")
	}
	endNum, ok := endVal.(values.Number)
	if !ok {
		return nil, noSignal, e.runtimeErrf(start, end, "range bounds must be numbers")
	}
	for _, b := range []values.Number{startNum, endNum} {
		if b.IsFloat && b.Float != float64(int64(b.Float)) {
			return nil, noSignal, e.runtimeErrf(start, end, "range bounds must be whole numbers")
		}
	}
	return values.Range{Start: int64(startNum.AsFloat()), End: int64(endNum.AsFloat())}, noSignal, nil
}

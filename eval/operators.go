/*
File   : spylang/eval/operators.go

Binary and unary operator semantics over runtime Values. Grounded in
the teacher's per-pair dispatch style (go-mix/eval/eval_expressions.go
switches on both operand types before applying an operator), adapted
to the smaller value set SpyLang's grammar produces and to the
List append/remove/extend/index-via-arithmetic design spec.md
specifies for `+ - * /` on lists.
*/
package eval

import (
	"math"

	"spylang/langerr"
	"spylang/lexer"
	"spylang/position"
	"spylang/values"
)

func boolNumber(b bool) values.Number {
	if b {
		return values.Int(1)
	}
	return values.Int(0)
}

func (e *Evaluator) binOp(op string, left, right values.Value, start, end position.Position) (values.Value, *langerr.Error) {
	switch op {
	case "and":
		return boolNumber(left.Truthy() && right.Truthy()), nil
	case "or":
		return boolNumber(left.Truthy() || right.Truthy()), nil
	}

	switch l := left.(type) {
	case values.Number:
		if r, ok := right.(values.Number); ok {
			return numberOp(op, l, r, start, end)
		}
	case values.Str:
		switch r := right.(type) {
		case values.Str:
			return stringOp(op, l, r, start, end)
		case values.Number:
			if op == string(lexer.MUL) {
				return repeatString(l, r), nil
			}
		}
	case *values.List:
		return e.listOp(op, l, right, start, end)
	}

	if isEquality(op) {
		return boolNumber((op == string(lexer.EE)) == valuesEqual(left, right)), nil
	}

	return nil, e.runtimeErrf(start, end, "illegal operation: %s %s %s", left.Type(), op, right.Type())
}

func isEquality(op string) bool {
	return op == string(lexer.EE) || op == string(lexer.NE)
}

func valuesEqual(a, b values.Value) bool {
	if a.Type() != b.Type() {
		return false
	}
	switch av := a.(type) {
	case values.Number:
		bv := b.(values.Number)
		return av.AsFloat() == bv.AsFloat()
	case values.Str:
		return av.Value == b.(values.Str).Value
	case values.Null:
		return true
	}
	return a == b
}

func numberOp(op string, l, r values.Number, start, end position.Position) (values.Value, *langerr.Error) {
	switch op {
	case string(lexer.PLUS):
		return arith(l, r, func(a, b int64) int64 { return a + b }, func(a, b float64) float64 { return a + b }), nil
	case string(lexer.MINUS):
		return arith(l, r, func(a, b int64) int64 { return a - b }, func(a, b float64) float64 { return a - b }), nil
	case string(lexer.MUL):
		return arith(l, r, func(a, b int64) int64 { return a * b }, func(a, b float64) float64 { return a * b }), nil
	case string(lexer.DIV):
		if r.AsFloat() == 0 {
			return nil, langerr.NewRuntime(start, end, "Division by zero", nil)
		}
		return values.Float(l.AsFloat() / r.AsFloat()), nil
	case string(lexer.MOD):
		if !l.IsFloat && !r.IsFloat {
			if r.Int == 0 {
				return nil, langerr.NewRuntime(start, end, "Division by zero", nil)
			}
			return values.Int(l.Int % r.Int), nil
		}
		return nil, langerr.NewRuntime(start, end, "'%' requires integer operands", nil)
	case string(lexer.POW):
		return values.Float(math.Pow(l.AsFloat(), r.AsFloat())), nil
	case string(lexer.EE):
		return boolNumber(l.AsFloat() == r.AsFloat()), nil
	case string(lexer.NE):
		return boolNumber(l.AsFloat() != r.AsFloat()), nil
	case string(lexer.LT):
		return boolNumber(l.AsFloat() < r.AsFloat()), nil
	case string(lexer.GT):
		return boolNumber(l.AsFloat() > r.AsFloat()), nil
	case string(lexer.LTE):
		return boolNumber(l.AsFloat() <= r.AsFloat()), nil
	case string(lexer.GTE):
		return boolNumber(l.AsFloat() >= r.AsFloat()), nil
	case "and":
		return boolNumber(l.Truthy() && r.Truthy()), nil
	case "or":
		return boolNumber(l.Truthy() || r.Truthy()), nil
	}
	return nil, langerr.NewRuntime(start, end, "illegal operation: number "+op+" number", nil)
}

func arith(l, r values.Number, intOp func(a, b int64) int64, floatOp func(a, b float64) float64) values.Number {
	if l.IsFloat || r.IsFloat {
		return values.Float(floatOp(l.AsFloat(), r.AsFloat()))
	}
	return values.Int(intOp(l.Int, r.Int))
}

func stringOp(op string, l, r values.Str, start, end position.Position) (values.Value, *langerr.Error) {
	switch op {
	case string(lexer.PLUS):
		return values.Str{Value: l.Value + r.Value}, nil
	case string(lexer.EE):
		return boolNumber(l.Value == r.Value), nil
	case string(lexer.NE):
		return boolNumber(l.Value != r.Value), nil
	case string(lexer.LT):
		return boolNumber(l.Value < r.Value), nil
	case string(lexer.GT):
		return boolNumber(l.Value > r.Value), nil
	case string(lexer.LTE):
		return boolNumber(l.Value <= r.Value), nil
	case string(lexer.GTE):
		return boolNumber(l.Value >= r.Value), nil
	}
	return nil, langerr.NewRuntime(start, end, "illegal operation: string "+op+" string", nil)
}

func repeatString(s values.Str, n values.Number) values.Value {
	count := n.Int
	if n.IsFloat {
		count = int64(n.Float)
	}
	out := ""
	for i := int64(0); i < count; i++ {
		out += s.Value
	}
	return values.Str{Value: out}
}

// listOp implements the tutorial-standard overload of arithmetic on
// lists: `+` appends a value, `-` removes the element at an index,
// `*` extends with another list's elements, `/` indexes a single
// element out. Mutates the receiver's backing slice in place and
// returns it, so `assign xs = xs + 1` reads naturally while aliasing
// is still visible to anyone else holding the same *List.
func (e *Evaluator) listOp(op string, l *values.List, right values.Value, start, end position.Position) (values.Value, *langerr.Error) {
	switch op {
	case string(lexer.PLUS):
		l.Elements = append(l.Elements, right)
		return l, nil

	case string(lexer.MINUS):
		idx, ok := right.(values.Number)
		if !ok {
			return nil, langerr.NewRuntime(start, end, "list removal index must be a number", nil)
		}
		i := int(idx.Int)
		if i < 0 || i >= len(l.Elements) {
			return nil, langerr.NewRuntime(start, end, "list index out of range", nil)
		}
		l.Elements = append(l.Elements[:i], l.Elements[i+1:]...)
		return l, nil

	case string(lexer.MUL):
		other, ok := right.(*values.List)
		if !ok {
			return nil, langerr.NewRuntime(start, end, "can only extend a list with another list", nil)
		}
		l.Elements = append(l.Elements, other.Elements...)
		return l, nil

	case string(lexer.DIV):
		idx, ok := right.(values.Number)
		if !ok {
			return nil, langerr.NewRuntime(start, end, "list index must be a number", nil)
		}
		i := int(idx.Int)
		if i < 0 || i >= len(l.Elements) {
			return nil, langerr.NewRuntime(start, end, "list index out of range", nil)
		}
		return l.Elements[i], nil
	}
	return nil, langerr.NewRuntime(start, end, "illegal operation: list "+op+" "+string(right.Type()), nil)
}

func (e *Evaluator) unaryOp(op string, operand values.Value, start, end position.Position) (values.Value, *langerr.Error) {
	switch op {
	case string(lexer.MINUS):
		n, ok := operand.(values.Number)
		if !ok {
			return nil, e.runtimeErrf(start, end, "illegal operation: -%s", operand.Type())
		}
		return numberOp(string(lexer.MUL), n, values.Int(-1), start, end)
	case string(lexer.PLUS):
		if _, ok := operand.(values.Number); !ok {
			return nil, e.runtimeErrf(start, end, "illegal operation: +%s", operand.Type())
		}
		return operand, nil
	case "not":
		return boolNumber(!operand.Truthy()), nil
	}
	return nil, e.runtimeErrf(start, end, "illegal unary operation: %s", op)
}

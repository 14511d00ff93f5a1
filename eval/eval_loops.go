/*
File   : spylang/eval/eval_loops.go

`each ... in` and `chase` loop evaluation. Grounded on the teacher's
eval_loops.go two-level scoping (a loop-persistent scope plus a fresh
per-iteration scope), generalized to SpyLang's distinct Signal type in
place of the teacher's std.BreakType/ContinueType sentinel checks.
*/
package eval

import (
	"spylang/langerr"
	"spylang/parser"
	"spylang/scope"
	"spylang/values"
)

func (e *Evaluator) evalFor(n parser.ForNode, env *scope.Scope) (values.Value, Signal, *langerr.Error) {
	iterable, _, err := e.Eval(n.Iterable, env)
	if err != nil {
		return nil, noSignal, err
	}

	loopScope := scope.New(env)

	run := func(item values.Value) (Signal, *langerr.Error) {
		iterScope := scope.New(loopScope)
		iterScope.Declare(n.VarName, item)
		_, sig, err := e.evalBlock(n.Body, iterScope)
		return sig, err
	}

	switch it := iterable.(type) {
	case values.Range:
		// Inclusive of End (spec.md §3/§8: `1..3` yields 1,2,3). A
		// descending bound (Start > End) iterates zero times rather than
		// counting down.
		for i := it.Start; i <= it.End; i++ {
			sig, err := run(values.Int(i))
			if err != nil {
				return nil, noSignal, err
			}
			if sig.Kind == signalBreak {
				break
			}
			if sig.Kind == signalReturn {
				return sig.Value, sig, nil
			}
		}
	case *values.List:
		for _, item := range it.Elements {
			sig, err := run(item)
			if err != nil {
				return nil, noSignal, err
			}
			if sig.Kind == signalBreak {
				break
			}
			if sig.Kind == signalReturn {
				return sig.Value, sig, nil
			}
		}
	case values.Str:
		// One single-byte Str per byte of the string.
		for i := 0; i < len(it.Value); i++ {
			sig, err := run(values.Str{Value: it.Value[i : i+1]})
			if err != nil {
				return nil, noSignal, err
			}
			if sig.Kind == signalBreak {
				break
			}
			if sig.Kind == signalReturn {
				return sig.Value, sig, nil
			}
		}
	default:
		start, end := n.Pos()
		return nil, noSignal, e.runtimeErrf(start, end, "'%s' is not iterable", iterable.Type())
	}

	return values.Null{}, noSignal, nil
}

func (e *Evaluator) evalWhile(n parser.WhileNode, env *scope.Scope) (values.Value, Signal, *langerr.Error) {
	loopScope := scope.New(env)
	for {
		condVal, _, err := e.Eval(n.Condition, loopScope)
		if err != nil {
			return nil, noSignal, err
		}
		if !condVal.Truthy() {
			break
		}
		iterScope := scope.New(loopScope)
		_, sig, err := e.evalBlock(n.Body, iterScope)
		if err != nil {
			return nil, noSignal, err
		}
		if sig.Kind == signalBreak {
			break
		}
		if sig.Kind == signalReturn {
			return sig.Value, sig, nil
		}
	}
	return values.Null{}, noSignal, nil
}

/*
File   : spylang/eval/run_source.go

RunSource lexes and parses a full source string, then evaluates it
against the root scope — the shared path the top-level file/REPL
runner and the `launch` builtin both go through, grounded in the
teacher's executeFileWithRecovery (main/main.go) parse-then-eval
sequencing.
*/
package eval

import (
	"spylang/langerr"
	"spylang/lexer"
	"spylang/parser"
	"spylang/values"
)

func (e *Evaluator) RunSource(fileName, src string) (values.Value, *langerr.Error) {
	tokens, lexErr := lexer.New(fileName, src).Tokenize()
	if lexErr != nil {
		return nil, lexErr
	}
	stmts, parseErr := parser.New(tokens).Parse()
	if parseErr != nil {
		return nil, parseErr
	}
	return e.Run(stmts, e.Root)
}

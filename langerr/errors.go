/*
File   : spylang/langerr/errors.go

Package langerr defines the error kinds produced by every stage of the
SpyLang pipeline (lexer, parser, evaluator) and the traceback chain
that runtime errors accumulate as they unwind through nested calls.
Modeled on the teacher interpreter's habit of stamping every error
with the offending source position (see eval.Evaluator.CreateError),
generalized to the richer kind/traceback shape spec.md asks for.
*/
package langerr

import (
	"fmt"
	"strings"

	"spylang/position"
)

// Kind identifies which stage of the pipeline raised an error.
type Kind string

const (
	IllegalCharacter  Kind = "Illegal Character"
	ExpectedCharacter Kind = "Expected Character"
	InvalidSyntax     Kind = "Invalid Syntax"
	RuntimeError      Kind = "Runtime Error"
	KeyboardInterrupt Kind = "Keyboard Interrupt"
)

// Context is one frame of a runtime traceback: the call site that was
// executing, and a link to the frame that called it. DisplayName names
// the function (or "<program>" at the top level) that was running.
type Context struct {
	DisplayName    string
	ParentEntryPos *position.Position
	Parent         *Context
}

// NewContext creates a root execution context with no parent, used for
// the top-level script or REPL line being evaluated.
func NewContext(displayName string) *Context {
	return &Context{DisplayName: displayName}
}

// Child returns a new context nested inside c, recording the position
// in c from which the call that created the child was made.
func (c *Context) Child(displayName string, callSite position.Position) *Context {
	return &Context{DisplayName: displayName, ParentEntryPos: &callSite, Parent: c}
}

// Error is the single error type flowing out of every SpyLang stage.
// Lexical and syntax errors never populate Context; runtime errors
// always do, so their String() includes a traceback.
type Error struct {
	Kind    Kind
	Start   position.Position
	End     position.Position
	Detail  string
	Context *Context
}

func (e *Error) Error() string {
	return e.String()
}

// String renders the full multi-line, human-readable error report:
// a tagged kind line, the file:line location, an optional traceback
// (runtime errors only), and the detail message. The caret-underlined
// source excerpt itself is left to the diagnostic package, an external
// collaborator that owns display formatting.
func (e *Error) String() string {
	var b strings.Builder
	if e.Context != nil {
		b.WriteString(e.traceback())
	}
	fmt.Fprintf(&b, "%s: %s\n", e.Kind, e.Detail)
	fmt.Fprintf(&b, "File %s, line %d", e.Start.FileName, e.Start.Line)
	return b.String()
}

// traceback walks the context chain from outermost call to innermost,
// one line per frame, the way a Python-style traceback reads.
func (e *Error) traceback() string {
	var frames []string
	ctx := e.Context
	pos := e.Start
	for ctx != nil {
		frames = append(frames, fmt.Sprintf("  File %s, line %d, in %s", pos.FileName, pos.Line, ctx.DisplayName))
		if ctx.ParentEntryPos == nil {
			break
		}
		pos = *ctx.ParentEntryPos
		ctx = ctx.Parent
	}
	// reverse: outer call site first, innermost frame last
	for i, j := 0, len(frames)-1; i < j; i, j = i+1, j-1 {
		frames[i], frames[j] = frames[j], frames[i]
	}
	return "Traceback (most recent call last):\n" + strings.Join(frames, "\n") + "\n"
}

// New builds a lexical or syntax error (no traceback).
func New(kind Kind, start, end position.Position, detail string) *Error {
	return &Error{Kind: kind, Start: start, End: end, Detail: detail}
}

// NewRuntime builds a runtime error carrying the given call context.
func NewRuntime(start, end position.Position, detail string, ctx *Context) *Error {
	return &Error{Kind: RuntimeError, Start: start, End: end, Detail: detail, Context: ctx}
}

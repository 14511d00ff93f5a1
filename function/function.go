/*
File   : spylang/function/function.go

Package function holds the two callable Value kinds — user-defined
missions and native builtins — kept apart from package values the same
way the teacher keeps its Function type in its own function package
rather than inside objects (see go-mix/function/function.go), because
a callable needs to reference the scope chain and scope needs to hold
values, and a single package can't import itself both ways.
*/
package function

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"spylang/langerr"
	"spylang/parser"
	"spylang/position"
	"spylang/scope"
	"spylang/values"
)

// Function is a user-defined mission. It captures a reference to the
// scope active at the point of definition — not a copy — so that
// mutations to captured variables made after the mission is created
// are visible the next time it's called, and so two missions closing
// over the same scope observe each other's writes.
type Function struct {
	Name       string
	ParamNames []string
	Body       []parser.Node
	Env        *scope.Scope
}

func (f *Function) Type() values.Type { return values.FunctionType }
func (f *Function) Truthy() bool      { return true }

func (f *Function) String() string {
	name := f.Name
	if name == "" {
		name = "anonymous"
	}
	return fmt.Sprintf("<mission %s(%s)>", name, strings.Join(f.ParamNames, ", "))
}

// Runtime is the interface a Builtin's callback uses to call back into
// the evaluator (needed by e.g. launch, which runs a sub-script
// against the shared root scope) and to reach the interpreter's I/O
// streams (needed by transmit/intel). Grounded in the teacher's
// std.Runtime/CallbackFunc split (go-mix/std/builtins.go).
type Runtime interface {
	Call(callee values.Value, args []values.Value, callSite position.Position) (values.Value, *langerr.Error)
	Stdout() io.Writer
	Stdin() *bufio.Reader
	// RootScope is the outermost environment, the one `launch` runs a
	// loaded script's statements against so top-level bindings it
	// creates become visible to the caller.
	RootScope() *scope.Scope
	// RunSource lexes, parses, and evaluates src as a full program
	// against RootScope(), for `launch` to load a sub-script without
	// builtins needing to import the evaluator package directly.
	RunSource(fileName, src string) (values.Value, *langerr.Error)
}

// BuiltinFunc is the Go implementation behind one builtin name.
type BuiltinFunc func(rt Runtime, args []values.Value, callSite position.Position) (values.Value, *langerr.Error)

// Builtin is a native function exposed to SpyLang programs under Name.
type Builtin struct {
	Name string
	Fn   BuiltinFunc
}

func (b *Builtin) Type() values.Type { return values.BuiltinType }
func (b *Builtin) Truthy() bool      { return true }
func (b *Builtin) String() string    { return fmt.Sprintf("<builtin %s>", b.Name) }

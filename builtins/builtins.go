/*
File   : spylang/builtins/builtins.go

Package builtins registers SpyLang's native function library and
global constants into a root scope.Scope. Grounded in the teacher's
std.Builtins registration pattern (go-mix/std/builtins.go's
Runtime/CallbackFunc split), narrowed to the fixed, thematically-named
function set SpyLang exposes instead of the teacher's large standard
library surface.
*/
package builtins

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"spylang/function"
	"spylang/langerr"
	"spylang/position"
	"spylang/scope"
	"spylang/values"
)

// Register installs every builtin function and constant into root.
func Register(root *scope.Scope) {
	root.Declare("ghost", values.Null{})
	root.Declare("true", values.Int(1))
	root.Declare("false", values.Int(0))
	root.Declare("math_pi", values.Float(3.141592653589793))

	for _, b := range []*function.Builtin{
		{Name: "transmit", Fn: transmit},
		{Name: "intel", Fn: intel},
		{Name: "intel_int", Fn: intelInt},
		{Name: "erase", Fn: erase},
		{Name: "is_code", Fn: isCode},
		{Name: "is_msg", Fn: isMsg},
		{Name: "is_list", Fn: isList},
		{Name: "is_mission", Fn: isMission},
		{Name: "add_agent", Fn: addAgent},
		{Name: "withdraw", Fn: withdraw},
		{Name: "expand", Fn: expand},
		{Name: "length", Fn: length},
		{Name: "launch", Fn: launch},
	} {
		root.Declare(b.Name, b)
	}
}

func argError(name string, start position.Position, format string, args ...any) *langerr.Error {
	msg := fmt.Sprintf(format, args...)
	return langerr.NewRuntime(start, start, name+": "+msg, nil)
}

// transmit writes every argument, space-separated, followed by a
// newline, and returns the empty string rather than ghost (decided in
// SPEC_FULL.md §6) so `assign ack = transmit("sent")` chains cleanly.
func transmit(rt function.Runtime, args []values.Value, start position.Position) (values.Value, *langerr.Error) {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = a.String()
	}
	fmt.Fprintln(rt.Stdout(), strings.Join(parts, " "))
	return values.Str{Value: ""}, nil
}

// intel reads one line from standard input, printing its optional
// prompt argument first without a trailing newline.
func intel(rt function.Runtime, args []values.Value, start position.Position) (values.Value, *langerr.Error) {
	if len(args) > 0 {
		fmt.Fprint(rt.Stdout(), args[0].String())
	}
	line, err := readLine(rt.Stdin())
	if err != nil {
		return nil, argError("intel", start, "failed to read input: %v", err)
	}
	return values.Str{Value: line}, nil
}

// intelInt behaves like intel but re-prompts, without returning
// control to the caller, until the entered line parses as an integer
// (the Open Question resolution recorded in SPEC_FULL.md §6).
func intelInt(rt function.Runtime, args []values.Value, start position.Position) (values.Value, *langerr.Error) {
	prompt := ""
	if len(args) > 0 {
		prompt = args[0].String()
	}
	for {
		if prompt != "" {
			fmt.Fprint(rt.Stdout(), prompt)
		}
		line, err := readLine(rt.Stdin())
		if err != nil {
			return nil, argError("intel_int", start, "failed to read input: %v", err)
		}
		n, convErr := strconv.ParseInt(strings.TrimSpace(line), 10, 64)
		if convErr == nil {
			return values.Int(n), nil
		}
		fmt.Fprintln(rt.Stdout(), "not a whole number, try again")
	}
}

func readLine(r *bufio.Reader) (string, error) {
	line, err := r.ReadString('\n')
	return strings.TrimRight(line, "\r\n"), onlyRealError(err)
}

func onlyRealError(err error) error {
	if err != nil && err.Error() == "EOF" {
		return nil
	}
	return err
}

// erase clears the terminal, the one SpyLang builtin with a pure
// side effect and no useful return value.
func erase(rt function.Runtime, args []values.Value, start position.Position) (values.Value, *langerr.Error) {
	fmt.Fprint(rt.Stdout(), "\033[H\033[2J")
	return values.Null{}, nil
}

func isCode(rt function.Runtime, args []values.Value, start position.Position) (values.Value, *langerr.Error) {
	return predicate(args, start, "is_code", func(v values.Value) bool {
		_, ok := v.(values.Number)
		return ok
	})
}

func isMsg(rt function.Runtime, args []values.Value, start position.Position) (values.Value, *langerr.Error) {
	return predicate(args, start, "is_msg", func(v values.Value) bool {
		_, ok := v.(values.Str)
		return ok
	})
}

func isList(rt function.Runtime, args []values.Value, start position.Position) (values.Value, *langerr.Error) {
	return predicate(args, start, "is_list", func(v values.Value) bool {
		_, ok := v.(*values.List)
		return ok
	})
}

func isMission(rt function.Runtime, args []values.Value, start position.Position) (values.Value, *langerr.Error) {
	return predicate(args, start, "is_mission", func(v values.Value) bool {
		switch v.(type) {
		case *function.Function, *function.Builtin:
			return true
		}
		return false
	})
}

func predicate(args []values.Value, start position.Position, name string, pred func(values.Value) bool) (values.Value, *langerr.Error) {
	if len(args) != 1 {
		return nil, argError(name, start, "expects exactly 1 argument, got %d", len(args))
	}
	if pred(args[0]) {
		return values.Int(1), nil
	}
	return values.Int(0), nil
}

// addAgent appends a value onto a list in place, returning ghost.
func addAgent(rt function.Runtime, args []values.Value, start position.Position) (values.Value, *langerr.Error) {
	if len(args) != 2 {
		return nil, argError("add_agent", start, "expects exactly 2 arguments, got %d", len(args))
	}
	list, ok := args[0].(*values.List)
	if !ok {
		return nil, argError("add_agent", start, "first argument must be a list")
	}
	list.Elements = append(list.Elements, args[1])
	return values.Null{}, nil
}

// withdraw removes and returns the element at an index.
func withdraw(rt function.Runtime, args []values.Value, start position.Position) (values.Value, *langerr.Error) {
	if len(args) != 2 {
		return nil, argError("withdraw", start, "expects exactly 2 arguments, got %d", len(args))
	}
	list, ok := args[0].(*values.List)
	if !ok {
		return nil, argError("withdraw", start, "first argument must be a list")
	}
	idx, ok := args[1].(values.Number)
	if !ok {
		return nil, argError("withdraw", start, "second argument must be a number")
	}
	i := int(idx.Int)
	if i < 0 || i >= len(list.Elements) {
		return nil, argError("withdraw", start, "index out of range")
	}
	removed := list.Elements[i]
	list.Elements = append(list.Elements[:i], list.Elements[i+1:]...)
	return removed, nil
}

// expand extends the first list with the second list's elements in
// place, returning ghost.
func expand(rt function.Runtime, args []values.Value, start position.Position) (values.Value, *langerr.Error) {
	if len(args) != 2 {
		return nil, argError("expand", start, "expects exactly 2 arguments, got %d", len(args))
	}
	dst, ok := args[0].(*values.List)
	if !ok {
		return nil, argError("expand", start, "first argument must be a list")
	}
	src, ok := args[1].(*values.List)
	if !ok {
		return nil, argError("expand", start, "second argument must be a list")
	}
	dst.Elements = append(dst.Elements, src.Elements...)
	return values.Null{}, nil
}

// length reports the element count of a list or the byte length of a
// string.
func length(rt function.Runtime, args []values.Value, start position.Position) (values.Value, *langerr.Error) {
	if len(args) != 1 {
		return nil, argError("length", start, "expects exactly 1 argument, got %d", len(args))
	}
	switch v := args[0].(type) {
	case *values.List:
		return values.Int(int64(len(v.Elements))), nil
	case values.Str:
		return values.Int(int64(len(v.Value))), nil
	}
	return nil, argError("length", start, "argument has no length")
}

// launch reads and runs a SpyLang source file against the shared root
// scope, so top-level assigns and mission definitions it makes become
// visible to the caller — the one builtin that touches the
// filesystem, kept on stdlib os/io since no pack-supplied file
// abstraction fits a single-shot "load and run" operation this small.
func launch(rt function.Runtime, args []values.Value, start position.Position) (values.Value, *langerr.Error) {
	if len(args) != 1 {
		return nil, argError("launch", start, "expects exactly 1 argument, got %d", len(args))
	}
	pathVal, ok := args[0].(values.Str)
	if !ok {
		return nil, argError("launch", start, "argument must be a string path")
	}

	raw, err := os.ReadFile(pathVal.Value)
	if err != nil {
		return nil, argError("launch", start, "could not read %q: %v", pathVal.Value, err)
	}
	src := strings.ReplaceAll(string(raw), "\r\n", "\n")

	return rt.RunSource(pathVal.Value, src)
}

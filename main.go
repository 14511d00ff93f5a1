/*
File   : spylang/main.go

CLI dispatch: no arguments starts the interactive shell, one argument
is treated as a source file to run in batch mode. Adapted from the
teacher's main/main.go executeFileWithRecovery flow (parse, check
errors, evaluate, print result or error, exit 1 on failure), narrowed
to the two modes SpyLang's external interface names (interactive shell
and batch run) and dropping the teacher's `server` mode, which has no
place in a single-process scripting language.
*/
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"

	"spylang/builtins"
	"spylang/diagnostic"
	"spylang/eval"
	"spylang/repl"
)

const (
	banner  = "S P Y L A N G"
	version = "1.0"
	author  = "Classified"
	license = "MIT"
	line    = "----------------------------------------"
	prompt  = "SpyLang > "
)

func main() {
	args := os.Args[1:]

	switch {
	case len(args) == 0:
		repl.New(banner, version, author, line, license, prompt).Start(os.Stdin, os.Stdout)

	case args[0] == "--help" || args[0] == "-h":
		printUsage(os.Stdout)

	case args[0] == "--version" || args[0] == "-v":
		fmt.Println("SpyLang " + version)

	default:
		if !runFile(args[0]) {
			os.Exit(1)
		}
	}
}

func printUsage(w *os.File) {
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  spylang                start the interactive shell")
	fmt.Fprintln(w, "  spylang <file.spy>      run a mission file")
	fmt.Fprintln(w, "  spylang --version       print the interpreter version")
}

// runFile loads and evaluates path in batch mode, reporting whether
// the run finished without a reported error (SPEC_FULL.md §6: exit 0
// on success, 1 on a reported error).
func runFile(path string) bool {
	raw, err := os.ReadFile(path)
	if err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "could not read %q: %v\n", path, err)
		return false
	}
	src := strings.ReplaceAll(string(raw), "\r\n", "\n")

	ev := eval.New(os.Stdout, bufio.NewReader(os.Stdin))
	builtins.Register(ev.Root)

	_, runErr := ev.RunSource(path, src)
	if runErr != nil {
		red := color.New(color.FgRed)
		red.Fprintln(os.Stderr, runErr.String())
		if arrow := diagnostic.Arrow(runErr.Start, runErr.End); arrow != "" {
			red.Fprintln(os.Stderr, arrow)
		}
		return false
	}

	return true
}

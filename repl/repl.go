/*
File   : spylang/repl/repl.go

Package repl implements SpyLang's interactive shell: readline-backed
line editing and history, colored result/error output, one line of
source evaluated per prompt. Adapted from the teacher's Repl/Start
(go-mix/repl/repl.go), swapped to drive an eval.Evaluator instead of
go-mix's evaluator and to recognize SpyLang's own exit phrase.
*/
package repl

import (
	"bufio"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"spylang/builtins"
	"spylang/eval"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl holds the cosmetic configuration for an interactive session.
type Repl struct {
	Banner  string
	Version string
	Author  string
	Line    string
	License string
	Prompt  string
}

// New creates a Repl ready to Start.
func New(banner, version, author, line, license, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, License: license, Prompt: prompt}
}

func (r *Repl) printBanner(w io.Writer) {
	blueColor.Fprintf(w, "%s\n", r.Line)
	greenColor.Fprintf(w, "%s\n", r.Banner)
	blueColor.Fprintf(w, "%s\n", r.Line)
	yellowColor.Fprintln(w, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)
	blueColor.Fprintf(w, "%s\n", r.Line)
	cyanColor.Fprintf(w, "%s\n", "Welcome, agent.")
	cyanColor.Fprintf(w, "%s\n", "Type your orders and press enter.")
	cyanColor.Fprintf(w, "%s\n", "Type '.exit' to stand down.")
	blueColor.Fprintf(w, "%s\n", r.Line)
}

// Start runs the read-eval-print loop against writer until the user
// exits (`.exit` or Ctrl-D/EOF), sharing one Evaluator (and so one
// root scope) across every line entered.
func (r *Repl) Start(reader io.Reader, writer io.Writer) {
	r.printBanner(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		redColor.Fprintf(writer, "could not start line editor: %v\n", err)
		return
	}
	defer rl.Close()

	ev := eval.New(writer, bufio.NewReader(reader))
	builtins.Register(ev.Root)

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("mission control signing off.\n"))
			break
		}

		line = strings.Trim(line, " \t\r\n")
		if line == "" {
			continue
		}
		if line == ".exit" {
			writer.Write([]byte("mission control signing off.\n"))
			break
		}
		rl.SaveHistory(line)

		r.evalLine(writer, line, ev)
	}
}

func (r *Repl) evalLine(writer io.Writer, line string, ev *eval.Evaluator) {
	result, err := ev.RunSource("<stdin>", line)
	if err != nil {
		redColor.Fprintf(writer, "%s\n", err.String())
		return
	}
	if result != nil {
		yellowColor.Fprintf(writer, "%s\n", result.String())
	}
}

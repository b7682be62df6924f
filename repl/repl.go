// Package repl implements a read-eval-print loop for lispy.
package repl

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/bmatsuo/lispy/lisp"
	"github.com/bmatsuo/lispy/parser"
)

// ErrInterrupt is returned by a LineReader when the user interrupts input.
// Any partially entered expression is discarded.
var ErrInterrupt = errors.New("interrupt")

// LineReader reads lines of source text.  Readline returns io.EOF when there
// is no more input.
type LineReader interface {
	Readline() (string, error)
}

// Prompter is implemented by LineReaders which display a prompt.
type Prompter interface {
	SetPrompt(prompt string)
}

// Run reads lines from r and evaluates them in env until r returns io.EOF.
// The forms on a line are read and evaluated one at a time, in order, and the
// first error discards the rest of the line.  A form left incomplete at the
// end of a line continues on the next line.  Results are written to w and
// errors are written to errw.  Run returns an error only if r fails.
func Run(env *lisp.LEnv, r LineReader, w, errw io.Writer, prompt string) error {
	contPrompt := strings.Repeat(" ", len(prompt)) // prompt had better be ascii...
	setPrompt := func(p string) {
		if pr, ok := r.(Prompter); ok {
			pr.SetPrompt(p)
		}
	}
	setPrompt(prompt)

	// pending holds the tokens of a form which has not been completed.
	var pending []string
	for {
		line, err := r.Readline()
		if errors.Is(err, ErrInterrupt) {
			pending = nil
			setPrompt(prompt)
			continue
		}
		if err == io.EOF {
			if len(pending) != 0 {
				errln(errw, "discarding incomplete expression")
			}
			return nil
		}
		if err != nil {
			return err
		}
		tokens := parser.Tokenize(line)
		if len(pending) == 0 && len(tokens) == 0 {
			continue
		}
		pending = evalTokens(env, append(pending, tokens...), w, errw)
		if len(pending) == 0 {
			setPrompt(prompt)
		} else {
			setPrompt(contPrompt)
		}
	}
}

// evalTokens reads and evaluates forms from tokens until they are exhausted
// or an error occurs.  The tokens of a trailing incomplete form are returned.
func evalTokens(env *lisp.LEnv, tokens []string, w, errw io.Writer) []string {
	for len(tokens) > 0 {
		rest := tokens
		expr, err := parser.ReadFrom(&rest)
		if parser.IsIncomplete(err) {
			return tokens
		}
		tokens = rest
		if err != nil {
			errln(errw, err)
			return nil
		}
		v := lisp.Evaluate(expr, env)
		if v.Type == lisp.LError {
			errln(errw, v)
			if env.Runtime.Trace != nil && v.Stack != nil {
				v.Stack.DebugPrint(errw)
			}
			return nil
		}
		if !v.IsNil() {
			fmt.Fprintln(w, v)
		}
	}
	return nil
}

func errln(w io.Writer, v ...interface{}) {
	fmt.Fprintln(w, v...)
}

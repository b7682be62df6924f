package repl

import (
	"io"
	"os"
)

// Line editors supported by RunRepl.
const (
	EditorReadline = "readline"
	EditorLiner    = "liner"
)

// DefaultPrompt is the prompt used when none is configured.
const DefaultPrompt = "lispy> "

type options struct {
	prompt      string
	editor      string
	historyFile string
	stdout      io.Writer
	stderr      io.Writer
}

func defaultOptions() *options {
	return &options{
		prompt: DefaultPrompt,
		editor: EditorReadline,
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
}

// Option configures RunRepl.
type Option func(*options)

// WithPrompt sets the prompt displayed before each expression.
func WithPrompt(prompt string) Option {
	return func(o *options) {
		o.prompt = prompt
	}
}

// WithEditor selects the line editor, EditorReadline or EditorLiner.
func WithEditor(name string) Option {
	return func(o *options) {
		o.editor = name
	}
}

// WithHistoryFile makes the line editor load and save input history in path.
func WithHistoryFile(path string) Option {
	return func(o *options) {
		o.historyFile = path
	}
}

// WithOutput sets the writers receiving results and errors.
func WithOutput(stdout, stderr io.Writer) Option {
	return func(o *options) {
		o.stdout = stdout
		o.stderr = stderr
	}
}

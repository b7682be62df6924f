package repl

import (
	"fmt"
	"os"
	"strings"

	"github.com/bmatsuo/lispy/lisp"
	"github.com/chzyer/readline"
	"github.com/peterh/liner"
)

// RunRepl runs an interactive repl on the terminal, evaluating expressions in
// env.
func RunRepl(env *lisp.LEnv, opts ...Option) error {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	var (
		r   editor
		err error
	)
	switch o.editor {
	case EditorReadline, "":
		r, err = newReadlineEditor(o)
	case EditorLiner:
		r = newLinerEditor(env, o)
	default:
		return fmt.Errorf("unknown line editor: %q", o.editor)
	}
	if err != nil {
		return err
	}
	defer r.Close()
	err = Run(env, r, o.stdout, o.stderr, o.prompt)
	if err != nil {
		return err
	}
	errln(o.stderr, "done")
	return nil
}

type editor interface {
	LineReader
	Prompter
	Close() error
}

type readlineEditor struct {
	rl *readline.Instance
}

func newReadlineEditor(o *options) (*readlineEditor, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:      o.prompt,
		HistoryFile: o.historyFile,
		Stdout:      o.stdout,
		Stderr:      o.stderr,
	})
	if err != nil {
		return nil, err
	}
	return &readlineEditor{rl}, nil
}

func (e *readlineEditor) Readline() (string, error) {
	line, err := e.rl.Readline()
	if err == readline.ErrInterrupt {
		return "", ErrInterrupt
	}
	return line, err
}

func (e *readlineEditor) SetPrompt(prompt string) {
	e.rl.SetPrompt(prompt)
}

func (e *readlineEditor) Close() error {
	return e.rl.Close()
}

type linerEditor struct {
	state       *liner.State
	prompt      string
	historyFile string
}

func newLinerEditor(env *lisp.LEnv, o *options) *linerEditor {
	state := liner.NewLiner()
	state.SetCtrlCAborts(true)
	state.SetCompleter(func(line string) []string {
		return Complete(env, line)
	})
	if o.historyFile != "" {
		if f, err := os.Open(o.historyFile); err == nil {
			_, _ = state.ReadHistory(f)
			_ = f.Close()
		}
	}
	return &linerEditor{
		state:       state,
		prompt:      o.prompt,
		historyFile: o.historyFile,
	}
}

func (e *linerEditor) Readline() (string, error) {
	line, err := e.state.Prompt(e.prompt)
	if err == liner.ErrPromptAborted {
		return "", ErrInterrupt
	}
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(line) != "" {
		e.state.AppendHistory(line)
	}
	return line, nil
}

func (e *linerEditor) SetPrompt(prompt string) {
	e.prompt = prompt
}

func (e *linerEditor) Close() error {
	if e.historyFile != "" {
		if f, err := os.Create(e.historyFile); err == nil {
			_, _ = e.state.WriteHistory(f)
			_ = f.Close()
		}
	}
	return e.state.Close()
}

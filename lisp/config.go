package lisp

import (
	"io"
	"log"
	"os"
)

// Config is a function that configures a root environment or its runtime.
type Config func(env *LEnv) *LVal

// Runtime is the state shared by a root environment and all of its
// descendants.
type Runtime struct {
	// Stderr receives debugging output.  When Stderr is nil os.Stderr is
	// used.
	Stderr io.Writer

	// Trace, when non-nil, logs every procedure application.
	Trace *log.Logger

	// Stack holds a frame for each procedure application currently being
	// evaluated.
	Stack *CallStack
}

func (rt *Runtime) stderr() io.Writer {
	if rt.Stderr == nil {
		return os.Stderr
	}
	return rt.Stderr
}

// WithStderr returns a Config that makes environments write debugging output
// to w instead of the default, os.Stderr.
func WithStderr(w io.Writer) Config {
	return func(env *LEnv) *LVal {
		env.Runtime.Stderr = w
		return Nil()
	}
}

// WithTrace returns a Config that logs each procedure application and its
// result to w.  If w is nil trace output is written to the runtime's stderr.
func WithTrace(w io.Writer) Config {
	return func(env *LEnv) *LVal {
		if w == nil {
			w = env.Runtime.stderr()
		}
		env.Runtime.Trace = log.New(w, "trace: ", 0)
		return Nil()
	}
}

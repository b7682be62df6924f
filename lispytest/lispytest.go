// Package lispytest runs sequences of lisp expressions against isolated root
// environments and checks the rendering of each result.
package lispytest

import (
	"testing"

	"github.com/bmatsuo/lispy/lisp"
	"github.com/bmatsuo/lispy/lisp/lisplib"
	"github.com/bmatsuo/lispy/parser"
)

// TestSequence is a sequence of lisp expressions which are evaluated sequentially
// by a lisp.LEnv.
type TestSequence []struct {
	Expr   string // a lisp expression
	Result string // the evaluated result
}

// TestSuite is a set of named TestSequences
type TestSuite []struct {
	Name string
	TestSequence
}

// NewEnv returns a new root environment for a test.
func NewEnv(t testing.TB, config ...lisp.Config) *lisp.LEnv {
	t.Helper()
	env, err := lisplib.NewRootEnv(config...)
	if err != nil {
		t.Fatalf("Failed to initialize lisp environment: %v", err)
	}
	return env
}

// EvalString reads the first expression in expr and evaluates it in env.
// Errors are returned as LError values so that they can be compared by their
// rendering like any other result.
func EvalString(env *lisp.LEnv, expr string) *lisp.LVal {
	v, err := parser.Read(expr)
	if err != nil {
		return lisp.Error(err)
	}
	return lisp.Evaluate(v, env)
}

// RunTestSuite runs each TestSequence in tests on isolated lisp.LEnvs.
func RunTestSuite(t *testing.T, tests TestSuite) {
	for i, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			env := NewEnv(t)
			for j, expr := range test.TestSequence {
				result := EvalString(env, expr.Expr).String()
				if result != expr.Result {
					t.Errorf("test %d %q: expr %d: expected result %s (got %s)", i, test.Name, j, expr.Result, result)
				}
			}
		})
	}
}

// Package lisplib is used to conveniently construct a root environment with
// the standard library loaded.
package lisplib

import (
	"github.com/bmatsuo/lispy/lisp"
	"github.com/bmatsuo/lispy/lisp/lisplib/libmath"
)

// LoadLibrary loads the standard library into env.
func LoadLibrary(env *lisp.LEnv) *lisp.LVal {
	e := libmath.LoadPackage(env)
	if !e.IsNil() {
		return e
	}
	return lisp.Nil()
}

// NewRootEnv returns a new root environment configured by config and
// populated with the language builtins and the standard library.  Every
// environment created during evaluation descends from the returned root.
func NewRootEnv(config ...lisp.Config) (*lisp.LEnv, error) {
	env := lisp.NewEnv(nil)
	lerr := lisp.InitializeUserEnv(env, config...)
	if lerr.Type == lisp.LError {
		return nil, lisp.GoError(lerr)
	}
	lerr = LoadLibrary(env)
	if lerr.Type == lisp.LError {
		return nil, lisp.GoError(lerr)
	}
	return env, nil
}

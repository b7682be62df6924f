// Package libutil contains helpers shared by the lisplib packages.
package libutil

import "github.com/bmatsuo/lispy/lisp"

// Builtin is a lisp.LBuiltinDef defined by a library package.
type Builtin struct {
	name    string
	formals *lisp.LVal
	fn      lisp.LBuiltin
}

var _ lisp.LBuiltinDef = (*Builtin)(nil)

// Function returns a Builtin with the given name, formal arguments and
// implementation.
func Function(name string, formals *lisp.LVal, fn lisp.LBuiltin) *Builtin {
	return &Builtin{name, formals, fn}
}

// Name implements lisp.LBuiltinDef.
func (fn *Builtin) Name() string {
	return fn.name
}

// Formals implements lisp.LBuiltinDef.
func (fn *Builtin) Formals() *lisp.LVal {
	return fn.formals
}

// Eval implements lisp.LBuiltinDef.
func (fn *Builtin) Eval(env *lisp.LEnv, args *lisp.LVal) *lisp.LVal {
	return fn.fn(env, args)
}

package lisp

import (
	"sort"
	"sync/atomic"
)

var envCount uint64

func getEnvID() uint {
	return uint(atomic.AddUint64(&envCount, 1))
}

// LEnv is a lisp environment.  An LEnv maps symbol names to values and is
// in the scope of its Parent's bindings.  The root environment has a nil
// Parent.
//
// LEnv values are shared by every closure created within them and must not
// be used concurrently.
type LEnv struct {
	ID      uint
	Scope   map[string]*LVal
	Parent  *LEnv
	Runtime *Runtime
}

// NewEnv returns initializes and returns a new LEnv.  If parent is nil a root
// environment with a fresh Runtime is returned.
func NewEnv(parent *LEnv) *LEnv {
	var rt *Runtime
	if parent != nil {
		rt = parent.Runtime
	} else {
		rt = &Runtime{Stack: &CallStack{}}
	}
	return &LEnv{
		ID:      getEnvID(),
		Scope:   make(map[string]*LVal),
		Parent:  parent,
		Runtime: rt,
	}
}

// NewEnvBindings returns a child of parent in which formals[i] is bound to
// args[i].  NewEnvBindings returns an arity-error if formals and args differ
// in length and a type-error if a formal is not a symbol.
func NewEnvBindings(formals, args []*LVal, parent *LEnv) (*LEnv, error) {
	if len(formals) != len(args) {
		return nil, NewError(CondArity, "function expects %d arguments (got %d)", len(formals), len(args))
	}
	env := NewEnv(parent)
	for i, sym := range formals {
		if sym.Type != LSymbol {
			return nil, NewError(CondType, "formal argument is not a symbol: %v", sym.Type)
		}
		env.Scope[sym.Str] = args[i]
	}
	return env, nil
}

// Root returns the root of env's chain of parents.
func (env *LEnv) Root() *LEnv {
	for env.Parent != nil {
		env = env.Parent
	}
	return env
}

// Find returns the innermost environment in env's chain that binds the
// symbol k.  Find returns an unbound-symbol error if no environment binds k.
func (env *LEnv) Find(k *LVal) (*LEnv, error) {
	if k.Type != LSymbol {
		return nil, NewError(CondType, "not a symbol: %v", k.Type)
	}
	for e := env; e != nil; e = e.Parent {
		if _, ok := e.Scope[k.Str]; ok {
			return e, nil
		}
	}
	return nil, NewError(CondUnboundSymbol, "%s", k.Str)
}

// Get takes an LSymbol k and returns the LVal it is bound to in env.  Get
// returns an LError if k is unbound.
func (env *LEnv) Get(k *LVal) *LVal {
	owner, err := env.Find(k)
	if err != nil {
		return Error(err)
	}
	return owner.Scope[k.Str]
}

// Put takes an LSymbol k and binds it to v in env, never in a parent.  Any
// binding of k in a parent environment is shadowed.
func (env *LEnv) Put(k, v *LVal) {
	if k.Type != LSymbol {
		panic("not a symbol: " + k.Type.String())
	}
	if v == nil {
		panic("nil value")
	}
	env.Scope[k.Str] = v
}

// Set rebinds the symbol k to v in the environment that currently binds k.
// Set returns an unbound-symbol error if k has no binding.
func (env *LEnv) Set(k, v *LVal) error {
	owner, err := env.Find(k)
	if err != nil {
		return err
	}
	owner.Scope[k.Str] = v
	return nil
}

// Symbols returns the sorted names of all symbols visible from env.
func (env *LEnv) Symbols() []string {
	seen := make(map[string]bool)
	var names []string
	for e := env; e != nil; e = e.Parent {
		for k := range e.Scope {
			if !seen[k] {
				seen[k] = true
				names = append(names, k)
			}
		}
	}
	sort.Strings(names)
	return names
}

package lisp

import "fmt"

// VarArgSymbol is the symbol that indicates a variadic function argument in a
// function's list of formal arguments.
const VarArgSymbol = "&"

// LBuiltinDef is a built-in function
type LBuiltinDef interface {
	Name() string
	Formals() *LVal
	Eval(env *LEnv, args *LVal) *LVal
}

type langBuiltin struct {
	name    string
	formals *LVal
	fun     LBuiltin
}

func (fun *langBuiltin) Name() string {
	return fun.name
}

func (fun *langBuiltin) Formals() *LVal {
	return fun.formals
}

func (fun *langBuiltin) Eval(env *LEnv, args *LVal) *LVal {
	return fun.fun(env, args)
}

var langBuiltins = []*langBuiltin{
	{"+", Formals("a", "b"), builtinAdd},
	{"-", Formals("a", "b"), builtinSub},
	{"*", Formals("a", "b"), builtinMul},
	{"/", Formals("a", "b"), builtinDiv},
	{">", Formals("a", "b"), builtinGT},
	{">=", Formals("a", "b"), builtinGEq},
	{"<", Formals("a", "b"), builtinLT},
	{"<=", Formals("a", "b"), builtinLEq},
}

// DefaultBuiltins returns the default set of LBuiltinDefs added to LEnv
// objects when LEnv.AddBuiltins is called without arguments.
func DefaultBuiltins() []LBuiltinDef {
	ops := make([]LBuiltinDef, len(langBuiltins))
	for i := range langBuiltins {
		ops[i] = langBuiltins[i]
	}
	return ops
}

// InitializeUserEnv applies config to env and binds the default builtins in
// it.  InitializeUserEnv should be called once on a root environment.
func InitializeUserEnv(env *LEnv, config ...Config) *LVal {
	for _, fn := range config {
		lerr := fn(env)
		if lerr.Type == LError {
			return lerr
		}
	}
	env.AddBuiltins()
	return Nil()
}

// AddBuiltins binds the given funs to their names in env.  When called with no
// arguments AddBuiltins adds the DefaultBuiltins to env.  AddBuiltins panics if
// a name is already bound.
func (env *LEnv) AddBuiltins(funs ...LBuiltinDef) {
	if len(funs) == 0 {
		funs = DefaultBuiltins()
	}
	for _, f := range funs {
		k := Symbol(f.Name())
		if _, err := env.Find(k); err == nil {
			panic("symbol already defined: " + f.Name())
		}
		env.Put(k, Fun(f.Name(), checkArity(f)))
	}
}

// checkArity wraps f so that it is only called with the number of arguments
// its formals permit.
func checkArity(f LBuiltinDef) LBuiltin {
	nargs, variadic := countFormals(f.Formals())
	return func(env *LEnv, args *LVal) *LVal {
		n := len(args.Cells)
		switch {
		case variadic && n < nargs:
			return Errorf(CondArity, "%s: expects at least %d arguments (got %d)", f.Name(), nargs, n)
		case !variadic && n != nargs:
			return Errorf(CondArity, "%s: expects %d arguments (got %d)", f.Name(), nargs, n)
		}
		return f.Eval(env, args)
	}
}

func countFormals(formals *LVal) (int, bool) {
	for i, sym := range formals.Cells {
		if sym.Str == VarArgSymbol {
			return i, true
		}
	}
	return len(formals.Cells), false
}

func builtinAdd(env *LEnv, args *LVal) *LVal {
	return binaryNumeric("+", args,
		func(a, b int) *LVal { return Int(a + b) },
		func(a, b float64) *LVal { return Float(a + b) })
}

func builtinSub(env *LEnv, args *LVal) *LVal {
	return binaryNumeric("-", args,
		func(a, b int) *LVal { return Int(a - b) },
		func(a, b float64) *LVal { return Float(a - b) })
}

func builtinMul(env *LEnv, args *LVal) *LVal {
	return binaryNumeric("*", args,
		func(a, b int) *LVal { return Int(a * b) },
		func(a, b float64) *LVal { return Float(a * b) })
}

func builtinDiv(env *LEnv, args *LVal) *LVal {
	return binaryNumeric("/", args,
		func(a, b int) *LVal {
			if b == 0 {
				return Errorf(CondArithmetic, "division by zero")
			}
			return Int(a / b)
		},
		func(a, b float64) *LVal { return Float(a / b) })
}

func builtinGT(env *LEnv, args *LVal) *LVal {
	return binaryNumeric(">", args,
		func(a, b int) *LVal { return Bool(a > b) },
		func(a, b float64) *LVal { return Bool(a > b) })
}

func builtinGEq(env *LEnv, args *LVal) *LVal {
	return binaryNumeric(">=", args,
		func(a, b int) *LVal { return Bool(a >= b) },
		func(a, b float64) *LVal { return Bool(a >= b) })
}

func builtinLT(env *LEnv, args *LVal) *LVal {
	return binaryNumeric("<", args,
		func(a, b int) *LVal { return Bool(a < b) },
		func(a, b float64) *LVal { return Bool(a < b) })
}

func builtinLEq(env *LEnv, args *LVal) *LVal {
	return binaryNumeric("<=", args,
		func(a, b int) *LVal { return Bool(a <= b) },
		func(a, b float64) *LVal { return Bool(a <= b) })
}

// binaryNumeric applies intOp when both arguments are ints and floatOp,
// after promoting ints to floats, otherwise.
func binaryNumeric(name string, args *LVal, intOp func(a, b int) *LVal, floatOp func(a, b float64) *LVal) *LVal {
	a, b := args.Cells[0], args.Cells[1]
	if err := checkNumeric(name, a, b); err != nil {
		return err
	}
	if a.Type == LInt && b.Type == LInt {
		return intOp(a.Int, b.Int)
	}
	return floatOp(ToFloat(a), ToFloat(b))
}

func checkNumeric(name string, vals ...*LVal) *LVal {
	for i, v := range vals {
		if !v.IsNumeric() {
			return Errorf(CondType, "%s: argument %d is not a number: %v", name, i+1, describe(v))
		}
	}
	return nil
}

func describe(v *LVal) string {
	if v.Type == LNil {
		return v.Type.String()
	}
	return fmt.Sprintf("%v (%v)", v, v.Type)
}

// ToFloat returns the value of the numeric LVal x as a float64.
func ToFloat(x *LVal) float64 {
	if x.Type == LFloat {
		return x.Float
	}
	return float64(x.Int)
}

// Package libmath binds the functions of the go math package in a lisp
// environment.  All functions accept ints or floats and return floats.
package libmath

import (
	"math"

	"github.com/bmatsuo/lispy/lisp"
	"github.com/bmatsuo/lispy/lisp/lisplib/internal/libutil"
)

// LoadPackage adds the math functions to env
func LoadPackage(env *lisp.LEnv) *lisp.LVal {
	defs := make([]lisp.LBuiltinDef, len(builtins))
	for i := range builtins {
		defs[i] = builtins[i]
	}
	env.AddBuiltins(defs...)
	return lisp.Nil()
}

// Names returns the names of the functions bound by LoadPackage.
func Names() []string {
	names := make([]string, len(builtins))
	for i := range builtins {
		names[i] = builtins[i].Name()
	}
	return names
}

var builtins = []*libutil.Builtin{
	unary("acos", math.Acos),
	unary("acosh", math.Acosh),
	unary("asin", math.Asin),
	unary("asinh", math.Asinh),
	unary("atan", math.Atan),
	binary("atan2", math.Atan2),
	unary("atanh", math.Atanh),
	unary("cbrt", math.Cbrt),
	unary("cos", math.Cos),
	unary("cosh", math.Cosh),
	unary("erf", math.Erf),
	unary("erfc", math.Erfc),
	unary("exp", math.Exp),
	libutil.Function("frexp", lisp.Formals("number"), builtinFrexp),
	unary("gamma", math.Gamma),
	binary("hypot", math.Hypot),
	libutil.Function("ldexp", lisp.Formals("frac", "exp"), builtinLdexp),
	libutil.Function("lgamma", lisp.Formals("number"), builtinLgamma),
	libutil.Function("log", lisp.Formals("number", lisp.VarArgSymbol, "base"), builtinLog),
	unary("log10", math.Log10),
	unary("log2", math.Log2),
	unary("sin", math.Sin),
	unary("sinh", math.Sinh),
	unary("sqrt", math.Sqrt),
	unary("tan", math.Tan),
	unary("tanh", math.Tanh),
}

func unary(name string, fn func(float64) float64) *libutil.Builtin {
	return libutil.Function(name, lisp.Formals("number"), func(env *lisp.LEnv, args *lisp.LVal) *lisp.LVal {
		x := args.Cells[0]
		if !x.IsNumeric() {
			return notNumber(name, x)
		}
		return lisp.Float(fn(lisp.ToFloat(x)))
	})
}

func binary(name string, fn func(float64, float64) float64) *libutil.Builtin {
	return libutil.Function(name, lisp.Formals("a", "b"), func(env *lisp.LEnv, args *lisp.LVal) *lisp.LVal {
		a, b := args.Cells[0], args.Cells[1]
		if !a.IsNumeric() {
			return notNumber(name, a)
		}
		if !b.IsNumeric() {
			return notNumber(name, b)
		}
		return lisp.Float(fn(lisp.ToFloat(a), lisp.ToFloat(b)))
	})
}

func builtinFrexp(env *lisp.LEnv, args *lisp.LVal) *lisp.LVal {
	x := args.Cells[0]
	if !x.IsNumeric() {
		return notNumber("frexp", x)
	}
	frac, exp := math.Frexp(lisp.ToFloat(x))
	return lisp.SExpr([]*lisp.LVal{lisp.Float(frac), lisp.Int(exp)})
}

const maxExp = 1 << 12

func builtinLdexp(env *lisp.LEnv, args *lisp.LVal) *lisp.LVal {
	frac, exp := args.Cells[0], args.Cells[1]
	if !frac.IsNumeric() {
		return notNumber("ldexp", frac)
	}
	if !exp.IsNumeric() {
		return notNumber("ldexp", exp)
	}
	e := exp.Int
	if exp.Type == lisp.LFloat {
		f := exp.Float
		if math.IsInf(f, 0) || f != math.Trunc(f) {
			return lisp.Errorf(lisp.CondType, "ldexp: exponent is not an integer: %v", exp)
		}
		// Exponents beyond this bound already overflow or underflow.
		f = math.Max(-maxExp, math.Min(maxExp, f))
		e = int(f)
	}
	return lisp.Float(math.Ldexp(lisp.ToFloat(frac), e))
}

func builtinLgamma(env *lisp.LEnv, args *lisp.LVal) *lisp.LVal {
	x := args.Cells[0]
	if !x.IsNumeric() {
		return notNumber("lgamma", x)
	}
	lgamma, sign := math.Lgamma(lisp.ToFloat(x))
	return lisp.SExpr([]*lisp.LVal{lisp.Float(lgamma), lisp.Int(sign)})
}

// (log x) is the natural logarithm of x and (log x b) is the logarithm of x
// in base b.
func builtinLog(env *lisp.LEnv, args *lisp.LVal) *lisp.LVal {
	if len(args.Cells) > 2 {
		return lisp.Errorf(lisp.CondArity, "log: expects at most 2 arguments (got %d)", len(args.Cells))
	}
	for _, x := range args.Cells {
		if !x.IsNumeric() {
			return notNumber("log", x)
		}
	}
	x := lisp.ToFloat(args.Cells[0])
	if len(args.Cells) == 1 {
		return lisp.Float(math.Log(x))
	}
	return lisp.Float(math.Log(x) / math.Log(lisp.ToFloat(args.Cells[1])))
}

func notNumber(name string, x *lisp.LVal) *lisp.LVal {
	return lisp.Errorf(lisp.CondType, "%s: argument is not a number: %v", name, x.Type)
}

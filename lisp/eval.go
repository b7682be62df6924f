package lisp

import (
	"sort"
	"strings"
)

// formKind is the syntactic shape of an expression.  The evaluator classifies
// an expression once and dispatches on its formKind.
type formKind uint

const (
	formInvalid formKind = iota
	formSymbol
	formLiteral
	formQuote
	formIf
	formSet
	formDefine
	formLambda
	formBegin
	formApply
)

var formKindStrings = []string{
	formInvalid: "INVALID",
	formSymbol:  "symbol",
	formLiteral: "literal",
	formQuote:   "quote",
	formIf:      "if",
	formSet:     "set!",
	formDefine:  "define",
	formLambda:  "lambda",
	formBegin:   "begin",
	formApply:   "application",
}

func (k formKind) String() string {
	if int(k) >= len(formKindStrings) {
		return formKindStrings[formInvalid]
	}
	return formKindStrings[k]
}

// specialForms maps the head symbol of a list to its special form.
var specialForms = map[string]formKind{
	"quote":  formQuote,
	"if":     formIf,
	"set!":   formSet,
	"define": formDefine,
	"lambda": formLambda,
	"begin":  formBegin,
}

// IsSpecialForm returns true if name is the head symbol of a special form.
func IsSpecialForm(name string) bool {
	_, ok := specialForms[name]
	return ok
}

// SpecialForms returns the sorted head symbols of the special forms.
func SpecialForms() []string {
	names := make([]string, 0, len(specialForms))
	for name := range specialForms {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func classify(v *LVal) formKind {
	switch v.Type {
	case LSymbol:
		return formSymbol
	case LSExpr:
		if len(v.Cells) > 0 && v.Cells[0].Type == LSymbol {
			if kind, ok := specialForms[v.Cells[0].Str]; ok {
				return kind
			}
		}
		return formApply
	default:
		return formLiteral
	}
}

// Evaluate evaluates expr in env and returns the resulting LVal.  Callers
// normally pass the root environment constructed by lisplib.NewRootEnv.
func Evaluate(expr *LVal, env *LEnv) *LVal {
	if env == nil {
		return Errorf(CondType, "no environment to evaluate expression in")
	}
	return env.Eval(expr)
}

// Eval evaluates v in the context (scope) of env and returns the resulting
// LVal.  Any error is returned as an LError value and stops evaluation of the
// enclosing expressions.
func (env *LEnv) Eval(v *LVal) *LVal {
	switch classify(v) {
	case formSymbol:
		return env.Get(v)
	case formQuote:
		return env.evalQuote(v)
	case formIf:
		return env.evalIf(v)
	case formSet:
		return env.evalSet(v)
	case formDefine:
		return env.evalDefine(v)
	case formLambda:
		return env.evalLambda(v)
	case formBegin:
		return env.evalBegin(v)
	case formApply:
		return env.evalApply(v)
	default:
		return v
	}
}

func (env *LEnv) evalApply(s *LVal) *LVal {
	if len(s.Cells) == 0 {
		return Errorf(CondType, "cannot apply an empty list")
	}
	vals := make([]*LVal, len(s.Cells))
	for i, c := range s.Cells {
		vals[i] = env.Eval(c)
		if vals[i].Type == LError {
			return vals[i]
		}
	}
	f := vals[0]
	if f.Type != LFun {
		return Errorf(CondType, "first element of expression is not a function: %v", f)
	}
	return env.Call(f, SExpr(vals[1:]))
}

// Call invokes LFun fun with the list of evaluated arguments args.  Builtins
// receive args directly.  A closure body is evaluated in a new child of the
// closure's environment which binds its formals to args.  An error returned
// by fun records the call stack at the point it was returned.
func (env *LEnv) Call(fun *LVal, args *LVal) *LVal {
	stack := env.Runtime.Stack
	trace := env.Runtime.Trace
	indent := strings.Repeat("  ", stack.Height())
	if trace != nil {
		trace.Printf("%s(%s%s", indent, funName(fun), argString(args))
	}
	stack.Push(funName(fun), args)
	r := call(env, fun, args)
	if r.Type == LError && r.Stack == nil {
		r.Stack = stack.Copy()
	}
	stack.Pop()
	if trace != nil {
		trace.Printf("%s=> %v", indent, r)
	}
	return r
}

func call(env *LEnv, fun *LVal, args *LVal) *LVal {
	if fun.Type != LFun {
		return Errorf(CondType, "not a function: %v", fun.Type)
	}
	if fun.Builtin != nil {
		return fun.Builtin(env, args)
	}
	callenv, err := NewEnvBindings(fun.Formals.Cells, args.Cells, fun.Env)
	if err != nil {
		return Error(err)
	}
	return callenv.Eval(fun.Body)
}

func funName(fun *LVal) string {
	if fun.Str != "" {
		return fun.Str
	}
	return "lambda"
}

func argString(args *LVal) string {
	s := exprString(args, "", ")")
	if len(args.Cells) == 0 {
		return s
	}
	return " " + s
}

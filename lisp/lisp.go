package lisp

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// LValType is the type of an LVal
type LValType uint

// Possible LValType values
const (
	LInvalid LValType = iota
	LNil
	LInt
	LFloat
	LBool
	LSymbol
	LSExpr
	LFun
	LError
)

var lvalTypeStrings = []string{
	LInvalid: "INVALID",
	LNil:     "nil",
	LInt:     "int",
	LFloat:   "float",
	LBool:    "bool",
	LSymbol:  "symbol",
	LSExpr:   "list",
	LFun:     "function",
	LError:   "error",
}

func (t LValType) String() string {
	if int(t) >= len(lvalTypeStrings) {
		return lvalTypeStrings[LInvalid]
	}
	return lvalTypeStrings[t]
}

// LBuiltin is a function that performs executes a lisp function.
type LBuiltin func(env *LEnv, args *LVal) *LVal

// LVal is a lisp value.  The same LVal representation is used for source
// code produced by the reader and for data returned by quote.
type LVal struct {
	Type LValType

	Int   int
	Float float64
	Bool  bool

	// Str holds the name of an LSymbol, the name of a builtin LFun and the
	// condition of an LError.
	Str string

	// Err is the underlying go error of an LError.
	Err error

	// Stack is the call stack at the point an LError was returned from a
	// function call.  Errors raised outside of any call have a nil Stack.
	Stack *CallStack

	// Cells contains the elements of an LSExpr.
	Cells []*LVal

	// Variables needed for function values
	Builtin LBuiltin
	Formals *LVal
	Body    *LVal
	Env     *LEnv
}

// Nil returns an LVal representing the absence of a value.
func Nil() *LVal {
	return &LVal{Type: LNil}
}

// Int returns an LVal representing the integer x.
func Int(x int) *LVal {
	return &LVal{
		Type: LInt,
		Int:  x,
	}
}

// Float returns an LVal representing the floating point number x.
func Float(x float64) *LVal {
	return &LVal{
		Type:  LFloat,
		Float: x,
	}
}

// Bool returns an LVal representing the native boolean x.
func Bool(x bool) *LVal {
	return &LVal{
		Type: LBool,
		Bool: x,
	}
}

// Symbol returns an LVal resprenting the symbol s
func Symbol(s string) *LVal {
	return &LVal{
		Type: LSymbol,
		Str:  s,
	}
}

// SExpr returns an LVal representing an S-expression, a list of cells.
func SExpr(cells []*LVal) *LVal {
	return &LVal{
		Type:  LSExpr,
		Cells: cells,
	}
}

// Fun returns an LVal representing a builtin function named name.
func Fun(name string, fn LBuiltin) *LVal {
	return &LVal{
		Type:    LFun,
		Str:     name,
		Builtin: fn,
	}
}

// Lambda returns an anonymous function that has formals as arguments and the
// given body, which may reference symbols specified in the list of formals.
// The returned function closes over env.
func Lambda(formals *LVal, body *LVal, env *LEnv) *LVal {
	return &LVal{
		Type:    LFun,
		Formals: formals,
		Body:    body,
		Env:     env,
	}
}

// Formals returns an LSExpr of symbols with the given names.
func Formals(argSymbols ...string) *LVal {
	cells := make([]*LVal, len(argSymbols))
	for i, name := range argSymbols {
		cells[i] = Symbol(name)
	}
	return SExpr(cells)
}

// IsNil returns true if v is the absent value.
func (v *LVal) IsNil() bool {
	return v == nil || v.Type == LNil
}

// IsNumeric returns true if v is an int or a float.
func (v *LVal) IsNumeric() bool {
	return v.Type == LInt || v.Type == LFloat
}

// IsBuiltin returns true if v is a function implemented in go.
func (v *LVal) IsBuiltin() bool {
	return v.Type == LFun && v.Builtin != nil
}

// IsTrue returns true if v is considered true in a conditional expression.
// Only nil and the boolean false are false.
func (v *LVal) IsTrue() bool {
	switch v.Type {
	case LNil:
		return false
	case LBool:
		return v.Bool
	default:
		return true
	}
}

// Len returns the number of cells in an LSExpr.
func (v *LVal) Len() int {
	return len(v.Cells)
}

func (v *LVal) String() string {
	switch v.Type {
	case LNil:
		return ""
	case LInt:
		return strconv.Itoa(v.Int)
	case LFloat:
		return formatFloat(v.Float)
	case LBool:
		return strconv.FormatBool(v.Bool)
	case LSymbol:
		return v.Str
	case LSExpr:
		return exprString(v, "(", ")")
	case LFun:
		if v.Builtin != nil {
			return fmt.Sprintf("<builtin %s>", v.Str)
		}
		return fmt.Sprintf("(lambda %v %v)", v.Formals, v.Body)
	case LError:
		return GoError(v).Error()
	default:
		return fmt.Sprintf("%#v", v)
	}
}

// formatFloat renders x the way it would be written in source so that
// integral values stay distinguishable from ints (4.0 rather than 4).
func formatFloat(x float64) string {
	s := strconv.FormatFloat(x, 'g', -1, 64)
	if strings.ContainsAny(s, ".eEnN") {
		return s
	}
	return s + ".0"
}

func exprString(v *LVal, left string, right string) string {
	if len(v.Cells) == 0 {
		return left + right
	}
	var buf bytes.Buffer
	buf.WriteString(left)
	for i, c := range v.Cells {
		if i > 0 {
			buf.WriteString(" ")
		}
		buf.WriteString(c.String())
	}
	buf.WriteString(right)
	return buf.String()
}

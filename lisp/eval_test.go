package lisp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// list builds an S-expression from go values: ints, float64s, strings (as
// symbols) and *LVal.
func list(cells ...interface{}) *LVal {
	vals := make([]*LVal, len(cells))
	for i, c := range cells {
		switch c := c.(type) {
		case int:
			vals[i] = Int(c)
		case float64:
			vals[i] = Float(c)
		case string:
			vals[i] = Symbol(c)
		case *LVal:
			vals[i] = c
		default:
			panic("invalid cell")
		}
	}
	return SExpr(vals)
}

func testEnv(t *testing.T) *LEnv {
	t.Helper()
	env := NewEnv(nil)
	lerr := InitializeUserEnv(env)
	require.NoError(t, GoError(lerr))
	return env
}

func requireCondition(t *testing.T, condition string, v *LVal) {
	t.Helper()
	require.Equal(t, LError, v.Type, "result: %v", v)
	assert.Equal(t, condition, v.Str, "result: %v", v)
}

func TestClassify(t *testing.T) {
	tests := []struct {
		v    *LVal
		kind formKind
	}{
		{Symbol("x"), formSymbol},
		{Int(1), formLiteral},
		{Float(1), formLiteral},
		{Bool(true), formLiteral},
		{Nil(), formLiteral},
		{list("quote", "x"), formQuote},
		{list("if", 1, 2, 3), formIf},
		{list("set!", "x", 1), formSet},
		{list("define", "x", 1), formDefine},
		{list("lambda", list(), 1), formLambda},
		{list("begin", 1), formBegin},
		{list("+", 1, 2), formApply},
		{list(list("lambda", list(), 1)), formApply},
		{list(1, "quote"), formApply},
		{list(), formApply},
	}
	for _, test := range tests {
		assert.Equal(t, test.kind, classify(test.v), "expr: %v", test.v)
	}
	assert.Equal(t, "set!", formSet.String())
	assert.Equal(t, []string{"begin", "define", "if", "lambda", "quote", "set!"}, SpecialForms())
	for _, name := range SpecialForms() {
		assert.True(t, IsSpecialForm(name), name)
	}
	assert.True(t, IsSpecialForm("lambda"))
	assert.False(t, IsSpecialForm("+"))
}

func TestEvalLiteral(t *testing.T) {
	env := testEnv(t)
	for _, v := range []*LVal{Int(3), Float(2.5), Bool(false)} {
		assert.Equal(t, v, env.Eval(v))
	}
}

func TestEvalSymbol(t *testing.T) {
	env := testEnv(t)
	env.Put(Symbol("x"), Int(7))
	assert.Equal(t, 7, env.Eval(Symbol("x")).Int)
	requireCondition(t, CondUnboundSymbol, env.Eval(Symbol("y")))
}

func TestEvalQuote(t *testing.T) {
	env := testEnv(t)
	data := list("if", list("define", "x", 1), "set!", list("lambda"))
	v := env.Eval(list("quote", data))
	assert.Equal(t, data, v)
	_, err := env.Find(Symbol("x"))
	assert.Error(t, err)

	requireCondition(t, CondSyntax, env.Eval(list("quote")))
	requireCondition(t, CondSyntax, env.Eval(list("quote", 1, 2)))
}

func TestEvalIf(t *testing.T) {
	env := testEnv(t)
	v := env.Eval(list("if", list(">", 3, 2), list("quote", "yes"), list("quote", "no")))
	assert.Equal(t, "yes", v.String())
	v = env.Eval(list("if", list("<", 3, 2), list("quote", "yes"), list("quote", "no")))
	assert.Equal(t, "no", v.String())

	// only the branch taken is evaluated
	v = env.Eval(list("if", list(">", 3, 2), 1, list("define", "untaken", 1)))
	assert.Equal(t, 1, v.Int)
	v = env.Eval(list("if", list("<", 3, 2), list("define", "untaken", 1), 2))
	assert.Equal(t, 2, v.Int)
	_, err := env.Find(Symbol("untaken"))
	assert.True(t, IsCondition(err, CondUnboundSymbol))

	// everything other than false and nil is true
	assert.Equal(t, 1, env.Eval(list("if", 0, 1, 2)).Int)
	assert.Equal(t, 1, env.Eval(list("if", list("quote", list()), 1, 2)).Int)

	requireCondition(t, CondSyntax, env.Eval(list("if", 1, 2)))
	requireCondition(t, CondSyntax, env.Eval(list("if", 1, 2, 3, 4)))
	requireCondition(t, CondUnboundSymbol, env.Eval(list("if", "nope", 2, 3)))
}

func TestEvalDefineSet(t *testing.T) {
	env := testEnv(t)
	requireCondition(t, CondUnboundSymbol, env.Eval(list("set!", "x", 1)))
	v := env.Eval(list("define", "x", 1))
	assert.Equal(t, 1, v.Int)
	v = env.Eval(list("set!", "x", list("+", "x", 1)))
	assert.Equal(t, 2, v.Int)
	assert.Equal(t, 2, env.Eval(Symbol("x")).Int)

	requireCondition(t, CondSyntax, env.Eval(list("define", "x")))
	requireCondition(t, CondSyntax, env.Eval(list("define", 1, 2)))
	requireCondition(t, CondSyntax, env.Eval(list("set!", "x", 1, 2)))
	requireCondition(t, CondSyntax, env.Eval(list("set!", list("x"), 1)))
	requireCondition(t, CondUnboundSymbol, env.Eval(list("define", "y", "z")))
	_, err := env.Find(Symbol("y"))
	assert.Error(t, err)
}

func TestEvalDefineShadows(t *testing.T) {
	root := testEnv(t)
	root.Put(Symbol("x"), Int(1))
	env := NewEnv(root)
	env.Eval(list("define", "x", 2))
	assert.Equal(t, 2, env.Eval(Symbol("x")).Int)
	assert.Equal(t, 1, root.Eval(Symbol("x")).Int)

	// set! modifies the innermost binding
	env.Eval(list("set!", "x", 3))
	assert.Equal(t, 3, env.Eval(Symbol("x")).Int)
	assert.Equal(t, 1, root.Eval(Symbol("x")).Int)
}

func TestEvalLambda(t *testing.T) {
	env := testEnv(t)
	fn := env.Eval(list("lambda", list("x", "y"), list("+", "x", "y")))
	require.Equal(t, LFun, fn.Type)
	assert.False(t, fn.IsBuiltin())
	assert.Equal(t, env, fn.Env)
	assert.Equal(t, "(lambda (x y) (+ x y))", fn.String())

	// the body is not evaluated until the function is called
	fn = env.Eval(list("lambda", list(), "undefined"))
	require.Equal(t, LFun, fn.Type)
	requireCondition(t, CondUnboundSymbol, env.Eval(list(fn)))

	v := env.Eval(list(list("lambda", list("x", "y"), list("+", "x", "y")), 3, 4))
	assert.Equal(t, 7, v.Int)

	requireCondition(t, CondSyntax, env.Eval(list("lambda", list("x"))))
	requireCondition(t, CondSyntax, env.Eval(list("lambda", "x", "x")))
	requireCondition(t, CondSyntax, env.Eval(list("lambda", list(1), 1)))
	requireCondition(t, CondSyntax, env.Eval(list("lambda", list("x"), "x", "x")))
}

func TestEvalClosure(t *testing.T) {
	env := testEnv(t)
	env.Eval(list("define", "make-adder", list("lambda", list("n"), list("lambda", list("x"), list("+", "x", "n")))))
	env.Eval(list("define", "add2", list("make-adder", 2)))
	env.Eval(list("define", "add5", list("make-adder", 5)))
	assert.Equal(t, 12, env.Eval(list("add2", 10)).Int)
	assert.Equal(t, 15, env.Eval(list("add5", 10)).Int)

	// closures share, not copy, their environment
	env.Eval(list("define", "make-counter", list("lambda", list("n"),
		list("lambda", list(), list("set!", "n", list("+", "n", 1))))))
	env.Eval(list("define", "counter", list("make-counter", 0)))
	assert.Equal(t, 1, env.Eval(list("counter")).Int)
	assert.Equal(t, 2, env.Eval(list("counter")).Int)
	assert.Equal(t, 3, env.Eval(list("counter")).Int)
	requireCondition(t, CondUnboundSymbol, env.Eval(Symbol("n")))
}

func TestEvalDeepChain(t *testing.T) {
	env := testEnv(t)
	env.Put(Symbol("g"), Int(42))
	// ((lambda () ((lambda () ... g))))
	expr := list(list("lambda", list(), Symbol("g")))
	for i := 0; i < 50; i++ {
		expr = list(list("lambda", list(), expr))
	}
	assert.Equal(t, 42, env.Eval(expr).Int)
}

func TestEvalRecursion(t *testing.T) {
	env := testEnv(t)
	env.Eval(list("define", "fact", list("lambda", list("n"),
		list("if", list("<=", "n", 1), 1, list("*", "n", list("fact", list("-", "n", 1)))))))
	assert.Equal(t, 3628800, env.Eval(list("fact", 10)).Int)
}

func TestEvalBegin(t *testing.T) {
	env := testEnv(t)
	v := env.Eval(list("begin", list("define", "x", 1), list("set!", "x", list("+", "x", 1)), "x"))
	assert.Equal(t, 2, v.Int)
	requireCondition(t, CondSyntax, env.Eval(list("begin")))

	// evaluation stops at the first error
	v = env.Eval(list("begin", list("define", "y", 1), "nope", list("define", "z", 1)))
	requireCondition(t, CondUnboundSymbol, v)
	_, err := env.Find(Symbol("z"))
	assert.Error(t, err)
}

func TestEvalApply(t *testing.T) {
	env := testEnv(t)
	assert.Equal(t, 3, env.Eval(list("+", 1, 2)).Int)
	requireCondition(t, CondType, env.Eval(list(1, 2)))
	requireCondition(t, CondType, env.Eval(list(list("quote", "x"), 2)))
	requireCondition(t, CondType, env.Eval(list()))
	requireCondition(t, CondArity, env.Eval(list(list("lambda", list("x"), "x"))))
	requireCondition(t, CondArity, env.Eval(list(list("lambda", list("x"), "x"), 1, 2)))
	requireCondition(t, CondUnboundSymbol, env.Eval(list("+", 1, "nope")))
}

func TestEvalNamesDefinedFunctions(t *testing.T) {
	env := testEnv(t)
	fn := env.Eval(list("define", "square", list("lambda", list("x"), list("*", "x", "x"))))
	assert.Equal(t, "square", fn.Str)
	env.Eval(list("define", "sq", "square"))
	assert.Equal(t, "square", env.Eval(Symbol("sq")).Str)
	assert.Equal(t, 25, env.Eval(list("sq", 5)).Int)
}

func TestEvaluate(t *testing.T) {
	env := testEnv(t)
	assert.Equal(t, 3, Evaluate(list("+", 1, 2), env).Int)
	requireCondition(t, CondType, Evaluate(Int(1), nil))
}

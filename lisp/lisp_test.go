package lisp

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	square := Lambda(Formals("x"), SExpr([]*LVal{Symbol("*"), Symbol("x"), Symbol("x")}), NewEnv(nil))
	tests := []struct {
		v      *LVal
		result string
	}{
		{Nil(), ""},
		{Int(0), "0"},
		{Int(-42), "-42"},
		{Float(4), "4.0"},
		{Float(-0.25), "-0.25"},
		{Float(1e21), "1e+21"},
		{Float(math.Inf(1)), "+Inf"},
		{Float(math.NaN()), "NaN"},
		{Bool(true), "true"},
		{Bool(false), "false"},
		{Symbol("set!"), "set!"},
		{SExpr(nil), "()"},
		{SExpr([]*LVal{Int(1), SExpr([]*LVal{Symbol("a"), Float(2.5)}), SExpr(nil)}), "(1 (a 2.5) ())"},
		{Fun("+", builtinAdd), "<builtin +>"},
		{square, "(lambda (x) (* x x))"},
		{Errorf(CondType, "bad value"), "type-error: bad value"},
	}
	for i, test := range tests {
		assert.Equal(t, test.result, test.v.String(), "test %d", i)
	}
}

func TestIsTrue(t *testing.T) {
	assert.False(t, Nil().IsTrue())
	assert.False(t, Bool(false).IsTrue())
	assert.True(t, Bool(true).IsTrue())
	assert.True(t, Int(0).IsTrue())
	assert.True(t, Float(0).IsTrue())
	assert.True(t, SExpr(nil).IsTrue())
	assert.True(t, Symbol("false").IsTrue())
}

func TestLValType(t *testing.T) {
	assert.Equal(t, "int", LInt.String())
	assert.Equal(t, "list", LSExpr.String())
	assert.Equal(t, "INVALID", LValType(1000).String())
}

func TestLen(t *testing.T) {
	assert.Equal(t, 0, SExpr(nil).Len())
	assert.Equal(t, 3, Formals("a", "b", "c").Len())
	assert.Equal(t, 0, Int(1).Len())
}

package lisp

func formErrorf(v *LVal, expect int) *LVal {
	return Errorf(CondSyntax, "%s: expected %d elements (got %d)", v.Cells[0].Str, expect, v.Len())
}

// (quote expr)
func (env *LEnv) evalQuote(v *LVal) *LVal {
	if v.Len() != 2 {
		return formErrorf(v, 2)
	}
	return v.Cells[1]
}

// (if test conseq alt)
func (env *LEnv) evalIf(v *LVal) *LVal {
	if v.Len() != 4 {
		return formErrorf(v, 4)
	}
	test := env.Eval(v.Cells[1])
	if test.Type == LError {
		return test
	}
	if test.IsTrue() {
		return env.Eval(v.Cells[2])
	}
	return env.Eval(v.Cells[3])
}

// (set! var expr)
func (env *LEnv) evalSet(v *LVal) *LVal {
	if v.Len() != 3 {
		return formErrorf(v, 3)
	}
	sym := v.Cells[1]
	if sym.Type != LSymbol {
		return Errorf(CondSyntax, "set!: first argument is not a symbol: %v", sym.Type)
	}
	val := env.Eval(v.Cells[2])
	if val.Type == LError {
		return val
	}
	if err := env.Set(sym, val); err != nil {
		return Error(err)
	}
	return val
}

// (define var expr)
func (env *LEnv) evalDefine(v *LVal) *LVal {
	if v.Len() != 3 {
		return formErrorf(v, 3)
	}
	sym := v.Cells[1]
	if sym.Type != LSymbol {
		return Errorf(CondSyntax, "define: first argument is not a symbol: %v", sym.Type)
	}
	val := env.Eval(v.Cells[2])
	if val.Type == LError {
		return val
	}
	if val.Type == LFun && val.Str == "" {
		// Name anonymous functions after the first symbol they are defined
		// as so that traces are readable.
		val.Str = sym.Str
	}
	env.Put(sym, val)
	return val
}

// (lambda (formals ...) body)
func (env *LEnv) evalLambda(v *LVal) *LVal {
	if v.Len() != 3 {
		return formErrorf(v, 3)
	}
	formals := v.Cells[1]
	if formals.Type != LSExpr {
		return Errorf(CondSyntax, "lambda: formal argument list is not a list: %v", formals.Type)
	}
	for _, sym := range formals.Cells {
		if sym.Type != LSymbol {
			return Errorf(CondSyntax, "lambda: formal argument is not a symbol: %v", sym)
		}
	}
	return Lambda(formals, v.Cells[2], env)
}

// (begin expr ...)
func (env *LEnv) evalBegin(v *LVal) *LVal {
	if v.Len() < 2 {
		return Errorf(CondSyntax, "begin: no expressions to evaluate")
	}
	var val *LVal
	for _, expr := range v.Cells[1:] {
		val = env.Eval(expr)
		if val.Type == LError {
			return val
		}
	}
	return val
}

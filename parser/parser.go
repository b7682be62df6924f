/*
Package parser provides a lisp reader.

	expr   := '(' <expr>* ')' | <atom>
	atom   := <int> | <float> | <symbol>
	int    := /[+-]?[0-9]+/
	float  := anything accepted by strconv.ParseFloat that starts like a number
	symbol := /[^[:space:]()]+/
*/
package parser

import (
	"errors"
	"io"

	"github.com/bmatsuo/lispy/lisp"
)

// Read parses the first complete expression in text.  Tokens following the
// first expression are ignored.  Read returns a syntax-error if text does not
// begin with a complete expression.  When text ends before an expression is
// complete the error wraps io.ErrUnexpectedEOF.
func Read(text string) (*lisp.LVal, error) {
	tokens := Tokenize(text)
	return ReadFrom(&tokens)
}

// ReadAll parses every expression in text.  ReadAll returns no expressions
// and no error when text contains only whitespace.
func ReadAll(text string) ([]*lisp.LVal, error) {
	tokens := Tokenize(text)
	var exprs []*lisp.LVal
	for len(tokens) > 0 {
		expr, err := ReadFrom(&tokens)
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, expr)
	}
	return exprs, nil
}

// ReadFrom consumes the tokens of one expression from the front of tokens and
// returns the expression.
func ReadFrom(tokens *[]string) (*lisp.LVal, error) {
	if len(*tokens) == 0 {
		return nil, lisp.WrapError(lisp.CondSyntax, io.ErrUnexpectedEOF, "unexpected end of input")
	}
	tok := (*tokens)[0]
	*tokens = (*tokens)[1:]
	switch tok {
	case ParenR:
		return nil, lisp.NewError(lisp.CondSyntax, "unexpected close paren")
	case ParenL:
		cells := []*lisp.LVal{}
		for {
			if len(*tokens) == 0 {
				return nil, lisp.WrapError(lisp.CondSyntax, io.ErrUnexpectedEOF, "unexpected end of input")
			}
			if (*tokens)[0] == ParenR {
				*tokens = (*tokens)[1:]
				return lisp.SExpr(cells), nil
			}
			c, err := ReadFrom(tokens)
			if err != nil {
				return nil, err
			}
			cells = append(cells, c)
		}
	default:
		return Atom(tok), nil
	}
}

// IsIncomplete returns true if err was returned because input ended before an
// expression was complete.  More input may allow the expression to be read.
func IsIncomplete(err error) bool {
	return lisp.IsCondition(err, lisp.CondSyntax) && errors.Is(err, io.ErrUnexpectedEOF)
}

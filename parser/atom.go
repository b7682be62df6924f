package parser

import (
	"errors"
	"strconv"
	"strings"

	"github.com/bmatsuo/lispy/lisp"
)

// Atom converts a token other than a parenthesis into a value.  A token is an
// int if it parses as a base 10 integer, otherwise a float if it parses as a
// floating point number, and otherwise a symbol.  Floats too large to
// represent become infinities.  Tokens containing underscores are symbols.
func Atom(tok string) *lisp.LVal {
	x, err := strconv.ParseInt(tok, 10, strconv.IntSize)
	if err == nil {
		return lisp.Int(int(x))
	}
	if looksNumeric(tok) {
		f, err := strconv.ParseFloat(tok, 64)
		if err == nil || errors.Is(err, strconv.ErrRange) {
			return lisp.Float(f)
		}
	}
	return lisp.Symbol(tok)
}

// looksNumeric returns true if tok begins like a number.  It keeps words such
// as "inf" and "nan", and digits separated by underscores, which
// strconv.ParseFloat accepts, as symbols.
func looksNumeric(tok string) bool {
	if strings.ContainsRune(tok, '_') {
		return false
	}
	i := 0
	if i < len(tok) && (tok[i] == '+' || tok[i] == '-') {
		i++
	}
	if i < len(tok) && tok[i] == '.' {
		i++
	}
	return i < len(tok) && '0' <= tok[i] && tok[i] <= '9'
}

package parser

import (
	"strings"

	parsec "github.com/prataprc/goparsec"
)

// Token texts with meaning to the reader.  Every other token is an atom.
const (
	ParenL = "("
	ParenR = ")"
)

// whitespace is the set of characters separating tokens.  wsPattern matches
// a run of them and must be kept in sync.
const whitespace = " \t\n\v\f\r"

const wsPattern = `^[ \t\n\v\f\r]+`

var tokenParser = newTokenParser()

// newTokenParser returns a parser for a single token.  Parentheses are always
// their own token and an atom is any run of characters that are neither
// whitespace nor parentheses.
func newTokenParser() parsec.Parser {
	openP := parsec.Atom(ParenL, "OPENP")
	closeP := parsec.Atom(ParenR, "CLOSEP")
	atom := parsec.Token(`[^ \t\n\v\f\r()]+`, "ATOM")
	return parsec.OrdChoice(tokenNode, openP, closeP, atom)
}

func tokenNode(nodes []parsec.ParsecNode) parsec.ParsecNode {
	if len(nodes) == 0 {
		return nil
	}
	term, ok := nodes[0].(*parsec.Terminal)
	if !ok {
		return nil
	}
	return term.Value
}

// Tokenize splits text into a sequence of tokens.  The result is the same as
// surrounding every parenthesis with whitespace and splitting the text on
// runs of whitespace.  Strings, comments and escapes are not recognized.
func Tokenize(text string) []string {
	text = strings.Trim(text, whitespace)
	var tokens []string
	s := parsec.NewScanner([]byte(text)).SetWSPattern(wsPattern)
	for !s.Endof() {
		var node parsec.ParsecNode
		node, s = tokenParser(s)
		tok, ok := node.(string)
		if !ok {
			// unreachable: every non-whitespace character begins a token.
			break
		}
		tokens = append(tokens, tok)
	}
	return tokens
}

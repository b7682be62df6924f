package repl

import (
	"sort"
	"strings"

	"github.com/bmatsuo/lispy/lisp"
)

// Complete returns the possible completions of line.  The last word of line
// is completed using the special forms and the symbols visible from env.
func Complete(env *lisp.LEnv, line string) []string {
	i := strings.LastIndexAny(line, " \t\n\v\f\r()") + 1
	head, word := line[:i], line[i:]
	if word == "" {
		return nil
	}
	var candidates []string
	seen := make(map[string]bool)
	for _, names := range [][]string{lisp.SpecialForms(), env.Symbols()} {
		for _, name := range names {
			if strings.HasPrefix(name, word) && !seen[name] {
				seen[name] = true
				candidates = append(candidates, head+name)
			}
		}
	}
	sort.Strings(candidates)
	return candidates
}

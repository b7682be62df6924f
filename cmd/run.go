package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/bmatsuo/lispy/lisp"
	"github.com/bmatsuo/lispy/parser"
	"github.com/spf13/cobra"
)

var (
	runExpression bool
	runPrint      bool
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run [flags] FILE|EXPR ...",
	Short: "Run lisp code",
	Long: `Run lisp code provided supplied via the command line or a file.
All sources are evaluated in order in a single environment.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		sources, err := runReadExpressions(args)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		env, err := newRootEnv()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		err = runSources(env, sources, runPrint, os.Stdout)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			var lerr *lisp.ErrorVal
			if rootTrace && errors.As(err, &lerr) && lerr.Stack != nil {
				lerr.Stack.DebugPrint(os.Stderr)
			}
			os.Exit(1)
		}
	},
}

// runSources reads and evaluates each source in env, stopping at the first
// error.  When print is true the value of each expression is written to w.
func runSources(env *lisp.LEnv, sources [][]byte, print bool, w io.Writer) error {
	for i := range sources {
		exprs, err := parser.ReadAll(string(sources[i]))
		if err != nil {
			return err
		}
		for _, expr := range exprs {
			v := lisp.Evaluate(expr, env)
			if v.Type == lisp.LError {
				return lisp.GoError(v)
			}
			if print && !v.IsNil() {
				fmt.Fprintln(w, v)
			}
		}
	}
	return nil
}

func runReadExpressions(args []string) ([][]byte, error) {
	exprs := make([][]byte, len(args))
	if runExpression {
		for i := range args {
			exprs[i] = []byte(args[i])
		}
		return exprs, nil
	}
	for i, path := range args {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		exprs[i] = b
	}
	return exprs, nil
}

func init() {
	rootCmd.AddCommand(runCmd)

	// Here flags for the run command are defined
	runCmd.Flags().BoolVarP(&runExpression, "expression", "e", false,
		"Interpret arguments as lisp expressions")
	runCmd.Flags().BoolVarP(&runPrint, "print", "p", false,
		"Print expression values to stdout")
}

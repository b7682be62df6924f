// Package cmd implements the lispy command line interface.
package cmd

import (
	"fmt"
	"os"

	"github.com/bmatsuo/lispy/lisp"
	"github.com/bmatsuo/lispy/lisp/lisplib"
	"github.com/spf13/cobra"
)

var rootTrace bool

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "lispy",
	Short: "A minimal lisp interpreter",
	Long: `Lispy evaluates a small lisp dialect with integers, floats, symbols and
lists.  Without a subcommand lispy starts an interactive repl.`,
	Args: cobra.NoArgs,
	Run:  replCmd.Run,
}

// Execute runs the root command and exits the process on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newRootEnv returns the environment that a command evaluates code in.
func newRootEnv() (*lisp.LEnv, error) {
	var config []lisp.Config
	if rootTrace {
		config = append(config, lisp.WithTrace(os.Stderr))
	}
	return lisplib.NewRootEnv(config...)
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&rootTrace, "trace", false,
		"Log function calls and their results to stderr")
}

package cmd

import (
	"fmt"
	"os"

	"github.com/bmatsuo/lispy/repl"
	"github.com/spf13/cobra"
)

var (
	replPrompt  string
	replEditor  string
	replHistory string
)

// replCmd represents the repl command
var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive repl",
	Long: `Start an interactive read-eval-print loop.  Expressions may span several
lines.  Interrupt discards a partial expression and end of input exits.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		env, err := newRootEnv()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		err = repl.RunRepl(env,
			repl.WithPrompt(replPrompt),
			repl.WithEditor(replEditor),
			repl.WithHistoryFile(replHistory))
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(replCmd)

	for _, cmd := range []*cobra.Command{rootCmd, replCmd} {
		cmd.Flags().StringVar(&replPrompt, "prompt", repl.DefaultPrompt,
			"Prompt displayed before each expression")
		cmd.Flags().StringVar(&replEditor, "editor", repl.EditorReadline,
			"Line editor to use (readline or liner)")
		cmd.Flags().StringVar(&replHistory, "history", "",
			"File used to persist input history")
	}
}

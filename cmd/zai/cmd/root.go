package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sehnsucht13/zai-pl/internal/config"
	"github.com/sehnsucht13/zai-pl/internal/vm"
)

var evalString string

var rootCmd = &cobra.Command{
	Use:   "zai [file]",
	Short: "An interpreter for the zai programming language",
	Long: `zai is a small dynamically-typed scripting language with
first-class functions, closures, classes and filesystem modules.

With no arguments zai starts a REPL. With a file argument the file is
executed; with --eval_string the given source text is executed
directly.`,
	Version: config.Version,
	Args:    cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cwd, err := os.Getwd()
		if err != nil {
			cwd = "."
		}
		cfg, err := config.Load(cwd)
		if err != nil {
			return err
		}
		machine := vm.New(cfg)

		if evalString != "" {
			machine.RunString(evalString)
			return nil
		}

		if len(args) == 0 {
			return machine.RunREPL()
		}

		info, err := os.Stat(args[0])
		if err != nil || info.IsDir() {
			exitWithError("path %s does not exist or is not a file.", args[0])
		}
		source, err := os.ReadFile(args[0])
		if err != nil {
			exitWithError("path %s could not be read: %v", args[0], err)
		}
		machine.RunString(string(source))
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.Flags().StringVarP(&evalString, "eval_string", "e", "", "evaluate a string and exit")
	rootCmd.SilenceUsage = true
}

func exitWithError(msg string, args ...any) {
	fmt.Fprintf(os.Stdout, "ERROR: "+msg+"\n", args...)
	os.Exit(1)
}

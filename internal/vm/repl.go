package vm

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/chzyer/readline"
	"github.com/mattn/go-isatty"

	"github.com/sehnsucht13/zai-pl/internal/config"
)

// RunREPL reads one input line per iteration and evaluates it in the
// persistent VM context. Errors are printed and the loop continues.
func (vm *VM) RunREPL() error {
	if !isatty.IsTerminal(os.Stdin.Fd()) && !isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		return vm.runPlainREPL()
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          config.ReplPrompt,
		HistoryFile:     vm.cfg.HistoryFile,
		HistoryLimit:    vm.cfg.HistoryLimit,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return fmt.Errorf("starting REPL: %w", err)
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if err != nil {
			return nil
		}
		vm.evalLine(line)
	}
}

// runPlainREPL serves piped input: same loop, no line editing and no
// history.
func (vm *VM) runPlainREPL() error {
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Fprint(vm.out, config.ReplPrompt)
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil && !errors.Is(err, io.EOF) {
				return err
			}
			return nil
		}
		vm.evalLine(scanner.Text())
	}
}

func (vm *VM) evalLine(line string) {
	if line == "" {
		return
	}
	result, err := vm.execute(line)
	if err != nil {
		fmt.Fprintln(vm.out, err.Error())
		return
	}
	if result != nil {
		fmt.Fprintln(vm.out, result.Inspect())
	}
}

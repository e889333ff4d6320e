package buildsys

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/rotisserie/eris"
	"mvdan.cc/sh/v3/syntax"
)

// Executor runs a single external command and reports its exit code.
// argv[0] is the program; dir is the working directory.
type Executor interface {
	Run(ctx context.Context, dir string, argv []string) (int, error)
}

// ProcessExecutor runs commands as child processes. Output goes to Stdout and Stderr,
// or to the process' own streams when those are nil.
type ProcessExecutor struct {
	Stdout io.Writer
	Stderr io.Writer
}

// Run implements Executor. A command that ran and failed is reported through the exit
// code; err is only set if the command could not be run at all.
func (e ProcessExecutor) Run(ctx context.Context, dir string, argv []string) (int, error) {
	if len(argv) == 0 {
		return -1, eris.New("No command given")
	}

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Dir = dir
	cmd.Stdin = os.Stdin
	cmd.Stdout = e.Stdout
	cmd.Stderr = e.Stderr
	if cmd.Stdout == nil {
		cmd.Stdout = os.Stdout
	}
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}

	err := cmd.Run()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode(), nil
		}

		return -1, eris.Wrapf(err, "Failed to run %s", argv[0])
	}

	return 0, nil
}

const shellSpecialChars = " \t\n'\"`$\\|&;<>()*?[]{}~#!"

// FormatCommand joins argv into a line that can be pasted into a shell. Only
// arguments containing shell metacharacters are quoted.
func FormatCommand(argv []string) string {
	parts := make([]string, len(argv))
	for idx, arg := range argv {
		parts[idx] = arg
		if arg == "" || strings.ContainsAny(arg, shellSpecialChars) {
			quoted, err := syntax.Quote(arg, syntax.LangBash)
			if err == nil {
				parts[idx] = quoted
			}
		}
	}

	return strings.Join(parts, " ")
}

package buildsys

import (
	"fmt"

	"github.com/rotisserie/eris"
)

var (
	// ErrUsage marks invalid or incomplete user input
	ErrUsage = eris.New("usage error")
	// ErrParentMissing is returned by MkdirIfNotExists when the parent directory is absent
	ErrParentMissing = eris.New("parent directory does not exist")
)

// Stage names one of the two CMake invocations made per library
type Stage string

const (
	StageConfigure Stage = "configure"
	StageBuild     Stage = "build"
)

// CommandError reports an external command that exited with a non-zero code.
type CommandError struct {
	Library  string
	Stage    Stage
	Args     []string
	ExitCode int
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%s of %s exited with code %d", e.Stage, e.Library, e.ExitCode)
}

// CommandLine returns the failed command as a single printable line
func (e *CommandError) CommandLine() string {
	return FormatCommand(e.Args)
}

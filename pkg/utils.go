package pkg

import (
	"io"
	"os"

	"github.com/mitchellh/colorstring"
)

// Stdout receives the task headings. Tests swap it for a buffer.
var Stdout io.Writer = os.Stdout

func PrintTask(msg string) {
	colorstring.Fprintf(Stdout, "[blue][bold]==>[default] %s\n", msg)
}

func PrintSubtask(msg string) {
	colorstring.Fprintf(Stdout, "[green][bold]  ->[reset] %s\n", msg)
}

func PrintError(msg string) {
	colorstring.Fprintf(Stdout, "[red][bold]  ->[reset] %s\n", msg)
}

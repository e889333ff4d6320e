package pkg

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrintHelpers(t *testing.T) {
	out := &bytes.Buffer{}
	previous := Stdout
	Stdout = out
	t.Cleanup(func() {
		Stdout = previous
	})

	PrintTask("Resolving configuration")
	PrintSubtask("dry run")
	PrintError("missing --build_path")

	text := out.String()
	assert.Contains(t, text, "==>")
	assert.Contains(t, text, "Resolving configuration\n")
	assert.Contains(t, text, "dry run\n")
	assert.Contains(t, text, "missing --build_path\n")
}

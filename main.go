package main

import (
	"os"

	"github.com/ssbuild/ssbuild/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}

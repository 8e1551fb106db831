package main

import (
	"os"

	"github.com/kpango/glg"
)

func main() {
	err := newRootCommand().Execute()
	if err != nil {
		glg.Error(err)
		os.Exit(exitCode(err))
	}
}

package main

import (
	"os"

	"github.com/grovetools/wordpad/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}

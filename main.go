package main

import (
	"os"

	"github.com/thenoetrevino/tasklane/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}

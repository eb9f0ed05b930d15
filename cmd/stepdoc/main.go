package main

import (
	"log"
	"os"
	"path/filepath"

	"github.com/calkit/stepdoc/internal/cmdui"
)

func main() {
	var ui ui
	ui.args = []string{filepath.Base(os.Args[0])}

	if err := cmdui.CLIRequest().Serve(os.Stdout, &ui); err != nil {
		log.Fatalln(err)
	}
}

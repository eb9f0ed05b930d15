package main

import (
	"fmt"
	"io"
	"io/ioutil"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/calkit/stepdoc/instr"
)

// readInput reads the named file, or stdin for "-".
func readInput(path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("missing input file argument")
	}
	if path == "-" {
		b, err := ioutil.ReadAll(os.Stdin)
		return string(b), err
	}
	b, err := ioutil.ReadFile(path)
	return string(b), err
}

// loadAssets reads a YAML asset map file: a flat mapping from legacy
// reference keys ( "LL1" ) to media URLs.
func loadAssets(path string) (instr.LinkMap, error) {
	if path == "" {
		return nil, nil
	}
	b, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var lm instr.LinkMap
	if err := yaml.Unmarshal(b, &lm); err != nil {
		return nil, fmt.Errorf("asset map %s: %w", path, err)
	}
	return lm, nil
}

// parseFormat maps a -format flag value to an instr.Format.
func parseFormat(name string) (instr.Format, error) {
	switch name {
	case "", "auto":
		return instr.FormatAuto, nil
	case "legacy":
		return instr.FormatLegacy, nil
	case "markdown", "md":
		return instr.FormatMarkdown, nil
	}
	return instr.FormatAuto, fmt.Errorf("unknown format %q (want auto, legacy, or markdown)", name)
}

// writeOutput writes data to the named file atomically, or to w for "".
func writeOutput(path string, data []byte, w io.Writer) error {
	if path == "" {
		_, err := w.Write(data)
		return err
	}
	return atomicWriteFile(path, data)
}

package main

import (
	"flag"

	"github.com/google/renameio"

	"github.com/calkit/stepdoc/instr"
	"github.com/calkit/stepdoc/internal/cmdui"
)

func init() {
	builtinServer("convert", serveConvert,
		"rewrite a legacy bracket-token file as Markdown")
}

// atomicWriteFile replaces path with data without ever exposing a partial
// file, so a convert over an existing document cannot corrupt it.
func atomicWriteFile(path string, data []byte) error {
	return renameio.WriteFile(path, data, 0644)
}

func serveConvert(ctx *context, req *cmdui.Request, resp *cmdui.Response) error {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	fs.SetOutput(resp)
	out := fs.String("o", "", "output file (atomic replace); stdout if empty")
	assets := fs.String("assets", "", "YAML asset map resolving [[LLn]] references")
	if err := fs.Parse(req.RemainingArgs()); err != nil {
		return err
	}

	text, err := readInput(fs.Arg(0))
	if err != nil {
		return err
	}
	links, err := loadAssets(*assets)
	if err != nil {
		return err
	}

	md := instr.LegacyToMarkdown(text, links)
	return writeOutput(*out, []byte(md), resp)
}

package main

import (
	"flag"
	"fmt"

	"github.com/calkit/stepdoc/instr"
	"github.com/calkit/stepdoc/internal/cmdui"
)

func init() {
	builtinServer("list", serveList,
		"parse an instruction file and print its outline")
	builtinServer("detect", serveDetect,
		"report which grammar an instruction file uses")
}

func serveList(ctx *context, req *cmdui.Request, resp *cmdui.Response) error {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	fs.SetOutput(resp)
	assets := fs.String("assets", "", "YAML asset map resolving [[LLn]] references")
	formatName := fs.String("format", "auto", "input format: auto, legacy, or markdown")
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
	format, err := parseFormat(*formatName)
	if err != nil {
		return err
	}

	model := instr.Parse(text, instr.Options{
		Format:   format,
		Assets:   links,
		Validate: true,
		Log:      ctx.log,
	})
	fmt.Fprintf(resp, "%+v\n", model)
	return nil
}

func serveDetect(ctx *context, req *cmdui.Request, resp *cmdui.Response) error {
	fs := flag.NewFlagSet("detect", flag.ContinueOnError)
	fs.SetOutput(resp)
	if err := fs.Parse(req.RemainingArgs()); err != nil {
		return err
	}
	text, err := readInput(fs.Arg(0))
	if err != nil {
		return err
	}
	fmt.Fprintf(resp, "%v\n", instr.DetectFormat(text))
	return nil
}

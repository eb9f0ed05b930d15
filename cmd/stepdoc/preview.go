package main

import (
	"flag"

	"github.com/russross/blackfriday"

	"github.com/calkit/stepdoc/instr"
	"github.com/calkit/stepdoc/internal/cmdui"
)

func init() {
	builtinServer("preview", servePreview,
		"render an instruction file to HTML")
}

func servePreview(ctx *context, req *cmdui.Request, resp *cmdui.Response) error {
	fs := flag.NewFlagSet("preview", flag.ContinueOnError)
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

	// legacy documents preview through their Markdown conversion
	if instr.DetectFormat(text) == instr.FormatLegacy {
		text = instr.LegacyToMarkdown(text, links)
	}

	html := blackfriday.Run([]byte(text), blackfriday.WithExtensions(0|
		blackfriday.NoIntraEmphasis|
		blackfriday.FencedCode|
		blackfriday.Autolink|
		blackfriday.Strikethrough|
		blackfriday.SpaceHeadings|
		blackfriday.HeadingIDs|
		blackfriday.BackslashLineBreak,
	))
	return writeOutput(*out, html, resp)
}

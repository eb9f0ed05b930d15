package main

import (
	"flag"
	"fmt"

	"github.com/calkit/stepdoc/instr"
	"github.com/calkit/stepdoc/internal/cmdui"
	"github.com/calkit/stepdoc/stepper"
)

func init() {
	builtinServer("step", serveStep,
		"print the navigation window at a given step position")
}

func serveStep(ctx *context, req *cmdui.Request, resp *cmdui.Response) error {
	fs := flag.NewFlagSet("step", flag.ContinueOnError)
	fs.SetOutput(resp)
	at := fs.Int("at", 0, "current flat step position")
	history := fs.Int("history", 1, "how many past steps stay visible")
	all := fs.Bool("all", false, "show every step")
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

	model := instr.Parse(text, instr.Options{Assets: links, Log: ctx.log})
	w := stepper.Compute(model, *at, *history, *all)
	if len(w.Entries) == 0 {
		fmt.Fprintf(resp, "(no steps)\n")
		return nil
	}

	for _, e := range w.Entries {
		marker := "  "
		if e.State == stepper.StateCurrent && e.Kind == stepper.EntryStep {
			marker = "> "
		}
		switch e.Kind {
		case stepper.EntryEllipsis:
			fmt.Fprintf(resp, "%s...\n", marker)
		case stepper.EntryTitle:
			fmt.Fprintf(resp, "%s# %s\n", marker, e.Text)
		default:
			fmt.Fprintf(resp, "%s%s\n", marker, e.Text)
		}
	}
	return nil
}

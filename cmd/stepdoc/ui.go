package main

import (
	"fmt"
	"log"
	"sort"

	"github.com/calkit/stepdoc/internal/cmdui"
)

type context struct {
	args []string
	mux  serveMux
	log  *log.Logger
}

type server interface {
	serve(*context, *cmdui.Request, *cmdui.Response) error
}

type serverFunc func(*context, *cmdui.Request, *cmdui.Response) error

func (fn serverFunc) serve(ctx *context, req *cmdui.Request, resp *cmdui.Response) error {
	return fn(ctx, req, resp)
}

type serverHelp struct {
	server
	desc string
}

type serveMux map[string]server

func (mux serveMux) handle(name string, srv server) {
	if mux[name] != nil {
		panic(fmt.Sprintf("%q server already defined", name))
	}
	mux[name] = srv
}

func (mux serveMux) commands() []string {
	var names []string
	for name := range mux {
		if name != "" {
			names = append(names, name)
		}
	}
	if mux["help"] == nil {
		names = append(names, "help")
	}
	sort.Strings(names)
	return names
}

func (mux serveMux) describe(name string) string {
	if sh, _ := mux[name].(serverHelp); sh.desc != "" {
		return sh.desc
	}
	if name == "help" {
		return "list available commands"
	}
	return ""
}

func (mux serveMux) serve(ctx *context, req *cmdui.Request, resp *cmdui.Response) error {
	any := false
	for req.Scan() && req.ScanArg() {
		any = true
		if err := mux.serveCommand(ctx, req, resp); err != nil {
			return err
		}
	}
	if any {
		return nil
	}
	return mux.serveHelp(ctx, req, resp)
}

func (mux serveMux) serveCommand(ctx *context, req *cmdui.Request, resp *cmdui.Response) error {
	name := req.Arg()
	ctx.args = append(ctx.args[:len(ctx.args):len(ctx.args)], name)
	ctx.mux = mux

	if cmd := mux[name]; cmd != nil {
		return cmd.serve(ctx, req, resp)
	}
	if name == "help" {
		return mux.serveHelp(ctx, req, resp)
	}
	fmt.Fprintf(resp, "unrecognized command %q\n", name)
	return nil
}

func (mux serveMux) serveHelp(ctx *context, req *cmdui.Request, resp *cmdui.Response) error {
	fmt.Fprintf(resp, "# Usage\n> %s [command args...]\n", ctx.args[0])
	fmt.Fprintf(resp, "\n## Available Commands\n")
	names := mux.commands()
	width := 0
	for _, name := range names {
		if width < len(name) {
			width = len(name)
		}
	}
	for _, name := range names {
		if desc := mux.describe(name); desc != "" {
			fmt.Fprintf(resp, "- % -*s: %s\n", width, name, desc)
		} else {
			fmt.Fprintf(resp, "- %s\n", name)
		}
	}
	return nil
}

var builtins []func(mux serveMux)

func builtinServer(name string, fn serverFunc, desc string) {
	builtins = append(builtins, func(mux serveMux) {
		mux.handle(name, serverHelp{serverFunc(fn), desc})
	})
}

type ui struct {
	context
}

func (u *ui) init() {
	if u.mux == nil {
		u.mux = make(serveMux)
		for _, addBuiltin := range builtins {
			addBuiltin(u.mux)
		}
	}
}

func (u *ui) ServeUser(req *cmdui.Request, resp *cmdui.Response) error {
	u.init()
	ctx := u.context
	// parse warnings land in the response, not the process log
	ctx.log = log.New(resp, "", 0)
	return u.mux.serve(&ctx, req, resp)
}

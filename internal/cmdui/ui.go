// Package cmdui adapts free form request text into tool commands.
//
// A Request wraps user provided text ( for now, CLI args joined back into a
// line ) and tokenizes it into commands and optionally quoted arguments; a
// Handler writes its Response through a line-buffered writer so partial
// output still flushes on error.
package cmdui

import (
	"bufio"
	"bytes"
	"flag"
	"io"
	"os"

	"github.com/calkit/stepdoc/internal/cmdutil"
)

// Handler is the interface implemented by pieces of request handling logic.
type Handler interface {
	ServeUser(req *Request, resp *Response) error
}

// HandlerFunc is a functional adaptor for Handler.
type HandlerFunc func(req *Request, resp *Response) error

// ServeUser calls the receiver function pointer.
func (f HandlerFunc) ServeUser(req *Request, resp *Response) error { return f(req, resp) }

// Request represents a user request being handled, providing error
// tracking and input tokenization.
type Request struct {
	err  error
	body io.Reader
	cmd  *bufio.Scanner
	arg  *bufio.Scanner
}

// Response represents a response being written by a Handler.
type Response struct {
	cmdutil.WriteBuffer
}

// CLIRequest builds an ArgsRequest from OS-provided args, preferring
// flag.Args() when flag parsing has run.
func CLIRequest() Request {
	args := flag.Args()
	if args == nil {
		args = os.Args[1:]
	}
	return ArgsRequest(args)
}

// ArgsRequest builds a Request from argument strings, re-joining them into
// a single command line with quoting preserved.
func ArgsRequest(args []string) Request {
	var req Request
	req.body = bytes.NewReader(cmdutil.QuotedArgs(args))
	return req
}

// Serve runs the given handler with the receiver request and a new
// Response writing to the given writer. Returns any handler, request, or
// response error, in that order of precedence.
func (req Request) Serve(w io.Writer, handler Handler) (rerr error) {
	if err := req.err; err != nil {
		return err
	}
	defer func() {
		if rerr == nil {
			rerr = req.err
		}
	}()
	var resp Response
	resp.To = w
	defer func() {
		if ferr := resp.Flush(); rerr == nil {
			rerr = ferr
		}
	}()
	return handler.ServeUser(&req, &resp)
}

// Err returns any request scan error encountered.
func (req Request) Err() error { return req.err }

// Scan scans the next command line from the body stream, resetting arg
// scan state.
func (req *Request) Scan() bool {
	if req.err == nil {
		if req.cmd == nil && req.body != nil {
			req.cmd = bufio.NewScanner(req.body)
			req.cmd.Split(bufio.ScanLines)
		}
		req.arg = nil
		if req.cmd.Scan() {
			return true
		}
		req.err = req.cmd.Err()
	}
	return false
}

// ScanArg scans the next argument within the current command.
func (req *Request) ScanArg() bool {
	if req.err == nil {
		if req.arg == nil {
			if req.cmd == nil && !req.Scan() {
				return false
			}
			req.arg = bufio.NewScanner(bytes.NewReader(req.cmd.Bytes()))
			req.arg.Split(cmdutil.ScanArgs)
		}
		if req.arg.Scan() {
			return true
		}
		req.err = req.arg.Err()
	}
	return false
}

// RemainingArgs collects every not-yet-scanned argument of the current
// command, typically to hand off to a flag.FlagSet.
func (req *Request) RemainingArgs() []string {
	var args []string
	for req.ScanArg() {
		args = append(args, req.Arg())
	}
	return args
}

// Command returns all bytes of the current command line.
func (req *Request) Command() string {
	if req.cmd == nil {
		return ""
	}
	return req.cmd.Text()
}

// Arg returns the current argument, unquoted.
func (req *Request) Arg() string {
	if req.arg == nil {
		return ""
	}
	return cmdutil.UnquoteArg(req.arg.Text())
}

package cmdui_test

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calkit/stepdoc/internal/cmdui"
)

func TestRequestScanning(t *testing.T) {
	req := cmdui.ArgsRequest([]string{"do", "a thing", "-n", "3"})

	var out bytes.Buffer
	err := req.Serve(&out, cmdui.HandlerFunc(func(req *cmdui.Request, resp *cmdui.Response) error {
		var args []string
		for req.Scan() {
			for req.ScanArg() {
				args = append(args, req.Arg())
			}
		}
		require.Equal(t, []string{"do", "a thing", "-n", "3"}, args)
		fmt.Fprintf(resp, "saw %v args\n", len(args))
		return nil
	}))
	require.NoError(t, err)
	assert.Equal(t, "saw 4 args\n", out.String())
}

func TestRemainingArgs(t *testing.T) {
	req := cmdui.ArgsRequest([]string{"cmd", "-x", "1", "file"})

	var out bytes.Buffer
	err := req.Serve(&out, cmdui.HandlerFunc(func(req *cmdui.Request, resp *cmdui.Response) error {
		require.True(t, req.ScanArg())
		assert.Equal(t, "cmd", req.Arg())
		assert.Equal(t, []string{"-x", "1", "file"}, req.RemainingArgs())
		return nil
	}))
	require.NoError(t, err)
}

func TestServeFlushesOnError(t *testing.T) {
	req := cmdui.ArgsRequest([]string{"x"})

	var out bytes.Buffer
	err := req.Serve(&out, cmdui.HandlerFunc(func(req *cmdui.Request, resp *cmdui.Response) error {
		fmt.Fprintf(resp, "partial output\n")
		return fmt.Errorf("handler broke")
	}))
	assert.EqualError(t, err, "handler broke")
	assert.Equal(t, "partial output\n", out.String(), "response flushes even on handler error")
}

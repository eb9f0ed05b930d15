package cmdutil

import (
	"bytes"
	"io"
)

// WriteBuffer combines a byte buffer with a destination writer, flushing
// in whole-line chunks. Example use:
//
//	var buf WriteBuffer
//	buf.To = os.Stdout
//	for thing := range things {
//		fmt.Fprint(&buf, thing)
//		buf.MaybeFlush()
//	}
//	buf.Flush()
type WriteBuffer struct {
	To io.Writer
	bytes.Buffer
}

// Flush writes all buffered content to To, irregardless of line chunking.
func (buf *WriteBuffer) Flush() error {
	_, err := buf.WriteTo(buf.To)
	return err
}

// MaybeFlush writes buffered content through the last complete line,
// retaining any partial final line.
func (buf *WriteBuffer) MaybeFlush() error {
	b := buf.Bytes()
	if i := bytes.LastIndexByte(b, '\n'); i >= 0 {
		m, err := buf.To.Write(b[:i+1])
		buf.Next(m)
		return err
	}
	return nil
}

// ErrWriter wraps a writer, tracking its last error, and preventing
// further writes after a non-nil one.
type ErrWriter struct {
	io.Writer
	Err error
}

// Write passes through to Writer if Err is nil, retaining any returned error.
func (ew *ErrWriter) Write(p []byte) (n int, err error) {
	if ew.Err == nil {
		n, ew.Err = ew.Writer.Write(p)
	}
	return n, ew.Err
}

// PrefixWriter returns a writer that prepends the given string before
// every line written through it. The caller SHOULD close it to flush any
// partial final line.
func PrefixWriter(prefix string, w io.Writer) io.WriteCloser {
	p := &prefixer{prefix: prefix}
	p.buf.To = w
	return p
}

type prefixer struct {
	buf    WriteBuffer
	prefix string
}

func (p *prefixer) Close() error { return p.buf.Flush() }

func (p *prefixer) Write(b []byte) (n int, err error) {
	first := true
	for len(b) > 0 {
		if !first {
			p.buf.WriteString(p.prefix)
		} else if i := p.buf.Len() - 1; i < 0 || p.buf.Bytes()[i] == '\n' {
			p.buf.WriteString(p.prefix)
			first = false
		} else {
			first = false
		}

		line := b
		if i := bytes.IndexByte(b, '\n'); i >= 0 {
			i++
			line = b[:i]
			b = b[i:]
		}
		m, _ := p.buf.Write(line)
		n += m
	}
	return n, p.buf.MaybeFlush()
}

package instr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/calkit/stepdoc/instr"
)

func TestFormatInline(t *testing.T) {
	for _, tc := range []struct {
		name string
		in   string
		out  string
	}{
		{"empty", "", ""},
		{"plain", "just words", "just words"},
		{"bold stars", "**very** important", "<b>very</b> important"},
		{"bold underscores", "__very__ important", "<b>very</b> important"},
		{"italic stars", "read *this*", "read <i>this</i>"},
		{"italic underscores", "read _this_", "read <i>this</i>"},
		{"bold then italic", "**b** and *i*", "<b>b</b> and <i>i</i>"},
		{"code span", "run `go test` now", "run <code>go test</code> now"},
		{"strikethrough", "~~old~~ new", "<del>old</del> new"},
		{"heading level 1", "# Setup", "<h1>Setup</h1>"},
		{"heading level 3", "### Fine Print", "<h3>Fine Print</h3>"},
		{"heading mid text", "before\n## During\nafter", "before\n<h2>During</h2>\nafter"},
		{"escaped star", `\*literal\*`, "&#42;literal&#42;"},
		{"escaped backtick", "\\`tick", "&#96;tick"},
		{"escape defeats bold", `\*\*not bold\*\*`, "&#42;&#42;not bold&#42;&#42;"},
		{"break tag normalized", "a<br/>b<br />c", "a<br>b<br>c"},
		{"hard break", "one  \ntwo", "one<br>\ntwo"},
		{"already formatted", "<b>done</b> and *left alone*", "<b>done</b> and *left alone*"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.out, instr.FormatInline(tc.in))
		})
	}
}

func TestFormatInline_idempotent(t *testing.T) {
	for _, text := range []string{
		"",
		"plain",
		"**bold** and *italic* and `code`",
		"# Heading\nwith ~~strike~~",
		`\*escaped\*`,
		"hard  \nbreak",
		"already <i>formatted</i>",
	} {
		once := instr.FormatInline(text)
		assert.Equal(t, once, instr.FormatInline(once), "format(format(%q))", text)
	}
}

package instr

import (
	"fmt"
	"io"
	"strings"
)

// Format writes a textual representation of the receiver, providing improved
// fmt.Printf display. Produces a full outline dump when formatted with
// `%+v`, a terse "N sections, M steps" summary otherwise.
func (m Model) Format(f fmt.State, _ rune) {
	if !f.Flag('+') {
		fmt.Fprintf(f, "%v sections, %v steps", len(m.Sections), m.StepCount())
		return
	}
	for i := range m.Sections {
		if i > 0 {
			io.WriteString(f, "\n")
		}
		m.Sections[i].Format(f, 'v')
	}
}

// Format writes a textual representation of the receiver: a heading line
// (when titled) followed by one indented line per step.
func (sec Section) Format(f fmt.State, _ rune) {
	if sec.Title != "" {
		fmt.Fprintf(f, "[%s] %s\n", sec.Index, sec.Title)
	} else {
		fmt.Fprintf(f, "[%s]\n", sec.Index)
	}
	for _, url := range sec.MediaURLs {
		fmt.Fprintf(f, "  (media %s)\n", url)
	}
	for i := range sec.Steps {
		io.WriteString(f, "  ")
		sec.Steps[i].Format(f, 'v')
		io.WriteString(f, "\n")
	}
}

// Format writes a one line representation of the receiver step: indent per
// nesting level, any ordinal number, a kind marker for special blocks, the
// step text, then any attached media in parens.
func (s Step) Format(f fmt.State, _ rune) {
	io.WriteString(f, strings.Repeat("  ", s.Level))
	switch {
	case s.Kind != StepPlain:
		fmt.Fprintf(f, "<%v> ", s.Kind)
	case s.Number != "":
		fmt.Fprintf(f, "%s) ", s.Number)
	default:
		io.WriteString(f, "- ")
	}
	io.WriteString(f, s.Text)
	for _, url := range s.MediaURLs {
		fmt.Fprintf(f, " (media %s)", url)
	}
}

package instr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/calkit/stepdoc/instr"
)

func TestLegacyToMarkdown(t *testing.T) {
	links := instr.LinkMap{"LL1": "a.mp4"}

	t.Run("title and steps", func(t *testing.T) {
		got := instr.LegacyToMarkdown("[[TT1]] Intro\n[[SS1]] one\n[[SS2]] two", nil)
		assert.Equal(t, "# Intro\n\n1. one\n2. two\n", got)
	})

	t.Run("steps renumber sequentially", func(t *testing.T) {
		// dotted nesting numbers are deliberately discarded
		got := instr.LegacyToMarkdown("[[TT1]] T\n[[SS2]] a\n[[SS2.1]] b\n[[SS5]] c", nil)
		assert.Equal(t, "# T\n\n1. a\n2. b\n3. c\n", got)
	})

	t.Run("numbering restarts per section", func(t *testing.T) {
		got := instr.LegacyToMarkdown("[[TT1]] A\n[[SS1]] a\n[[TT2]] B\n[[SS9]] b", nil)
		assert.Equal(t, "# A\n\n1. a\n# B\n\n1. b\n", got)
	})

	t.Run("resolved link becomes image line", func(t *testing.T) {
		got := instr.LegacyToMarkdown("[[TT1]] T\n[[LL1]]", links)
		assert.Equal(t, "# T\n\n![LL1](a.mp4)\n\n", got)
	})

	t.Run("unresolved link omitted", func(t *testing.T) {
		got := instr.LegacyToMarkdown("[[TT1]] T\n[[LL9]]", links)
		assert.Equal(t, "# T\n\n", got)
	})

	t.Run("inline link tokens move below their step", func(t *testing.T) {
		got := instr.LegacyToMarkdown("[[TT1]] T\n[[SS1]] watch [[LL1]]", links)
		assert.Equal(t, "# T\n\n1. watch\n![LL1](a.mp4)\n\n", got)
	})

	t.Run("other lines pass through", func(t *testing.T) {
		got := instr.LegacyToMarkdown("free text\n[[SS1]] step", nil)
		assert.Equal(t, "free text\n1. step\n", got)
	})

	t.Run("converted text parses as markdown", func(t *testing.T) {
		md := instr.LegacyToMarkdown("[[TT1]] Setup\n[[SS1]] one\n[[SS2]] two\n[[LL1]]", links)
		assert.Equal(t, instr.FormatMarkdown, instr.DetectFormat(md))
		m := instr.Parse(md, instr.Options{})
		assert.Len(t, m.Flat, 2)
		assert.Equal(t, "Setup", m.Sections[0].Title)
	})
}

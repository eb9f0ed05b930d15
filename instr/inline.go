package instr

import (
	"regexp"
	"strconv"
	"strings"
)

// Inline formatting converts Markdown-style emphasis into HTML fragments.
// The transforms run in a fixed precedence order: headings, then backslash
// escapes, then bold / italic / code / strikethrough, then line break
// normalization. Escapes resolve to numeric character references so that
// the escaped byte can never re-match a later transform.

var (
	alreadyFormattedPattern = regexp.MustCompile(`</?(?:b|i|code|del)>|<h[1-6]>`)

	headingPattern = regexp.MustCompile(`(?m)^(#{1,6})[ \t]+(.*)$`)
	escapePattern  = regexp.MustCompile("\\\\([\\\\`*_{}\\[\\]()#+\\-.!~|])")

	boldStarPattern  = regexp.MustCompile(`\*\*(.+?)\*\*`)
	boldUnderPattern = regexp.MustCompile(`__(.+?)__`)
	italStarPattern  = regexp.MustCompile(`\*(.+?)\*`)
	italUnderPattern = regexp.MustCompile(`_(.+?)_`)
	codeSpanPattern  = regexp.MustCompile("`([^`]+)`")
	strikePattern    = regexp.MustCompile(`~~(.+?)~~`)
	breakTagPattern  = regexp.MustCompile(`<br[ \t]*/?>`)
	hardBreakPattern = regexp.MustCompile(`[ ]{2,}\n`)
)

// FormatInline rewrites inline Markdown emphasis, code spans, headings,
// escapes, and line breaks into HTML.
//
// It is idempotent: text that already contains any of the output tags is
// returned unchanged, so callers may re-apply formatting to
// already-formatted text without double escaping. This assumes raw input
// never legitimately contains those literal tag substrings.
func FormatInline(text string) string {
	if text == "" {
		return ""
	}
	if alreadyFormattedPattern.MatchString(text) {
		return text
	}

	text = headingPattern.ReplaceAllStringFunc(text, func(line string) string {
		m := headingPattern.FindStringSubmatch(line)
		level := strconv.Itoa(len(m[1]))
		return "<h" + level + ">" + strings.TrimRight(m[2], " \t") + "</h" + level + ">"
	})

	text = escapePattern.ReplaceAllStringFunc(text, func(esc string) string {
		return "&#" + strconv.Itoa(int(esc[1])) + ";"
	})

	text = boldStarPattern.ReplaceAllString(text, "<b>$1</b>")
	text = boldUnderPattern.ReplaceAllString(text, "<b>$1</b>")
	text = italStarPattern.ReplaceAllString(text, "<i>$1</i>")
	text = italUnderPattern.ReplaceAllString(text, "<i>$1</i>")
	text = codeSpanPattern.ReplaceAllString(text, "<code>$1</code>")
	text = strikePattern.ReplaceAllString(text, "<del>$1</del>")

	text = breakTagPattern.ReplaceAllString(text, "<br>")
	text = hardBreakPattern.ReplaceAllString(text, "<br>\n")

	return text
}

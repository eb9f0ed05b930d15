package instr

import (
	"bufio"
	"errors"
	"html"
	"regexp"
	"strings"
	"unicode/utf8"
)

// maxLineSize bounds a single scanned source line; generous, instructional
// text lines are short.
const maxLineSize = 1 << 20

// ErrInvalidInput reports unusable primary input, e.g. text that is not
// valid UTF-8. Only strict mode parsing surfaces it; everything else
// degrades to the canonical empty model.
var ErrInvalidInput = errors.New("invalid instruction input")

// defaultSpacesPerLevel is how many leading spaces deepen list nesting by
// one level when Options leaves it unset.
const defaultSpacesPerLevel = 2

var (
	fencePattern      = regexp.MustCompile("^[ \t]*```[ \t]*([^`]*)$")
	rulePattern       = regexp.MustCompile(`^ {0,3}(\*[ \t]*){3,}$|^ {0,3}(-[ \t]*){3,}$|^ {0,3}(_[ \t]*){3,}$`)
	quotePattern      = regexp.MustCompile(`^[ \t]*> ?(.*)$`)
	sectionPattern    = regexp.MustCompile(`^(#{1,6})[ \t]+(.*)$`)
	orderedPattern    = regexp.MustCompile(`^( *)(\d+)\.[ \t]+(.*)$`)
	taskPattern       = regexp.MustCompile(`^( *)[-*+][ \t]+\[([ xX])\][ \t]+(.*)$`)
	bulletPattern     = regexp.MustCompile(`^( *)([-*+])[ \t]+(.*)$`)
	mdHeadOrListStart = regexp.MustCompile(`(?m)^#{1,6}[ \t]+\S|^[ \t]*(?:[-*+]|\d+\.)[ \t]+\S`)
)

// ParseMarkdown parses Markdown-like text into a model.
//
// Processing is line oriented with first-match-wins precedence: fenced code
// delimiters, horizontal rules, blockquotes, headings ( which start new
// sections ), list items ( ordered, task, bulleted ), then residual media
// and plain continuation text.
//
// In strict mode invalid input fails with ErrInvalidInput; otherwise it
// yields the canonical empty model.
func ParseMarkdown(text string, opt Options) (*Model, error) {
	if !utf8.ValidString(text) {
		if opt.Strict {
			return nil, ErrInvalidInput
		}
		return Empty(), nil
	}
	spacesPerLevel := opt.SpacesPerLevel
	if spacesPerLevel <= 0 {
		spacesPerLevel = defaultSpacesPerLevel
	}

	var (
		b         builder
		inCode    bool
		codeLines []string
		prevQuote bool
	)

	flushCode := func() {
		body := html.EscapeString(strings.Join(codeLines, "\n"))
		b.addStep(Step{
			Kind: StepCode,
			Text: "<pre><code>" + body + "</code></pre>",
		})
		codeLines = nil
		inCode = false
	}

	sc := bufio.NewScanner(strings.NewReader(text))
	sc.Buffer(nil, maxLineSize)
	for sc.Scan() {
		line := sc.Text()

		if fencePattern.MatchString(line) {
			prevQuote = false
			if inCode {
				flushCode()
			} else {
				inCode = true
			}
			continue
		}
		if inCode {
			codeLines = append(codeLines, line)
			continue
		}

		if rulePattern.MatchString(line) {
			prevQuote = false
			b.addStep(Step{Kind: StepRule, Text: "<hr>"})
			continue
		}

		if m := quotePattern.FindStringSubmatch(line); m != nil {
			content := FormatInline(m[1])
			if step := b.lastStep(); prevQuote && step != nil && step.Kind == StepQuote {
				step.Text += "<br>" + content
			} else {
				b.addStep(Step{Kind: StepQuote, Text: content})
			}
			prevQuote = true
			continue
		}
		prevQuote = false

		if m := sectionPattern.FindStringSubmatch(line); m != nil {
			b.section(FormatInline(strings.TrimSpace(m[2])))
			continue
		}

		if m := orderedPattern.FindStringSubmatch(line); m != nil {
			indent, number, content := m[1], m[2], m[3]
			clean, urls := ExtractMedia(content)
			step := b.addStep(Step{
				Number: number,
				Level:  len(indent) / spacesPerLevel,
				Text:   number + ". " + FormatInline(clean),
			})
			step.MediaURLs = append(step.MediaURLs, urls...)
			continue
		}
		if m := taskPattern.FindStringSubmatch(line); m != nil {
			indent, mark, content := m[1], m[2], m[3]
			checked := mark != " "
			clean, urls := ExtractMedia(content)
			box := `<input type="checkbox" disabled> `
			if checked {
				box = `<input type="checkbox" disabled checked> `
			}
			step := b.addStep(Step{
				Kind:    StepTask,
				Checked: checked,
				Level:   len(indent) / spacesPerLevel,
				Text:    box + FormatInline(clean),
			})
			step.MediaURLs = append(step.MediaURLs, urls...)
			continue
		}
		if m := bulletPattern.FindStringSubmatch(line); m != nil {
			indent, marker, content := m[1], m[2], m[3]
			clean, urls := ExtractMedia(content)
			step := b.addStep(Step{
				Level: len(indent) / spacesPerLevel,
				Text:  marker + " " + FormatInline(clean),
			})
			step.MediaURLs = append(step.MediaURLs, urls...)
			continue
		}

		// residual media in a plain line attaches to the nearest owner;
		// leftover text continues the previous step or seeds a new one
		clean, urls := ExtractMedia(line)
		for _, url := range urls {
			b.attachMedia("", url)
		}
		if rest := strings.TrimSpace(clean); rest != "" {
			if step := b.lastStep(); step != nil {
				step.Text += "<br>" + FormatInline(rest)
			} else {
				b.addStep(Step{Text: FormatInline(rest)})
			}
		}
	}
	if inCode {
		// unterminated fence; keep what was collected
		flushCode()
	}

	if !b.started {
		if formatted := strings.TrimSpace(FormatInline(text)); formatted != "" {
			b.section("")
			b.addStep(Step{Text: formatted})
		}
	}
	return b.done(), nil
}

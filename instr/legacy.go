package instr

import (
	"bufio"
	"regexp"
	"strings"
)

// The legacy grammar is line oriented. Each meaningful line is one of:
//
//	[[TTn]] optional inline title   start section n
//	[[SSn]] text                    step; n may be dotted ( "2.1" )
//	[[LLn]]                         attach media resolved through a LinkMap
//
// Anything else continues the previous step's text, or seeds a new step.
// Step text passes through verbatim; it is not Markdown processed.

var (
	legacyTitlePattern = regexp.MustCompile(`^\[\[TT(\d+)\]\][ \t]*(.*)$`)
	legacyStepPattern  = regexp.MustCompile(`^\[\[SS(\d+(?:\.\d+)*)\]\][ \t]*(.*)$`)
	legacyLinkPattern  = regexp.MustCompile(`^\[\[(LL\d+)\]\][ \t]*$`)
	inlineLinkPattern  = regexp.MustCompile(`\[\[(LL\d+)\]\]`)
	bareNumberPattern  = regexp.MustCompile(`^\d+$`)
)

// LinkMap resolves legacy media reference keys ( "LL3" ) to URLs.
type LinkMap map[string]string

// Resolve looks key up case-insensitively, normalizing a bare number n to
// "LLn" first. Returns the URL and whether the key resolved.
func (lm LinkMap) Resolve(key string) (string, bool) {
	key = strings.TrimSpace(key)
	if bareNumberPattern.MatchString(key) {
		key = "LL" + key
	}
	for k, url := range lm {
		if strings.EqualFold(k, key) {
			return url, true
		}
	}
	return "", false
}

// ParseLegacy parses bracket-token text into a model, resolving [[LLn]]
// references through links. Malformed token sequences degrade to plain
// text steps rather than failing; the result is always well formed.
func ParseLegacy(text string, links LinkMap) *Model {
	var b builder
	expectTitle := false

	sc := bufio.NewScanner(strings.NewReader(text))
	sc.Buffer(nil, maxLineSize)
	for sc.Scan() {
		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		if m := legacyTitlePattern.FindStringSubmatch(line); m != nil {
			title := strings.TrimSpace(m[2])
			// the token supplies the section identifier in this grammar
			b.section(title).Index = m[1]
			// a bare [[TTn]] takes the next plain line as its title
			expectTitle = title == ""
			continue
		}

		if m := legacyLinkPattern.FindStringSubmatch(line); m != nil {
			expectTitle = false
			url, _ := links.Resolve(m[1])
			b.attachMedia(m[1], url)
			continue
		}

		if m := legacyStepPattern.FindStringSubmatch(line); m != nil {
			expectTitle = false
			number, text := m[1], m[2]
			step := Step{
				Number: number,
				Level:  strings.Count(number, "."),
			}
			var keys []string
			step.Text = strings.TrimSpace(inlineLinkPattern.ReplaceAllStringFunc(text, func(tok string) string {
				keys = append(keys, inlineLinkPattern.FindStringSubmatch(tok)[1])
				return ""
			}))
			added := b.addStep(step)
			for _, key := range keys {
				added.MediaKeys = append(added.MediaKeys, key)
				if url, ok := links.Resolve(key); ok {
					added.MediaURLs = append(added.MediaURLs, url)
				}
			}
			continue
		}

		if expectTitle {
			b.current().Title = strings.TrimSpace(line)
			expectTitle = false
			continue
		}
		if step := b.lastStep(); step != nil {
			step.Text += "\n" + line
			continue
		}
		b.addStep(Step{Text: line})
	}

	if !b.started {
		if trimmed := strings.TrimSpace(text); trimmed != "" {
			b.section("")
			b.addStep(Step{Text: trimmed})
		}
	}
	return b.done()
}

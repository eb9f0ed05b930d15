package instr

import (
	"bufio"
	"strconv"
	"strings"
)

// LegacyToMarkdown rewrites bracket-token text as Markdown source, a one-way
// migration aid rather than a faithful round trip: steps are renumbered
// sequentially within their section, so nesting encoded in dotted legacy
// numbers is discarded, and unresolved media references are dropped.
func LegacyToMarkdown(text string, links LinkMap) string {
	var out strings.Builder
	out.Grow(len(text) + len(text)/4)
	stepNo := 0

	writeMedia := func(key string) {
		if url, ok := links.Resolve(key); ok {
			out.WriteString("![" + key + "](" + url + ")\n\n")
		}
	}

	sc := bufio.NewScanner(strings.NewReader(text))
	sc.Buffer(nil, maxLineSize)
	for sc.Scan() {
		line := sc.Text()

		if m := legacyTitlePattern.FindStringSubmatch(line); m != nil {
			out.WriteString("# " + strings.TrimSpace(m[2]) + "\n\n")
			stepNo = 0
			continue
		}
		if m := legacyLinkPattern.FindStringSubmatch(line); m != nil {
			writeMedia(m[1])
			continue
		}
		if m := legacyStepPattern.FindStringSubmatch(line); m != nil {
			var keys []string
			text := strings.TrimSpace(inlineLinkPattern.ReplaceAllStringFunc(m[2], func(tok string) string {
				keys = append(keys, inlineLinkPattern.FindStringSubmatch(tok)[1])
				return ""
			}))
			stepNo++
			out.WriteString(strconv.Itoa(stepNo) + ". " + text + "\n")
			for _, key := range keys {
				writeMedia(key)
			}
			continue
		}
		out.WriteString(line + "\n")
	}
	return out.String()
}

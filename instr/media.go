package instr

import (
	"path"
	"regexp"
	"strings"
)

// mediaLinkPattern matches image syntax ![alt](url) and link syntax
// [text](url) in one pass, so extracted URLs keep source order. The url
// group tolerates one level of balanced parentheses, which real asset names
// like "Revision (2).mp4" require; matching up to the first ')' is a known
// failure mode here.
var mediaLinkPattern = regexp.MustCompile(`(!?)\[([^\][]*)\]\(((?:[^()\n]|\([^()\n]*\))*)\)`)

// mediaExtensions is the extension set treated as attachable media; any
// other link target stays a plain hyperlink. Dispatch between video and
// image handling downstream is also extension based, so URLs pass through
// verbatim.
var mediaExtensions = map[string]bool{
	".mp4":  true,
	".mov":  true,
	".webm": true,
	".ogg":  true,
	".ogv":  true,
	".avi":  true,
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".svg":  true,
	".webp": true,
	".bmp":  true,
}

// IsMediaURL reports whether a URL's file extension is in the recognized
// media set.
func IsMediaURL(url string) bool {
	return mediaExtensions[strings.ToLower(path.Ext(strings.TrimSpace(url)))]
}

// ExtractMedia separates media references from text.
//
// Images are removed from the cleaned text entirely, their URL captured.
// Links to media files keep their link text as plain text, their URL
// captured. Links to anything else become anchors opening in a new
// browsing context and capture nothing. Captured URLs keep source order.
func ExtractMedia(text string) (clean string, urls []string) {
	clean = mediaLinkPattern.ReplaceAllStringFunc(text, func(match string) string {
		m := mediaLinkPattern.FindStringSubmatch(match)
		bang, label, url := m[1], m[2], strings.TrimSpace(m[3])
		if bang == "!" {
			urls = append(urls, url)
			return ""
		}
		if IsMediaURL(url) {
			urls = append(urls, url)
			return label
		}
		return `<a href="` + url + `" target="_blank">` + label + `</a>`
	})
	return clean, urls
}

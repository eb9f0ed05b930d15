package instr

import (
	"io/ioutil"
	"log"
	"regexp"
	"unicode/utf8"
)

// Options configures Parse and ParseMarkdown. The zero value auto-detects
// the grammar, indents two spaces per nesting level, and keeps going on
// bad input.
type Options struct {
	// Format selects a grammar, or FormatAuto to detect one.
	Format Format
	// Assets resolves legacy [[LLn]] media references.
	Assets LinkMap
	// SpacesPerLevel sets the list indent unit; 0 means 2.
	SpacesPerLevel int
	// Strict surfaces invalid input from ParseMarkdown instead of falling
	// back to an empty model. Parse itself never propagates failure.
	Strict bool
	// Validate structurally checks the parsed model, logging violations.
	Validate bool
	// Log receives parse warnings; nil discards them.
	Log *log.Logger
}

func (opt Options) logger() *log.Logger {
	if opt.Log != nil {
		return opt.Log
	}
	return log.New(ioutil.Discard, "", 0)
}

var legacyTokenPattern = regexp.MustCompile(`\[\[TT\d+\]\]|\[\[SS\d+(?:\.\d+)*\]\]|\[\[LL\d+\]\]`)

// DetectFormat decides which grammar a text uses: any legacy token means
// legacy; failing that a Markdown heading or list item means markdown;
// plain unmarked prose defaults to legacy for backward compatibility.
func DetectFormat(text string) Format {
	if legacyTokenPattern.MatchString(text) {
		return FormatLegacy
	}
	if mdHeadOrListStart.MatchString(text) {
		return FormatMarkdown
	}
	return FormatLegacy
}

// Parse converts instructional text in either grammar into a model. It
// never fails: unusable input and parser defects are logged and yield the
// canonical empty model instead.
func Parse(text string, opt Options) (m *Model) {
	logger := opt.logger()

	if !utf8.ValidString(text) {
		logger.Printf("instr: refusing non-text input")
		return Empty()
	}

	defer func() {
		// a parser panic is a programming defect, not bad user input;
		// degrade to the empty model rather than taking the host down
		if r := recover(); r != nil {
			logger.Printf("instr: parse failed: %v", r)
			m = Empty()
		}
	}()

	format := opt.Format
	if format == FormatAuto {
		format = DetectFormat(text)
	}
	switch format {
	case FormatMarkdown:
		md, err := ParseMarkdown(text, opt)
		if err != nil {
			logger.Printf("instr: markdown parse failed: %v", err)
			return Empty()
		}
		m = md
	default:
		m = ParseLegacy(text, opt.Assets)
	}

	if opt.Validate {
		if v := Validate(m); !v.Valid {
			for _, msg := range v.Errors {
				logger.Printf("instr: model validation: %s", msg)
			}
		}
	}
	return m
}

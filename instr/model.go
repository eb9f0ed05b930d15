// Package instr parses instructional text into a navigable model of
// sections and steps.
//
// Two authoring grammars co-exist: a legacy bracket-token grammar ( [[TTn]]
// titles, [[SSn]] steps, [[LLn]] media links ) and a Markdown-like grammar
// ( headings, lists, blockquotes, fenced code ). Both parse into the same
// Model value; Parse auto-detects which grammar a text uses and dispatches.
//
// A Model is an immutable parse result: later navigation and display layers
// only ever read it. Display windowing over a Model lives in package stepper.
package instr

import "strconv"

// Format identifies one of the supported authoring grammars.
type Format int

const (
	// FormatAuto asks Parse to detect the grammar; see DetectFormat.
	FormatAuto Format = iota
	// FormatLegacy is the bracket-token grammar.
	FormatLegacy
	// FormatMarkdown is the Markdown-like grammar.
	FormatMarkdown
)

func (f Format) String() string {
	switch f {
	case FormatAuto:
		return "auto"
	case FormatLegacy:
		return "legacy"
	case FormatMarkdown:
		return "markdown"
	}
	return "Format(" + strconv.Itoa(int(f)) + ")"
}

// Model is the canonical parse result: ordered sections of ordered steps,
// plus a derived flat index over every step for linear navigation.
type Model struct {
	Sections []Section
	// Flat is the concatenation, in section order then step order, of a
	// reference to every step in every section. It is derived state: parsers
	// recompute it after building Sections, nothing mutates it directly.
	Flat []FlatRef
}

// FlatRef is a zero-based (section, step) pointer into Model.Sections.
type FlatRef struct {
	Section int
	Step    int
}

// Section is a titled, append-only group of steps. Index is the section's
// ordinal position at creation time, kept as a string identifier.
// MediaKeys holds raw legacy reference names ( "LL3" ); MediaURLs holds
// resolved URLs, in order of appearance.
type Section struct {
	Index     string
	Title     string
	Steps     []Step
	MediaKeys []string
	MediaURLs []string
}

// StepKind distinguishes special block kinds a step may represent.
type StepKind int

const (
	// StepPlain is an ordinary text step.
	StepPlain StepKind = iota
	// StepCode is a fenced code block collected into one preformatted step.
	StepCode
	// StepRule is a horizontal rule.
	StepRule
	// StepQuote is a blockquote.
	StepQuote
	// StepTask is a checklist item; see Step.Checked.
	StepTask
)

func (k StepKind) String() string {
	switch k {
	case StepPlain:
		return "plain"
	case StepCode:
		return "code"
	case StepRule:
		return "rule"
	case StepQuote:
		return "quote"
	case StepTask:
		return "task"
	}
	return "StepKind(" + strconv.Itoa(int(k)) + ")"
}

// Step is one instructable unit within a section.
//
// Number is the ordinal label ( possibly dotted, like "2.1" ); it is empty
// for unordered, bulleted, and plain items. Text carries already
// inline-formatted markup; continuation lines append to it, it is never
// replaced. Level is nesting depth, 0 at top level.
type Step struct {
	Number    string
	Text      string
	Level     int
	Kind      StepKind
	Checked   bool
	MediaKeys []string
	MediaURLs []string
}

// PrimaryMediaURL returns the media URL a single-slot consumer should
// display: the last one attached, or "" if the step carries no media.
func (s *Step) PrimaryMediaURL() string {
	if n := len(s.MediaURLs); n > 0 {
		return s.MediaURLs[n-1]
	}
	return ""
}

// Empty returns a well formed model with no sections and no steps, the
// canonical result for unusable input.
func Empty() *Model {
	return &Model{Sections: []Section{}, Flat: []FlatRef{}}
}

// StepCount returns the total number of steps across all sections.
func (m *Model) StepCount() int {
	n := 0
	for i := range m.Sections {
		n += len(m.Sections[i].Steps)
	}
	return n
}

// StepAt resolves a flat index to its step, or nil if out of range.
func (m *Model) StepAt(flat int) *Step {
	if flat < 0 || flat >= len(m.Flat) {
		return nil
	}
	ref := m.Flat[flat]
	return &m.Sections[ref.Section].Steps[ref.Step]
}

// reindex rebuilds the derived flat index from Sections. Every parser calls
// it exactly once, after the last section has been built.
func (m *Model) reindex() {
	m.Flat = make([]FlatRef, 0, m.StepCount())
	for i := range m.Sections {
		for j := range m.Sections[i].Steps {
			m.Flat = append(m.Flat, FlatRef{Section: i, Step: j})
		}
	}
}

// builder accumulates model state during a line-oriented parse: the growing
// section list, whether a current section exists, and media references seen
// before any section or step existed to own them.
type builder struct {
	m       Model
	started bool // true once any section exists
	pending struct {
		keys []string
		urls []string
	}
}

// section starts a new section with the given title, flushing any pending
// media onto it. Its Index is its ordinal position.
func (b *builder) section(title string) *Section {
	sec := Section{
		Index: strconv.Itoa(len(b.m.Sections)),
		Title: title,
	}
	sec.MediaKeys = append(sec.MediaKeys, b.pending.keys...)
	sec.MediaURLs = append(sec.MediaURLs, b.pending.urls...)
	b.pending.keys = nil
	b.pending.urls = nil
	b.m.Sections = append(b.m.Sections, sec)
	b.started = true
	return b.current()
}

// current returns the current section, or nil before any exists.
func (b *builder) current() *Section {
	if !b.started {
		return nil
	}
	return &b.m.Sections[len(b.m.Sections)-1]
}

// ensure returns the current section, synthesizing an untitled one on
// demand when text needs a home and no section exists yet.
func (b *builder) ensure() *Section {
	if sec := b.current(); sec != nil {
		return sec
	}
	return b.section("")
}

// lastStep returns the last step of the current section, or nil if the
// current section has no steps ( or there is no current section ).
func (b *builder) lastStep() *Step {
	sec := b.current()
	if sec == nil || len(sec.Steps) == 0 {
		return nil
	}
	return &sec.Steps[len(sec.Steps)-1]
}

// addStep appends a step to the current section, synthesizing one if needed.
func (b *builder) addStep(s Step) *Step {
	sec := b.ensure()
	sec.Steps = append(sec.Steps, s)
	return &sec.Steps[len(sec.Steps)-1]
}

// attachMedia records a media reference using nearest-owner precedence:
// the current step if one exists, else the current section, else the
// pending pool flushed onto the next section created. An empty key is not
// recorded; an empty url ( unresolved reference ) is dropped silently.
func (b *builder) attachMedia(key, url string) {
	if step := b.lastStep(); step != nil {
		if key != "" {
			step.MediaKeys = append(step.MediaKeys, key)
		}
		if url != "" {
			step.MediaURLs = append(step.MediaURLs, url)
		}
		return
	}
	if sec := b.current(); sec != nil {
		if key != "" {
			sec.MediaKeys = append(sec.MediaKeys, key)
		}
		if url != "" {
			sec.MediaURLs = append(sec.MediaURLs, url)
		}
		return
	}
	if key != "" {
		b.pending.keys = append(b.pending.keys, key)
	}
	if url != "" {
		b.pending.urls = append(b.pending.urls, url)
	}
}

// done finalizes and returns the built model.
func (b *builder) done() *Model {
	if b.m.Sections == nil {
		b.m.Sections = []Section{}
	}
	b.m.reindex()
	return &b.m
}

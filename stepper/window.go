// Package stepper computes the sliding display window used during guided
// step-by-step navigation over an instr.Model.
//
// Compute is a pure function of the model and an externally owned current
// position: it shows the current step plus up to a fixed depth of history,
// never future steps, and marks elided history and unreached remainder with
// ellipses. The model is only ever read.
package stepper

import "github.com/calkit/stepdoc/instr"

// State is the visual state an emitted entry carries.
type State int

const (
	// StateNormal applies to every entry of a show-all window.
	StateNormal State = iota
	// StatePast marks entries strictly before the current position.
	StatePast
	// StateCurrent marks the entry at the current position.
	StateCurrent
)

func (s State) String() string {
	switch s {
	case StateNormal:
		return "normal"
	case StatePast:
		return "past"
	case StateCurrent:
		return "current"
	}
	return "invalid"
}

// EntryKind discriminates window entries.
type EntryKind int

const (
	// EntryStep is a visible step.
	EntryStep EntryKind = iota
	// EntryTitle is a section title inserted before the first visible step
	// of its section.
	EntryTitle
	// EntryEllipsis marks elided steps before or after the window.
	EntryEllipsis
)

// Entry is one display line of a computed window.
//
// For EntryStep, Flat is the step's flat index, Ref points into the model,
// and Text is the step's display text. For EntryTitle, Text is the section
// title and Ref.Section identifies the section ( Flat is -1 ). For
// EntryEllipsis both are placeholders ( Flat is -1 ).
type Entry struct {
	Kind  EntryKind
	State State
	Flat  int
	Ref   instr.FlatRef
	Text  string
}

// Window is an ordered list of display entries plus ellipsis flags; the
// ellipses also appear as entries so consumers can render them in place.
// An empty window ( no entries, no ellipses ) means the model has no steps
// and any visible container should be suppressed entirely.
type Window struct {
	Entries          []Entry
	LeadingEllipsis  bool
	TrailingEllipsis bool
}

// Compute maps a model and navigation state to the entries to display.
//
// current is clamped into the model's flat range. When showAll is set the
// whole flat sequence is shown in the normal state with no ellipses.
// Otherwise the window covers [current-history, current]; steps beyond the
// current position are never shown regardless of history depth. A leading
// ellipsis is present iff earlier steps were elided, a trailing one iff
// later steps exist but are not yet reached. A non-empty section title is
// inserted once, before the first windowed step whose section differs from
// the previously emitted entry's.
func Compute(m *instr.Model, current, history int, showAll bool) Window {
	var w Window
	n := len(m.Flat)
	if n == 0 {
		return w
	}
	if current < 0 {
		current = 0
	} else if current >= n {
		current = n - 1
	}
	if history < 0 {
		history = 0
	}

	start, end := 0, n-1
	if !showAll {
		if start = current - history; start < 0 {
			start = 0
		}
		end = current
		w.LeadingEllipsis = current > history
		w.TrailingEllipsis = current < n-1
	}

	stateAt := func(flat int) State {
		if showAll {
			return StateNormal
		}
		if flat < current {
			return StatePast
		}
		return StateCurrent
	}

	if w.LeadingEllipsis {
		w.Entries = append(w.Entries, Entry{
			Kind:  EntryEllipsis,
			State: StatePast,
			Flat:  -1,
			Ref:   instr.FlatRef{Section: -1, Step: -1},
		})
	}

	lastSection := -1
	for flat := start; flat <= end; flat++ {
		ref := m.Flat[flat]
		sec := &m.Sections[ref.Section]
		if sec.Title != "" && ref.Section != lastSection {
			w.Entries = append(w.Entries, Entry{
				Kind:  EntryTitle,
				State: stateAt(flat),
				Flat:  -1,
				Ref:   instr.FlatRef{Section: ref.Section, Step: -1},
				Text:  sec.Title,
			})
		}
		lastSection = ref.Section
		w.Entries = append(w.Entries, Entry{
			Kind:  EntryStep,
			State: stateAt(flat),
			Flat:  flat,
			Ref:   ref,
			Text:  sec.Steps[ref.Step].Text,
		})
	}

	if w.TrailingEllipsis {
		w.Entries = append(w.Entries, Entry{
			Kind:  EntryEllipsis,
			State: StateCurrent,
			Flat:  -1,
			Ref:   instr.FlatRef{Section: -1, Step: -1},
		})
	}

	return w
}

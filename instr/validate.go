package instr

import "fmt"

// Validation reports structural conformance of a model. Violations are
// never fatal; callers typically just log them.
type Validation struct {
	Valid  bool
	Errors []string
}

// Validate structurally checks a model: required fields present, nesting
// levels sane, and the flat index exactly matching the section contents in
// canonical order.
func Validate(m *Model) Validation {
	var v Validation
	fail := func(format string, args ...interface{}) {
		v.Errors = append(v.Errors, fmt.Sprintf(format, args...))
	}

	if m == nil {
		fail("model is nil")
		return v
	}
	if m.Sections == nil {
		fail("sections missing")
	}
	if m.Flat == nil {
		fail("flat step index missing")
	}

	for i := range m.Sections {
		sec := &m.Sections[i]
		if sec.Index == "" {
			fail("section %d: empty index", i)
		}
		for j := range sec.Steps {
			step := &sec.Steps[j]
			if step.Level < 0 {
				fail("section %d step %d: negative nesting level", i, j)
			}
			if step.Kind < StepPlain || step.Kind > StepTask {
				fail("section %d step %d: unknown kind %d", i, j, step.Kind)
			}
			if step.Checked && step.Kind != StepTask {
				fail("section %d step %d: checked non-task step", i, j)
			}
		}
	}

	if want, got := m.StepCount(), len(m.Flat); want != got {
		fail("flat step index has %d entries, sections hold %d steps", got, want)
	} else {
		k := 0
		for i := range m.Sections {
			for j := range m.Sections[i].Steps {
				if ref := m.Flat[k]; ref.Section != i || ref.Step != j {
					fail("flat step %d points at (%d,%d), want (%d,%d)",
						k, ref.Section, ref.Step, i, j)
				}
				k++
			}
		}
	}

	v.Valid = len(v.Errors) == 0
	return v
}

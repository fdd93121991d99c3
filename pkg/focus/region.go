package focus

// Section is one grid instance stacked inside a scroll region. A masonry
// container satisfies this; so does anything else that can navigate its
// own elements and admit focus at its first or last row.
type Section interface {
	// Contains reports whether the handle belongs to this section's
	// latest render pass.
	Contains(handle any) bool
	// Navigate resolves a directional move inside the section without
	// changing focus. ok is false at a dead end.
	Navigate(direction Direction, current any) (target any, ok bool)
	// Focus moves focus to the handle and reveals it.
	Focus(handle any)
	// CenterXOf returns the horizontal center of the handle's element.
	CenterXOf(handle any) (float64, bool)
	// FocusFirst and FocusLast admit focus from outside per [Bridge].
	FocusFirst(targetCenterX ...float64) bool
	FocusLast(targetCenterX ...float64) bool
}

// Region chains stacked sections top to bottom and owns the focus
// hand-off between them.
//
// Inside a section the navigator's usual rules apply. At a section's top
// row, Up continues into the section above through its bottom row; at a
// bottom row, Down continues into the section below through its first
// row, both preserving the horizontal center focus left from. Past the
// topmost section the region reports KeyEventIgnored so an outer focus
// owner (a tab bar, a search field) can take over; past the bottommost
// section focus stays trapped, and Left/Right dead ends are always
// swallowed. One boundary policy for every section, applied here rather
// than wired differently per call site.
type Region struct {
	sections []Section
}

// NewRegion returns a region over sections ordered top to bottom.
func NewRegion(sections ...Section) *Region {
	return &Region{sections: sections}
}

// HandleKeyPress routes a directional key press to the owning section and
// performs cross-section hand-off at its boundaries.
func (r *Region) HandleKeyPress(direction Direction, current any) KeyEventResult {
	owner := -1
	for i, section := range r.sections {
		if section.Contains(current) {
			owner = i
			break
		}
	}
	if owner < 0 {
		return KeyEventIgnored
	}

	section := r.sections[owner]
	if target, ok := section.Navigate(direction, current); ok {
		section.Focus(target)
		return KeyEventHandled
	}

	x, hasX := section.CenterXOf(current)
	switch direction {
	case DirectionUp:
		for i := owner - 1; i >= 0; i-- {
			if r.focusLast(r.sections[i], x, hasX) {
				return KeyEventHandled
			}
		}
		return KeyEventIgnored
	case DirectionDown:
		for i := owner + 1; i < len(r.sections); i++ {
			if r.focusFirst(r.sections[i], x, hasX) {
				return KeyEventHandled
			}
		}
		return KeyEventHandled
	default:
		return KeyEventHandled
	}
}

// FocusFirst admits focus into the topmost non-empty section.
func (r *Region) FocusFirst(targetCenterX ...float64) bool {
	for _, section := range r.sections {
		if section.FocusFirst(targetCenterX...) {
			return true
		}
	}
	return false
}

// FocusLast admits focus into the bottommost non-empty section.
func (r *Region) FocusLast(targetCenterX ...float64) bool {
	for i := len(r.sections) - 1; i >= 0; i-- {
		if r.sections[i].FocusLast(targetCenterX...) {
			return true
		}
	}
	return false
}

func (r *Region) focusFirst(s Section, x float64, hasX bool) bool {
	if hasX {
		return s.FocusFirst(x)
	}
	return s.FocusFirst()
}

func (r *Region) focusLast(s Section, x float64, hasX bool) bool {
	if hasX {
		return s.FocusLast(x)
	}
	return s.FocusLast()
}

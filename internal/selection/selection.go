package selection

import "time"

// Selection owns the Range for one page visit. It is single-writer,
// single-reader: the page controller holds it and hands it to both the
// date picker and the submission assembler, so no locking is needed.
type Selection struct {
	r Range
}

// New returns an empty Selection.
func New() *Selection { return &Selection{} }

// Set replaces the stored range wholesale. There is no merging of
// endpoints; the caller always supplies the full pair.
func (s *Selection) Set(r Range) {
	if r.From != nil {
		d := Day(*r.From)
		r.From = &d
	}
	if r.To != nil {
		d := Day(*r.To)
		r.To = &d
	}
	s.r = r
}

// Reset clears the stored range.
func (s *Selection) Reset() { s.r = Range{} }

// Range returns the stored range as-is.
func (s *Selection) Range() Range { return s.r }

// Display returns the range that should be rendered given the cabin's
// booked days. When the stored range overlaps a booked day the rendered
// range is forced to empty and forced=true is reported, so a selection
// that went stale mid-visit never shows as valid. Callers that want a
// single source of truth clear the stored range when forced is set,
// which keeps the "Clear" affordance consistent with what is rendered.
func (s *Selection) Display(booked []time.Time) (r Range, forced bool) {
	if s.r.OverlapsAny(booked) {
		return Range{}, true
	}
	return s.r, false
}

// Package renderer turns concealment state into paint instructions and
// composes display lines from them. It owns no terminal; the cmd wires it
// to a screen backend.
package renderer

import (
	"sort"

	"github.com/dshills/texveil/internal/conceal"
	"github.com/dshills/texveil/internal/conceal/symbols"
	"github.com/dshills/texveil/internal/engine/buffer"
)

// Paint is one display instruction: replace the source span with Text, or
// for an empty span, insert Text at the position without consuming source.
type Paint struct {
	// Range is the source span in document byte offsets.
	Range buffer.Range

	// Text is the display string.
	Text string

	// Class is the presentation class.
	Class symbols.StyleClass

	// Shape positions the text (inline, superscript, subscript).
	Shape conceal.Shape
}

// IsInsert returns true when the paint consumes no source text.
func (p Paint) IsInsert() bool {
	return p.Range.IsEmpty()
}

// BuildPaints flattens a state's enabled concealments into paint
// instructions ordered by source position. Disabled concealments are
// omitted entirely, so revealed spans render as raw source.
//
// Concealments may overlap; the first claimant of a span wins and later
// paints touching it are dropped. Candidate order breaks the tie, not
// document order, so the scanner's family priority decides.
func BuildPaints(st *conceal.State) []Paint {
	var paints []Paint
	var claimed []buffer.Range

	for _, c := range st.Enabled() {
		repls := c.Spec.Replacements()
		if conflicts(claimed, repls) {
			continue
		}
		for _, r := range repls {
			paints = append(paints, Paint{
				Range: r.Range,
				Text:  r.Text,
				Class: r.Class,
				Shape: r.Shape,
			})
			claimed = append(claimed, r.Range)
		}
	}

	sort.SliceStable(paints, func(i, j int) bool {
		if paints[i].Range.Start != paints[j].Range.Start {
			return paints[i].Range.Start < paints[j].Range.Start
		}
		// Insertions sort before a consuming paint at the same offset.
		return paints[i].Range.End < paints[j].Range.End
	})
	return paints
}

// conflicts reports whether any member span overlaps an already claimed
// span. A concealment claims or yields atomically; partial application
// would tear a group.
func conflicts(claimed []buffer.Range, repls []conceal.Replacement) bool {
	for _, r := range repls {
		for _, c := range claimed {
			if r.Range.Overlaps(c) {
				return true
			}
			// A zero-width insertion strictly inside a claimed span is
			// also a conflict; on the boundary it is not.
			if r.Range.IsEmpty() && r.Range.Start > c.Start && r.Range.Start < c.End {
				return true
			}
		}
	}
	return false
}

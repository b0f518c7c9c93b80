package conceal

import (
	"fmt"

	"github.com/dshills/texveil/internal/conceal/symbols"
	"github.com/dshills/texveil/internal/engine/buffer"
)

// Shape hints how a replacement should be positioned when rendered.
type Shape uint8

const (
	// ShapeInline renders on the baseline.
	ShapeInline Shape = iota

	// ShapeSuper renders as a superscript.
	ShapeSuper

	// ShapeSub renders as a subscript.
	ShapeSub
)

// String returns a human-readable representation of the shape.
func (s Shape) String() string {
	switch s {
	case ShapeSuper:
		return "super"
	case ShapeSub:
		return "sub"
	default:
		return "inline"
	}
}

// Replacement is the atomic unit of substitution: the source span
// [Range.Start, Range.End) renders as Text instead. An empty range denotes
// a zero-width insertion that consumes no source text (used to splice a
// separator such as the "/" of a rendered fraction).
type Replacement struct {
	// Range is the replaced span in document byte offsets.
	Range buffer.Range

	// Text is the display string shown in place of the span.
	Text string

	// Class is an optional presentation class, opaque to the core.
	Class symbols.StyleClass

	// Shape is an optional positioning hint.
	Shape Shape
}

// IsInsertion returns true if this replacement consumes no source text.
func (r Replacement) IsInsertion() bool {
	return r.Range.IsEmpty()
}

// String returns a human-readable representation of the replacement.
func (r Replacement) String() string {
	return fmt.Sprintf("%s->%q", r.Range, r.Text)
}

// Spec is one logical substitution as seen by the reconciliation machine:
// either a single replacement or an ordered group of replacements that
// reveal and conceal atomically. Group members are sorted by start and
// never overlap.
//
// Spec is a closed sum: the only implementations are Single and Group.
// All traversal goes through Replacements, which flattens either shape.
type Spec interface {
	// Replacements returns the member replacements ordered by start.
	Replacements() []Replacement

	// shift returns the spec with every member translated by delta.
	shift(delta buffer.ByteOffset) Spec
}

// Single is a Spec with exactly one replacement.
type Single Replacement

// Replacements implements Spec.
func (s Single) Replacements() []Replacement {
	return []Replacement{Replacement(s)}
}

func (s Single) shift(delta buffer.ByteOffset) Spec {
	s.Range = s.Range.Shift(delta)
	return s
}

// Group is a Spec whose replacements reveal and conceal as one unit, such
// as the command token and both delimiters of a fraction.
type Group []Replacement

// Replacements implements Spec.
func (g Group) Replacements() []Replacement {
	return g
}

func (g Group) shift(delta buffer.ByteOffset) Spec {
	out := make(Group, len(g))
	for i, r := range g {
		r.Range = r.Range.Shift(delta)
		out[i] = r
	}
	return out
}

// Shift returns the spec translated by delta. It is applied uniformly to
// every member, preserving within-group relative positions. Used to turn
// equation-local offsets into document-global ones.
func Shift(s Spec, delta buffer.ByteOffset) Spec {
	return s.shift(delta)
}

// Span returns the overall source range covered by the spec.
func Span(s Spec) buffer.Range {
	repls := s.Replacements()
	if len(repls) == 0 {
		return buffer.Range{}
	}
	return buffer.Range{
		Start: repls[0].Range.Start,
		End:   repls[len(repls)-1].Range.End,
	}
}

// WellFormed reports whether the spec's members are sorted by start and
// non-overlapping.
func WellFormed(s Spec) bool {
	repls := s.Replacements()
	for i := 1; i < len(repls); i++ {
		if repls[i].Range.Start < repls[i-1].Range.Start {
			return false
		}
		if repls[i].Range.Overlaps(repls[i-1].Range) {
			return false
		}
	}
	return true
}

// CursorRelation classifies how the active selection relates to a spec.
type CursorRelation uint8

const (
	// CursorApart means no selection range touches the spec.
	CursorApart CursorRelation = iota

	// CursorEdge means a selection endpoint sits exactly on a member
	// replacement's boundary.
	CursorEdge

	// CursorWithin means a selection range reaches strictly inside a
	// member replacement.
	CursorWithin
)

// String returns a human-readable representation of the relation.
func (c CursorRelation) String() string {
	switch c {
	case CursorEdge:
		return "edge"
	case CursorWithin:
		return "within"
	default:
		return "apart"
	}
}

// Concealment is a spec tagged with its computed cursor relation and
// whether it currently renders concealed. Concealments are never mutated
// after their state is published; a firing delayed reveal replaces the
// affected ones with revealed copies in a fresh state.
type Concealment struct {
	// Spec is the logical substitution.
	Spec Spec

	// Cursor is the relation computed at the last reconciliation.
	Cursor CursorRelation

	// Enabled is true when the substitution renders concealed and false
	// when the raw source shows.
	Enabled bool
}

// State is the per-view concealment state: the current ordered concealment
// list plus whether a delayed reveal was scheduled for it. A State is an
// immutable snapshot once returned to the host; hosts may read one from
// any goroutine without holding the view's lock. The timer itself lives
// on the View.
type State struct {
	// Concealments in document order.
	Concealments []*Concealment

	// generation identifies this state instance; a firing timer that
	// observes a different generation has been superseded.
	generation uint64

	// pending records that a delayed reveal was scheduled when this
	// state was built.
	pending bool
}

// Enabled returns the concealments that currently render concealed.
func (s *State) Enabled() []*Concealment {
	var out []*Concealment
	for _, c := range s.Concealments {
		if c.Enabled {
			out = append(out, c)
		}
	}
	return out
}

// HasPendingReveal returns true if a delayed reveal was scheduled when
// this state was built. The snapshot does not track the timer firing;
// the host learns about that through the refresh callback.
func (s *State) HasPendingReveal() bool {
	return s.pending
}

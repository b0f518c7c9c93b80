package cursor

import (
	"fmt"
	"sort"

	"github.com/dshills/texveil/internal/engine/buffer"
)

// ByteOffset is an alias for buffer.ByteOffset for convenience.
type ByteOffset = buffer.ByteOffset

// Range is an alias for buffer.Range for convenience.
type Range = buffer.Range

// Selection represents a range of selected text.
// Anchor is where the selection started; Head is the current cursor position.
// When Anchor == Head, this represents a cursor with no selection.
// Selection is an immutable value type.
type Selection struct {
	Anchor ByteOffset // Where selection started
	Head   ByteOffset // Current cursor position (where typing occurs)
}

// NewSelection creates a selection from anchor to head.
func NewSelection(anchor, head ByteOffset) Selection {
	return Selection{Anchor: anchor, Head: head}
}

// NewCaret creates a selection representing just a cursor (no extent).
func NewCaret(offset ByteOffset) Selection {
	return Selection{Anchor: offset, Head: offset}
}

// IsEmpty returns true if the selection has no extent (just a cursor).
func (s Selection) IsEmpty() bool {
	return s.Anchor == s.Head
}

// Range returns the selection as a range (always Start <= End).
func (s Selection) Range() Range {
	if s.Anchor <= s.Head {
		return Range{Start: s.Anchor, End: s.Head}
	}
	return Range{Start: s.Head, End: s.Anchor}
}

// String returns a human-readable representation of the selection.
func (s Selection) String() string {
	if s.IsEmpty() {
		return fmt.Sprintf("caret@%d", s.Head)
	}
	return fmt.Sprintf("sel[%d->%d]", s.Anchor, s.Head)
}

// Set is an ordered collection of selections (multi-cursor).
// Selections are kept sorted by their range start.
type Set struct {
	selections []Selection
}

// NewSet creates a selection set from the given selections.
func NewSet(sels ...Selection) *Set {
	s := &Set{selections: append([]Selection(nil), sels...)}
	s.normalize()
	return s
}

// Selections returns the selections in order. The slice must not be mutated.
func (s *Set) Selections() []Selection {
	return s.selections
}

// Ranges returns the normalized ranges of all selections in order.
func (s *Set) Ranges() []Range {
	ranges := make([]Range, len(s.selections))
	for i, sel := range s.selections {
		ranges[i] = sel.Range()
	}
	return ranges
}

// Len returns the number of selections.
func (s *Set) Len() int {
	return len(s.selections)
}

// Primary returns the first selection, or a caret at 0 for an empty set.
func (s *Set) Primary() Selection {
	if len(s.selections) == 0 {
		return NewCaret(0)
	}
	return s.selections[0]
}

// normalize sorts selections by range start.
func (s *Set) normalize() {
	sort.SliceStable(s.selections, func(i, j int) bool {
		return s.selections[i].Range().Start < s.selections[j].Range().Start
	})
}

package tracking

import (
	"fmt"

	"github.com/dshills/texveil/internal/engine/buffer"
)

// ChangeType categorizes the type of a change.
type ChangeType uint8

const (
	// ChangeInsert indicates text was inserted (OldText is empty).
	ChangeInsert ChangeType = iota

	// ChangeDelete indicates text was deleted (NewText is empty).
	ChangeDelete

	// ChangeReplace indicates text was replaced (both OldText and NewText present).
	ChangeReplace
)

// String returns a human-readable representation of the change type.
func (ct ChangeType) String() string {
	switch ct {
	case ChangeInsert:
		return "insert"
	case ChangeDelete:
		return "delete"
	case ChangeReplace:
		return "replace"
	default:
		return "unknown"
	}
}

// Change represents a single change to a document.
// It captures both what changed and where, enabling position mapping
// from the old document state to the new one.
type Change struct {
	// Type indicates whether this is an insert, delete, or replace.
	Type ChangeType

	// Range is the affected range in the OLD text (before the change).
	// For inserts, Start == End (point insertion).
	Range buffer.Range

	// NewRange is the affected range in the NEW text (after the change).
	// For deletes, Start == End.
	NewRange buffer.Range

	// OldText is the text that was removed (empty for inserts).
	OldText string

	// NewText is the text that was added (empty for deletes).
	NewText string
}

// NewInsertChange creates a change representing an insertion.
func NewInsertChange(offset buffer.ByteOffset, text string) Change {
	return Change{
		Type:     ChangeInsert,
		Range:    buffer.Range{Start: offset, End: offset},
		NewRange: buffer.Range{Start: offset, End: offset + buffer.ByteOffset(len(text))},
		NewText:  text,
	}
}

// NewDeleteChange creates a change representing a deletion.
func NewDeleteChange(start, end buffer.ByteOffset, oldText string) Change {
	return Change{
		Type:     ChangeDelete,
		Range:    buffer.Range{Start: start, End: end},
		NewRange: buffer.Range{Start: start, End: start},
		OldText:  oldText,
	}
}

// NewReplaceChange creates a change representing a replacement.
func NewReplaceChange(start, end buffer.ByteOffset, oldText, newText string) Change {
	return Change{
		Type:     ChangeReplace,
		Range:    buffer.Range{Start: start, End: end},
		NewRange: buffer.Range{Start: start, End: start + buffer.ByteOffset(len(newText))},
		OldText:  oldText,
		NewText:  newText,
	}
}

// FromEdit builds a Change from an applied edit and the text it replaced.
func FromEdit(e buffer.Edit, oldText string) Change {
	switch {
	case e.Range.IsEmpty():
		return NewInsertChange(e.Range.Start, e.NewText)
	case e.NewText == "":
		return NewDeleteChange(e.Range.Start, e.Range.End, oldText)
	default:
		return NewReplaceChange(e.Range.Start, e.Range.End, oldText, e.NewText)
	}
}

// Edit returns the buffer edit equivalent to this change.
func (c Change) Edit() buffer.Edit {
	return buffer.Edit{Range: c.Range, NewText: c.NewText}
}

// Delta returns the byte delta of this change.
// Positive means the document grew, negative means it shrank.
func (c Change) Delta() int64 {
	return int64(len(c.NewText)) - int64(len(c.OldText))
}

// String returns a human-readable representation of the change.
func (c Change) String() string {
	switch c.Type {
	case ChangeInsert:
		return fmt.Sprintf("Insert %q at %d", c.NewText, c.Range.Start)
	case ChangeDelete:
		return fmt.Sprintf("Delete %q at %v", c.OldText, c.Range)
	case ChangeReplace:
		return fmt.Sprintf("Replace %q with %q at %v", c.OldText, c.NewText, c.Range)
	default:
		return "Unknown change"
	}
}

// ChangeSet represents the changes of one update transaction,
// in the order they were applied.
type ChangeSet struct {
	Changes []Change
}

// NewChangeSet creates an empty change set.
func NewChangeSet() *ChangeSet {
	return &ChangeSet{}
}

// Add adds a change to the set.
func (cs *ChangeSet) Add(c Change) {
	cs.Changes = append(cs.Changes, c)
}

// Len returns the number of changes.
func (cs *ChangeSet) Len() int {
	if cs == nil {
		return 0
	}
	return len(cs.Changes)
}

// IsEmpty returns true if there are no changes.
func (cs *ChangeSet) IsEmpty() bool {
	return cs.Len() == 0
}

// TotalDelta returns the total byte delta of all changes.
func (cs *ChangeSet) TotalDelta() int64 {
	var delta int64
	for _, c := range cs.Changes {
		delta += c.Delta()
	}
	return delta
}

package cursor

import "github.com/dshills/texveil/internal/engine/buffer"

// Edit is an alias for buffer.Edit for convenience.
type Edit = buffer.Edit

// Bias controls how an offset behaves when an insertion lands exactly on it.
type Bias uint8

const (
	// BiasLeft keeps the offset before text inserted at its position.
	BiasLeft Bias = iota

	// BiasRight moves the offset past text inserted at its position.
	BiasRight
)

// String returns a human-readable representation of the bias.
func (b Bias) String() string {
	if b == BiasRight {
		return "right"
	}
	return "left"
}

// TransformOffset updates an offset after an edit.
//
// Transformation rules:
//   - Edit entirely before the offset: adjust by the edit's delta
//   - Insertion exactly at the offset: bias decides which side it lands on
//   - Edit starting at or after the offset: offset unchanged
//   - Edit spanning the offset: move to the end of the new text
func TransformOffset(offset ByteOffset, edit Edit, bias Bias) ByteOffset {
	// Edit is entirely before offset: adjust by delta
	if edit.Range.End < offset || (edit.Range.End == offset && !edit.Range.IsEmpty()) {
		return offset + edit.Delta()
	}

	// Insertion exactly at the offset position
	if edit.Range.IsEmpty() && edit.Range.Start == offset {
		if bias == BiasRight {
			return offset + ByteOffset(len(edit.NewText))
		}
		return offset
	}

	// Edit starts at or after offset: no change needed
	if edit.Range.Start >= offset {
		return offset
	}

	// Edit spans offset: move to end of new text
	return edit.Range.Start + ByteOffset(len(edit.NewText))
}

// TransformOffsetMulti updates an offset through a sequence of edits.
// Edits must be given in the order they were applied; each edit's offsets
// refer to the document state produced by the previous one.
func TransformOffsetMulti(offset ByteOffset, edits []Edit, bias Bias) ByteOffset {
	for _, e := range edits {
		offset = TransformOffset(offset, e, bias)
	}
	return offset
}

// TransformSelection updates a selection after an edit.
// Both anchor and head keep their position relative to surrounding text.
func TransformSelection(sel Selection, edit Edit) Selection {
	return Selection{
		Anchor: TransformOffset(sel.Anchor, edit, BiasLeft),
		Head:   TransformOffset(sel.Head, edit, BiasRight),
	}
}

// TransformSet updates all selections in a set after an edit.
func TransformSet(s *Set, edit Edit) {
	for i := range s.selections {
		s.selections[i] = TransformSelection(s.selections[i], edit)
	}
	s.normalize()
}

package tracking

import (
	"github.com/dshills/texveil/internal/engine/buffer"
	"github.com/dshills/texveil/internal/engine/cursor"
)

// Mapper translates byte offsets from a document state before a set of
// changes to the state after them, under a chosen stickiness bias.
type Mapper interface {
	// MapOffset returns the position of offset after the changes.
	MapOffset(offset buffer.ByteOffset, bias cursor.Bias) buffer.ByteOffset
}

// identityMapper maps every offset to itself.
type identityMapper struct{}

func (identityMapper) MapOffset(offset buffer.ByteOffset, _ cursor.Bias) buffer.ByteOffset {
	return offset
}

// Identity returns a mapper for updates that did not change the document
// (selection or viewport changes).
func Identity() Mapper {
	return identityMapper{}
}

// changeMapper maps offsets through a change set by replaying each change
// as an edit.
type changeMapper struct {
	edits []buffer.Edit
}

// NewMapper builds a mapper over the given change set.
// A nil or empty change set yields the identity mapper.
func NewMapper(cs *ChangeSet) Mapper {
	if cs.IsEmpty() {
		return identityMapper{}
	}
	edits := make([]buffer.Edit, len(cs.Changes))
	for i, c := range cs.Changes {
		edits[i] = c.Edit()
	}
	return changeMapper{edits: edits}
}

func (m changeMapper) MapOffset(offset buffer.ByteOffset, bias cursor.Bias) buffer.ByteOffset {
	return cursor.TransformOffsetMulti(offset, m.edits, bias)
}

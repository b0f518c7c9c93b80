package conceal

import (
	"strconv"
	"strings"

	"github.com/dshills/texveil/internal/engine/buffer"
	"github.com/dshills/texveil/internal/engine/cursor"
	"github.com/dshills/texveil/internal/engine/tracking"
)

// Action is the state machine's decision for one candidate.
type Action uint8

const (
	// ActionConceal renders the candidate concealed.
	ActionConceal Action = iota

	// ActionReveal renders the candidate as raw source immediately.
	ActionReveal

	// ActionDelay keeps the candidate concealed now and reveals it after
	// RevealDelay unless a later update supersedes the decision.
	ActionDelay
)

// String returns a human-readable representation of the action.
func (a Action) String() string {
	switch a {
	case ActionReveal:
		return "reveal"
	case ActionDelay:
		return "delay"
	default:
		return "conceal"
	}
}

// Decide applies the reveal/conceal decision table.
//
// A candidate collapses as soon as the cursor is fully away and expands as
// soon as the cursor is fully inside. A cursor sitting exactly on a
// boundary defers the reveal, so merely moving the caret past a glyph
// does not flicker. The exception is a previous state of within, in
// which case the user was editing and the reveal is immediate. A held
// mouse button forces conceal regardless.
func Decide(old, new CursorRelation, hasOld, mouseDown bool) Action {
	if mouseDown {
		return ActionConceal
	}
	switch new {
	case CursorWithin:
		return ActionReveal
	case CursorEdge:
		if hasOld && old == CursorWithin {
			return ActionReveal
		}
		return ActionDelay
	default:
		return ActionConceal
	}
}

// signature builds the identity key of a replacement-bound list: the group
// shape (count) plus each member's exact boundaries.
func signature(bounds []buffer.Range) string {
	var b strings.Builder
	b.WriteString(strconv.Itoa(len(bounds)))
	for _, r := range bounds {
		b.WriteByte(':')
		b.WriteString(strconv.FormatInt(r.Start, 10))
		b.WriteByte('-')
		b.WriteString(strconv.FormatInt(r.End, 10))
	}
	return b.String()
}

// specSignature is the signature of a spec's current bounds.
func specSignature(s Spec) string {
	repls := s.Replacements()
	bounds := make([]buffer.Range, len(repls))
	for i, r := range repls {
		bounds[i] = r.Range
	}
	return signature(bounds)
}

// mappedSignature is the signature of a concealment's bounds forward-mapped
// through the edit. Starts stick to the right of insertions at their
// position and ends stick to the left, so an insertion exactly at a
// concealment's edge never silently expands the concealed region.
func mappedSignature(c *Concealment, mapper tracking.Mapper) string {
	repls := c.Spec.Replacements()
	bounds := make([]buffer.Range, len(repls))
	for i, r := range repls {
		bounds[i] = buffer.Range{
			Start: mapper.MapOffset(r.Range.Start, cursor.BiasRight),
			End:   mapper.MapOffset(r.Range.End, cursor.BiasLeft),
		}
	}
	return signature(bounds)
}

// reconcileResult is the outcome of one reconciliation pass.
type reconcileResult struct {
	// concealments is the new concealment list, in candidate order.
	concealments []*Concealment

	// delayed are the concealments whose reveal is deferred; the caller
	// schedules the single delayed-reveal timer over exactly this
	// snapshot.
	delayed []*Concealment
}

// reconcile matches new candidates against the previous concealments,
// classifies each against the selection, and applies the decision table.
// The previous state contributes only each candidate's prior cursor
// relation, matched by identity: same group shape and, after
// forward-mapping through the edit, exactly equal boundaries.
func reconcile(prev []*Concealment, candidates []Spec, ranges []buffer.Range, mouseDown bool, mapper tracking.Mapper) reconcileResult {
	old := make(map[string]CursorRelation, len(prev))
	for _, c := range prev {
		key := mappedSignature(c, mapper)
		if _, exists := old[key]; !exists {
			old[key] = c.Cursor
		}
	}

	var res reconcileResult
	res.concealments = make([]*Concealment, 0, len(candidates))
	for _, spec := range candidates {
		oldRel, hasOld := old[specSignature(spec)]
		newRel := Classify(ranges, spec)

		c := &Concealment{Spec: spec, Cursor: newRel}
		switch Decide(oldRel, newRel, hasOld, mouseDown) {
		case ActionConceal:
			c.Enabled = true
		case ActionReveal:
			c.Enabled = false
		case ActionDelay:
			c.Enabled = true
			res.delayed = append(res.delayed, c)
		}
		res.concealments = append(res.concealments, c)
	}
	return res
}

package conceal

import (
	"testing"

	"github.com/dshills/texveil/internal/engine/buffer"
)

func TestClassifySingle(t *testing.T) {
	// Spec covering [2, 8), as for \alpha at offset 2.
	spec := Single{Range: buffer.NewRange(2, 8), Text: "α"}

	tests := []struct {
		name   string
		ranges []buffer.Range
		want   CursorRelation
	}{
		{"caret before", []buffer.Range{buffer.NewRange(0, 0)}, CursorApart},
		{"caret after", []buffer.Range{buffer.NewRange(10, 10)}, CursorApart},
		{"caret at start", []buffer.Range{buffer.NewRange(2, 2)}, CursorEdge},
		{"caret at end", []buffer.Range{buffer.NewRange(8, 8)}, CursorEdge},
		{"caret inside", []buffer.Range{buffer.NewRange(5, 5)}, CursorWithin},
		{"selection strictly inside", []buffer.Range{buffer.NewRange(3, 6)}, CursorWithin},
		{"selection covering", []buffer.Range{buffer.NewRange(0, 10)}, CursorWithin},
		{"selection ending at start", []buffer.Range{buffer.NewRange(0, 2)}, CursorEdge},
		{"selection starting at end", []buffer.Range{buffer.NewRange(8, 10)}, CursorEdge},
		{"selection ending inside", []buffer.Range{buffer.NewRange(0, 3)}, CursorWithin},
		{"no selection", nil, CursorApart},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.ranges, spec); got != tt.want {
				t.Errorf("Classify(%v) = %s, want %s", tt.ranges, got, tt.want)
			}
		})
	}
}

func TestClassifyGroupGaps(t *testing.T) {
	// Fraction-like group: members at [0,5), [5,6), [7,8). Offset 6 sits
	// in the gap between members but coincides with member boundaries.
	spec := Group{
		{Range: buffer.NewRange(0, 5)},
		{Range: buffer.NewRange(5, 6)},
		{Range: buffer.NewRange(7, 8)},
	}

	tests := []struct {
		name   string
		ranges []buffer.Range
		want   CursorRelation
	}{
		{"caret in member", []buffer.Range{buffer.NewRange(3, 3)}, CursorWithin},
		{"caret on shared boundary", []buffer.Range{buffer.NewRange(5, 5)}, CursorEdge},
		{"caret at gap boundary", []buffer.Range{buffer.NewRange(6, 6)}, CursorEdge},
		{"caret at last member start", []buffer.Range{buffer.NewRange(7, 7)}, CursorEdge},
		{"caret past group", []buffer.Range{buffer.NewRange(9, 9)}, CursorApart},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.ranges, spec); got != tt.want {
				t.Errorf("Classify(%v) = %s, want %s", tt.ranges, got, tt.want)
			}
		})
	}
}

func TestClassifyCaretBetweenAdjacentMembers(t *testing.T) {
	// A caret sitting on the shared boundary of two adjacent members
	// overlaps both only as a touching point, but the point is interior
	// to the group span; either member alone still reports edge, and
	// neither is entered strictly, so the relation stays edge only when
	// no member contains the point strictly.
	spec := Group{
		{Range: buffer.NewRange(0, 4)},
		{Range: buffer.NewRange(6, 9)},
	}
	if got := Classify([]buffer.Range{buffer.NewRange(4, 4)}, spec); got != CursorEdge {
		t.Errorf("caret at first member end = %s, want edge", got)
	}
	if got := Classify([]buffer.Range{buffer.NewRange(5, 5)}, spec); got != CursorApart {
		t.Errorf("caret in uncovered gap = %s, want apart", got)
	}
}

func TestClassifyMultipleRangesPriority(t *testing.T) {
	spec := Single{Range: buffer.NewRange(10, 20)}

	// within from any range beats edge from another.
	ranges := []buffer.Range{
		buffer.NewRange(10, 10),
		buffer.NewRange(15, 15),
	}
	if got := Classify(ranges, spec); got != CursorWithin {
		t.Errorf("got %s, want within", got)
	}

	// edge from any range beats apart from another.
	ranges = []buffer.Range{
		buffer.NewRange(0, 0),
		buffer.NewRange(20, 20),
	}
	if got := Classify(ranges, spec); got != CursorEdge {
		t.Errorf("got %s, want edge", got)
	}
}

func TestClassifyZeroWidthInsertion(t *testing.T) {
	// A zero-width member, such as the spliced "/" of a fraction. A caret
	// exactly at its position is a touching point on its boundary.
	spec := Group{
		{Range: buffer.NewRange(3, 3), Text: "/"},
	}
	if got := Classify([]buffer.Range{buffer.NewRange(3, 3)}, spec); got != CursorEdge {
		t.Errorf("caret at insertion point = %s, want edge", got)
	}
	if got := Classify([]buffer.Range{buffer.NewRange(2, 5)}, spec); got != CursorEdge {
		t.Errorf("selection over insertion point = %s, want edge", got)
	}
}

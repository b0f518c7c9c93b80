package cursor

import (
	"testing"

	"github.com/dshills/texveil/internal/engine/buffer"
)

func TestTransformOffsetInsertBefore(t *testing.T) {
	edit := buffer.NewInsert(2, "xx")

	for _, bias := range []Bias{BiasLeft, BiasRight} {
		if got := TransformOffset(10, edit, bias); got != 12 {
			t.Errorf("bias %s: TransformOffset(10) = %d, want 12", bias, got)
		}
	}
}

func TestTransformOffsetInsertAfter(t *testing.T) {
	edit := buffer.NewInsert(20, "xx")

	for _, bias := range []Bias{BiasLeft, BiasRight} {
		if got := TransformOffset(10, edit, bias); got != 10 {
			t.Errorf("bias %s: TransformOffset(10) = %d, want 10", bias, got)
		}
	}
}

func TestTransformOffsetInsertAtPoint(t *testing.T) {
	edit := buffer.NewInsert(10, "abc")

	if got := TransformOffset(10, edit, BiasLeft); got != 10 {
		t.Errorf("BiasLeft: got %d, want 10", got)
	}
	if got := TransformOffset(10, edit, BiasRight); got != 13 {
		t.Errorf("BiasRight: got %d, want 13", got)
	}
}

func TestTransformOffsetDelete(t *testing.T) {
	tests := []struct {
		name   string
		edit   Edit
		offset ByteOffset
		want   ByteOffset
	}{
		{"delete before", buffer.NewDelete(0, 3), 10, 7},
		{"delete ending at offset", buffer.NewDelete(7, 10), 10, 7},
		{"delete spanning offset", buffer.NewDelete(5, 15), 10, 5},
		{"delete after", buffer.NewDelete(12, 15), 10, 10},
		{"delete starting at offset", buffer.NewDelete(10, 15), 10, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TransformOffset(tt.offset, tt.edit, BiasLeft); got != tt.want {
				t.Errorf("TransformOffset(%d, %s) = %d, want %d", tt.offset, tt.edit, got, tt.want)
			}
		})
	}
}

func TestTransformOffsetReplaceSpanning(t *testing.T) {
	edit := buffer.NewEdit(buffer.NewRange(5, 15), "xy")
	if got := TransformOffset(10, edit, BiasLeft); got != 7 {
		t.Errorf("got %d, want 7", got)
	}
}

func TestTransformOffsetMulti(t *testing.T) {
	edits := []Edit{
		buffer.NewInsert(0, "ab"),  // offset 10 -> 12
		buffer.NewDelete(0, 1),     // 12 -> 11
		buffer.NewInsert(11, "zz"), // at point, bias decides
	}
	if got := TransformOffsetMulti(10, edits, BiasLeft); got != 11 {
		t.Errorf("BiasLeft: got %d, want 11", got)
	}
	if got := TransformOffsetMulti(10, edits, BiasRight); got != 13 {
		t.Errorf("BiasRight: got %d, want 13", got)
	}
}

func TestTransformSelection(t *testing.T) {
	sel := NewSelection(5, 10)
	edit := buffer.NewInsert(0, "abc")
	got := TransformSelection(sel, edit)
	want := NewSelection(8, 13)
	if got != want {
		t.Errorf("TransformSelection = %v, want %v", got, want)
	}
}

func TestSetNormalization(t *testing.T) {
	s := NewSet(NewCaret(20), NewSelection(10, 5), NewCaret(1))

	ranges := s.Ranges()
	if len(ranges) != 3 {
		t.Fatalf("len = %d, want 3", len(ranges))
	}
	if ranges[0].Start != 1 || ranges[1].Start != 5 || ranges[2].Start != 20 {
		t.Errorf("ranges not sorted: %v", ranges)
	}
	if s.Primary() != NewCaret(1) {
		t.Errorf("Primary = %v, want caret@1", s.Primary())
	}
}

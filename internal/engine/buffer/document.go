package buffer

import (
	"fmt"
	"strings"
)

// Document is a flat in-memory text document.
//
// The concealment engine only ever reads bounded visible regions, so a flat
// string is sufficient storage; edits rebuild the backing string. Document is
// not safe for concurrent use; callers serialize access per view.
type Document struct {
	text string
}

// NewDocument creates a document with the given initial text.
func NewDocument(text string) *Document {
	return &Document{text: text}
}

// Len returns the document length in bytes.
func (d *Document) Len() ByteOffset {
	return ByteOffset(len(d.text))
}

// Text returns the full document text.
func (d *Document) Text() string {
	return d.text
}

// Slice returns the text within r, clamped to the document bounds.
func (d *Document) Slice(r Range) string {
	r = r.Clamp(d.Len())
	return d.text[r.Start:r.End]
}

// Apply performs the edit and returns the text it replaced.
// Returns an error if the edit range is invalid or out of bounds.
func (d *Document) Apply(e Edit) (string, error) {
	if !e.Range.IsValid() {
		return "", fmt.Errorf("apply: invalid range %s", e.Range)
	}
	if e.Range.Start < 0 || e.Range.End > d.Len() {
		return "", fmt.Errorf("apply: range %s out of bounds (len %d)", e.Range, d.Len())
	}
	old := d.text[e.Range.Start:e.Range.End]
	d.text = d.text[:e.Range.Start] + e.NewText + d.text[e.Range.End:]
	return old, nil
}

// LineCount returns the number of lines in the document.
// An empty document has one (empty) line.
func (d *Document) LineCount() int {
	return strings.Count(d.text, "\n") + 1
}

// LineRange returns the range of the given 0-indexed line,
// excluding the trailing newline. Returns false if line is out of range.
func (d *Document) LineRange(line int) (Range, bool) {
	if line < 0 {
		return Range{}, false
	}
	start := ByteOffset(0)
	for i := 0; i < line; i++ {
		nl := strings.IndexByte(d.text[start:], '\n')
		if nl < 0 {
			return Range{}, false
		}
		start += ByteOffset(nl) + 1
	}
	end := d.Len()
	if nl := strings.IndexByte(d.text[start:], '\n'); nl >= 0 {
		end = start + ByteOffset(nl)
	}
	return Range{Start: start, End: end}, true
}

// PointAt converts a byte offset into a line/column point.
// The offset is clamped to the document bounds.
func (d *Document) PointAt(offset ByteOffset) Point {
	if offset < 0 {
		offset = 0
	}
	if offset > d.Len() {
		offset = d.Len()
	}
	prefix := d.text[:offset]
	line := strings.Count(prefix, "\n")
	col := offset
	if nl := strings.LastIndexByte(prefix, '\n'); nl >= 0 {
		col = offset - ByteOffset(nl) - 1
	}
	return Point{Line: uint32(line), Column: uint32(col)}
}

// OffsetAt converts a line/column point to a byte offset.
// Out-of-range points are clamped to the nearest valid offset.
func (d *Document) OffsetAt(p Point) ByteOffset {
	r, ok := d.LineRange(int(p.Line))
	if !ok {
		return d.Len()
	}
	off := r.Start + ByteOffset(p.Column)
	if off > r.End {
		off = r.End
	}
	return off
}

package renderer

import (
	"github.com/dshills/texveil/internal/engine/buffer"
)

// ComposeLine applies paints to one source line and returns its display
// cells. The line starts at lineStart in document offsets; paints outside
// [lineStart, lineStart+len(line)) are ignored. Paints must be ordered by
// start, as BuildPaints produces them.
//
// A paint whose source span crosses the line boundary is applied to the
// portion on this line only, with the display text attached to the line
// holding the span's start.
func ComposeLine(line string, lineStart buffer.ByteOffset, paints []Paint) []Cell {
	lineEnd := lineStart + buffer.ByteOffset(len(line))
	cells := make([]Cell, 0, len(line))

	pos := lineStart
	for _, p := range paints {
		if p.Range.End < lineStart || p.Range.Start >= lineEnd {
			if p.Range.Start >= lineEnd {
				break
			}
			continue
		}
		if p.Range.Start >= pos {
			// Source text up to the paint.
			cells = appendSource(cells, line, pos-lineStart, p.Range.Start-lineStart)
			cells = append(cells, CellsFromString(p.Text, p.Class)...)
			pos = p.Range.End
		}
		// A paint starting before pos was begun on a previous line; its
		// remaining source is consumed without display text.
		if p.Range.End > pos {
			pos = p.Range.End
		}
	}
	if pos < lineEnd {
		cells = appendSource(cells, line, pos-lineStart, lineEnd-lineStart)
	}
	return cells
}

// appendSource emits the raw source slice [from, to) as unclassed cells.
func appendSource(cells []Cell, line string, from, to buffer.ByteOffset) []Cell {
	if from >= to {
		return cells
	}
	return append(cells, CellsFromString(line[from:to], "")...)
}

// Width returns the total display width of a composed line.
func Width(cells []Cell) int {
	var w int
	for _, c := range cells {
		w += c.Width
	}
	return w
}

// Render returns the composed line as a plain string, dropping
// continuation cells. Used for snapshot-style assertions and the
// status line.
func Render(cells []Cell) string {
	runes := make([]rune, 0, len(cells))
	for _, c := range cells {
		if c.Rune != 0 {
			runes = append(runes, c.Rune)
		}
	}
	return string(runes)
}

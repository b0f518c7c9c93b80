package renderer

import "github.com/dshills/texveil/internal/conceal/symbols"

// Cell is a single display cell of a composed line.
type Cell struct {
	// Rune is the character to display.
	// A value of 0 indicates a continuation cell (for wide characters).
	Rune rune

	// Width is the display width of this cell.
	// 0 for continuation and combining cells, 1 for normal characters,
	// 2 for wide CJK characters.
	Width int

	// Class is the presentation class, zero for plain source text.
	Class symbols.StyleClass
}

// NewCell creates a cell with the given rune and class.
func NewCell(r rune, class symbols.StyleClass) Cell {
	return Cell{
		Rune:  r,
		Width: RuneWidth(r),
		Class: class,
	}
}

// IsContinuation returns true if this is the second cell of a wide
// character.
func (c Cell) IsContinuation() bool {
	return c.Width == 0 && c.Rune == 0
}

// ContinuationCell returns a continuation cell for wide characters.
func ContinuationCell(class symbols.StyleClass) Cell {
	return Cell{Class: class}
}

// CellsFromString creates cells from a string, inserting continuation
// cells after wide runes.
func CellsFromString(s string, class symbols.StyleClass) []Cell {
	cells := make([]Cell, 0, len(s))
	for _, r := range s {
		c := NewCell(r, class)
		cells = append(cells, c)
		if c.Width == 2 {
			cells = append(cells, ContinuationCell(class))
		}
	}
	return cells
}

// RuneWidth returns the display width of a rune. Returns 0 for control
// characters and combining marks, 1 for normal characters, and 2 for wide
// (CJK) characters.
func RuneWidth(r rune) int {
	if r < 32 || r == 0x7F {
		return 0
	}
	if isCombining(r) {
		return 0
	}
	if isWideRune(r) {
		return 2
	}
	return 1
}

// isCombining checks the combining-mark ranges diacritic substitution
// produces.
func isCombining(r rune) bool {
	// Combining Diacritical Marks
	if r >= 0x0300 && r <= 0x036F {
		return true
	}
	// Combining Diacritical Marks for Symbols (vector arrow lives here)
	if r >= 0x20D0 && r <= 0x20FF {
		return true
	}
	return false
}

// isWideRune checks if a rune is a wide (double-width) character.
// This is a simplified implementation covering common CJK ranges.
func isWideRune(r rune) bool {
	// Hangul Jamo
	if r >= 0x1100 && r <= 0x115F {
		return true
	}
	// Hangul Compatibility Jamo
	if r >= 0x3130 && r <= 0x318F {
		return true
	}
	// CJK Unified Ideographs and related
	if r >= 0x2E80 && r <= 0x9FFF {
		return true
	}
	// Hangul Syllables
	if r >= 0xAC00 && r <= 0xD7A3 {
		return true
	}
	// CJK Compatibility Ideographs
	if r >= 0xF900 && r <= 0xFAFF {
		return true
	}
	// Vertical forms
	if r >= 0xFE10 && r <= 0xFE1F {
		return true
	}
	// CJK Compatibility Forms
	if r >= 0xFE30 && r <= 0xFE6F {
		return true
	}
	// Fullwidth Forms
	if r >= 0xFF00 && r <= 0xFF60 {
		return true
	}
	// Fullwidth symbol variants
	if r >= 0xFFE0 && r <= 0xFFE6 {
		return true
	}
	// CJK Unified Ideographs Extension B and beyond
	if r >= 0x20000 && r <= 0x2FFFF {
		return true
	}
	// CJK Compatibility Ideographs Supplement
	if r >= 0x2F800 && r <= 0x2FA1F {
		return true
	}
	return false
}

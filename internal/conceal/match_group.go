package conceal

import (
	"github.com/dshills/texveil/internal/conceal/symbols"
	"github.com/dshills/texveil/internal/engine/buffer"
)

// bracketGlyphs maps grouped commands to the display forms of their
// opening and closing delimiters.
var bracketGlyphs = map[string][2]string{
	"bra":    {"⟨", "|"},
	"ket":    {"|", "⟩"},
	"braket": {"⟨", "⟩"},
	"Bra":    {"⟨", "|"},
	"Ket":    {"|", "⟩"},
	"set":    {"{", "}"},
}

// matchGrouped emits the grouped bracketed constructs: fractions,
// bra-kets, sets, and braced super/subscripts. Each construct's member
// replacements reveal and conceal atomically. Malformed or unterminated
// constructs are skipped with no partial substitution.
func (s *Scanner) matchGrouped(text string) []Spec {
	var specs []Spec
	for i := 0; i < len(text); i++ {
		switch {
		case commandAt(text, i):
			name, end := command(text, i)
			if name == "frac" {
				if spec, ok := matchFraction(text, i, end); ok {
					specs = append(specs, spec)
				}
			} else if glyphs, ok := bracketGlyphs[name]; ok {
				if spec, ok := matchBracketed(text, i, end, glyphs); ok {
					specs = append(specs, spec)
				}
			}
			// Resume just past the command token rather than past the
			// whole construct, so constructs nested inside the argument
			// braces still conceal.
			i = end - 1
		case (text[i] == '^' || text[i] == '_') && !escapedAt(text, i):
			if spec, ok := matchScript(text, i); ok {
				specs = append(specs, spec)
			}
		}
	}
	return specs
}

// matchFraction scans \frac{a}{b} whose backslash sits at i and whose
// command name ends at end. The denominator's brace must open immediately
// after the numerator's close brace with no gap.
//
// Single-digit fractions with a vulgar-fraction glyph conceal to that one
// glyph; everything else becomes the grouped (a)/(b) form with a
// zero-width "/" spliced between the halves.
func matchFraction(text string, i, end int) (Spec, bool) {
	numOpen, numClose, ok := braceArg(text, end)
	if !ok {
		return nil, false
	}
	denOpen, denClose, ok := braceArg(text, numClose+1)
	if !ok || denOpen != numClose+1 {
		return nil, false
	}
	num := text[numOpen+1 : numClose]
	den := text[denOpen+1 : denClose]

	if glyph, ok := symbols.VulgarFraction(num, den); ok {
		return Single{
			Range: buffer.NewRange(int64(i), int64(denClose+1)),
			Text:  string(glyph),
		}, true
	}

	return Group{
		{Range: buffer.NewRange(int64(i), int64(numOpen)), Text: ""},
		{Range: buffer.NewRange(int64(numOpen), int64(numOpen+1)), Text: "(", Class: symbols.ClassBracket},
		{Range: buffer.NewRange(int64(numClose), int64(numClose+1)), Text: ")", Class: symbols.ClassBracket},
		{Range: buffer.NewRange(int64(denOpen), int64(denOpen)), Text: "/"},
		{Range: buffer.NewRange(int64(denOpen), int64(denOpen+1)), Text: "(", Class: symbols.ClassBracket},
		{Range: buffer.NewRange(int64(denClose), int64(denClose+1)), Text: ")", Class: symbols.ClassBracket},
	}, true
}

// matchBracketed scans a \cmd{...} construct whose delimiters display as
// the given glyph pair. The command token merges into the opening glyph;
// the body stays raw.
func matchBracketed(text string, i, end int, glyphs [2]string) (Spec, bool) {
	open, clos, ok := braceArg(text, end)
	if !ok {
		return nil, false
	}
	return Group{
		{Range: buffer.NewRange(int64(i), int64(open+1)), Text: glyphs[0], Class: symbols.ClassBracket},
		{Range: buffer.NewRange(int64(clos), int64(clos+1)), Text: glyphs[1], Class: symbols.ClassBracket},
	}, true
}

// matchScript scans a superscript or subscript whose ^ or _ sits at i:
// either a braced argument or a single bare character. When every
// character of the argument has a Unicode super/subscript form the whole
// construct collapses to those characters; otherwise the markup conceals
// and the body carries a shape hint for the renderer.
func matchScript(text string, i int) (Spec, bool) {
	table := symbols.Superscript
	shape := ShapeSuper
	if text[i] == '_' {
		table = symbols.Subscript
		shape = ShapeSub
	}

	// Braced form.
	if open, clos, ok := braceArg(text, i+1); ok {
		body := text[open+1 : clos]
		if body == "" {
			return nil, false
		}
		if mapped, ok := table.MapAll(body); ok {
			return Single{
				Range: buffer.NewRange(int64(i), int64(clos+1)),
				Text:  mapped,
			}, true
		}
		return Group{
			{Range: buffer.NewRange(int64(i), int64(open+1)), Text: ""},
			{Range: buffer.NewRange(int64(open+1), int64(clos)), Text: body, Shape: shape},
			{Range: buffer.NewRange(int64(clos), int64(clos+1)), Text: ""},
		}, true
	}

	// Bare single character.
	if i+1 < len(text) {
		if mapped, ok := table.MapAll(text[i+1 : i+2]); ok {
			return Single{
				Range: buffer.NewRange(int64(i), int64(i+2)),
				Text:  mapped,
			}, true
		}
	}
	return nil, false
}

package conceal

import (
	"github.com/dshills/texveil/internal/conceal/symbols"
	"github.com/dshills/texveil/internal/engine/buffer"
)

// matchRange emits range-style substitutions whose argument is captured as
// one chunk: alphabet commands (\mathbb, \mathcal, \mathfrak) that
// transliterate the argument character by character, and style commands
// (\mathbf, \text, \underline, ...) that pass the argument through
// verbatim under a presentation class.
func (s *Scanner) matchRange(text string) []Spec {
	var specs []Spec
	for i := 0; i < len(text); i++ {
		if !commandAt(text, i) {
			continue
		}
		name, end := command(text, i)

		if charmap, ok := symbols.Transliterated[name]; ok {
			if spec, next, matched := matchTransliterated(text, i, end, charmap); matched {
				specs = append(specs, spec)
				i = next - 1
				continue
			}
		}

		if class, ok := symbols.Styles[name]; ok {
			if spec, next, matched := matchStyled(text, i, end, class); matched {
				specs = append(specs, spec)
				i = next - 1
				continue
			}
		}

		i = end - 1
	}
	return specs
}

// matchTransliterated scans \cmd{...} and replaces the whole construct
// with the argument mapped through the alphabet table. Skipped when no
// character maps, so \mathbb{+} stays raw rather than concealing to
// itself.
func matchTransliterated(text string, i, end int, charmap symbols.CharMap) (Spec, int, bool) {
	open, clos, ok := braceArg(text, end)
	if !ok || clos == open+1 {
		return nil, 0, false
	}
	mapped, any := charmap.MapString(text[open+1 : clos])
	if !any {
		return nil, 0, false
	}
	return Single{
		Range: buffer.NewRange(int64(i), int64(clos+1)),
		Text:  mapped,
	}, clos + 1, true
}

// matchStyled scans \cmd{...}, hiding the command and braces and tagging
// the verbatim body with the command's presentation class.
func matchStyled(text string, i, end int, class symbols.StyleClass) (Spec, int, bool) {
	open, clos, ok := braceArg(text, end)
	if !ok || clos == open+1 {
		return nil, 0, false
	}
	body := text[open+1 : clos]
	return Group{
		{Range: buffer.NewRange(int64(i), int64(open+1)), Text: ""},
		{Range: buffer.NewRange(int64(open+1), int64(clos)), Text: body, Class: class},
		{Range: buffer.NewRange(int64(clos), int64(clos+1)), Text: ""},
	}, clos + 1, true
}

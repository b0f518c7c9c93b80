package conceal

import (
	"strings"

	"github.com/dshills/texveil/internal/engine/buffer"
)

// limitsSuffix is the continuation swallowed after a matched symbol.
const limitsSuffix = "\\limits"

// matchSymbols emits direct command-to-glyph substitutions.
//
// Command names are the maximal letter run after the backslash, so a
// longer command never conceals through a shorter table entry: \pmatrix
// lexes as "pmatrix", not "pm" followed by letters.
func (s *Scanner) matchSymbols(text string) []Spec {
	var specs []Spec
	for i := 0; i < len(text); i++ {
		if !commandAt(text, i) {
			continue
		}
		name, end := command(text, i)
		if name == "" {
			continue
		}
		glyph, ok := s.symbols.Lookup(name)
		if !ok {
			i = end - 1
			continue
		}
		// A trailing \limits extends the concealed span.
		if strings.HasPrefix(text[end:], limitsSuffix) {
			end += len(limitsSuffix)
		}
		specs = append(specs, Single{
			Range: buffer.NewRange(int64(i), int64(end)),
			Text:  glyph,
		})
		i = end - 1
	}
	return specs
}

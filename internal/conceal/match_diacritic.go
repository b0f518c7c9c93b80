package conceal

import (
	"github.com/dshills/texveil/internal/engine/buffer"
)

// matchDiacritics emits modifier substitutions such as \hat{x}, rendered
// as the base letter followed by a Unicode combining character. The
// argument must be exactly one letter; anything longer is left to the
// range-style matchers.
func (s *Scanner) matchDiacritics(text string) []Spec {
	var specs []Spec
	for i := 0; i < len(text); i++ {
		if !commandAt(text, i) {
			continue
		}
		name, end := command(text, i)
		mark, ok := s.diacritics.Lookup(name)
		if !ok {
			i = end - 1
			continue
		}
		open, clos, ok := braceArg(text, end)
		if !ok || clos != open+2 || !isLetter(text[open+1]) {
			i = end - 1
			continue
		}
		specs = append(specs, Single{
			Range: buffer.NewRange(int64(i), int64(clos+1)),
			Text:  string(text[open+1]) + mark,
		})
		i = clos
	}
	return specs
}

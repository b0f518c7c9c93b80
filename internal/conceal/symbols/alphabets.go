package symbols

// CharMap maps single source characters to display characters. Used for
// alphabets that transliterate an argument character by character.
type CharMap map[rune]rune

// Lookup returns the mapped rune for r.
func (m CharMap) Lookup(r rune) (rune, bool) {
	mapped, ok := m[r]
	return mapped, ok
}

// MapString transliterates s through the map. Characters without an entry
// pass through unchanged. The second return is false if no character mapped.
func (m CharMap) MapString(s string) (string, bool) {
	var out []rune
	any := false
	for _, r := range s {
		if mapped, ok := m[r]; ok {
			out = append(out, mapped)
			any = true
			continue
		}
		out = append(out, r)
	}
	return string(out), any
}

// buildAlphabet constructs a CharMap translating A-Z and a-z to contiguous
// Unicode alphabet blocks starting at upper and lower, then applies
// exceptions for the letters Unicode encodes outside those blocks.
func buildAlphabet(upper, lower rune, exceptions CharMap) CharMap {
	m := make(CharMap, 52+len(exceptions))
	for i := rune(0); i < 26; i++ {
		m['A'+i] = upper + i
		m['a'+i] = lower + i
	}
	for k, v := range exceptions {
		m[k] = v
	}
	return m
}

// digitRange adds 0-9 mapped to a contiguous block starting at zero.
func (m CharMap) digitRange(zero rune) CharMap {
	for i := rune(0); i < 10; i++ {
		m['0'+i] = zero + i
	}
	return m
}

// Blackboard maps characters to mathematical double-struck (blackboard
// bold) forms, as used by \mathbb.
var Blackboard = buildAlphabet(0x1d538, 0x1d552, CharMap{
	'C': 'ℂ',
	'H': 'ℍ',
	'N': 'ℕ',
	'P': 'ℙ',
	'Q': 'ℚ',
	'R': 'ℝ',
	'Z': 'ℤ',
}).digitRange(0x1d7d8)

// Script maps characters to mathematical script forms, as used by
// \mathcal and \mathscr.
var Script = buildAlphabet(0x1d49c, 0x1d4b6, CharMap{
	'B': 'ℬ',
	'E': 'ℰ',
	'F': 'ℱ',
	'H': 'ℋ',
	'I': 'ℐ',
	'L': 'ℒ',
	'M': 'ℳ',
	'R': 'ℛ',
	'e': 'ℯ',
	'g': 'ℊ',
	'o': 'ℴ',
})

// Fraktur maps characters to mathematical fraktur forms, as used by
// \mathfrak.
var Fraktur = buildAlphabet(0x1d504, 0x1d51e, CharMap{
	'C': 'ℭ',
	'H': 'ℌ',
	'I': 'ℑ',
	'R': 'ℜ',
	'Z': 'ℨ',
})

package symbols

// Superscript maps characters to their Unicode superscript forms.
var Superscript = CharMap{
	'0': '⁰',
	'1': '¹',
	'2': '²',
	'3': '³',
	'4': '⁴',
	'5': '⁵',
	'6': '⁶',
	'7': '⁷',
	'8': '⁸',
	'9': '⁹',
	'+': '⁺',
	'-': '⁻',
	'=': '⁼',
	'(': '⁽',
	')': '⁾',
	'n': 'ⁿ',
	'i': 'ⁱ',
}

// Subscript maps characters to their Unicode subscript forms.
var Subscript = CharMap{
	'0': '₀',
	'1': '₁',
	'2': '₂',
	'3': '₃',
	'4': '₄',
	'5': '₅',
	'6': '₆',
	'7': '₇',
	'8': '₈',
	'9': '₉',
	'+': '₊',
	'-': '₋',
	'=': '₌',
	'(': '₍',
	')': '₎',
	'a': 'ₐ',
	'e': 'ₑ',
	'o': 'ₒ',
	'x': 'ₓ',
	'h': 'ₕ',
	'k': 'ₖ',
	'l': 'ₗ',
	'm': 'ₘ',
	'n': 'ₙ',
	'p': 'ₚ',
	's': 'ₛ',
	't': 'ₜ',
}

// MapAll transliterates s through the map and reports whether every
// character mapped. Used for sup/subscripts, which only conceal when the
// whole argument has Unicode forms.
func (m CharMap) MapAll(s string) (string, bool) {
	var out []rune
	for _, r := range s {
		mapped, ok := m[r]
		if !ok {
			return "", false
		}
		out = append(out, mapped)
	}
	return string(out), true
}

package symbols

// Fractions maps "numerator/denominator" argument pairs to Unicode vulgar
// fraction glyphs. Only fractions with a single glyph form are listed;
// everything else renders through the grouped (a)/(b) form.
var Fractions = map[[2]string]rune{
	{"1", "2"}:  '½',
	{"1", "3"}:  '⅓',
	{"2", "3"}:  '⅔',
	{"1", "4"}:  '¼',
	{"3", "4"}:  '¾',
	{"1", "5"}:  '⅕',
	{"2", "5"}:  '⅖',
	{"3", "5"}:  '⅗',
	{"4", "5"}:  '⅘',
	{"1", "6"}:  '⅙',
	{"5", "6"}:  '⅚',
	{"1", "7"}:  '⅐',
	{"1", "8"}:  '⅛',
	{"3", "8"}:  '⅜',
	{"5", "8"}:  '⅝',
	{"7", "8"}:  '⅞',
	{"1", "9"}:  '⅑',
	{"1", "10"}: '⅒',
}

// VulgarFraction returns the single-glyph form of num/den, if one exists.
func VulgarFraction(num, den string) (rune, bool) {
	r, ok := Fractions[[2]string{num, den}]
	return r, ok
}

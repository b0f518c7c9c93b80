package conceal

import (
	"github.com/dshills/texveil/internal/conceal/symbols"
)

// Family is a bitset of matcher families.
type Family uint8

const (
	// FamilySymbols enables direct command-to-glyph substitution.
	FamilySymbols Family = 1 << iota

	// FamilyDiacritics enables combining-mark substitution (\hat{x}).
	FamilyDiacritics

	// FamilyGrouped enables grouped bracketed constructs (fractions,
	// bra-kets, sets, braced super/subscripts).
	FamilyGrouped

	// FamilyRange enables range-style substitution (\mathbb, \text, ...).
	FamilyRange

	// FamilyAll enables every matcher family.
	FamilyAll = FamilySymbols | FamilyDiacritics | FamilyGrouped | FamilyRange
)

// Scanner turns one equation's raw text into an ordered list of
// substitution candidates. Scanning is pure and total: the same text
// always yields the same candidates, and unmatched or malformed patterns
// are simply not emitted.
//
// Matcher families run in a fixed priority order and their results are
// concatenated. Later families may emit candidates overlapping earlier
// ones; the renderer honors the first claimant of a span.
type Scanner struct {
	symbols    symbols.Table
	diacritics symbols.Table
	families   Family
}

// ScannerOption configures a Scanner.
type ScannerOption func(*Scanner)

// WithSymbols replaces the direct-substitution symbol table.
func WithSymbols(t symbols.Table) ScannerOption {
	return func(s *Scanner) { s.symbols = t }
}

// WithDiacritics replaces the diacritic table.
func WithDiacritics(t symbols.Table) ScannerOption {
	return func(s *Scanner) { s.diacritics = t }
}

// WithFamilies restricts which matcher families run.
func WithFamilies(f Family) ScannerOption {
	return func(s *Scanner) { s.families = f }
}

// NewScanner creates a scanner with the built-in tables and all families
// enabled.
func NewScanner(opts ...ScannerOption) *Scanner {
	s := &Scanner{
		symbols:    symbols.Default(),
		diacritics: symbols.Diacritics,
		families:   FamilyAll,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Scan produces the substitution candidates for one equation's text.
// All offsets in the result are local to the equation; callers shift each
// spec by the equation's document start before handing it to the
// reconciler.
func (s *Scanner) Scan(equation string) []Spec {
	var specs []Spec
	if s.families&FamilySymbols != 0 {
		specs = append(specs, s.matchSymbols(equation)...)
	}
	if s.families&FamilyDiacritics != 0 {
		specs = append(specs, s.matchDiacritics(equation)...)
	}
	if s.families&FamilyGrouped != 0 {
		specs = append(specs, s.matchGrouped(equation)...)
	}
	if s.families&FamilyRange != 0 {
		specs = append(specs, s.matchRange(equation)...)
	}
	return specs
}

// command reads the markup command whose backslash sits at i.
// The name is the maximal run of ASCII letters after the backslash; when
// the character after the backslash is not a letter the command is that
// single character (escapes like \{ and spacing commands like \,).
// Returns the name and the index just past it.
func command(text string, i int) (string, int) {
	j := i + 1
	for j < len(text) && isLetter(text[j]) {
		j++
	}
	if j == i+1 {
		if j < len(text) {
			return text[j : j+1], j + 1
		}
		return "", j
	}
	return text[i+1 : j], j
}

// commandAt reports whether an unescaped backslash command starts at i.
func commandAt(text string, i int) bool {
	return text[i] == '\\' && !escapedAt(text, i)
}

// braceArg locates the {...} argument whose opening brace sits at i.
// Returns the opening and closing brace indexes.
func braceArg(text string, i int) (open, clos int, ok bool) {
	if i >= len(text) || text[i] != '{' {
		return 0, 0, false
	}
	c := MatchForward(text, "{", "}", i)
	if c < 0 {
		return 0, 0, false
	}
	return i, c, true
}

func isLetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

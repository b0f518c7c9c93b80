package conceal

import "strings"

// MatchForward finds the close token matching the open token that begins at
// from, honoring nesting depth. It returns the index of the matching close
// token, or -1 if the text ends before the pair balances. Tokens may be
// multi-byte; backslash-escaped occurrences do not count. When open and
// close are the same token, the next unescaped occurrence matches.
func MatchForward(text, open, close string, from int) int {
	if from < 0 || from+len(open) > len(text) || !strings.HasPrefix(text[from:], open) {
		return -1
	}
	depth := 0
	for i := from; i < len(text); {
		if escapedAt(text, i) {
			i++
			continue
		}
		switch {
		case strings.HasPrefix(text[i:], open):
			if open == close && i != from {
				return i
			}
			depth++
			i += len(open)
		case strings.HasPrefix(text[i:], close):
			depth--
			if depth == 0 {
				return i
			}
			i += len(close)
		default:
			i++
		}
	}
	return -1
}

// MatchBackward finds the open token matching the close token that begins
// at from, scanning toward the start of the text. It returns the index of
// the matching open token, or -1 if none balances.
func MatchBackward(text, open, close string, from int) int {
	if from < 0 || from+len(close) > len(text) || !strings.HasPrefix(text[from:], close) {
		return -1
	}
	depth := 0
	for i := from; i >= 0; i-- {
		if escapedAt(text, i) {
			continue
		}
		switch {
		case strings.HasPrefix(text[i:], close):
			if open == close && i != from {
				return i
			}
			depth++
		case strings.HasPrefix(text[i:], open):
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// escapedAt returns true if the character at i is preceded by an odd
// number of backslashes.
func escapedAt(text string, i int) bool {
	n := 0
	for j := i - 1; j >= 0 && text[j] == '\\'; j-- {
		n++
	}
	return n%2 == 1
}

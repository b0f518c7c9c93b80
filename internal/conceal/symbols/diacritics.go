package symbols

// Diacritics maps modifier commands to Unicode combining characters.
// The scanner appends the combining mark after the base letter, so
// "\hat{x}" renders as "x" + U+0302.
var Diacritics = Table{
	"hat":       "̂",
	"widehat":   "̂",
	"tilde":     "̃",
	"widetilde": "̃",
	"bar":       "̄",
	"overline":  "̅",
	"breve":     "̆",
	"dot":       "̇",
	"ddot":      "̈",
	"mathring":  "̊",
	"check":     "̌",
	"acute":     "́",
	"grave":     "̀",
	"vec":       "⃗",
	"underline": "̲",
	"not":       "̸",
}

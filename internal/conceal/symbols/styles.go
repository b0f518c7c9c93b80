package symbols

// StyleClass identifies a presentation class for a styled text run.
// Classes are opaque to the concealment core; the renderer decides what
// they look like.
type StyleClass string

const (
	// ClassBold marks bold text runs.
	ClassBold StyleClass = "bold"

	// ClassItalic marks italic text runs.
	ClassItalic StyleClass = "italic"

	// ClassRoman marks upright (non-math) text runs.
	ClassRoman StyleClass = "roman"

	// ClassUnderline marks underlined runs.
	ClassUnderline StyleClass = "underline"

	// ClassStrike marks struck-through runs.
	ClassStrike StyleClass = "strike"

	// ClassBracket marks concealed delimiter glyphs.
	ClassBracket StyleClass = "bracket"
)

// Styles maps range-style commands to the class applied to their verbatim
// argument.
var Styles = map[string]StyleClass{
	"mathbf":     ClassBold,
	"boldsymbol": ClassBold,
	"textbf":     ClassBold,
	"mathit":     ClassItalic,
	"textit":     ClassItalic,
	"emph":       ClassItalic,
	"mathrm":     ClassRoman,
	"text":       ClassRoman,
	"textrm":     ClassRoman,
	"mathsf":     ClassRoman,
	"underline":  ClassUnderline,
	"cancel":     ClassStrike,
}

// Transliterated maps range-style commands to the character map their
// argument is transliterated through.
var Transliterated = map[string]CharMap{
	"mathbb":   Blackboard,
	"mathds":   Blackboard,
	"mathcal":  Script,
	"mathscr":  Script,
	"mathfrak": Fraktur,
}

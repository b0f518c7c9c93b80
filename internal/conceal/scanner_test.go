package conceal

import (
	"reflect"
	"testing"

	"github.com/dshills/texveil/internal/conceal/symbols"
	"github.com/dshills/texveil/internal/engine/buffer"
)

func TestScanDirectSymbol(t *testing.T) {
	s := NewScanner()

	specs := s.Scan(`\alpha`)
	if len(specs) != 1 {
		t.Fatalf("got %d specs, want 1", len(specs))
	}
	want := Single{Range: buffer.NewRange(0, 6), Text: "α"}
	if specs[0] != want {
		t.Errorf("got %+v, want %+v", specs[0], want)
	}
}

func TestScanNoSucceedingLetterGuard(t *testing.T) {
	s := NewScanner()

	// \pmatrix must not conceal through the \pm entry.
	for _, spec := range s.Scan(`\pmatrix`) {
		for _, r := range spec.Replacements() {
			if r.Text == "±" {
				t.Fatalf("concealed \\pm inside \\pmatrix: %+v", spec)
			}
		}
	}

	// \pm on its own conceals.
	specs := s.Scan(`\pm`)
	if len(specs) != 1 {
		t.Fatalf("got %d specs, want 1", len(specs))
	}
	if r := specs[0].Replacements()[0]; r.Text != "±" {
		t.Errorf("text = %q, want ±", r.Text)
	}
}

func TestScanTrailingLimits(t *testing.T) {
	s := NewScanner()

	specs := s.Scan(`\sum\limits_{k}`)
	if len(specs) == 0 {
		t.Fatal("no specs")
	}
	r := specs[0].Replacements()[0]
	if r.Text != "∑" {
		t.Fatalf("text = %q, want ∑", r.Text)
	}
	if r.Range != buffer.NewRange(0, 11) {
		t.Errorf("range = %s, want [0:11) to swallow \\limits", r.Range)
	}
}

func TestScanDiacritic(t *testing.T) {
	s := NewScanner()

	specs := s.Scan(`\hat{x}`)
	if len(specs) != 1 {
		t.Fatalf("got %d specs, want 1", len(specs))
	}
	want := Single{Range: buffer.NewRange(0, 7), Text: "x̂"}
	if specs[0] != want {
		t.Errorf("got %+v, want %+v", specs[0], want)
	}
}

func TestScanDiacriticRequiresSingleLetter(t *testing.T) {
	s := NewScanner(WithFamilies(FamilyDiacritics))

	if specs := s.Scan(`\hat{xy}`); len(specs) != 0 {
		t.Errorf("multi-letter arg should not match diacritic: %+v", specs)
	}
	if specs := s.Scan(`\hat{1}`); len(specs) != 0 {
		t.Errorf("digit arg should not match diacritic: %+v", specs)
	}
}

func TestScanFractionGroup(t *testing.T) {
	s := NewScanner()

	specs := s.Scan(`\frac{a}{b}`)
	if len(specs) != 1 {
		t.Fatalf("got %d specs, want 1", len(specs))
	}
	want := Group{
		{Range: buffer.NewRange(0, 5), Text: ""},
		{Range: buffer.NewRange(5, 6), Text: "(", Class: symbols.ClassBracket},
		{Range: buffer.NewRange(7, 8), Text: ")", Class: symbols.ClassBracket},
		{Range: buffer.NewRange(8, 8), Text: "/"},
		{Range: buffer.NewRange(8, 9), Text: "(", Class: symbols.ClassBracket},
		{Range: buffer.NewRange(10, 11), Text: ")", Class: symbols.ClassBracket},
	}
	if !reflect.DeepEqual(specs[0], want) {
		t.Errorf("got %+v, want %+v", specs[0], want)
	}
	if !WellFormed(specs[0]) {
		t.Error("fraction group is not well-formed")
	}

	// Rendered: hidden \frac, (a), spliced /, (b).
	if got := renderSpec(`\frac{a}{b}`, specs[0]); got != "(a)/(b)" {
		t.Errorf("rendered = %q, want (a)/(b)", got)
	}
}

func TestScanFractionDenominatorMustBeAdjacent(t *testing.T) {
	s := NewScanner(WithFamilies(FamilyGrouped))

	if specs := s.Scan(`\frac{a} {b}`); len(specs) != 0 {
		t.Errorf("gap before denominator should not match: %+v", specs)
	}
}

func TestScanFractionUnterminated(t *testing.T) {
	s := NewScanner(WithFamilies(FamilyGrouped))

	for _, text := range []string{`\frac{a}{b`, `\frac{a`, `\frac`, `\frac{a}`} {
		if specs := s.Scan(text); len(specs) != 0 {
			t.Errorf("%q: got %+v, want no specs", text, specs)
		}
	}
}

func TestScanVulgarFraction(t *testing.T) {
	s := NewScanner()

	specs := s.Scan(`\frac{1}{2}`)
	if len(specs) != 1 {
		t.Fatalf("got %d specs, want 1", len(specs))
	}
	want := Single{Range: buffer.NewRange(0, 11), Text: "½"}
	if specs[0] != want {
		t.Errorf("got %+v, want %+v", specs[0], want)
	}
}

func TestScanNestedFraction(t *testing.T) {
	s := NewScanner(WithFamilies(FamilyGrouped))

	text := `\frac{\frac{a}{b}}{c}`
	specs := s.Scan(text)
	if len(specs) != 2 {
		t.Fatalf("got %d specs, want 2 (outer and inner)", len(specs))
	}
	outer := Span(specs[0])
	if outer != buffer.NewRange(0, int64(len(text))) {
		t.Errorf("outer span = %s, want whole text", outer)
	}
}

func TestScanBraKet(t *testing.T) {
	s := NewScanner()

	tests := []struct {
		text string
		want string
	}{
		{`\bra{x}`, `⟨x|`},
		{`\ket{x}`, `|x⟩`},
		{`\braket{x|y}`, `⟨x|y⟩`},
		{`\set{1,2}`, `{1,2}`},
	}

	for _, tt := range tests {
		specs := s.Scan(tt.text)
		if len(specs) != 1 {
			t.Fatalf("%q: got %d specs, want 1", tt.text, len(specs))
		}
		if got := renderSpec(tt.text, specs[0]); got != tt.want {
			t.Errorf("%q rendered %q, want %q", tt.text, got, tt.want)
		}
	}
}

func TestScanSuperscript(t *testing.T) {
	s := NewScanner()

	tests := []struct {
		text string
		want string
	}{
		{`x^{2}`, `x²`},
		{`x^2`, `x²`},
		{`x^{2n}`, `x²ⁿ`},
		{`a_{1}`, `a₁`},
		{`a_0`, `a₀`},
	}

	for _, tt := range tests {
		specs := s.Scan(tt.text)
		if len(specs) != 1 {
			t.Fatalf("%q: got %d specs, want 1", tt.text, len(specs))
		}
		if got := renderSpec(tt.text, specs[0]); got != tt.want {
			t.Errorf("%q rendered %q, want %q", tt.text, got, tt.want)
		}
	}
}

func TestScanSuperscriptShapeHint(t *testing.T) {
	s := NewScanner(WithFamilies(FamilyGrouped))

	specs := s.Scan(`x^{k+q}`)
	if len(specs) != 1 {
		t.Fatalf("got %d specs, want 1", len(specs))
	}
	g, ok := specs[0].(Group)
	if !ok {
		t.Fatalf("want Group for unmappable script, got %T", specs[0])
	}
	if len(g) != 3 {
		t.Fatalf("group len = %d, want 3", len(g))
	}
	if g[1].Text != "k+q" || g[1].Shape != ShapeSuper {
		t.Errorf("body = %+v, want verbatim with super shape", g[1])
	}
}

func TestScanMathbb(t *testing.T) {
	s := NewScanner()

	specs := s.Scan(`\mathbb{R}`)
	if len(specs) != 1 {
		t.Fatalf("got %d specs, want 1", len(specs))
	}
	want := Single{Range: buffer.NewRange(0, 10), Text: "ℝ"}
	if specs[0] != want {
		t.Errorf("got %+v, want %+v", specs[0], want)
	}
}

func TestScanStyledText(t *testing.T) {
	s := NewScanner()

	specs := s.Scan(`\mathbf{ABC}`)
	if len(specs) != 1 {
		t.Fatalf("got %d specs, want 1", len(specs))
	}
	g, ok := specs[0].(Group)
	if !ok {
		t.Fatalf("want Group, got %T", specs[0])
	}
	if g[1].Text != "ABC" || g[1].Class != symbols.ClassBold {
		t.Errorf("body = %+v, want verbatim bold", g[1])
	}
	if got := renderSpec(`\mathbf{ABC}`, specs[0]); got != "ABC" {
		t.Errorf("rendered = %q, want ABC", got)
	}
}

func TestScanDeterministic(t *testing.T) {
	s := NewScanner()
	text := `\alpha + \frac{1}{3}\mathbb{R}^{2} \hat{x} \to \infty`

	first := s.Scan(text)
	second := s.Scan(text)
	if !reflect.DeepEqual(first, second) {
		t.Error("scanning the same text twice differs")
	}
	if len(first) == 0 {
		t.Error("expected candidates")
	}
	for _, spec := range first {
		if !WellFormed(spec) {
			t.Errorf("spec not well-formed: %+v", spec)
		}
	}
}

func TestScanFamilies(t *testing.T) {
	s := NewScanner(WithFamilies(FamilySymbols))

	specs := s.Scan(`\alpha \hat{x} \frac{a}{b} \mathbb{R}`)
	for _, spec := range specs {
		if _, ok := spec.(Group); ok {
			t.Errorf("grouped family disabled but got group %+v", spec)
		}
	}
}

func TestShiftPreservesRelativePositions(t *testing.T) {
	s := NewScanner()
	specs := s.Scan(`\frac{a}{b}`)
	shifted := Shift(specs[0], 100)

	orig := specs[0].Replacements()
	moved := shifted.Replacements()
	if len(orig) != len(moved) {
		t.Fatal("member count changed")
	}
	for i := range orig {
		if moved[i].Range.Start-orig[i].Range.Start != 100 {
			t.Errorf("member %d start shifted by %d", i, moved[i].Range.Start-orig[i].Range.Start)
		}
		if moved[i].Range.End-orig[i].Range.End != 100 {
			t.Errorf("member %d end shifted by %d", i, moved[i].Range.End-orig[i].Range.End)
		}
	}
}

// renderSpec applies a spec's replacements to its source text, yielding
// what the user would see with the concealment enabled.
func renderSpec(text string, spec Spec) string {
	out := ""
	pos := int64(0)
	for _, r := range spec.Replacements() {
		out += text[pos:r.Range.Start] + r.Text
		pos = r.Range.End
	}
	return out + text[pos:]
}

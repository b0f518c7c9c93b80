package conceal

import (
	"testing"

	"github.com/dshills/texveil/internal/engine/buffer"
)

func TestRegionsInline(t *testing.T) {
	doc := `before $\alpha$ after`
	regions := Regions(doc)
	if len(regions) != 1 {
		t.Fatalf("got %d regions, want 1", len(regions))
	}
	r := regions[0]
	if r.Kind != RegionInline {
		t.Errorf("kind = %s, want inline", r.Kind)
	}
	if doc[r.Range.Start:r.Range.End] != `\alpha` {
		t.Errorf("content = %q", doc[r.Range.Start:r.Range.End])
	}
}

func TestRegionsDisplay(t *testing.T) {
	doc := "$$\n\\frac{a}{b}\n$$"
	regions := Regions(doc)
	if len(regions) != 1 {
		t.Fatalf("got %d regions, want 1", len(regions))
	}
	if regions[0].Kind != RegionDisplay {
		t.Errorf("kind = %s, want display", regions[0].Kind)
	}
	if got := doc[regions[0].Range.Start:regions[0].Range.End]; got != "\n\\frac{a}{b}\n" {
		t.Errorf("content = %q", got)
	}
}

func TestRegionsMathFence(t *testing.T) {
	doc := "text\n```math\n\\alpha + \\beta\n```\nmore"
	regions := Regions(doc)
	if len(regions) != 1 {
		t.Fatalf("got %d regions, want 1", len(regions))
	}
	if regions[0].Kind != RegionFence {
		t.Errorf("kind = %s, want fence", regions[0].Kind)
	}
	if got := doc[regions[0].Range.Start:regions[0].Range.End]; got != "\\alpha + \\beta" {
		t.Errorf("content = %q", got)
	}
}

func TestRegionsSkipNonMathFence(t *testing.T) {
	doc := "```sh\necho $HOME $PATH\n```\n"
	if regions := Regions(doc); len(regions) != 0 {
		t.Errorf("got %d regions, want 0: %v", len(regions), regions)
	}
}

func TestRegionsEscapedDollar(t *testing.T) {
	doc := `costs \$5 and \$10`
	if regions := Regions(doc); len(regions) != 0 {
		t.Errorf("got %d regions, want 0", len(regions))
	}
}

func TestRegionsUnterminated(t *testing.T) {
	doc := `a $\alpha`
	if regions := Regions(doc); len(regions) != 0 {
		t.Errorf("got %d regions, want 0", len(regions))
	}
}

func TestLocateEquation(t *testing.T) {
	doc := `x $\alpha$ y $\beta$`

	tests := []struct {
		pos   buffer.ByteOffset
		want  string
		found bool
	}{
		{0, "", false},
		{3, `\alpha`, true},
		{9, `\alpha`, true}, // content end boundary counts as inside
		{11, "", false},
		{15, `\beta`, true},
	}

	for _, tt := range tests {
		r, ok := LocateEquation(doc, tt.pos)
		if ok != tt.found {
			t.Errorf("LocateEquation(%d) found = %v, want %v", tt.pos, ok, tt.found)
			continue
		}
		if ok {
			if got := doc[r.Range.Start:r.Range.End]; got != tt.want {
				t.Errorf("LocateEquation(%d) = %q, want %q", tt.pos, got, tt.want)
			}
		}
	}
}

func TestRegionsInFiltersByVisible(t *testing.T) {
	doc := `$\alpha$ filler $\beta$`
	visible := buffer.NewRange(0, 8)
	regions := RegionsIn(doc, visible)
	if len(regions) != 1 {
		t.Fatalf("got %d regions, want 1", len(regions))
	}
	if got := doc[regions[0].Range.Start:regions[0].Range.End]; got != `\alpha` {
		t.Errorf("content = %q", got)
	}
}

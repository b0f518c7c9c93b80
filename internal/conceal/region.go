package conceal

import (
	"strings"

	"github.com/dshills/texveil/internal/engine/buffer"
)

// RegionKind identifies how an equation region is delimited.
type RegionKind uint8

const (
	// RegionInline is a $...$ span.
	RegionInline RegionKind = iota

	// RegionDisplay is a $$...$$ block.
	RegionDisplay

	// RegionFence is a ```math fenced code block.
	RegionFence
)

// String returns a human-readable representation of the kind.
func (k RegionKind) String() string {
	switch k {
	case RegionDisplay:
		return "display"
	case RegionFence:
		return "fence"
	default:
		return "inline"
	}
}

// Region is one equation region: the content span between delimiters,
// excluding the delimiters themselves.
type Region struct {
	// Range is the content span in document byte offsets.
	Range buffer.Range

	// Kind is how the region is delimited.
	Kind RegionKind
}

// mathFenceLangs are the fence info strings treated as math blocks.
var mathFenceLangs = map[string]bool{
	"math":  true,
	"latex": true,
	"tex":   true,
}

// Regions enumerates every equation region in the document, in order.
// Malformed regions (no closing delimiter) are skipped.
func Regions(doc string) []Region {
	var out []Region
	atLineStart := true
	for i := 0; i < len(doc); {
		if atLineStart && strings.HasPrefix(doc[i:], "```") {
			region, next, ok := scanFence(doc, i)
			if ok && region.Kind == RegionFence {
				out = append(out, region)
			}
			i = next
			atLineStart = true
			continue
		}
		if doc[i] == '$' && !escapedAt(doc, i) {
			if region, next, ok := scanDollar(doc, i); ok {
				out = append(out, region)
				i = next
				atLineStart = false
				continue
			}
		}
		atLineStart = doc[i] == '\n'
		i++
	}
	return out
}

// RegionsIn returns the regions whose content intersects or touches the
// visible range. Only these are ever scanned for concealments.
func RegionsIn(doc string, visible buffer.Range) []Region {
	var out []Region
	for _, r := range Regions(doc) {
		if r.Range.Touches(visible) {
			out = append(out, r)
		}
	}
	return out
}

// LocateEquation returns the content span of the equation enclosing pos,
// or false if pos is not inside any equation region. A position sitting
// exactly on either end of the content span counts as inside.
func LocateEquation(doc string, pos buffer.ByteOffset) (Region, bool) {
	for _, r := range Regions(doc) {
		if pos >= r.Range.Start && pos <= r.Range.End {
			return r, true
		}
		if r.Range.Start > pos {
			break
		}
	}
	return Region{}, false
}

// scanDollar scans a $...$ or $$...$$ region starting at i.
// Returns the region, the index to resume scanning at, and whether a
// closing delimiter was found.
func scanDollar(doc string, i int) (Region, int, bool) {
	if strings.HasPrefix(doc[i:], "$$") {
		end := indexUnescaped(doc, "$$", i+2)
		if end < 0 {
			return Region{}, 0, false
		}
		return Region{
			Range: buffer.NewRange(int64(i+2), int64(end)),
			Kind:  RegionDisplay,
		}, end + 2, true
	}
	end := indexUnescaped(doc, "$", i+1)
	if end < 0 {
		return Region{}, 0, false
	}
	return Region{
		Range: buffer.NewRange(int64(i+1), int64(end)),
		Kind:  RegionInline,
	}, end + 1, true
}

// scanFence scans a fenced code block whose opening ``` begins at i.
// Non-math fences are consumed without producing a region, so dollar signs
// inside ordinary code blocks never open an equation.
func scanFence(doc string, i int) (Region, int, bool) {
	infoEnd := strings.IndexByte(doc[i:], '\n')
	if infoEnd < 0 {
		return Region{}, len(doc), false
	}
	info := strings.TrimSpace(doc[i+3 : i+infoEnd])
	contentStart := i + infoEnd + 1

	// Closing fence: a line beginning with ```.
	rest := doc[contentStart:]
	closeIdx := -1
	if strings.HasPrefix(rest, "```") {
		closeIdx = 0
	} else if idx := strings.Index(rest, "\n```"); idx >= 0 {
		closeIdx = idx + 1
	}
	if closeIdx < 0 {
		return Region{}, len(doc), false
	}
	contentEnd := contentStart + closeIdx
	if contentEnd > contentStart {
		contentEnd-- // exclude the newline before the closing fence
	}
	next := contentStart + closeIdx + 3

	if !mathFenceLangs[info] {
		return Region{}, next, false
	}
	return Region{
		Range: buffer.NewRange(int64(contentStart), int64(contentEnd)),
		Kind:  RegionFence,
	}, next, true
}

// indexUnescaped returns the index of the next unescaped occurrence of tok
// at or after from, or -1.
func indexUnescaped(doc, tok string, from int) int {
	for i := from; i+len(tok) <= len(doc); i++ {
		if strings.HasPrefix(doc[i:], tok) && !escapedAt(doc, i) {
			return i
		}
	}
	return -1
}

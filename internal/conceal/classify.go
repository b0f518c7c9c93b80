package conceal

import "github.com/dshills/texveil/internal/engine/buffer"

// Classify computes the relation between a selection and a spec.
//
// For every selection range and every member replacement, the overlap
// interval [max(range.Start, repl.Start), min(range.End, repl.End)] is
// examined. Any overlap that reaches strictly inside a replacement
// classifies as within immediately. An overlap that is exactly a touching
// point coinciding with a replacement boundary records edge, but scanning
// continues in case a later pair yields within. Priority is
// within > edge > apart.
func Classify(ranges []buffer.Range, spec Spec) CursorRelation {
	rel := CursorApart
	for _, sel := range ranges {
		for _, repl := range spec.Replacements() {
			from := sel.Start
			if repl.Range.Start > from {
				from = repl.Range.Start
			}
			to := sel.End
			if repl.Range.End < to {
				to = repl.Range.End
			}
			if from > to {
				continue
			}
			if from == to && (from == repl.Range.Start || from == repl.Range.End) {
				rel = CursorEdge
				continue
			}
			return CursorWithin
		}
	}
	return rel
}

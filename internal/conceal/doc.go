// Package conceal renders LaTeX-like math markup as simplified glyphs
// without altering the underlying source text.
//
// The package has two halves. The scanner half turns the raw text of one
// equation region into an ordered list of substitution candidates, some
// atomic (one span, one glyph) and some grouped (several spans that reveal
// and conceal as a unit, like the braces of a fraction). The reconciliation
// half is a state machine that decides, for each candidate, whether it
// renders concealed, reveals immediately, or reveals after a delay, based
// on where the cursor sits relative to the candidate now and on the
// previous update.
//
// Data flow per host update:
//
//	document/selection change
//	    -> RegionsIn locates visible equation regions
//	    -> Scanner.Scan produces candidates per region
//	    -> Classify tags each candidate within/edge/apart
//	    -> reconcile applies the decision table against prior state
//	    -> enabled concealments flow to the decoration builder
//
// Scanning and classification are pure; the only mutable state is the
// per-view State owned by View, and the only asynchronous element is the
// single delayed-reveal timer, scheduled through an injectable Scheduler.
package conceal

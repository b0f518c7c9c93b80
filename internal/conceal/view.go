package conceal

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dshills/texveil/internal/engine/buffer"
	"github.com/dshills/texveil/internal/engine/tracking"
)

// ViewID identifies one live editor view.
type ViewID = uuid.UUID

// Update describes one host update delivered to a view: a document change,
// viewport change, or selection change. The host delivers updates for a
// view in the order it emits them.
type Update struct {
	// Doc is the full document text after the update.
	Doc string

	// Visible is the span of the document currently on screen. Only
	// equations intersecting it are scanned.
	Visible buffer.Range

	// Selection is the ordered set of selection ranges.
	Selection []buffer.Range

	// MouseDown is true while a mouse button is held.
	MouseDown bool

	// Changes describes the document edits of this update, nil when the
	// document did not change.
	Changes *tracking.ChangeSet

	// Refresh marks an update the engine itself published (a delayed
	// reveal firing). Refresh updates are already reconciled and must not
	// trigger another reconciliation, so a fixed point is reached in one
	// extra round.
	Refresh bool
}

// View owns the concealment state of one editor view. All mutation happens
// under the view's lock; the host update handler and the delayed-reveal
// timer callback serialize through it. States handed out are immutable
// snapshots, so hosts may keep reading an old one while a timer fires.
type View struct {
	mu        sync.Mutex
	id        ViewID
	scanner   *Scanner
	sched     Scheduler
	delay     time.Duration
	publish   func(ViewID)
	state     *State
	timer     Timer
	gen       uint64
	destroyed bool
}

// ID returns the view's identifier.
func (v *View) ID() ViewID {
	return v.id
}

// State returns the view's current concealment state.
func (v *View) State() *State {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state
}

// HandleUpdate reconciles the view against one host update and returns the
// new state. Refresh updates return the current state unchanged.
func (v *View) HandleUpdate(u Update) *State {
	v.mu.Lock()

	if v.destroyed || u.Refresh {
		st := v.state
		v.mu.Unlock()
		return st
	}

	candidates := scanVisible(v.scanner, u.Doc, u.Visible)
	mapper := tracking.NewMapper(u.Changes)
	res := reconcile(v.state.Concealments, candidates, u.Selection, u.MouseDown, mapper)

	// The pending timer is always cancelled before a new state is
	// installed; its effect never applies once superseded.
	v.cancelTimerLocked()
	v.gen++
	st := &State{Concealments: res.concealments, generation: v.gen}
	if len(res.delayed) > 0 {
		st.pending = true
		gen := v.gen
		captured := res.delayed
		v.timer = v.sched.AfterFunc(v.delay, func() {
			v.revealDelayed(gen, captured)
		})
	}
	v.state = st

	v.mu.Unlock()
	return st
}

// revealDelayed is the delayed-reveal timer callback. It no-ops if this
// timer was superseded; otherwise it installs a new state in which the
// captured candidates are revealed and publishes one refresh. The
// previous state is left untouched, so a host still reading it races
// with nothing. The capture is deliberately stale: candidates recomputed
// after scheduling are unaffected.
func (v *View) revealDelayed(gen uint64, captured []*Concealment) {
	v.mu.Lock()
	if v.destroyed || v.state.generation != gen {
		v.mu.Unlock()
		return
	}
	v.timer = nil

	revealed := make(map[*Concealment]bool, len(captured))
	for _, c := range captured {
		revealed[c] = true
	}
	next := make([]*Concealment, len(v.state.Concealments))
	for i, c := range v.state.Concealments {
		if revealed[c] {
			cc := *c
			cc.Enabled = false
			c = &cc
		}
		next[i] = c
	}
	v.gen++
	v.state = &State{Concealments: next, generation: v.gen}

	publish := v.publish
	id := v.id
	v.mu.Unlock()

	if publish != nil {
		publish(id)
	}
}

// cancelTimerLocked stops any pending delayed reveal. Caller holds v.mu.
func (v *View) cancelTimerLocked() {
	if v.timer != nil {
		v.timer.Stop()
		v.timer = nil
	}
}

// destroy cancels any pending timer and marks the view dead.
func (v *View) destroy() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.destroyed = true
	v.cancelTimerLocked()
}

// scanVisible scans every equation region intersecting the visible range
// and shifts each candidate to document-global offsets.
func scanVisible(s *Scanner, doc string, visible buffer.Range) []Spec {
	var candidates []Spec
	for _, region := range RegionsIn(doc, visible) {
		equation := doc[region.Range.Start:region.Range.End]
		for _, spec := range s.Scan(equation) {
			candidates = append(candidates, Shift(spec, region.Range.Start))
		}
	}
	return candidates
}

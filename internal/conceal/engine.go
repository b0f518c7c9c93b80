package conceal

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Engine owns the concealment state of every live editor view. Views are
// created and destroyed with the host's view lifecycle; destroying a view
// cancels its pending timer, so no callback ever references a dead view.
type Engine struct {
	mu      sync.RWMutex
	views   map[ViewID]*View
	scanner *Scanner
	sched   Scheduler
	delay   time.Duration
	refresh func(ViewID)
}

// Option configures an Engine.
type Option func(*Engine)

// WithScanner replaces the engine's scanner.
func WithScanner(s *Scanner) Option {
	return func(e *Engine) { e.scanner = s }
}

// WithScheduler replaces the delayed-reveal scheduler.
func WithScheduler(s Scheduler) Option {
	return func(e *Engine) { e.sched = s }
}

// WithDelay overrides the delayed-reveal duration.
func WithDelay(d time.Duration) Option {
	return func(e *Engine) { e.delay = d }
}

// WithRefreshFunc sets the callback invoked when a delayed reveal fires.
// The host responds by delivering a Refresh-tagged update and repainting.
func WithRefreshFunc(fn func(ViewID)) Option {
	return func(e *Engine) { e.refresh = fn }
}

// NewEngine creates an engine with the built-in scanner, the wall-clock
// scheduler, and the default reveal delay.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		views:   make(map[ViewID]*View),
		scanner: NewScanner(),
		sched:   NewScheduler(),
		delay:   RevealDelay,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// CreateView registers a new editor view and returns its identifier.
// The view starts with an empty concealment state.
func (e *Engine) CreateView() ViewID {
	e.mu.Lock()
	defer e.mu.Unlock()

	id := uuid.New()
	e.views[id] = &View{
		id:      id,
		scanner: e.scanner,
		sched:   e.sched,
		delay:   e.delay,
		publish: e.refresh,
		state:   &State{},
	}
	return id
}

// SetScanner replaces the scanner used by views created after the call.
// Existing views keep the scanner they were created with.
func (e *Engine) SetScanner(s *Scanner) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.scanner = s
}

// DestroyView removes a view, cancelling any pending delayed reveal.
// Returns false if the view is unknown.
func (e *Engine) DestroyView(id ViewID) bool {
	e.mu.Lock()
	v, ok := e.views[id]
	delete(e.views, id)
	e.mu.Unlock()

	if !ok {
		return false
	}
	v.destroy()
	return true
}

// Shutdown destroys every remaining view, cancelling their pending
// delayed reveals.
func (e *Engine) Shutdown() {
	e.mu.Lock()
	views := make([]*View, 0, len(e.views))
	for _, v := range e.views {
		views = append(views, v)
	}
	e.views = make(map[ViewID]*View)
	e.mu.Unlock()

	for _, v := range views {
		v.destroy()
	}
}

// View returns the view with the given identifier.
func (e *Engine) View(id ViewID) (*View, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	v, ok := e.views[id]
	return v, ok
}

// ViewCount returns the number of live views.
func (e *Engine) ViewCount() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.views)
}

// HandleUpdate delivers one host update to a view and returns the
// resulting state.
func (e *Engine) HandleUpdate(id ViewID, u Update) (*State, error) {
	v, ok := e.View(id)
	if !ok {
		return nil, fmt.Errorf("conceal: unknown view %s", id)
	}
	return v.HandleUpdate(u), nil
}

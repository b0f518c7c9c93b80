package app

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/dshills/texveil/internal/conceal"
	"github.com/dshills/texveil/internal/config"
	"github.com/dshills/texveil/internal/engine/buffer"
)

func TestLoggerLevels(t *testing.T) {
	var buf strings.Builder
	log := NewLogger(&buf, LogLevelWarn)

	log.Debug("hidden")
	log.Info("hidden")
	log.Warn("shown %d", 1)
	log.Error("shown %d", 2)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("below-level messages logged: %q", out)
	}
	if !strings.Contains(out, "[WARN] texveil: shown 1") {
		t.Errorf("warn line missing: %q", out)
	}
	if !strings.Contains(out, "[ERROR] texveil: shown 2") {
		t.Errorf("error line missing: %q", out)
	}
}

func TestLoggerFields(t *testing.T) {
	var buf strings.Builder
	log := NewLogger(&buf, LogLevelInfo).WithComponent("engine").WithField("view", 3)

	log.Info("update")
	out := buf.String()
	if !strings.Contains(out, "{component=engine, view=3}") {
		t.Errorf("fields missing or unsorted: %q", out)
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want LogLevel
	}{
		{"debug", LogLevelDebug},
		{"DEBUG", LogLevelDebug},
		{"info", LogLevelInfo},
		{"warn", LogLevelWarn},
		{"warning", LogLevelWarn},
		{"error", LogLevelError},
		{"nonsense", LogLevelInfo},
		{"", LogLevelInfo},
	}
	for _, tt := range tests {
		if got := ParseLogLevel(tt.in); got != tt.want {
			t.Errorf("ParseLogLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestAppDefaults(t *testing.T) {
	var buf strings.Builder
	a, err := New(filepath.Join(t.TempDir(), "absent.toml"), nil, WithLogOutput(&buf))
	if err != nil {
		t.Fatal(err)
	}
	defer a.Close()

	if a.Engine() == nil {
		t.Fatal("no engine")
	}
	if a.Settings().LogLevel != "info" {
		t.Errorf("LogLevel = %q, want default", a.Settings().LogLevel)
	}
}

func TestAppConcealsEndToEnd(t *testing.T) {
	a, err := New("", nil, WithLogOutput(&strings.Builder{}))
	if err != nil {
		t.Fatal(err)
	}
	defer a.Close()

	id := a.Engine().CreateView()
	doc := `$\alpha$`
	st, err := a.Engine().HandleUpdate(id, texUpdate(doc))
	if err != nil {
		t.Fatal(err)
	}
	if len(st.Enabled()) != 1 {
		t.Fatalf("got %d enabled concealments, want 1", len(st.Enabled()))
	}
}

func TestAppSymbolOverrides(t *testing.T) {
	dir := t.TempDir()
	luaPath := filepath.Join(dir, "symbols.lua")
	if err := os.WriteFile(luaPath, []byte(`return { alpha = "@" }`), 0o644); err != nil {
		t.Fatal(err)
	}
	cfgPath := filepath.Join(dir, "texveil.toml")
	cfg := `symbol_file = ` + tomlString(luaPath)
	if err := os.WriteFile(cfgPath, []byte(cfg), 0o644); err != nil {
		t.Fatal(err)
	}

	a, err := New(cfgPath, nil, WithLogOutput(&strings.Builder{}))
	if err != nil {
		t.Fatal(err)
	}
	defer a.Close()

	id := a.Engine().CreateView()
	st, err := a.Engine().HandleUpdate(id, texUpdate(`$\alpha$`))
	if err != nil {
		t.Fatal(err)
	}
	if got := st.Concealments[0].Spec.Replacements()[0].Text; got != "@" {
		t.Errorf("text = %q, want override @", got)
	}
}

func TestAppBadSymbolFileDegrades(t *testing.T) {
	dir := t.TempDir()
	luaPath := filepath.Join(dir, "symbols.lua")
	if err := os.WriteFile(luaPath, []byte(`return {`), 0o644); err != nil {
		t.Fatal(err)
	}
	cfgPath := filepath.Join(dir, "texveil.toml")
	cfg := `symbol_file = ` + tomlString(luaPath)
	if err := os.WriteFile(cfgPath, []byte(cfg), 0o644); err != nil {
		t.Fatal(err)
	}

	var buf strings.Builder
	a, err := New(cfgPath, nil, WithLogOutput(&buf))
	if err != nil {
		t.Fatal(err)
	}
	defer a.Close()

	// Built-ins still apply.
	id := a.Engine().CreateView()
	st, _ := a.Engine().HandleUpdate(id, texUpdate(`$\alpha$`))
	if got := st.Concealments[0].Spec.Replacements()[0].Text; got != "α" {
		t.Errorf("text = %q, want built-in α", got)
	}
	if !strings.Contains(buf.String(), "symbol overrides unavailable") {
		t.Error("degradation not logged")
	}
}

func TestAppReload(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "texveil.toml")
	if err := os.WriteFile(cfgPath, []byte(`families = ["all"]`), 0o644); err != nil {
		t.Fatal(err)
	}

	reloaded := make(chan config.Settings, 1)
	a, err := New(cfgPath, nil,
		WithLogOutput(&strings.Builder{}),
		WithReloadFunc(func(s config.Settings) {
			select {
			case reloaded <- s:
			default:
			}
		}))
	if err != nil {
		t.Fatal(err)
	}
	defer a.Close()

	if err := os.WriteFile(cfgPath, []byte(`families = ["symbols"]`), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case s := <-reloaded:
		if len(s.Families) != 1 || s.Families[0] != "symbols" {
			t.Errorf("reloaded families = %v", s.Families)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("no reload callback")
	}

	// Views created after the reload use the restricted scanner.
	id := a.Engine().CreateView()
	st, _ := a.Engine().HandleUpdate(id, texUpdate(`$\frac{a}{b}$`))
	if len(st.Concealments) != 0 {
		t.Error("grouped family still active after reload disabled it")
	}
}

func TestAppCloseCancelsEngineTimers(t *testing.T) {
	sched := &countingScheduler{}
	a, err := New("", []conceal.Option{conceal.WithScheduler(sched)},
		WithLogOutput(&strings.Builder{}))
	if err != nil {
		t.Fatal(err)
	}

	// Caret on the token's start boundary schedules a delayed reveal.
	id := a.Engine().CreateView()
	u := texUpdate(`$\alpha$`)
	u.Selection = []buffer.Range{buffer.NewRange(1, 1)}
	st, err := a.Engine().HandleUpdate(id, u)
	if err != nil {
		t.Fatal(err)
	}
	if !st.HasPendingReveal() {
		t.Fatal("setup: no delayed reveal scheduled")
	}
	if sched.pending() != 1 {
		t.Fatalf("pending timers = %d, want 1", sched.pending())
	}

	if err := a.Close(); err != nil {
		t.Fatal(err)
	}
	if sched.pending() != 0 {
		t.Error("close left engine timers pending")
	}
	if a.Engine().ViewCount() != 0 {
		t.Errorf("ViewCount = %d, want 0 after close", a.Engine().ViewCount())
	}
}

// countingScheduler tracks live timers so tests can assert cancellation.
type countingScheduler struct {
	mu   sync.Mutex
	live int
}

func (s *countingScheduler) AfterFunc(time.Duration, func()) conceal.Timer {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.live++
	return &countingTimer{sched: s}
}

func (s *countingScheduler) pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.live
}

type countingTimer struct {
	sched   *countingScheduler
	stopped bool
}

func (t *countingTimer) Stop() bool {
	t.sched.mu.Lock()
	defer t.sched.mu.Unlock()
	if t.stopped {
		return false
	}
	t.stopped = true
	t.sched.live--
	return true
}

// texUpdate is a whole-document caret-at-zero update.
func texUpdate(doc string) conceal.Update {
	return conceal.Update{
		Doc:       doc,
		Visible:   buffer.NewRange(0, buffer.ByteOffset(len(doc))),
		Selection: []buffer.Range{buffer.NewRange(0, 0)},
	}
}

// tomlString quotes a path for a TOML value, escaping backslashes.
func tomlString(s string) string {
	return `"` + strings.ReplaceAll(s, `\`, `\\`) + `"`
}

package app

import (
	"fmt"
	"io"
	"sync"

	"github.com/dshills/texveil/internal/conceal"
	"github.com/dshills/texveil/internal/conceal/symbols"
	"github.com/dshills/texveil/internal/config"
	"github.com/dshills/texveil/internal/plugin/symtab"
)

// App owns the long-lived pieces of a texveil process: the settings and
// their file watcher, the user symbol overrides, and the concealment
// engine. Settings changes on disk rebuild the engine's scanner without a
// restart; live views keep their state.
type App struct {
	mu       sync.Mutex
	log      *Logger
	settings config.Settings
	cfgPath  string
	watcher  *config.Watcher
	engine   *conceal.Engine
	onReload func(config.Settings)
}

// AppOption configures an App.
type AppOption func(*App)

// WithLogOutput directs log output to w.
func WithLogOutput(w io.Writer) AppOption {
	return func(a *App) {
		a.log = NewLogger(w, a.log.level)
	}
}

// WithReloadFunc sets a callback invoked after settings reload, so the
// host can repaint with the new families.
func WithReloadFunc(fn func(config.Settings)) AppOption {
	return func(a *App) { a.onReload = fn }
}

// New builds the application from the settings file at cfgPath. A missing
// file starts with defaults. Engine options (scheduler, delay, refresh
// callback) are passed through to the concealment engine.
func New(cfgPath string, engineOpts []conceal.Option, opts ...AppOption) (*App, error) {
	settings, err := config.Load(cfgPath)
	if err != nil {
		return nil, err
	}

	a := &App{
		log:      NewLogger(nil, ParseLogLevel(settings.LogLevel)),
		settings: settings,
		cfgPath:  cfgPath,
	}
	for _, opt := range opts {
		opt(a)
	}
	a.log.SetLevel(ParseLogLevel(settings.LogLevel))

	scanner := a.buildScanner(settings)
	engineOpts = append([]conceal.Option{
		conceal.WithScanner(scanner),
		conceal.WithDelay(settings.RevealDelay()),
	}, engineOpts...)
	a.engine = conceal.NewEngine(engineOpts...)

	if cfgPath != "" {
		w, err := config.NewWatcher(cfgPath, a.applySettings,
			config.WithErrorHandler(func(err error) {
				a.log.Warn("settings reload failed, keeping previous: %v", err)
			}))
		if err != nil {
			return nil, fmt.Errorf("app: watching %s: %w", cfgPath, err)
		}
		a.watcher = w
	}

	a.log.Info("started with families=%v delay=%v", settings.Families, settings.RevealDelay())
	return a, nil
}

// Engine returns the concealment engine.
func (a *App) Engine() *conceal.Engine {
	return a.engine
}

// Settings returns the current settings.
func (a *App) Settings() config.Settings {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.settings
}

// Logger returns the application logger.
func (a *App) Logger() *Logger {
	return a.log
}

// Close stops the settings watcher and shuts the engine down, destroying
// all views and cancelling their pending timers.
func (a *App) Close() error {
	var err error
	if a.watcher != nil {
		err = a.watcher.Close()
	}
	a.engine.Shutdown()
	return err
}

// applySettings is the watcher callback: it swaps in the new settings and
// rebuilds the scanner.
func (a *App) applySettings(s config.Settings) {
	a.mu.Lock()
	a.settings = s
	a.mu.Unlock()

	a.log.SetLevel(ParseLogLevel(s.LogLevel))
	// Views created after this point use the rebuilt scanner; existing
	// views keep theirs until recreated.
	a.engine.SetScanner(a.buildScanner(s))
	a.log.Info("settings reloaded: families=%v delay=%v", s.Families, s.RevealDelay())

	if a.onReload != nil {
		a.onReload(s)
	}
}

// buildScanner constructs the scanner the settings describe: built-in
// tables merged with the user's Lua overrides, restricted to the enabled
// families. Override failures degrade to the built-ins with a warning.
func (a *App) buildScanner(s config.Settings) *conceal.Scanner {
	table := symbols.Default()
	if s.SymbolFile != "" {
		overrides, err := symtab.NewLoader().Load(s.SymbolFile)
		if err != nil {
			a.log.Warn("symbol overrides unavailable: %v", err)
		} else {
			table = table.Merge(overrides)
			a.log.Debug("merged %d symbol overrides from %s", len(overrides), s.SymbolFile)
		}
	}
	return conceal.NewScanner(
		conceal.WithSymbols(table),
		conceal.WithFamilies(s.FamilyMask()),
	)
}

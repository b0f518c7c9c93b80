// Package config loads and watches texveil settings.
//
// Settings come from a TOML file. A missing file is not an error; defaults
// apply. The Watcher re-loads the file on change and pushes the new
// settings to a handler, so edits take effect without a restart.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/dshills/texveil/internal/conceal"
)

// Settings is the full texveil configuration.
type Settings struct {
	// Families names the enabled matcher families. Valid names are
	// "symbols", "diacritics", "grouped", "range", and "all".
	Families []string `toml:"families"`

	// RevealDelayMS is the delayed-reveal duration in milliseconds.
	// Zero means the built-in default.
	RevealDelayMS int `toml:"reveal_delay_ms"`

	// SymbolFile is the path of a Lua symbol override file, empty for
	// none.
	SymbolFile string `toml:"symbol_file"`

	// LogLevel is one of "debug", "info", "warn", "error".
	LogLevel string `toml:"log_level"`
}

// familyNames maps config names to matcher family bits.
var familyNames = map[string]conceal.Family{
	"symbols":    conceal.FamilySymbols,
	"diacritics": conceal.FamilyDiacritics,
	"grouped":    conceal.FamilyGrouped,
	"range":      conceal.FamilyRange,
	"all":        conceal.FamilyAll,
}

// Default returns the default settings: every family enabled, built-in
// delay, no overrides, info logging.
func Default() Settings {
	return Settings{
		Families:      []string{"all"},
		RevealDelayMS: 0,
		LogLevel:      "info",
	}
}

// Validate checks the settings for invalid values.
func (s Settings) Validate() error {
	for _, name := range s.Families {
		if _, ok := familyNames[name]; !ok {
			return fmt.Errorf("config: unknown matcher family %q", name)
		}
	}
	if s.RevealDelayMS < 0 {
		return fmt.Errorf("config: negative reveal_delay_ms %d", s.RevealDelayMS)
	}
	switch s.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: unknown log_level %q", s.LogLevel)
	}
	return nil
}

// FamilyMask returns the matcher family bitset the settings enable.
// An empty list enables everything.
func (s Settings) FamilyMask() conceal.Family {
	if len(s.Families) == 0 {
		return conceal.FamilyAll
	}
	var mask conceal.Family
	for _, name := range s.Families {
		mask |= familyNames[name]
	}
	return mask
}

// RevealDelay returns the configured delayed-reveal duration, or the
// built-in default when unset.
func (s Settings) RevealDelay() time.Duration {
	if s.RevealDelayMS == 0 {
		return conceal.RevealDelay
	}
	return time.Duration(s.RevealDelayMS) * time.Millisecond
}

// Load reads settings from the TOML file at path, overlaying defaults.
// A missing file yields the defaults without error.
func Load(path string) (Settings, error) {
	s := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return s, fmt.Errorf("config: reading %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &s); err != nil {
		return Default(), fmt.Errorf("config: parsing %s: %w", path, err)
	}
	if err := s.Validate(); err != nil {
		return Default(), err
	}
	return s, nil
}

// Package symtab loads user-defined symbol overrides from a Lua file.
//
// The file is evaluated in a sandboxed Lua state and must return a table
// mapping command names (without the backslash) to replacement glyphs:
//
//	return {
//	    alpha = "A",
//	    mycmd = "★",
//	    beta  = "",   -- empty string removes the built-in entry
//	}
//
// The resulting table is merged over the built-ins with symbols.Merge, so
// an empty glyph deletes the built-in entry for that command.
package symtab

import (
	"context"
	"fmt"
	"time"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/texveil/internal/conceal/symbols"
)

// Default limits for the Lua state. gopher-lua cannot enforce hard memory
// limits, so the execution timeout is the effective bound. The state runs
// with a deadline context, which the VM checks at instruction boundaries,
// so a runaway override file aborts with an error instead of hanging.
const (
	DefaultExecutionTimeout = 2 * time.Second
)

// Loader evaluates symbol override files.
type Loader struct {
	timeout time.Duration
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithTimeout sets the execution timeout for Lua evaluation.
func WithTimeout(d time.Duration) LoaderOption {
	return func(l *Loader) {
		l.timeout = d
	}
}

// NewLoader creates a loader with the given options.
func NewLoader(opts ...LoaderOption) *Loader {
	l := &Loader{timeout: DefaultExecutionTimeout}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load evaluates the Lua file at path and returns the symbol overrides it
// defines. The state is created fresh per call and closed before return.
func (l *Loader) Load(path string) (symbols.Table, error) {
	L, cancel := l.newSandboxedState()
	defer cancel()
	defer L.Close()

	if err := L.DoFile(path); err != nil {
		return nil, fmt.Errorf("symtab: evaluating %s: %w", path, err)
	}
	return tableFromState(L)
}

// LoadString evaluates Lua source directly. Used by tests and for inline
// overrides in configuration.
func (l *Loader) LoadString(src string) (symbols.Table, error) {
	L, cancel := l.newSandboxedState()
	defer cancel()
	defer L.Close()

	if err := L.DoString(src); err != nil {
		return nil, fmt.Errorf("symtab: evaluating source: %w", err)
	}
	return tableFromState(L)
}

// newSandboxedState creates a Lua state with only safe libraries opened.
// io, os, debug, and package are intentionally unavailable, and the
// load/dofile family is removed so override files cannot reach the
// filesystem. The state carries a deadline context; the VM aborts
// execution once it expires. The LState is never touched from another
// goroutine.
func (l *Loader) newSandboxedState() (*lua.LState, context.CancelFunc) {
	L := lua.NewState(lua.Options{
		SkipOpenLibs: true,
	})
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)

	for _, name := range []string{"dofile", "loadfile", "load", "loadstring"} {
		L.SetGlobal(name, lua.LNil)
	}

	ctx, cancel := context.WithTimeout(context.Background(), l.timeout)
	L.SetContext(ctx)
	return L, cancel
}

// tableFromState converts the chunk's return value into a symbol table.
func tableFromState(L *lua.LState) (symbols.Table, error) {
	ret := L.Get(-1)
	tbl, ok := ret.(*lua.LTable)
	if !ok {
		return nil, fmt.Errorf("symtab: file must return a table, got %s", ret.Type())
	}

	out := symbols.Table{}
	var convErr error
	tbl.ForEach(func(k, v lua.LValue) {
		if convErr != nil {
			return
		}
		key, ok := k.(lua.LString)
		if !ok {
			convErr = fmt.Errorf("symtab: non-string key %s", k.Type())
			return
		}
		val, ok := v.(lua.LString)
		if !ok {
			convErr = fmt.Errorf("symtab: entry %q: non-string value %s", string(key), v.Type())
			return
		}
		out[string(key)] = string(val)
	})
	if convErr != nil {
		return nil, convErr
	}
	return out, nil
}

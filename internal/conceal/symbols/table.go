package symbols

// Table maps markup command names (without the leading backslash) to
// display strings. Tables are immutable once built; Merge returns a new
// table rather than mutating in place.
type Table map[string]string

// Lookup returns the display string for a command name.
func (t Table) Lookup(name string) (string, bool) {
	s, ok := t[name]
	return s, ok
}

// Merge returns a new table containing t's entries overlaid with override's.
// Entries in override win on collision. An empty override value removes the
// base entry.
func (t Table) Merge(override Table) Table {
	merged := make(Table, len(t)+len(override))
	for k, v := range t {
		merged[k] = v
	}
	for k, v := range override {
		if v == "" {
			delete(merged, k)
			continue
		}
		merged[k] = v
	}
	return merged
}

// union builds one table from several; later tables win on collision.
func union(tables ...Table) Table {
	var n int
	for _, t := range tables {
		n += len(t)
	}
	merged := make(Table, n)
	for _, t := range tables {
		for k, v := range t {
			merged[k] = v
		}
	}
	return merged
}

// Default returns the full built-in symbol table used by the direct-symbol
// matcher: Greek letters, operators, relations, arrows, and delimiters.
func Default() Table {
	return union(Greek, Operators, Relations, Arrows, Delimiters, Misc)
}

package route

import (
	"fmt"
)

type entry struct {
	def Definition
	pat pattern
}

// A Table is an ordered, immutable set of Definitions.
//
// A path matches the first Definition whose pattern matches it.
// The last Definition in a Table always matches, so every path resolves.
type Table struct {
	entries []entry
	byName  map[string]int
}

// NewTable validates defs and constructs a Table from them in the order given.
//
// NewTable errors when:
//   - defs is empty or its last Definition is not a catch-all: ErrNoCatchAll
//   - a Definition has no name, no loader or a malformed pattern: ErrInvalidRoute
//   - two Definitions share a name: ErrDuplicateName
func NewTable(defs ...Definition) (*Table, error) {
	t := &Table{
		entries: make([]entry, 0, len(defs)),
		byName:  make(map[string]int, len(defs)),
	}

	for i, def := range defs {
		if def.Name == "" {
			return nil, fmt.Errorf("%w: route at %d has no name", ErrInvalidRoute, i)
		}

		if _, ok := t.byName[def.Name]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateName, def.Name)
		}

		if def.Loader == nil {
			return nil, fmt.Errorf("%w: route %q has no loader", ErrInvalidRoute, def.Name)
		}

		pat, err := compilePattern(def.Pattern)
		if err != nil {
			return nil, fmt.Errorf("%w: route %q: %s", ErrInvalidRoute, def.Name, err)
		}

		t.byName[def.Name] = i
		t.entries = append(t.entries, entry{def: def, pat: pat})
	}

	if len(t.entries) == 0 || !t.entries[len(t.entries)-1].pat.total() {
		return nil, ErrNoCatchAll
	}

	return t, nil
}

// Match finds the first Definition matching path
// and the params its pattern binds.
func (t *Table) Match(path string) (Definition, Params) {
	segs := splitPath(path)
	for _, e := range t.entries {
		if params, ok := e.pat.match(segs); ok {
			return e.def, params
		}
	}

	// NOTE: unreachable, NewTable requires the last entry match everything
	return t.Fallback(), Params{}
}

// Fallback is the terminal catch-all Definition,
// matched by every path no other Definition matches.
func (t *Table) Fallback() Definition {
	return t.entries[len(t.entries)-1].def
}

// Lookup retrieves the Definition with the given name.
func (t *Table) Lookup(name string) (Definition, bool) {
	i, ok := t.byName[name]
	if !ok {
		return Definition{}, false
	}

	return t.entries[i].def, true
}

// Path builds the concrete path for the named route,
// escaping each param value.
//
// e.g., t.Path("quiz", Params{"slug": "iq"}) => "/quiz/iq"
func (t *Table) Path(name string, params Params) (string, error) {
	i, ok := t.byName[name]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownRoute, name)
	}

	p, err := t.entries[i].pat.build(params)
	if err != nil {
		return "", fmt.Errorf("route %q: %w", name, err)
	}

	return p, nil
}

// Routes returns a copy of the Definitions in match order.
func (t *Table) Routes() []Definition {
	defs := make([]Definition, len(t.entries))
	for i, e := range t.entries {
		defs[i] = e.def
	}

	return defs
}

// Shadowed lists the names of Definitions that can never match
// because a catch-all precedes them.
func (t *Table) Shadowed() []string {
	var names []string
	var caught bool
	for _, e := range t.entries {
		if caught {
			names = append(names, e.def.Name)
			continue
		}

		caught = e.pat.total()
	}

	return names
}

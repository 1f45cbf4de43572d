package route

// TitleKey is the Meta key holding a route's page title.
const TitleKey = "title"

// A Definition maps a pattern to the view rendered when a path matches it.
type Definition struct {
	// Pattern is the path template, e.g., "/quiz/:slug".
	Pattern string

	// Name uniquely identifies the Definition within a Table.
	Name string

	// Loader produces the view, possibly still loading.
	Loader Loader

	// Meta is arbitrary data attached to the route.
	Meta Meta
}

// Meta is the metadata attached to a Definition.
type Meta map[string]any

// Title returns the string stored under TitleKey.
// ok is false if none is set, the value is not a string, or it is empty.
func (m Meta) Title() (title string, ok bool) {
	title, ok = m[TitleKey].(string)
	return title, ok && title != ""
}

// Params maps the names of parameters in a pattern to the values they bound.
type Params map[string]string

// Get returns the value bound to name or an empty string.
func (p Params) Get(name string) string { return p[name] }

package route

import (
	"fmt"

	"github.com/xy-planning-network/quiz/logger"
)

// DefaultTitlePrefix is prepended to a route's title when setting the display title.
const DefaultTitlePrefix = "Quiz • "

// An Event describes a single navigation.
type Event struct {
	// Path is the path navigated to.
	Path string

	// Route is the Definition Path matched.
	Route Definition

	// Params are the values Route's pattern bound from Path.
	Params Params
}

// A Hook runs after every navigation,
// once the route is chosen and its view has begun loading.
type Hook func(Event)

// A TitleSetter replaces the display title.
type TitleSetter func(title string)

// TitleHook constructs a Hook setting the display title to prefix and the route's title.
// A route without a title leaves the display title alone.
func TitleHook(prefix string, set TitleSetter) Hook {
	return func(ev Event) {
		if title, ok := ev.Route.Meta.Title(); ok {
			set(prefix + title)
		}
	}
}

// A Resolver navigates paths against a Table.
//
// A Resolver is safe for concurrent use.
type Resolver struct {
	table *Table
	hooks []Hook
	l     logger.Logger
}

// A ResolverOptFn configures a Resolver when constructing one.
type ResolverOptFn func(*Resolver)

// WithHook appends hooks to those run after a navigation.
func WithHook(hooks ...Hook) ResolverOptFn {
	return func(r *Resolver) {
		r.hooks = append(r.hooks, hooks...)
	}
}

// WithTitle sets the display title through set after each navigation.
func WithTitle(prefix string, set TitleSetter) ResolverOptFn {
	return WithHook(TitleHook(prefix, set))
}

// WithLogger logs navigations at debug level through l.
func WithLogger(l logger.Logger) ResolverOptFn {
	return func(r *Resolver) {
		r.l = l
	}
}

// NewResolver constructs a Resolver over t, which NewTable must have built.
func NewResolver(t *Table, opts ...ResolverOptFn) *Resolver {
	r := &Resolver{table: t}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Table exposes the Table r navigates against.
func (r *Resolver) Table() *Table { return r.table }

// With derives a Resolver sharing r's Table and logger,
// running hooks after those r already runs.
func (r *Resolver) With(hooks ...Hook) *Resolver {
	all := make([]Hook, 0, len(r.hooks)+len(hooks))
	all = append(all, r.hooks...)
	all = append(all, hooks...)

	return &Resolver{table: r.table, hooks: all, l: r.l}
}

// Navigate resolves path to its route, starts loading that route's view,
// and runs every Hook with the resulting Event.
//
// Navigate does not wait for the view; Future does.
func (r *Resolver) Navigate(path string) (Event, *Future) {
	def, params := r.table.Match(path)
	ev := Event{Path: path, Route: def, Params: params}

	fut := def.Loader()
	if fut == nil {
		fut = Failed(fmt.Errorf("%w: route %q", ErrNoView, def.Name))
	}

	for _, hook := range r.hooks {
		hook(ev)
	}

	if r.l != nil {
		r.l.Debug("navigated", &logger.LogContext{Data: map[string]any{
			"params": params,
			"path":   path,
			"route":  def.Name,
		}})
	}

	return ev, fut
}

/*
Package route resolves the paths of the quiz web app to the views rendering them.

# Table

A [Table] is an ordered list of [Definition]s built once, at startup, with [NewTable].
Each Definition pairs a pattern with a [Loader] and [Meta]data, such as the page title.

Patterns are made of segments:
  - literal segments, e.g., "results", match verbatim
  - named params, e.g., ":slug", bind any non-empty segment
  - a catch-all, "*", "*rest" or ":pathMatch(.*)*", binds whatever remains of the path, even nothing

A catch-all may only be the last segment of a pattern.
The last Definition in a Table must be a bare catch-all so that every path matches something;
NewTable returns [ErrNoCatchAll] otherwise.

Matching is first-match-wins.
A Definition listed after a bare catch-all never matches; [*Table.Shadowed] names those.

# Resolver

[*Resolver.Navigate] matches a path, calls the route's Loader and then runs every [Hook]
with the resulting [Event].
The Loader returns a [*Future] right away, so Navigate never waits on a view;
the caller decides whether and how long to wait with [*Future.Wait].

[TitleHook] is the Hook setting the display title to [DefaultTitlePrefix] plus the route's title.
The display title is written through a [TitleSetter],
e.g., [*Document.SetTitle] or a closure capturing a single HTTP response's title.

# Views

[Lazy] defers loading a view until it is first navigated to,
sharing that load with every navigation after it.
*/
package route

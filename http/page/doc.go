/*
Package page renders the quiz web app's pages.

A [*Handler] navigates a [route.Resolver] to the requested path,
waits on the route's view and renders it inside the shell template,
whose <title> is the display title set by that navigation.

	p := template.NewParser(template.WithFn(template.AssetURI(env, assets)))
	tbl, _ := route.NewTable(route.QuizDefinitions(p.Views())...)
	p.AddFn(template.RoutePath(tbl))

	h, err := page.NewHandler(route.NewResolver(tbl), p, page.WithLogger(l))

[NavigationHandler] answers the same navigation as JSON,
for clients switching views without a full page load.
*/
package page

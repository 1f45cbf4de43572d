/*
Package router routes HTTP requests to the quiz web app's handlers.

[*Router] is a thin wrapper around [mux.Router].
Requests under [template.AssetsPath] are served from the assets directory
with a long-lived "Cache-Control" header.
Everything else is matched against the [Route]s registered with Handle or HandleRoutes
and, failing those, handed to the handler set by CatchAll,
which renders pages through the quiz route table.

Middlewares added with OnEveryRequest wrap every Route and the CatchAll handler,
in the order they appear.
*/
package router

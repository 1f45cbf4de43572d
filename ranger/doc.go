/*
Package ranger initializes and manages the quiz web app with sane defaults.

# Ranger

The main entrypoint to package ranger is the [Ranger] type, constructed with [New].
New assembles, in order:
  - the [logger.Logger], shipping errors to Sentry if SENTRY_DSN is set
  - the [*template.Parse] for the shell and views
  - the [*route.Table], built from a routes file, [WithRoutes] or the quiz's own routes
  - the [*route.Resolver] and the page handler rendering every navigation
  - the [*router.Router] and the [http.Server] serving it

A route table whose last route is not a bare catch-all is a configuration error:
New returns [quiz.ErrBadConfig] wrapping [route.ErrNoCatchAll].

[*Ranger.Guide] begins the web server.
By default, [*Ranger.Guide] listens on [DefaultHost]:[DefaultPort] (localhost:3000).
Stop that web server with [*Ranger.Shutdown], [*Ranger.Cancel],
or send a signal [*Ranger.Guide] listens for.

# Configuration

A developer configures the quiz web app through environment variables
and by passing [RangerOption]s to New, which take precedence.

Environment variables ought to be set in a file called ".env"
found at the same directory the application is executed from.

Here are the available environment variables.
  - ASSETS_DIR: the directory static assets are served from; default: client/public/
  - BASE_URL: the base URL the application runs on, allowed by CORS; default: http://localhost:3000
  - ENVIRONMENT: the environment the application is running in; cf. [quiz.Environment]
  - HOST: the host the application is running on; default: localhost
  - LOG_LEVEL: the level at which to begin logging; default: INFO; cf. [logger.LogLevel]
  - PORT: the port the application should listen on; default: 3000
  - RATE_LIMIT: whether requests are rate limited per client IP address; default: true
  - RATE_LIMIT_BURST: how many requests a client may make at once; default: 20
  - RATE_LIMIT_RATE: how many requests per second a client may make after a burst; default: 5
  - ROUTES_FILE: a YAML manifest of routes replacing the quiz's own; cf. [route.ParseManifest]
  - SENTRY_DSN: the Sentry project errors are reported to
  - SERVER_IDLE_TIMEOUT: the timeout - as understood by [time.ParseDuration] - for idling between requests when using keep-alives; default: 120s
  - SERVER_READ_TIMEOUT: the timeout - as understood by [time.ParseDuration] - for reading HTTP requests; default: 5s
  - SERVER_WRITE_TIMEOUT: the timeout - as understood by [time.ParseDuration] - for writing HTTP responses; default: 5s
  - TITLE_PREFIX: what route titles are prefixed with in the page title; default: "Quiz • "
  - VIEWS_DIR: a directory whose templates replace those embedded, e.g., views/home.tmpl
*/
package ranger

package ranger

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"log"
	"net"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/xy-planning-network/quiz"
	"github.com/xy-planning-network/quiz/http/middleware"
	"github.com/xy-planning-network/quiz/http/page"
	"github.com/xy-planning-network/quiz/http/router"
	"github.com/xy-planning-network/quiz/http/template"
	"github.com/xy-planning-network/quiz/logger"
	"github.com/xy-planning-network/quiz/route"
	"golang.org/x/time/rate"
)

const (
	// Base URL defaults
	BaseURLEnvVar = "BASE_URL"

	// Environment defaults
	environmentEnvVar = "ENVIRONMENT"

	// Log defaults
	logLevelEnvVar  = "LOG_LEVEL"
	defaultLogLvl   = logger.LogLevelInfo
	sentryDsnEnvVar = "SENTRY_DSN"

	// Page defaults
	titlePrefixEnvVar = "TITLE_PREFIX"
	assetsDirEnvVar   = "ASSETS_DIR"
	viewsDirEnvVar    = "VIEWS_DIR"
	routesFileEnvVar  = "ROUTES_FILE"

	// Rate limit defaults
	rateLimitEnvVar      = "RATE_LIMIT"
	rateLimitRateEnvVar  = "RATE_LIMIT_RATE"
	rateLimitBurstEnvVar = "RATE_LIMIT_BURST"

	// NavigationPath answers what route a path navigates to.
	NavigationPath = "/_nav"

	// Web server defaults
	DefaultHost               = "localhost"
	hostEnvVar                = "HOST"
	DefaultPort               = "3000"
	portEnvVar                = "PORT"
	serverReadTimeoutEnvVar   = "SERVER_READ_TIMEOUT"
	DefaultServerReadTimeout  = 5 * time.Second
	serverIdleTimeoutEnvVar   = "SERVER_IDLE_TIMEOUT"
	DefaultServerIdleTimeout  = 120 * time.Second
	serverWriteTimeoutEnvVar  = "SERVER_WRITE_TIMEOUT"
	DefaultServerWriteTimeout = 5 * time.Second
	shutdownTimeout           = 5 * time.Second
)

var defaultBaseURL = "http://" + DefaultHost + ":" + DefaultPort

// defaultOpts reads the environment into a *Ranger
// and builds in followups whatever other options did not supply.
func defaultOpts() []RangerOption {
	return []RangerOption{
		WithEnv(""),
		withEnvVars(),
		withDefaultLogger(),
		withDefaultApp(),
	}
}

// withEnvVars sets every configuration read from environment variables.
func withEnvVars() RangerOption {
	return func(rng *Ranger) (OptFollowup, error) {
		rng.assetsDir = quiz.EnvVarOrString(assetsDirEnvVar, router.DefaultAssetsDir)
		rng.viewsDir = os.Getenv(viewsDirEnvVar)
		rng.routesFile = os.Getenv(routesFileEnvVar)
		rng.titlePrefix = quiz.EnvVarOrString(titlePrefixEnvVar, route.DefaultTitlePrefix)

		rng.url = quiz.EnvVarOrURL(BaseURLEnvVar, defaultBaseURL)
		if rng.url == nil {
			return nil, fmt.Errorf("%w: %s is not a URL", quiz.ErrNotValid, BaseURLEnvVar)
		}

		return nil, nil
	}
}

// withDefaultLogger constructs the logger unless WithLogger supplied one.
func withDefaultLogger() RangerOption {
	return func(rng *Ranger) (OptFollowup, error) {
		return func() error {
			if rng.l == nil {
				rng.l = defaultAppLogger(rng.env, os.Stdout)
			}

			return nil
		}, nil
	}
}

// withDefaultApp assembles the route table, parser, resolver, router and server
// from the rest of the *Ranger's configuration.
func withDefaultApp() RangerOption {
	return func(rng *Ranger) (OptFollowup, error) {
		return func() error {
			if rng.ctx == nil {
				rng.ctx = context.Background()
			}

			rng.ctx, rng.cancel = context.WithCancel(rng.ctx)

			rng.p = defaultParser(rng.env, rng.url, rng.viewsDir, rng.assetsDir)

			tbl, err := defaultTable(rng.p, rng.routesFile, rng.defs)
			if err != nil {
				return err
			}

			for _, name := range tbl.Shadowed() {
				rng.l.Warn(fmt.Sprintf("route %q can never match", name), nil)
			}

			rng.table = tbl
			rng.p.AddFn(template.RoutePath(tbl))
			rng.resolver = route.NewResolver(tbl, route.WithLogger(rng.l))

			h, err := page.NewHandler(
				rng.resolver,
				rng.p,
				page.WithLogger(rng.l),
				page.WithTitlePrefix(rng.titlePrefix),
			)
			if err != nil {
				return err
			}

			rng.router = defaultRouter(
				rng.env,
				rng.assetsDir,
				h,
				page.NavigationHandler(rng.resolver, rng.titlePrefix),
				defaultMiddlewares(rng.env, rng.url, rng.l),
				rng.l,
			)

			if rng.srv == nil {
				rng.srv = defaultServer(rng.ctx)
			}

			rng.srv.Handler = rng.router
			rng.l.Debug(fmt.Sprintf("using %d routes, server at %s", len(tbl.Routes()), rng.srv.Addr), nil)

			return nil
		}, nil
	}
}

// defaultAppLogger constructs a [logger.Logger] configured for use in the application.
// If SENTRY_DSN is set, errors are also shipped to Sentry.
func defaultAppLogger(env quiz.Environment, output io.Writer) logger.Logger {
	std := logger.New(
		logger.WithEnv(env.String()),
		logger.WithLevel(quiz.EnvVarOrLogLevel(logLevelEnvVar, defaultLogLvl)),
		logger.WithLogger(log.New(output, "", log.LstdFlags)),
	)
	std.Debug("setting up app logger", nil)

	var l logger.Logger = std
	if dsn := os.Getenv(sentryDsnEnvVar); dsn != "" {
		l = logger.NewSentryLogger(std, dsn)
		l.Debug("using SentryLogger for app logger", nil)
	}

	return l
}

// defaultParser constructs a *template.Parse to be used when rendering pages.
//
// defaultParser makes available these functions in an HTML template:
//
//   - "asset"
//   - "env"
//   - "nonce"
//   - "rootUrl"
//
// "routePath" is added once the route table exists.
func defaultParser(env quiz.Environment, u *url.URL, viewsDir, assetsDir string) *template.Parse {
	var assets fs.FS
	if assetsDir != "" {
		assets = os.DirFS(assetsDir)
	}

	opts := []template.ParserOptFn{
		template.WithFn(template.AssetURI(env, assets)),
		template.WithFn(template.Env(env)),
		template.WithFn(template.Nonce()),
		template.WithFn(template.RootUrl(u)),
	}

	if viewsDir != "" {
		opts = append(opts, template.WithFS(os.DirFS(viewsDir)))
	}

	return template.NewParser(opts...)
}

// defaultTable builds the route table from, in order of preference,
// the manifest at routesFile, defs, or the quiz's own routes.
func defaultTable(p *template.Parse, routesFile string, defs DefinitionsFn) (*route.Table, error) {
	var list []route.Definition
	switch {
	case routesFile != "":
		f, err := os.Open(routesFile)
		if err != nil {
			return nil, fmt.Errorf("cannot open %s: %w", routesFile, err)
		}
		defer f.Close()

		list, err = route.ParseManifest(f, p.Views())
		if err != nil {
			return nil, fmt.Errorf("cannot read %s: %w", routesFile, err)
		}

	case defs != nil:
		list = defs(p.Views())

	default:
		list = route.QuizDefinitions(p.Views())
	}

	return route.NewTable(list...)
}

// defaultMiddlewares is the stack wrapping every request the page and navigation handlers see.
//
// LogRequest wraps RateLimit so rejected requests are logged too.
func defaultMiddlewares(env quiz.Environment, u *url.URL, l logger.Logger) []middleware.Adapter {
	var origin string
	if u != nil {
		origin = u.Scheme + "://" + u.Host
	}

	return []middleware.Adapter{
		middleware.InjectIPAddress(),
		middleware.RequestID(),
		middleware.LogRequest(l),
		middleware.RateLimit(defaultVisitors()),
		middleware.ForceHTTPS(env),
		middleware.CORS(origin),
	}
}

// defaultVisitors configures rate limiting per client IP address.
// RATE_LIMIT=false turns it off.
func defaultVisitors() *middleware.Visitors {
	if !quiz.EnvVarOrBool(rateLimitEnvVar, true) {
		return nil
	}

	return middleware.NewVisitorsWithLimit(
		rate.Limit(quiz.EnvVarOrInt(rateLimitRateEnvVar, int(middleware.DefaultVisitorRate))),
		quiz.EnvVarOrInt(rateLimitBurstEnvVar, middleware.DefaultVisitorBurst),
	)
}

// defaultRouter constructs a [*router.Router] to be used by the web server.
func defaultRouter(
	env quiz.Environment,
	assetsDir string,
	pages http.Handler,
	nav http.HandlerFunc,
	mws []middleware.Adapter,
	l logger.Logger,
) *router.Router {
	rt := router.New(env, middleware.LogRequest(l), router.WithAssetsDir(assetsDir))
	rt.OnEveryRequest(mws...)
	rt.Handle(router.Route{Path: NavigationPath, Method: http.MethodGet, Handler: nav})
	rt.CatchAll(pages.ServeHTTP)

	return rt
}

// defaultServer constructs a default [*http.Server].
func defaultServer(ctx context.Context) *http.Server {
	host := quiz.EnvVarOrString(hostEnvVar, DefaultHost)
	port := strings.TrimPrefix(quiz.EnvVarOrString(portEnvVar, DefaultPort), ":")

	srv := &http.Server{
		Addr:         net.JoinHostPort(host, port),
		IdleTimeout:  quiz.EnvVarOrDuration(serverIdleTimeoutEnvVar, DefaultServerIdleTimeout),
		ReadTimeout:  quiz.EnvVarOrDuration(serverReadTimeoutEnvVar, DefaultServerReadTimeout),
		WriteTimeout: quiz.EnvVarOrDuration(serverWriteTimeoutEnvVar, DefaultServerWriteTimeout),
	}
	if ctx != nil {
		srv.BaseContext = func(_ net.Listener) context.Context { return ctx }
	}

	return srv
}

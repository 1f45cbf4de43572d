package router

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/xy-planning-network/quiz"
	"github.com/xy-planning-network/quiz/http/middleware"
	"github.com/xy-planning-network/quiz/http/template"
)

// DefaultAssetsDir is where static assets are served from unless WithAssetsDir says otherwise.
const DefaultAssetsDir = "client/public/"

// A Route maps a path and HTTP method to an [http.HandlerFunc].
// Additional [middleware.Adapter] can be called when a server handles
// a request matching the Route.
type Route struct {
	Path        string
	Method      string
	Handler     http.HandlerFunc
	Middlewares []middleware.Adapter
}

// Router routes requests for assets, navigation lookups and pages of the quiz web app.
type Router struct {
	Env           quiz.Environment
	assetsDir     string
	everyReqStack []middleware.Adapter
	logReq        middleware.Adapter
	r             *mux.Router
}

// A RouterOptFn configures a *Router when constructing one.
type RouterOptFn func(*Router)

// WithAssetsDir serves [template.AssetsPath] from dir.
func WithAssetsDir(dir string) RouterOptFn {
	return func(r *Router) {
		if dir != "" {
			r.assetsDir = dir
		}
	}
}

// New constructs a [*Router] for the given environment.
//
// logReq logs asset requests, which skip the OnEveryRequest stack.
// A nil logReq is replaced by [middleware.NoopAdapter].
func New(env quiz.Environment, logReq middleware.Adapter, opts ...RouterOptFn) *Router {
	if logReq == nil {
		logReq = middleware.NoopAdapter
	}

	rt := &Router{Env: env, assetsDir: DefaultAssetsDir, logReq: logReq, r: mux.NewRouter()}
	for _, opt := range opts {
		opt(rt)
	}

	assetsServer := http.FileServer(http.Dir(rt.assetsDir))

	// NOTE: direct reqs for assets to public path
	rt.r.PathPrefix(template.AssetsPath).Handler(middleware.Chain(
		http.StripPrefix(template.AssetsPath, assetsServer),
		cacheControlMiddleware(),
		logReq,
	))

	return rt
}

// CatchAll routes every GET or HEAD request no other [Route] matches to handler.
//
// CatchAll must be called after every other Route is registered.
func (r *Router) CatchAll(handler http.HandlerFunc) {
	r.r.PathPrefix("/").Methods(http.MethodGet, http.MethodHead).Handler(
		middleware.Chain(
			middleware.ReportPanic(r.Env)(handler),
			r.everyReqStack...,
		),
	)
}

// Handle applies the [Route] to the [*Router].
func (r *Router) Handle(route Route) {
	r.HandleRoutes([]Route{route})
}

// HandleRoutes registers the set of Routes on the Router
// and includes all the [middleware.Adapter] on each Route.
// Any [middleware.Adapter] already assigned to a Route is appended to middlewares,
// so are called after the default set.
func (r *Router) HandleRoutes(routes []Route, middlewares ...middleware.Adapter) {
	for _, route := range routes {
		mws := make([]middleware.Adapter, 0, len(r.everyReqStack)+len(middlewares)+len(route.Middlewares))
		mws = append(mws, r.everyReqStack...)
		mws = append(mws, middlewares...)
		mws = append(mws, route.Middlewares...)

		handler := middleware.Chain(middleware.ReportPanic(r.Env)(route.Handler), mws...)
		r.r.Handle(route.Path, handler).Methods(route.Method)
	}
}

// OnEveryRequest appends the middlewares to the existing stack
// that the [*Router] will apply to every request.
func (r *Router) OnEveryRequest(middlewares ...middleware.Adapter) {
	r.everyReqStack = append(r.everyReqStack, middlewares...)
}

// ServeHTTP responds to an HTTP request.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.r.ServeHTTP(w, req)
}

// cacheControlMiddleware helps by adding a "Cache-Control" header to the response.
func cacheControlMiddleware() middleware.Adapter {
	return func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Cache-Control", "max-age=2592000") // 30 days
			handler.ServeHTTP(w, r)
		})
	}
}

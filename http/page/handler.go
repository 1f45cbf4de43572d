package page

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	html "html/template"
	"net/http"
	"sync"

	"github.com/xy-planning-network/quiz/http/template"
	"github.com/xy-planning-network/quiz/logger"
	"github.com/xy-planning-network/quiz/route"
)

const (
	// DefaultShell is the embedded template each view is rendered into.
	DefaultShell = "shell.tmpl"

	// DefaultTitle is the title of pages whose route has none.
	DefaultTitle = "Quiz"
)

// Data is what the shell template executes with.
type Data struct {
	// Title is the display title the navigation set.
	Title string

	// Body is the rendered view.
	Body html.HTML

	// Event is the navigation to this page.
	Event route.Event
}

// A Handler renders the page for any path through a route.Resolver.
type Handler struct {
	defaultTitle string
	l            logger.Logger
	pool         *sync.Pool
	prefix       string
	resolver     *route.Resolver
	shell        string
	tmpl         *html.Template
}

// NewHandler constructs a *Handler navigating with r
// and rendering views inside the shell template p parses.
//
// The shell parses once, here; a shell that cannot parse returns ErrBadConfig.
func NewHandler(r *route.Resolver, p template.Parser, opts ...HandlerOptFn) (*Handler, error) {
	if r == nil || p == nil {
		return nil, fmt.Errorf("%w: resolver and parser are required", ErrBadConfig)
	}

	h := &Handler{
		defaultTitle: DefaultTitle,
		l:            logger.New(),
		pool:         &sync.Pool{New: func() any { return new(bytes.Buffer) }},
		prefix:       route.DefaultTitlePrefix,
		resolver:     r,
		shell:        DefaultShell,
	}

	for _, opt := range opts {
		opt(h)
	}

	tmpl, err := p.Parse(h.shell)
	if err != nil {
		return nil, fmt.Errorf("%w: cannot parse %s: %s", ErrBadConfig, h.shell, err)
	}

	h.tmpl = tmpl

	return h, nil
}

// ServeHTTP renders the page for the request's path.
//
// The table's fallback route, its terminal catch-all, answers 404 Not Found.
// A view failing to load answers 500 Internal Server Error.
// If the request is cancelled while its view loads, nothing is written.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	title := h.defaultTitle
	ev, fut := h.resolver.
		With(route.TitleHook(h.prefix, func(t string) { title = t })).
		Navigate(r.URL.EscapedPath())

	v, err := fut.Wait(r.Context())
	if err != nil {
		if r.Context().Err() != nil && errors.Is(err, r.Context().Err()) {
			h.l.Debug("request ended before view loaded", h.logContext(r, ev, err))
			return
		}

		err = fmt.Errorf("cannot load view: %w", err)
		lc := h.logContext(r, ev, err)
		lc.Caller = fut.Caller()
		h.fail(w, lc)
		return
	}

	body := h.pool.Get().(*bytes.Buffer)
	body.Reset()
	defer h.pool.Put(body)

	if err := v.Render(body, ev); err != nil {
		err = fmt.Errorf("cannot render view: %w", err)
		h.fail(w, h.logContext(r, ev, err))
		return
	}

	b := h.pool.Get().(*bytes.Buffer)
	b.Reset()
	defer h.pool.Put(b)

	data := Data{Title: title, Body: html.HTML(body.String()), Event: ev}
	if err := h.tmpl.Execute(b, data); err != nil {
		err = fmt.Errorf("cannot render %s: %w", h.shell, err)
		h.fail(w, h.logContext(r, ev, err))
		return
	}

	code := http.StatusOK
	if ev.Route.Name == h.resolver.Table().Fallback().Name {
		code = http.StatusNotFound
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(code)
	if _, err := b.WriteTo(w); err != nil && !errors.Is(err, context.Canceled) {
		h.l.Warn(fmt.Sprintf("cannot write page: %s", err), h.logContext(r, ev, err))
	}
}

// fail reports lc.Error and answers 500 Internal Server Error.
func (h *Handler) fail(w http.ResponseWriter, lc *logger.LogContext) {
	h.l.Error(lc.Error.Error(), lc)
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

func (h *Handler) logContext(r *http.Request, ev route.Event, err error) *logger.LogContext {
	return &logger.LogContext{
		Data:    map[string]any{"path": ev.Path, "route": ev.Route.Name},
		Error:   err,
		Request: r,
	}
}

package page

import "github.com/xy-planning-network/quiz/logger"

// A HandlerOptFn configures a *Handler when constructing one.
type HandlerOptFn func(*Handler)

// WithDefaultTitle sets the title of pages whose route has none.
func WithDefaultTitle(title string) HandlerOptFn {
	return func(h *Handler) {
		h.defaultTitle = title
	}
}

// WithLogger sets the logger.Logger failures are reported to.
func WithLogger(l logger.Logger) HandlerOptFn {
	return func(h *Handler) {
		if l != nil {
			h.l = l
		}
	}
}

// WithShell sets the template each view is rendered into.
func WithShell(fp string) HandlerOptFn {
	return func(h *Handler) {
		if fp != "" {
			h.shell = fp
		}
	}
}

// WithTitlePrefix sets what the route's title is prefixed with.
func WithTitlePrefix(prefix string) HandlerOptFn {
	return func(h *Handler) {
		h.prefix = prefix
	}
}

package route

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/xy-planning-network/quiz/logger"
)

// A View is a renderable page.
type View interface {
	Render(w io.Writer, ev Event) error
}

// ViewFunc adapts a function into a View.
type ViewFunc func(w io.Writer, ev Event) error

// Render calls f.
func (f ViewFunc) Render(w io.Writer, ev Event) error { return f(w, ev) }

// A Loader produces the View for a route.
// The View may not be ready when Loader returns.
type Loader func() *Future

// A Future is a handle to a View that may still be loading.
type Future struct {
	done   chan struct{}
	view   View
	err    error
	caller string
}

// Resolved returns a Future already holding v.
func Resolved(v View) *Future {
	f := &Future{done: make(chan struct{}), view: v}
	close(f.done)
	return f
}

// Failed returns a Future already holding err.
func Failed(err error) *Future {
	f := &Future{done: make(chan struct{}), err: err}
	close(f.done)
	return f
}

// Defer runs fn in its own goroutine,
// returning a Future that completes when fn returns.
//
// A panic in fn completes the Future with ErrLoadPanic.
func Defer(fn func() (View, error)) *Future {
	return deferFrom(logger.CurrentCaller(), fn)
}

func deferFrom(caller string, fn func() (View, error)) *Future {
	f := &Future{done: make(chan struct{}), caller: caller}
	go func() {
		defer func() {
			if r := recover(); r != nil {
				f.view, f.err = nil, fmt.Errorf("%w: %v", ErrLoadPanic, r)
			}
			close(f.done)
		}()

		f.view, f.err = fn()
	}()

	return f
}

// Caller is where the load began, formatted for logger.LogContext.Caller.
// It is empty for a Future made by Resolved or Failed.
func (f *Future) Caller() string { return f.caller }

// Done returns a channel closed once the View has loaded or failed to.
func (f *Future) Done() <-chan struct{} { return f.done }

// Wait blocks until the View loads or ctx is done.
//
// When ctx is done first, its error returns and the load is left to finish on its own.
func (f *Future) Wait(ctx context.Context) (View, error) {
	select {
	case <-f.done:
		return f.view, f.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Lazy returns a Loader which calls fn on first use
// and shares the result with every later call.
//
// A load in flight is shared too.
// A failed load is dropped, so the next call tries again.
//
// Loads report the caller of Lazy as their Caller.
func Lazy(fn func() (View, error)) Loader {
	l := &lazy{fn: fn, caller: logger.CurrentCaller()}
	return l.load
}

type lazy struct {
	fn     func() (View, error)
	caller string

	mu  sync.Mutex
	fut *Future
}

func (l *lazy) load() *Future {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.fut != nil {
		select {
		case <-l.fut.done:
			if l.fut.err == nil {
				return l.fut
			}
		default:
			return l.fut
		}
	}

	l.fut = deferFrom(l.caller, l.fn)
	return l.fut
}

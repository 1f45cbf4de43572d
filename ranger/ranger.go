package ranger

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/joho/godotenv/autoload"
	"github.com/xy-planning-network/quiz"
	"github.com/xy-planning-network/quiz/http/router"
	"github.com/xy-planning-network/quiz/http/template"
	"github.com/xy-planning-network/quiz/logger"
	"github.com/xy-planning-network/quiz/route"
)

// A Ranger manages and exposes all components of the quiz web app to one another.
type Ranger struct {
	ctx      context.Context
	cancel   context.CancelFunc
	env      quiz.Environment
	l        logger.Logger
	p        *template.Parse
	resolver *route.Resolver
	router   *router.Router
	srv      *http.Server
	table    *route.Table
	url      *url.URL

	assetsDir   string
	defs        DefinitionsFn
	routesFile  string
	titlePrefix string
	viewsDir    string
}

// New constructs a Ranger from the provided options.
// Default options are applied first followed by the options passed into New.
// Options supplied to New overwrite default configurations.
//
// A route table without a catch-all route last fails here, wrapping [route.ErrNoCatchAll].
func New(opts ...RangerOption) (*Ranger, error) {
	r := new(Ranger)
	followups := make([]OptFollowup, 0)

	// NOTE: options needing what other options set, e.g., the route table needing
	// the views directory and logger, return an OptFollowup.
	// Followups run in order once every option has.
	for _, opt := range append(defaultOpts(), opts...) {
		fn, err := opt(r)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", quiz.ErrBadConfig, err)
		}

		if fn != nil {
			followups = append(followups, fn)
		}
	}

	for _, fn := range followups {
		if err := fn(); err != nil {
			return nil, fmt.Errorf("%w: %w", quiz.ErrBadConfig, err)
		}
	}

	return r, nil
}

func (r *Ranger) EmitEnv() quiz.Environment     { return r.env }
func (r *Ranger) EmitLogger() logger.Logger     { return r.l }
func (r *Ranger) EmitResolver() *route.Resolver { return r.resolver }
func (r *Ranger) EmitTable() *route.Table       { return r.table }
func (r *Ranger) EmitTitlePrefix() string       { return r.titlePrefix }

// Cancel stops Guide.
func (r *Ranger) Cancel() { r.cancel() }

// ServeHTTP responds to an HTTP request as the web server would.
func (r *Ranger) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.router.ServeHTTP(w, req)
}

// Guide begins the web server.
//
// These, and (*Ranger).Cancel, stop Guide:
//
// - os.Interrupt
// - syscall.SIGHUP
// - syscall.SIGINT
// - syscall.SIGQUIT
// - syscall.SIGTERM
//
// If the web server cannot listen, Guide returns that error.
func (r *Ranger) Guide() error {
	ch := make(chan os.Signal, 1)
	signal.Notify(
		ch,
		os.Interrupt,
		syscall.SIGHUP,
		syscall.SIGINT,
		syscall.SIGQUIT,
		syscall.SIGTERM,
	)
	defer signal.Stop(ch)

	go func() {
		select {
		case s := <-ch:
			r.l.Info(fmt.Sprint("received shutdown signal: ", s), nil)
			r.cancel()
		case <-r.ctx.Done():
		}
	}()

	errCh := make(chan error, 1)
	go func() {
		r.l.Info(fmt.Sprintf("running web server at %s", r.srv.Addr), nil)
		if err := r.srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("could not listen: %w", err)
			r.cancel()
		}
	}()

	<-r.ctx.Done()
	if err := r.Shutdown(); err != nil {
		return err
	}

	select {
	case err := <-errCh:
		r.l.Error(err.Error(), nil)
		return err
	default:
		return nil
	}
}

// Shutdown shutdowns the web server.
func (r *Ranger) Shutdown() error {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	r.l.Info("shutting down web server", nil)
	err := r.srv.Shutdown(shutdownCtx)
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("could not shutdown: %w", err)
	}

	r.l.Info("web server shutdown successfully", nil)
	return nil
}

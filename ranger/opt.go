package ranger

import (
	"context"
	"fmt"
	"net/http"

	"github.com/xy-planning-network/quiz"
	"github.com/xy-planning-network/quiz/logger"
	"github.com/xy-planning-network/quiz/route"
)

// A RangerOption configures a *Ranger either (1) directly, immediately upon being called
// or (2) in the OptFollowup it returns.
// Some RangerOptions require data in others and thus an OptFollowup can be returned
// in order to be called at a later time when that data is available.
//
// WithLogger is an example of the first.
// An unexported field on the passed in *Ranger is updated with the enclosed value.
//
// The default option building the route table is an example of the second;
// it waits on the views directory, routes file and logger every other option may set.
type RangerOption func(rng *Ranger) (OptFollowup, error)
type OptFollowup func() error

// A DefinitionsFn lists the routes of the web app given how to load their views.
type DefinitionsFn func(route.ViewLoader) []route.Definition

// WithAssetsDir serves static assets from dir instead of ASSETS_DIR.
func WithAssetsDir(dir string) RangerOption {
	return func(rng *Ranger) (OptFollowup, error) {
		rng.assetsDir = dir
		return nil, nil
	}
}

// WithContext exposes the provided context.Context to the web app.
// Requests the web server handles descend from ctx.
func WithContext(ctx context.Context) RangerOption {
	return func(rng *Ranger) (OptFollowup, error) {
		rng.ctx = ctx
		return nil, nil
	}
}

// WithEnv casts the provided string into a valid Environment,
// or, reads from the ENVIRONMENT environment variable a valid Environment.
//
// If both fail, the default Environment is set to Development.
func WithEnv(envVar string) RangerOption {
	e := quiz.Environment(envVar)
	return func(rng *Ranger) (OptFollowup, error) {
		if e.Valid() != nil {
			e = quiz.EnvVarOrEnv(environmentEnvVar, quiz.Development)
		}

		rng.env = e
		return nil, nil
	}
}

// WithLogger exposes the provided logger.Logger to the web app.
func WithLogger(l logger.Logger) RangerOption {
	return func(rng *Ranger) (OptFollowup, error) {
		if l == nil {
			return nil, fmt.Errorf("%w: nil logger", quiz.ErrNotValid)
		}

		rng.l = l
		l.Debug(fmt.Sprintf("using logger %T", l), nil)

		return nil, nil
	}
}

// WithRoutes lists the routes of the web app with fn instead of the quiz's own.
// A routes file, set by WithRoutesFile or ROUTES_FILE, takes precedence.
func WithRoutes(fn DefinitionsFn) RangerOption {
	return func(rng *Ranger) (OptFollowup, error) {
		rng.defs = fn
		return nil, nil
	}
}

// WithRoutesFile reads the routes of the web app from the YAML manifest at fp instead of ROUTES_FILE.
// cf. [route.ParseManifest]
func WithRoutesFile(fp string) RangerOption {
	return func(rng *Ranger) (OptFollowup, error) {
		rng.routesFile = fp
		return nil, nil
	}
}

// WithServer exposes the *http.Server to the web app.
// The *http.Server's Handler is replaced with the web app's router.
func WithServer(s *http.Server) RangerOption {
	return func(rng *Ranger) (OptFollowup, error) {
		if s == nil {
			return nil, fmt.Errorf("%w: nil server", quiz.ErrNotValid)
		}

		rng.srv = s
		return nil, nil
	}
}

// WithTitlePrefix sets what route titles are prefixed with instead of TITLE_PREFIX.
func WithTitlePrefix(prefix string) RangerOption {
	return func(rng *Ranger) (OptFollowup, error) {
		rng.titlePrefix = prefix
		return nil, nil
	}
}

// WithViewsDir looks up templates in dir before those embedded instead of VIEWS_DIR.
func WithViewsDir(dir string) RangerOption {
	return func(rng *Ranger) (OptFollowup, error) {
		rng.viewsDir = dir
		return nil, nil
	}
}

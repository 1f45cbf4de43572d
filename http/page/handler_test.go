package page_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/quiz/http/page"
	"github.com/xy-planning-network/quiz/http/template"
	tt "github.com/xy-planning-network/quiz/http/template/templatetest"
	"github.com/xy-planning-network/quiz/logger"
	"github.com/xy-planning-network/quiz/route"
)

func newQuizResolver(t *testing.T, p *template.Parse) *route.Resolver {
	t.Helper()

	tbl, err := route.NewTable(route.QuizDefinitions(p.Views())...)
	require.Nil(t, err)
	p.AddFn(template.RoutePath(tbl))

	return route.NewResolver(tbl)
}

func newLogger(b *bytes.Buffer) logger.Logger {
	color.NoColor = true
	return logger.New(logger.WithLogger(log.New(b, "", 0)))
}

func TestNewHandler(t *testing.T) {
	p := tt.NewParser(nil, nil)
	r := newQuizResolver(t, p)

	_, err := page.NewHandler(nil, p)
	require.ErrorIs(t, err, page.ErrBadConfig)

	_, err = page.NewHandler(r, nil)
	require.ErrorIs(t, err, page.ErrBadConfig)

	_, err = page.NewHandler(r, p, page.WithShell("missing.tmpl"))
	require.ErrorIs(t, err, page.ErrBadConfig)

	h, err := page.NewHandler(r, p)
	require.Nil(t, err)
	require.NotNil(t, h)
}

func TestHandlerServeHTTP(t *testing.T) {
	// Arrange
	p := tt.NewParser(nil, nil)
	h, err := page.NewHandler(newQuizResolver(t, p), p)
	require.Nil(t, err)

	tcs := []struct {
		path     string
		code     int
		title    string
		contains string
	}{
		{"/", http.StatusOK, "Quiz • Home", `class="home"`},
		{"/quiz/iq", http.StatusOK, "Quiz • Quiz", `data-slug="iq"`},
		{"/results", http.StatusOK, "Quiz • Resultados", `class="results"`},
		{"/nonexistent", http.StatusNotFound, "Quiz • Não encontrado", "/nonexistent"},
		{"/quiz/iq/extra", http.StatusNotFound, "Quiz • Não encontrado", "/quiz/iq/extra"},
	}

	for _, tc := range tcs {
		t.Run(tc.path, func(t *testing.T) {
			// Arrange
			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, tc.path, nil)

			// Act
			h.ServeHTTP(w, r)

			// Assert
			body := w.Body.String()
			require.Equal(t, tc.code, w.Code)
			require.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))
			require.Contains(t, body, "<title>"+tc.title+"</title>")
			require.Contains(t, body, tc.contains)
		})
	}
}

func TestHandlerServeHTTPNoTitle(t *testing.T) {
	// Arrange
	tbl, err := route.NewTable(
		route.Definition{Pattern: "/*", Name: route.NotFoundName, Loader: func() *route.Future {
			return route.Resolved(route.ViewFunc(func(w io.Writer, ev route.Event) error { return nil }))
		}},
	)
	require.Nil(t, err)

	p := tt.NewParser(tbl, nil)
	h, err := page.NewHandler(route.NewResolver(tbl), p, page.WithDefaultTitle("Quiz Web"))
	require.Nil(t, err)

	w := httptest.NewRecorder()

	// Act
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/anything", nil))

	// Assert
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Contains(t, w.Body.String(), "<title>Quiz Web</title>")
}

func TestHandlerServeHTTPLoadFailure(t *testing.T) {
	// Arrange
	boom := errors.New("bundle missing")
	tbl, err := route.NewTable(
		route.Definition{
			Pattern: "/*",
			Name:    route.NotFoundName,
			Loader:  func() *route.Future { return route.Failed(boom) },
			Meta:    route.Meta{route.TitleKey: "Não encontrado"},
		},
	)
	require.Nil(t, err)

	b := new(bytes.Buffer)
	p := tt.NewParser(tbl, nil)
	h, err := page.NewHandler(route.NewResolver(tbl), p, page.WithLogger(newLogger(b)))
	require.Nil(t, err)

	w := httptest.NewRecorder()

	// Act
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nada", nil))

	// Assert
	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.Contains(t, b.String(), "[ERROR]")
	require.Contains(t, b.String(), "bundle missing")
}

func TestHandlerServeHTTPCancelled(t *testing.T) {
	// Arrange
	release := make(chan struct{})
	defer close(release)

	tbl, err := route.NewTable(
		route.Definition{Pattern: "/*", Name: route.NotFoundName, Loader: route.Lazy(func() (route.View, error) {
			<-release
			return route.ViewFunc(func(w io.Writer, ev route.Event) error { return nil }), nil
		})},
	)
	require.Nil(t, err)

	p := tt.NewParser(tbl, nil)
	h, err := page.NewHandler(route.NewResolver(tbl), p, page.WithLogger(newLogger(new(bytes.Buffer))))
	require.Nil(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/slow", nil).WithContext(ctx)

	// Act
	h.ServeHTTP(w, r)

	// Assert
	require.Zero(t, w.Body.Len())
	require.Empty(t, w.Header().Get("Content-Type"))
}

func TestHandlerServeHTTPFallbackStatus(t *testing.T) {
	// Arrange
	manifest := `routes:
  - path: /
    name: home
    view: home
    meta:
      title: Home
  - path: /*
    name: missing
    view: not_found
    meta:
      title: Perdido
`
	p := tt.NewParser(nil, map[string]string{
		"views/home.tmpl":      "home",
		"views/not_found.tmpl": "missing {{ .Params }}",
	})
	defs, err := route.ParseManifest(strings.NewReader(manifest), p.Views())
	require.Nil(t, err)

	tbl, err := route.NewTable(defs...)
	require.Nil(t, err)

	h, err := page.NewHandler(route.NewResolver(tbl), p)
	require.Nil(t, err)

	tcs := []struct {
		path string
		code int
	}{
		{"/", http.StatusOK},
		{"/nada", http.StatusNotFound},
		{"/quiz/iq", http.StatusNotFound},
	}

	for _, tc := range tcs {
		t.Run(tc.path, func(t *testing.T) {
			// Arrange
			w := httptest.NewRecorder()

			// Act
			h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tc.path, nil))

			// Assert
			require.Equal(t, tc.code, w.Code)
		})
	}
}

func TestHandlerServeHTTPLoadFailureCaller(t *testing.T) {
	// Arrange
	tbl, err := route.NewTable(
		route.Definition{
			Pattern: "/*",
			Name:    route.NotFoundName,
			Loader:  route.Lazy(func() (route.View, error) { return nil, errors.New("bundle missing") }),
		},
	)
	require.Nil(t, err)

	b := new(bytes.Buffer)
	h, err := page.NewHandler(route.NewResolver(tbl), tt.NewParser(tbl, nil), page.WithLogger(newLogger(b)))
	require.Nil(t, err)

	w := httptest.NewRecorder()

	// Act
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nada", nil))

	// Assert
	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.Regexp(t, `\[ERROR\] \S*page/handler_test\.go:\d+ 'cannot load view: bundle missing'`, b.String())
}

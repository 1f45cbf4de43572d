package template_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/quiz/http/template"
	tt "github.com/xy-planning-network/quiz/http/template/templatetest"
	"github.com/xy-planning-network/quiz/route"
)

func TestViews(t *testing.T) {
	// Arrange
	p := tt.NewParser(nil, nil)
	tbl, err := route.NewTable(route.QuizDefinitions(p.Views())...)
	require.Nil(t, err)
	p.AddFn(template.RoutePath(tbl))

	r := route.NewResolver(tbl)

	tcs := []struct {
		path     string
		contains []string
	}{
		{"/", []string{`class="home"`, `href="/quiz/iq"`}},
		{"/quiz/iq", []string{`data-slug="iq"`, `href="/results"`}},
		{"/quiz/%3Cb%3E", []string{`data-slug="&lt;b&gt;"`}},
		{"/results", []string{`class="results"`, `href="/"`}},
		{"/nada/aqui", []string{`class="not-found"`, "/nada/aqui"}},
	}

	for _, tc := range tcs {
		t.Run(tc.path, func(t *testing.T) {
			// Act
			ev, fut := r.Navigate(tc.path)
			v, err := fut.Wait(context.Background())
			require.Nil(t, err)

			b := new(bytes.Buffer)
			err = v.Render(b, ev)

			// Assert
			require.Nil(t, err)
			for _, s := range tc.contains {
				require.Contains(t, b.String(), s)
			}
		})
	}
}

func TestLoaderMissingView(t *testing.T) {
	// Arrange
	p := tt.NewParser(nil, nil)
	load := p.Views()("ranking")

	// Act
	v, err := load().Wait(context.Background())

	// Assert
	require.NotNil(t, err)
	require.Nil(t, v)
}

func TestLoaderOverride(t *testing.T) {
	// Arrange
	p := tt.NewParser(nil, map[string]string{
		"views/home.tmpl": `<h1>{{ .Route.Name }}</h1>`,
	})
	load := p.Views()(route.HomeView)

	// Act
	v, err := load().Wait(context.Background())
	require.Nil(t, err)

	b := new(bytes.Buffer)
	err = v.Render(b, route.Event{Route: route.Definition{Name: "home"}})

	// Assert
	require.Nil(t, err)
	require.Equal(t, "<h1>home</h1>", b.String())
}

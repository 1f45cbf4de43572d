package route_test

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/quiz/route"
)

func TestParseManifest(t *testing.T) {
	// Arrange
	f, err := os.Open("testdata/quiz.yaml")
	require.Nil(t, err)
	defer f.Close()

	var views []string
	load := func(view string) route.Loader {
		views = append(views, view)
		return stubLoader(view)
	}

	// Act
	defs, err := route.ParseManifest(f, load)

	// Assert
	require.Nil(t, err)
	require.Equal(t, []string{"home", "quiz", "results", "not_found"}, views)

	expected := route.QuizDefinitions(stubLoader)
	require.Len(t, defs, len(expected))
	for i := range expected {
		require.Equal(t, expected[i].Pattern, defs[i].Pattern)
		require.Equal(t, expected[i].Name, defs[i].Name)
		require.Equal(t, expected[i].Meta, defs[i].Meta)
		require.NotNil(t, defs[i].Loader)
	}

	tbl, err := route.NewTable(defs...)
	require.Nil(t, err)

	def, params := tbl.Match("/quiz/iq")
	require.Equal(t, "quiz", def.Name)
	require.Equal(t, "iq", params.Get("slug"))
}

func TestParseManifestErrors(t *testing.T) {
	tcs := []struct {
		name string
		doc  string
	}{
		{"Unknown-Field", "routes:\n  - path: /\n    name: home\n    view: home\n    component: Home\n"},
		{"No-View", "routes:\n  - path: /\n    name: home\n"},
		{"Not-YAML", "routes: [\n"},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			defs, err := route.ParseManifest(strings.NewReader(tc.doc), stubLoader)
			require.ErrorIs(t, err, route.ErrInvalidRoute)
			require.Nil(t, defs)
		})
	}
}

func TestParseManifestEmpty(t *testing.T) {
	// Act
	defs, err := route.ParseManifest(strings.NewReader(""), stubLoader)

	// Assert
	require.Nil(t, err)
	require.Empty(t, defs)

	_, err = route.NewTable(defs...)
	require.ErrorIs(t, err, route.ErrNoCatchAll)
}

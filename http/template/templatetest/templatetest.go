/*
Package templatetest builds template.Parse values over in-memory files.
Used in unit tests for the purposes of avoiding the use of testdata/ directories when unit testing template rendering.
*/
package templatetest

import (
	"testing/fstest"

	"github.com/xy-planning-network/quiz"
	"github.com/xy-planning-network/quiz/http/template"
	"github.com/xy-planning-network/quiz/route"
)

// NewMockFS constructs an in-memory filesystem from file names and their contents.
func NewMockFS(files map[string]string) fstest.MapFS {
	mfs := make(fstest.MapFS, len(files))
	for name, data := range files {
		mfs[name] = &fstest.MapFile{Data: []byte(data)}
	}

	return mfs
}

// NewParser constructs a *template.Parse over the files,
// with the functions the embedded shell and views call.
//
// tbl backs routePath and may be nil if no template calls it.
func NewParser(tbl *route.Table, files map[string]string) *template.Parse {
	opts := []template.ParserOptFn{
		template.WithFS(NewMockFS(files)),
		template.WithFn(template.AssetURI(quiz.Testing, nil)),
		template.WithFn(template.Env(quiz.Testing)),
	}

	if tbl != nil {
		opts = append(opts, template.WithFn(template.RoutePath(tbl)))
	}

	return template.NewParser(opts...)
}

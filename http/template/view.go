package template

import (
	html "html/template"
	"io"
	"path"

	"github.com/xy-planning-network/quiz/route"
)

// ViewsDir is the directory views are found in, relative to the root of a Parse's filesystem.
const ViewsDir = "views"

// A View renders a parsed template with the route.Event navigated to.
type View struct {
	tmpl *html.Template
}

// Render executes the template with ev as its data.
func (v *View) Render(w io.Writer, ev route.Event) error {
	return v.tmpl.Execute(w, ev)
}

// Loader returns a route.Loader that parses fps the first time it is called.
// Until then, nothing is read from the filesystem.
func (p *Parse) Loader(fps ...string) route.Loader {
	return route.Lazy(func() (route.View, error) {
		tmpl, err := p.Parse(fps...)
		if err != nil {
			return nil, err
		}

		return &View{tmpl: tmpl}, nil
	})
}

// Views returns a route.ViewLoader finding each view at ViewsDir/<view>.tmpl.
func (p *Parse) Views() route.ViewLoader {
	return func(view string) route.Loader {
		return p.Loader(path.Join(ViewsDir, view+".tmpl"))
	}
}

package template

import (
	"fmt"
	html "html/template"
	"net/url"

	"github.com/google/uuid"
	"github.com/xy-planning-network/quiz"
	"github.com/xy-planning-network/quiz/route"
)

// AddFn includes the named function in the Parse function map.
func (p *Parse) AddFn(name string, fn any) {
	if p.fns == nil {
		p.fns = make(html.FuncMap)
	}
	p.fns[name] = fn
}

// Env encloses some string representing an environment.
// It returns "env" as the name of the function for convenient passing to a template.FuncMap
// and returns a function returning the enclosed value when called.
func Env(e quiz.Environment) (string, func() string) {
	return "env", func() string { return e.String() }
}

// Nonce returns "nonce" as the name of the function for convenient passing to a template.FuncMap
// and returns a function generating a uuid.
func Nonce() (string, func() string) {
	return "nonce", func() string { return uuid.NewString() }
}

// RootUrl encloses the *url.URL representing the base URL of the web app.
// It returns "rootUrl" as the name of the function for convenient passing to a template.FuncMap
// and returns a function returning its *url.URL.String().
// If u is nil, that function will always return an empty string.
func RootUrl(u *url.URL) (string, func() string) {
	if u == nil {
		return "rootUrl", func() string { return "" }
	}

	s := u.String()
	return "rootUrl", func() string { return s }
}

// RoutePath encloses the route.Table so templates can link to named routes.
// It returns "routePath" as the name of the function for convenient passing to a template.FuncMap
// and returns a function building the path for a route from its name and key-value pairs of params.
//
// e.g., {{ routePath "quiz" "slug" "iq" }} => /quiz/iq
func RoutePath(t *route.Table) (string, func(string, ...string) (string, error)) {
	return "routePath", func(name string, kvs ...string) (string, error) {
		if len(kvs)%2 != 0 {
			return "", fmt.Errorf("%w: %v", ErrOddParams, kvs)
		}

		params := make(route.Params, len(kvs)/2)
		for i := 0; i < len(kvs); i += 2 {
			params[kvs[i]] = kvs[i+1]
		}

		return t.Path(name, params)
	}
}

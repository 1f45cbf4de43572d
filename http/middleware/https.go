package middleware

import (
	"net/http"
	"net/url"

	"github.com/xy-planning-network/quiz"
)

// ForceHTTPS redirects HTTP requests to HTTPS if the environment is production or staging.
//
// The "X-Forwarded-Proto" is used to check whether HTTP was requested due to the quiz web server
// running behind a proxy.
func ForceHTTPS(env quiz.Environment) Adapter {
	if !env.IsProduction() && !env.IsStaging() {
		return NoopAdapter
	}

	return func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get("X-Forwarded-Proto") == "https" {
				handler.ServeHTTP(w, r)
				return
			}

			u := new(url.URL)
			*u = *r.URL
			u.Scheme = "https"
			u.Host = r.Host

			http.Redirect(w, r, u.String(), http.StatusPermanentRedirect)
		})
	}
}

package page

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/xy-planning-network/quiz/route"
)

// Navigation is the JSON NavigationHandler answers with.
type Navigation struct {
	Name    string       `json:"name"`
	Pattern string       `json:"pattern"`
	Path    string       `json:"path"`
	Params  route.Params `json:"params"`
	Title   string       `json:"title"`
}

// NavigationHandler answers GET /_nav?path=<path> with the Navigation to path.
//
// Navigating starts loading the route's view, so it is ready when the page is requested.
// Title is empty if the route has none.
func NavigationHandler(r *route.Resolver, prefix string) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		path := req.URL.Query().Get("path")
		if path == "" {
			http.Error(w, fmt.Errorf("%w: missing ?path=", ErrNoPath).Error(), http.StatusBadRequest)
			return
		}

		var title string
		ev, _ := r.With(route.TitleHook(prefix, func(t string) { title = t })).Navigate(path)

		nav := Navigation{
			Name:    ev.Route.Name,
			Pattern: ev.Route.Pattern,
			Path:    ev.Path,
			Params:  ev.Params,
			Title:   title,
		}

		w.Header().Set("Content-Type", "application/json; charset=UTF-8")
		if err := json.NewEncoder(w).Encode(nav); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	}
}

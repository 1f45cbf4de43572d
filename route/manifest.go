package route

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// A ViewLoader maps the name of a view to the Loader producing it.
type ViewLoader func(view string) Loader

type manifest struct {
	Routes []manifestRoute `yaml:"routes"`
}

type manifestRoute struct {
	Path string         `yaml:"path"`
	Name string         `yaml:"name"`
	View string         `yaml:"view"`
	Meta map[string]any `yaml:"meta"`
}

// ParseManifest decodes a YAML manifest of routes into Definitions,
// ready for NewTable.
//
// e.g.,
//
//	routes:
//	  - path: /quiz/:slug
//	    name: quiz
//	    view: quiz
//	    meta:
//	      title: Quiz
func ParseManifest(r io.Reader, load ViewLoader) ([]Definition, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var m manifest
	if err := dec.Decode(&m); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: could not decode manifest: %s", ErrInvalidRoute, err)
	}

	defs := make([]Definition, 0, len(m.Routes))
	for i, mr := range m.Routes {
		if mr.View == "" {
			return nil, fmt.Errorf("%w: route at %d has no view", ErrInvalidRoute, i)
		}

		defs = append(defs, Definition{
			Pattern: mr.Path,
			Name:    mr.Name,
			Loader:  load(mr.View),
			Meta:    Meta(mr.Meta),
		})
	}

	return defs, nil
}

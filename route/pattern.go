package route

import (
	"fmt"
	"net/url"
	"strings"
)

type segmentKind int

const (
	literalSegment segmentKind = iota
	paramSegment
	catchAllSegment
)

// catchAllSuffixes are the trailing forms accepted on a ":name" segment
// to turn it into a catch-all, e.g., "/:pathMatch(.*)*".
var catchAllSuffixes = []string{"(.*)*", "(.*)"}

type segment struct {
	kind segmentKind

	// value is the literal text of a literal segment
	// or the parameter name of the others.
	value string
}

// A pattern is the compiled form of Definition.Pattern.
type pattern struct {
	raw      string
	segments []segment
}

// compilePattern parses raw into a pattern.
//
// Segments are one of:
//   - literal: matched verbatim
//   - :name: binds any non-empty segment to name
//   - *, *name or :name(.*)*: binds the rest of the path, possibly empty; last segment only
func compilePattern(raw string) (pattern, error) {
	p := pattern{raw: raw}
	if !strings.HasPrefix(raw, "/") {
		return p, fmt.Errorf("pattern %q must begin with /", raw)
	}

	trimmed := strings.TrimSuffix(raw[1:], "/")
	if trimmed == "" {
		return p, nil
	}

	seen := make(map[string]bool)
	parts := strings.Split(trimmed, "/")
	for i, part := range parts {
		seg, err := compileSegment(part)
		if err != nil {
			return p, fmt.Errorf("pattern %q: %w", raw, err)
		}

		if seg.kind == catchAllSegment && i != len(parts)-1 {
			return p, fmt.Errorf("pattern %q: catch-all must be the last segment", raw)
		}

		if seg.kind != literalSegment && seg.value != "" {
			if seen[seg.value] {
				return p, fmt.Errorf("pattern %q: param %q repeats", raw, seg.value)
			}
			seen[seg.value] = true
		}

		p.segments = append(p.segments, seg)
	}

	return p, nil
}

func compileSegment(part string) (segment, error) {
	switch {
	case part == "":
		return segment{}, fmt.Errorf("empty segment")

	case strings.HasPrefix(part, "*"):
		name := part[1:]
		if name != "" && !isParamName(name) {
			return segment{}, fmt.Errorf("bad catch-all name %q", name)
		}
		return segment{kind: catchAllSegment, value: name}, nil

	case strings.HasPrefix(part, ":"):
		name := part[1:]
		for _, suffix := range catchAllSuffixes {
			if n, ok := strings.CutSuffix(name, suffix); ok {
				if !isParamName(n) {
					return segment{}, fmt.Errorf("bad catch-all name %q", n)
				}
				return segment{kind: catchAllSegment, value: n}, nil
			}
		}

		if !isParamName(name) {
			return segment{}, fmt.Errorf("bad param name %q", name)
		}
		return segment{kind: paramSegment, value: name}, nil

	default:
		return segment{kind: literalSegment, value: part}, nil
	}
}

func isParamName(name string) bool {
	if name == "" {
		return false
	}

	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
		default:
			return false
		}
	}

	return true
}

// total asserts whether p matches every path.
func (p pattern) total() bool {
	return len(p.segments) == 1 && p.segments[0].kind == catchAllSegment
}

// match compares p against the segments of a path, one by one.
func (p pattern) match(segs []string) (Params, bool) {
	params := make(Params)
	for i, seg := range p.segments {
		if seg.kind == catchAllSegment {
			if seg.value != "" {
				params[seg.value] = unescape(strings.Join(segs[i:], "/"))
			}
			return params, true
		}

		if i >= len(segs) {
			return nil, false
		}

		switch seg.kind {
		case literalSegment:
			if segs[i] != seg.value {
				return nil, false
			}
		case paramSegment:
			if segs[i] == "" {
				return nil, false
			}
			params[seg.value] = unescape(segs[i])
		}
	}

	if len(segs) != len(p.segments) {
		return nil, false
	}

	return params, true
}

// build fills p with params, producing a concrete path.
func (p pattern) build(params Params) (string, error) {
	parts := make([]string, 0, len(p.segments))
	for _, seg := range p.segments {
		switch seg.kind {
		case literalSegment:
			parts = append(parts, seg.value)

		case paramSegment:
			val := params[seg.value]
			if val == "" {
				return "", fmt.Errorf("%w: %s", ErrMissingParam, seg.value)
			}
			parts = append(parts, url.PathEscape(val))

		case catchAllSegment:
			rest := strings.Trim(params[seg.value], "/")
			if rest == "" {
				continue
			}
			for _, s := range strings.Split(rest, "/") {
				parts = append(parts, url.PathEscape(s))
			}
		}
	}

	return "/" + strings.Join(parts, "/"), nil
}

// splitPath breaks an incoming path into segments,
// ignoring any query, fragment, leading or trailing slashes.
func splitPath(path string) []string {
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}

	path = strings.TrimLeft(path, "/")
	path = strings.TrimRight(path, "/")
	if path == "" {
		return nil
	}

	return strings.Split(path, "/")
}

// unescape percent-decodes s, keeping s as is if it is malformed.
func unescape(s string) string {
	if u, err := url.PathUnescape(s); err == nil {
		return u
	}
	return s
}

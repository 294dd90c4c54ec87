package router

import (
	"fmt"
	"strings"
)

// Router resolves (path, method) pairs to registered routes. Immutable
// after construction and safe for concurrent use.
type Router struct {
	routes []*compiledRoute
	byName map[string]*compiledRoute
}

type compiledRoute struct {
	route    Route
	segments []segment
}

type segment struct {
	literal string
	param   string
	rest    bool // {+param}: captures the remainder of the path
}

// New compiles the given routes. Patterns are validated eagerly so
// misconfiguration surfaces at startup, not at request time.
func New(routes ...Route) (*Router, error) {
	r := &Router{byName: make(map[string]*compiledRoute)}
	for _, route := range routes {
		cr, err := compile(route)
		if err != nil {
			return nil, err
		}
		r.routes = append(r.routes, cr)
		if route.Name != "" {
			if _, exists := r.byName[route.Name]; exists {
				return nil, fmt.Errorf("%w: '%s'", ErrDuplicateName, route.Name)
			}
			r.byName[route.Name] = cr
		}
	}
	return r, nil
}

func compile(route Route) (*compiledRoute, error) {
	if len(route.Pattern) == 0 || route.Pattern[0] != '/' {
		return nil, fmt.Errorf("%w: '%s'", ErrInvalidPattern, route.Pattern)
	}
	if route.Handler == nil {
		return nil, fmt.Errorf("%w: '%s'", ErrNilHandler, route.Pattern)
	}

	parts := strings.Split(strings.TrimPrefix(route.Pattern, "/"), "/")
	segments := make([]segment, 0, len(parts))
	seen := make(map[string]bool)

	for i, part := range parts {
		switch {
		case strings.HasPrefix(part, "{+") && strings.HasSuffix(part, "}"):
			name := part[2 : len(part)-1]
			if i != len(parts)-1 {
				return nil, fmt.Errorf("%w: '%s'", ErrWildcardPosition, route.Pattern)
			}
			if seen[name] {
				return nil, fmt.Errorf("%w: '%s'", ErrDuplicateParam, name)
			}
			seen[name] = true
			segments = append(segments, segment{param: name, rest: true})
		case strings.HasPrefix(part, "{") && strings.HasSuffix(part, "}"):
			name := part[1 : len(part)-1]
			if seen[name] {
				return nil, fmt.Errorf("%w: '%s'", ErrDuplicateParam, name)
			}
			seen[name] = true
			segments = append(segments, segment{param: name})
		default:
			segments = append(segments, segment{literal: part})
		}
	}

	return &compiledRoute{route: route, segments: segments}, nil
}

// Lookup resolves a path and method to a route and its extracted path
// params. A path matching a route under a different method fails with
// ErrMethodNotAllowed; an unmatched path fails with ErrNotFound.
func (r *Router) Lookup(path, method string) (*Route, map[string]string, error) {
	parts := strings.Split(strings.TrimPrefix(path, "/"), "/")

	pathMatched := false
	for _, cr := range r.routes {
		params, ok := cr.match(parts)
		if !ok {
			continue
		}
		if !strings.EqualFold(cr.route.Method, method) {
			pathMatched = true
			continue
		}
		return &cr.route, params, nil
	}

	if pathMatched {
		return nil, nil, fmt.Errorf("%w: %s %s", ErrMethodNotAllowed, method, path)
	}
	return nil, nil, fmt.Errorf("%w: %s", ErrNotFound, path)
}

func (cr *compiledRoute) match(parts []string) (map[string]string, bool) {
	var params map[string]string

	for i, seg := range cr.segments {
		if seg.rest {
			remainder := strings.Join(parts[i:], "/")
			if remainder == "" {
				return nil, false
			}
			if params == nil {
				params = make(map[string]string)
			}
			params[seg.param] = remainder
			return params, true
		}
		if i >= len(parts) {
			return nil, false
		}
		if seg.param != "" {
			if parts[i] == "" {
				return nil, false
			}
			if params == nil {
				params = make(map[string]string)
			}
			params[seg.param] = parts[i]
			continue
		}
		if seg.literal != parts[i] {
			return nil, false
		}
	}

	if len(parts) != len(cr.segments) {
		return nil, false
	}
	return params, true
}

// ReverseURL builds the path for a named route by substituting params into
// its pattern.
func (r *Router) ReverseURL(name string, params map[string]string) (string, error) {
	cr, ok := r.byName[name]
	if !ok {
		return "", fmt.Errorf("%w: '%s'", ErrUnknownRoute, name)
	}

	var b strings.Builder
	for _, seg := range cr.segments {
		b.WriteByte('/')
		if seg.param == "" {
			b.WriteString(seg.literal)
			continue
		}
		v, ok := params[seg.param]
		if !ok {
			return "", fmt.Errorf("%w: '%s'", ErrMissingParam, seg.param)
		}
		b.WriteString(v)
	}
	return b.String(), nil
}

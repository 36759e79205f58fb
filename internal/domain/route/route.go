// Package route defines the application's navigable routes and the guard that
// decides, before each navigation commits, whether it may proceed.
package route

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// Name is the unique symbolic name of a route.
type Name string

const (
	NameHome         Name = "home"
	NameIndex        Name = "index"
	NameBorrowCart   Name = "borrow-cart"
	NameSearch       Name = "search"
	NameIntroduction Name = "introduction"
	NameProfile      Name = "profile"
	NameOrder        Name = "order"
	NameLogin        Name = "login"
	NameRegister     Name = "register"
)

// Route describes one navigable route.
type Route struct {
	Name  Name
	Path  string // segments in braces are parameters, e.g. /introduction/{id}
	Title string
	// Layout routes wrap child pages and are not served on their own.
	Layout bool
}

// Table is an immutable set of routes keyed by name.
type Table struct {
	routes []Route
	byName map[Name]Route
}

// ErrUnregistered is returned when a route name is not part of the table.
var ErrUnregistered = errors.New("unregistered route")

// NewTable builds a table, rejecting empty or duplicate names.
func NewTable(routes ...Route) (*Table, error) {
	t := &Table{byName: make(map[Name]Route, len(routes))}
	for _, r := range routes {
		if r.Name == "" {
			return nil, fmt.Errorf("route with path %q has no name", r.Path)
		}
		if !strings.HasPrefix(r.Path, "/") {
			return nil, fmt.Errorf("route %q: path %q must start with /", r.Name, r.Path)
		}
		if _, dup := t.byName[r.Name]; dup {
			return nil, fmt.Errorf("route %q registered twice", r.Name)
		}
		t.byName[r.Name] = r
		t.routes = append(t.routes, r)
	}
	return t, nil
}

// MustTable is NewTable that panics on configuration errors.
func MustTable(routes ...Route) *Table {
	t, err := NewTable(routes...)
	if err != nil {
		panic(err)
	}
	return t
}

// DefaultRoutes returns the application's route definitions.
func DefaultRoutes() []Route {
	return []Route{
		{Name: NameHome, Path: "/", Layout: true},
		{Name: NameIndex, Path: "/"},
		{Name: NameBorrowCart, Path: "/borrow-cart", Title: "My book list"},
		{Name: NameSearch, Path: "/search", Title: "Search"},
		{Name: NameIntroduction, Path: "/introduction/{id}", Title: "Book details"},
		{Name: NameProfile, Path: "/profile", Title: "Profile"},
		{Name: NameOrder, Path: "/order", Title: "Borrow management"},
		{Name: NameLogin, Path: "/login", Title: "Sign in"},
		{Name: NameRegister, Path: "/register", Title: "Register"},
	}
}

// DefaultTable returns the table built from DefaultRoutes.
func DefaultTable() *Table { return MustTable(DefaultRoutes()...) }

// Has returns true if name is registered.
func (t *Table) Has(name Name) bool {
	_, ok := t.byName[name]
	return ok
}

// Lookup returns the route registered under name.
func (t *Table) Lookup(name Name) (Route, bool) {
	r, ok := t.byName[name]
	return r, ok
}

// Routes returns the routes in registration order.
func (t *Table) Routes() []Route {
	out := make([]Route, len(t.routes))
	copy(out, t.routes)
	return out
}

// Validate reports every name in names that is not registered.
func (t *Table) Validate(names ...Name) error {
	var errs []error
	for _, n := range names {
		if !t.Has(n) {
			errs = append(errs, fmt.Errorf("%w: %q", ErrUnregistered, n))
		}
	}
	return errors.Join(errs...)
}

// URL builds the path for a named route, substituting params.
func (t *Table) URL(name Name, params map[string]string) (string, error) {
	r, ok := t.byName[name]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnregistered, name)
	}

	segs := strings.Split(r.Path, "/")
	for i, seg := range segs {
		key, isParam := paramName(seg)
		if !isParam {
			continue
		}
		v, ok := params[key]
		if !ok || v == "" {
			return "", fmt.Errorf("route %q: missing param %q", name, key)
		}
		segs[i] = url.PathEscape(v)
	}
	return strings.Join(segs, "/"), nil
}

// Match resolves a request path to a non-layout route and its params.
func (t *Table) Match(path string) (Name, map[string]string, bool) {
	if path == "" {
		path = "/"
	}
	reqSegs := strings.Split(path, "/")
	for _, r := range t.routes {
		if r.Layout {
			continue
		}
		if params, ok := matchSegments(strings.Split(r.Path, "/"), reqSegs); ok {
			return r.Name, params, true
		}
	}
	return "", nil, false
}

func matchSegments(pattern, req []string) (map[string]string, bool) {
	if len(pattern) != len(req) {
		return nil, false
	}
	var params map[string]string
	for i, seg := range pattern {
		if key, isParam := paramName(seg); isParam {
			if req[i] == "" {
				return nil, false
			}
			v, err := url.PathUnescape(req[i])
			if err != nil {
				return nil, false
			}
			if params == nil {
				params = make(map[string]string)
			}
			params[key] = v
			continue
		}
		if seg != req[i] {
			return nil, false
		}
	}
	return params, true
}

func paramName(seg string) (string, bool) {
	if len(seg) > 2 && seg[0] == '{' && seg[len(seg)-1] == '}' {
		return seg[1 : len(seg)-1], true
	}
	return "", false
}

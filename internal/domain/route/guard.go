package route

import (
	"context"
	"fmt"
	"log/slog"
)

// AuthState reports whether the current navigator holds a session marker.
type AuthState interface {
	IsAuthenticated(ctx context.Context) (bool, error)
}

// AuthStateFunc adapts a function to AuthState.
type AuthStateFunc func(ctx context.Context) (bool, error)

// IsAuthenticated implements AuthState.
func (f AuthStateFunc) IsAuthenticated(ctx context.Context) (bool, error) { return f(ctx) }

// Decision is the outcome of a guarded navigation: allow, or redirect to a route.
type Decision struct {
	Redirect Name
}

// Allow is the decision that lets navigation proceed unchanged.
var Allow = Decision{}

// Allowed returns true if navigation may proceed.
func (d Decision) Allowed() bool { return d.Redirect == "" }

func (d Decision) String() string {
	if d.Allowed() {
		return "allow"
	}
	return "redirect:" + string(d.Redirect)
}

// DefaultExempt returns the routes reachable without authentication.
func DefaultExempt() []Name {
	return []Name{NameLogin, NameRegister, NameIndex}
}

// Guard decides allow-or-redirect for every navigation.
type Guard struct {
	auth   AuthState
	table  *Table
	exempt map[Name]struct{}
	login  Name
	strict bool
	logger *slog.Logger
}

// GuardOption configures a Guard.
type GuardOption func(*Guard)

// WithTable sets the route table names are checked against.
func WithTable(t *Table) GuardOption {
	return func(g *Guard) { g.table = t }
}

// WithExempt replaces the exempt set.
func WithExempt(names ...Name) GuardOption {
	return func(g *Guard) {
		g.exempt = make(map[Name]struct{}, len(names))
		for _, n := range names {
			g.exempt[n] = struct{}{}
		}
	}
}

// WithLoginRoute sets the redirect target for unauthenticated navigation.
func WithLoginRoute(name Name) GuardOption {
	return func(g *Guard) { g.login = name }
}

// WithStrict makes unregistered target names panic. Use in development.
func WithStrict(strict bool) GuardOption {
	return func(g *Guard) { g.strict = strict }
}

// WithLogger sets the logger used for fail-closed and misconfiguration events.
func WithLogger(l *slog.Logger) GuardOption {
	return func(g *Guard) { g.logger = l }
}

// NewGuard constructs a Guard. It panics if the login route or any exempt
// route is not registered, since those are fixed at startup.
func NewGuard(auth AuthState, opts ...GuardOption) *Guard {
	g := &Guard{
		auth:   auth,
		table:  DefaultTable(),
		login:  NameLogin,
		logger: slog.Default(),
	}
	WithExempt(DefaultExempt()...)(g)
	for _, opt := range opts {
		opt(g)
	}

	names := []Name{g.login}
	for n := range g.exempt {
		names = append(names, n)
	}
	if err := g.table.Validate(names...); err != nil {
		panic(fmt.Sprintf("route guard misconfigured: %v", err))
	}
	if _, ok := g.exempt[g.login]; !ok {
		panic(fmt.Sprintf("route guard misconfigured: login route %q must be exempt", g.login))
	}
	return g
}

// Exempt returns true if name bypasses the guard.
func (g *Guard) Exempt(name Name) bool {
	_, ok := g.exempt[name]
	return ok
}

// LoginRoute returns the redirect target for unauthenticated navigation.
func (g *Guard) LoginRoute() Name { return g.login }

// Table returns the route table the guard checks names against.
func (g *Guard) Table() *Table { return g.table }

// Decide returns the decision for navigating from one route to another.
func (g *Guard) Decide(ctx context.Context, to, from Name) Decision {
	if !g.table.Has(to) {
		if g.strict {
			panic(fmt.Sprintf("route guard: navigation to unregistered route %q", to))
		}
		g.logger.ErrorContext(ctx, "navigation to unregistered route",
			slog.String("to", string(to)), slog.String("from", string(from)))
		return Decision{Redirect: g.login}
	}

	if g.Exempt(to) {
		return Allow
	}
	if g.authenticated(ctx) {
		return Allow
	}
	return Decision{Redirect: g.login}
}

// BeforeEach runs the guard with navigator callback semantics: next() allows,
// next(target) diverts. next is called exactly once.
func (g *Guard) BeforeEach(ctx context.Context, to, from Name, next func(redirect ...Name)) {
	d := g.Decide(ctx, to, from)
	if d.Allowed() {
		next()
		return
	}
	next(d.Redirect)
}

// authenticated evaluates the auth state, treating any failure as signed out.
func (g *Guard) authenticated(ctx context.Context) (ok bool) {
	if g.auth == nil {
		return false
	}
	defer func() {
		if r := recover(); r != nil {
			g.logger.WarnContext(ctx, "auth state panicked; treating as unauthenticated",
				slog.Any("panic", r))
			ok = false
		}
	}()

	authed, err := g.auth.IsAuthenticated(ctx)
	if err != nil {
		g.logger.WarnContext(ctx, "auth state unavailable; treating as unauthenticated",
			slog.Any("error", err))
		return false
	}
	return authed
}

// Package authz holds the static route→role policy evaluated for every
// incoming operation. The same Policy instance is consulted by the REST
// middleware and by the GraphQL resolvers, so both surfaces accept and
// reject identically.
package authz

import (
	"context"
	"net/http"
	"strings"

	"github.com/scoresense/sports-api/internal/core/domain"
)

// Access is the outcome of matching a request against the policy table.
type Access struct {
	// Public requests proceed without a credential.
	Public bool
	// Roles is the allowed role set. Empty means any authenticated role.
	Roles []string
}

// Allows reports whether the given role satisfies this access requirement.
func (a Access) Allows(role string) bool {
	if a.Public || len(a.Roles) == 0 {
		return true
	}
	for _, r := range a.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// Rule binds a method and path pattern to an access requirement. An empty
// method matches every method; a pattern ending in "/**" matches the base
// path and everything beneath it.
type Rule struct {
	Method  string
	Pattern string
	Access  Access
}

// Public builds a rule that requires no credential.
func Public(method, pattern string) Rule {
	return Rule{Method: method, Pattern: pattern, Access: Access{Public: true}}
}

// Roles builds a rule that requires one of the given roles.
func Roles(method, pattern string, roles ...string) Rule {
	return Rule{Method: method, Pattern: pattern, Access: Access{Roles: roles}}
}

// Policy is an ordered, first-match rule list. It is built once at startup
// and read-only afterwards.
type Policy struct {
	rules []Rule
}

func NewPolicy(rules ...Rule) *Policy {
	return &Policy{rules: rules}
}

// Default returns the policy table for the API. Order matters: specific
// rules come before broader ones, and the implicit fallback requires a
// valid token of any role.
func Default() *Policy {
	return NewPolicy(
		Public(http.MethodPost, "/auth/register"),
		Public(http.MethodPost, "/auth/login"),
		Public(http.MethodPost, "/api/users"),
		Public("", "/swagger/**"),
		Public("", "/graphql"),
		Public("", "/graphiql"),
		Public("", "/health/**"),
		Public("", "/metrics"),
		Roles("", "/api/matches/**", domain.RoleAdmin),
		Roles("", "/api/players/**", domain.RoleAdmin),
		Roles("", "/api/player-stats/**", domain.RoleAdmin),
	)
}

// Decide returns the access requirement for a method and path. Requests not
// matched by any rule fall through to authenticated-any-role, never to
// public.
func (p *Policy) Decide(method, path string) Access {
	for _, r := range p.rules {
		if r.Method != "" && r.Method != method {
			continue
		}
		if matchPattern(r.Pattern, path) {
			return r.Access
		}
	}
	return Access{}
}

// Authorize applies an access decision to a caller. A nil claims value means
// the request is anonymous.
func (p *Policy) Authorize(method, path string, claims *domain.Claims) error {
	access := p.Decide(method, path)
	if access.Public {
		return nil
	}
	if claims == nil {
		return domain.ErrUnauthenticated
	}
	if !access.Allows(claims.Role) {
		return domain.ErrForbidden
	}
	return nil
}

func matchPattern(pattern, path string) bool {
	if base, ok := strings.CutSuffix(pattern, "/**"); ok {
		return path == base || strings.HasPrefix(path, base+"/")
	}
	return pattern == path
}

type claimsKey struct{}

// WithClaims attaches validated claims to a request context.
func WithClaims(ctx context.Context, claims *domain.Claims) context.Context {
	return context.WithValue(ctx, claimsKey{}, claims)
}

// ClaimsFrom returns the claims attached to ctx, or nil for an anonymous
// request.
func ClaimsFrom(ctx context.Context) *domain.Claims {
	claims, _ := ctx.Value(claimsKey{}).(*domain.Claims)
	return claims
}

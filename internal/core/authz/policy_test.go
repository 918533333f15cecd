package authz

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/scoresense/sports-api/internal/core/domain"
)

func TestPolicy_FirstMatchWins(t *testing.T) {
	p := NewPolicy(
		Roles("", "/api/players/**", domain.RoleAdmin),
		Public("", "/api/players/public"),
	)

	// The broad rule comes first, so the later public rule never fires.
	access := p.Decide(http.MethodGet, "/api/players/public")
	if access.Public {
		t.Fatalf("expected first rule to win, got public access")
	}
}

func TestPolicy_SubtreePattern(t *testing.T) {
	p := NewPolicy(Roles("", "/api/players/**", domain.RoleAdmin))

	for _, path := range []string{"/api/players", "/api/players/7", "/api/players/by-team/3"} {
		access := p.Decide(http.MethodGet, path)
		if access.Public || len(access.Roles) != 1 {
			t.Fatalf("path %s: unexpected access %+v", path, access)
		}
	}

	// Sibling paths fall through to the authenticated-any default.
	access := p.Decide(http.MethodGet, "/api/playersx")
	if len(access.Roles) != 0 {
		t.Fatalf("expected fallback access, got %+v", access)
	}
}

func TestPolicy_MethodSpecificRule(t *testing.T) {
	p := NewPolicy(Public(http.MethodPost, "/api/users"))

	if !p.Decide(http.MethodPost, "/api/users").Public {
		t.Fatalf("expected POST /api/users to be public")
	}
	if p.Decide(http.MethodGet, "/api/users").Public {
		t.Fatalf("expected GET /api/users to fall through to authenticated")
	}
}

func TestPolicy_FallbackRequiresAuthentication(t *testing.T) {
	p := NewPolicy()

	if err := p.Authorize(http.MethodGet, "/api/teams", nil); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
	if err := p.Authorize(http.MethodGet, "/api/teams", &domain.Claims{Username: "u", Role: domain.RoleUser}); err != nil {
		t.Fatalf("expected any authenticated role to pass, got %v", err)
	}
}

func TestPolicy_RoleEnforcement(t *testing.T) {
	p := Default()

	admin := &domain.Claims{Username: "root", Role: domain.RoleAdmin}
	user := &domain.Claims{Username: "joe", Role: domain.RoleUser}

	if err := p.Authorize(http.MethodPost, "/api/players", admin); err != nil {
		t.Fatalf("admin should create players, got %v", err)
	}
	if err := p.Authorize(http.MethodPost, "/api/players", user); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for user, got %v", err)
	}
	if err := p.Authorize(http.MethodPost, "/api/players", nil); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated for anonymous, got %v", err)
	}

	// Teams only require authentication.
	if err := p.Authorize(http.MethodGet, "/api/teams", user); err != nil {
		t.Fatalf("user should read teams, got %v", err)
	}
}

func TestPolicy_DefaultPublicRoutes(t *testing.T) {
	p := Default()

	for _, tc := range []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/auth/register"},
		{http.MethodPost, "/auth/login"},
		{http.MethodPost, "/api/users"},
		{http.MethodGet, "/graphql"},
		{http.MethodPost, "/graphql"},
		{http.MethodGet, "/graphiql"},
		{http.MethodGet, "/health"},
		{http.MethodGet, "/health/ready"},
		{http.MethodGet, "/metrics"},
		{http.MethodGet, "/swagger/index.html"},
	} {
		if err := p.Authorize(tc.method, tc.path, nil); err != nil {
			t.Fatalf("%s %s should be public, got %v", tc.method, tc.path, err)
		}
	}
}

func TestClaimsContextRoundTrip(t *testing.T) {
	claims := &domain.Claims{Username: "alice", Role: domain.RoleAdmin}
	ctx := WithClaims(context.Background(), claims)

	if got := ClaimsFrom(ctx); got != claims {
		t.Fatalf("unexpected claims: %+v", got)
	}
	if got := ClaimsFrom(context.Background()); got != nil {
		t.Fatalf("expected nil claims for bare context, got %+v", got)
	}
}

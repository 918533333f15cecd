package service

import (
	"context"
	"testing"

	"github.com/scoresense/sports-api/internal/core/domain"
	"github.com/scoresense/sports-api/internal/core/ports"
)

type fakeTeamCache struct {
	entries     map[int64]*domain.Team
	gets        int
	hits        int
	invalidated []int64
}

func newFakeTeamCache() *fakeTeamCache {
	return &fakeTeamCache{entries: make(map[int64]*domain.Team)}
}

func (c *fakeTeamCache) Get(_ context.Context, id int64) (*domain.Team, bool) {
	c.gets++
	t, ok := c.entries[id]
	if ok {
		c.hits++
	}
	return t, ok
}

func (c *fakeTeamCache) Set(_ context.Context, team *domain.Team) {
	clone := *team
	c.entries[team.TeamID] = &clone
}

func (c *fakeTeamCache) Invalidate(_ context.Context, id int64) {
	delete(c.entries, id)
	c.invalidated = append(c.invalidated, id)
}

func TestTeamService_GetByID_PopulatesCache(t *testing.T) {
	teams := newStubTeamRepo(domain.Team{TeamID: 1, Name: "Rovers"})
	cache := newFakeTeamCache()
	svc := NewTeamService(teams, cache)

	if _, err := svc.GetByID(context.Background(), 1); err != nil {
		t.Fatalf("first read failed: %v", err)
	}
	if _, err := svc.GetByID(context.Background(), 1); err != nil {
		t.Fatalf("second read failed: %v", err)
	}

	if teams.findByIDCnt != 1 {
		t.Fatalf("expected one repository read, got %d", teams.findByIDCnt)
	}
	if cache.hits != 1 {
		t.Fatalf("expected one cache hit, got %d", cache.hits)
	}
}

func TestTeamService_Update_Invalidates(t *testing.T) {
	teams := newStubTeamRepo(domain.Team{TeamID: 1, Name: "Rovers"})
	cache := newFakeTeamCache()
	svc := NewTeamService(teams, cache)

	if _, err := svc.GetByID(context.Background(), 1); err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if _, err := svc.Update(context.Background(), 1, ports.TeamInput{Name: "Rangers"}); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	if len(cache.invalidated) != 1 || cache.invalidated[0] != 1 {
		t.Fatalf("expected invalidation of team 1, got %v", cache.invalidated)
	}
}

func TestTeamService_NilCache(t *testing.T) {
	teams := newStubTeamRepo(domain.Team{TeamID: 1, Name: "Rovers"})
	svc := NewTeamService(teams, nil)

	team, err := svc.GetByID(context.Background(), 1)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if team.Name != "Rovers" {
		t.Fatalf("unexpected team: %+v", team)
	}
}

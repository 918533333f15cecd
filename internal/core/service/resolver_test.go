package service

import (
	"context"
	"errors"
	"testing"

	"github.com/scoresense/sports-api/internal/core/domain"
)

func TestResolve_Found(t *testing.T) {
	teams := newStubTeamRepo(domain.Team{TeamID: 7, Name: "Rovers"})

	team, err := Resolve(context.Background(), teams, "Team", 7)
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if team.TeamID != 7 {
		t.Fatalf("unexpected team: %+v", team)
	}
}

func TestResolve_NotFound(t *testing.T) {
	teams := newStubTeamRepo()

	_, err := Resolve(context.Background(), teams, "Team", 9999)
	var nf *domain.NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
	if nf.Resource != "Team" || nf.ID != 9999 {
		t.Fatalf("unexpected error detail: %+v", nf)
	}
}

func TestResolveChanged_SkipsUnchanged(t *testing.T) {
	teams := newStubTeamRepo(domain.Team{TeamID: 7, Name: "Rovers"})

	team, err := ResolveChanged(context.Background(), teams, "Team", 7, 7)
	if err != nil {
		t.Fatalf("ResolveChanged returned error: %v", err)
	}
	if team != nil {
		t.Fatalf("expected nil for unchanged reference, got %+v", team)
	}
	if teams.findByIDCnt != 0 {
		t.Fatalf("expected no lookup for unchanged reference, got %d", teams.findByIDCnt)
	}
}

func TestResolveChanged_ResolvesChanged(t *testing.T) {
	teams := newStubTeamRepo(domain.Team{TeamID: 8, Name: "United"})

	team, err := ResolveChanged(context.Background(), teams, "Team", 8, 7)
	if err != nil {
		t.Fatalf("ResolveChanged returned error: %v", err)
	}
	if team == nil || team.TeamID != 8 {
		t.Fatalf("unexpected team: %+v", team)
	}
	if teams.findByIDCnt != 1 {
		t.Fatalf("expected exactly one lookup, got %d", teams.findByIDCnt)
	}
}

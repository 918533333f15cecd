package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/scoresense/sports-api/internal/core/domain"
	"github.com/scoresense/sports-api/internal/core/ports"
)

type stubMatchRepo struct {
	matches map[int64]*domain.Match
	nextID  int64
}

func newStubMatchRepo(matches ...domain.Match) *stubMatchRepo {
	r := &stubMatchRepo{matches: make(map[int64]*domain.Match), nextID: 1}
	for i := range matches {
		m := matches[i]
		r.matches[m.MatchID] = &m
		if m.MatchID >= r.nextID {
			r.nextID = m.MatchID + 1
		}
	}
	return r
}

func (r *stubMatchRepo) FindByID(_ context.Context, id int64) (*domain.Match, error) {
	m, ok := r.matches[id]
	if !ok {
		return nil, domain.NewNotFound("Match", id)
	}
	clone := *m
	return &clone, nil
}

func (r *stubMatchRepo) ExistsByID(_ context.Context, id int64) (bool, error) {
	_, ok := r.matches[id]
	return ok, nil
}

func (r *stubMatchRepo) FindAll(_ context.Context, spec ports.PageSpec) (*ports.Page[domain.Match], error) {
	items := make([]domain.Match, 0, len(r.matches))
	for _, m := range r.matches {
		items = append(items, *m)
	}
	return ports.NewPage(items, int64(len(items)), spec), nil
}

func (r *stubMatchRepo) FindByHomeTeamID(_ context.Context, teamID int64) ([]domain.Match, error) {
	var out []domain.Match
	for _, m := range r.matches {
		if m.HomeTeamID == teamID {
			out = append(out, *m)
		}
	}
	return out, nil
}

func (r *stubMatchRepo) FindByAwayTeamID(_ context.Context, teamID int64) ([]domain.Match, error) {
	var out []domain.Match
	for _, m := range r.matches {
		if m.AwayTeamID == teamID {
			out = append(out, *m)
		}
	}
	return out, nil
}

func (r *stubMatchRepo) Create(_ context.Context, match *domain.Match) (*domain.Match, error) {
	clone := *match
	clone.MatchID = r.nextID
	r.nextID++
	r.matches[clone.MatchID] = &clone
	return &clone, nil
}

func TestMatchService_Create(t *testing.T) {
	teams := newStubTeamRepo(
		domain.Team{TeamID: 1, Name: "Rovers"},
		domain.Team{TeamID: 2, Name: "United"},
	)
	matches := newStubMatchRepo()
	svc := NewMatchService(matches, teams)

	match, err := svc.Create(context.Background(), ports.MatchInput{
		MatchDate:  time.Now(),
		HomeTeamID: 1,
		AwayTeamID: 2,
		HomeScore:  2,
		AwayScore:  1,
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if match.MatchID == 0 {
		t.Fatalf("expected assigned id, got zero")
	}
}

func TestMatchService_Create_UnknownHomeTeam(t *testing.T) {
	teams := newStubTeamRepo(domain.Team{TeamID: 2, Name: "United"})
	matches := newStubMatchRepo()
	svc := NewMatchService(matches, teams)

	_, err := svc.Create(context.Background(), ports.MatchInput{
		HomeTeamID: 9999,
		AwayTeamID: 2,
	})
	var nf *domain.NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
	if len(matches.matches) != 0 {
		t.Fatalf("expected nothing persisted, got %d matches", len(matches.matches))
	}
}

func TestMatchService_Create_UnknownAwayTeam(t *testing.T) {
	teams := newStubTeamRepo(domain.Team{TeamID: 1, Name: "Rovers"})
	matches := newStubMatchRepo()
	svc := NewMatchService(matches, teams)

	_, err := svc.Create(context.Background(), ports.MatchInput{
		HomeTeamID: 1,
		AwayTeamID: 9999,
	})
	var nf *domain.NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
	if nf.ID != 9999 {
		t.Fatalf("unexpected id in error: %d", nf.ID)
	}
	if len(matches.matches) != 0 {
		t.Fatalf("expected nothing persisted, got %d matches", len(matches.matches))
	}
}

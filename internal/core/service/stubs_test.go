package service

import (
	"context"

	"github.com/scoresense/sports-api/internal/core/domain"
	"github.com/scoresense/sports-api/internal/core/ports"
)

// stubTeamRepo is a map-backed TeamRepository that counts FindByID calls so
// tests can assert how often references were re-resolved.
type stubTeamRepo struct {
	teams       map[int64]*domain.Team
	findByIDCnt int
	nextID      int64
}

func newStubTeamRepo(teams ...domain.Team) *stubTeamRepo {
	r := &stubTeamRepo{teams: make(map[int64]*domain.Team), nextID: 1}
	for i := range teams {
		t := teams[i]
		r.teams[t.TeamID] = &t
		if t.TeamID >= r.nextID {
			r.nextID = t.TeamID + 1
		}
	}
	return r
}

func (r *stubTeamRepo) FindByID(_ context.Context, id int64) (*domain.Team, error) {
	r.findByIDCnt++
	t, ok := r.teams[id]
	if !ok {
		return nil, domain.NewNotFound("Team", id)
	}
	clone := *t
	return &clone, nil
}

func (r *stubTeamRepo) ExistsByID(_ context.Context, id int64) (bool, error) {
	_, ok := r.teams[id]
	return ok, nil
}

func (r *stubTeamRepo) FindAll(_ context.Context, spec ports.PageSpec) (*ports.Page[domain.Team], error) {
	items := make([]domain.Team, 0, len(r.teams))
	for _, t := range r.teams {
		items = append(items, *t)
	}
	return ports.NewPage(items, int64(len(items)), spec), nil
}

func (r *stubTeamRepo) Create(_ context.Context, team *domain.Team) (*domain.Team, error) {
	clone := *team
	clone.TeamID = r.nextID
	r.nextID++
	r.teams[clone.TeamID] = &clone
	return &clone, nil
}

func (r *stubTeamRepo) Update(_ context.Context, team *domain.Team) (*domain.Team, error) {
	clone := *team
	r.teams[clone.TeamID] = &clone
	return &clone, nil
}

func (r *stubTeamRepo) DeleteByID(_ context.Context, id int64) error {
	delete(r.teams, id)
	return nil
}

// stubPlayerRepo is a map-backed PlayerRepository.
type stubPlayerRepo struct {
	players map[int64]*domain.Player
	nextID  int64
}

func newStubPlayerRepo(players ...domain.Player) *stubPlayerRepo {
	r := &stubPlayerRepo{players: make(map[int64]*domain.Player), nextID: 1}
	for i := range players {
		p := players[i]
		r.players[p.PlayerID] = &p
		if p.PlayerID >= r.nextID {
			r.nextID = p.PlayerID + 1
		}
	}
	return r
}

func (r *stubPlayerRepo) FindByID(_ context.Context, id int64) (*domain.Player, error) {
	p, ok := r.players[id]
	if !ok {
		return nil, domain.NewNotFound("Player", id)
	}
	clone := *p
	return &clone, nil
}

func (r *stubPlayerRepo) ExistsByID(_ context.Context, id int64) (bool, error) {
	_, ok := r.players[id]
	return ok, nil
}

func (r *stubPlayerRepo) FindAll(_ context.Context, spec ports.PageSpec) (*ports.Page[domain.Player], error) {
	items := r.all()
	return ports.NewPage(items, int64(len(items)), spec), nil
}

func (r *stubPlayerRepo) FindAllList(_ context.Context) ([]domain.Player, error) {
	return r.all(), nil
}

func (r *stubPlayerRepo) FindByNationality(_ context.Context, nationality string, spec ports.PageSpec) (*ports.Page[domain.Player], error) {
	var items []domain.Player
	for _, p := range r.players {
		if p.Nationality == nationality {
			items = append(items, *p)
		}
	}
	return ports.NewPage(items, int64(len(items)), spec), nil
}

func (r *stubPlayerRepo) FindByTeamID(_ context.Context, teamID int64, spec ports.PageSpec) (*ports.Page[domain.Player], error) {
	var items []domain.Player
	for _, p := range r.players {
		if p.TeamID == teamID {
			items = append(items, *p)
		}
	}
	return ports.NewPage(items, int64(len(items)), spec), nil
}

func (r *stubPlayerRepo) Create(_ context.Context, player *domain.Player) (*domain.Player, error) {
	clone := *player
	clone.PlayerID = r.nextID
	r.nextID++
	r.players[clone.PlayerID] = &clone
	return &clone, nil
}

func (r *stubPlayerRepo) Update(_ context.Context, player *domain.Player) (*domain.Player, error) {
	clone := *player
	r.players[clone.PlayerID] = &clone
	return &clone, nil
}

func (r *stubPlayerRepo) DeleteByID(_ context.Context, id int64) error {
	delete(r.players, id)
	return nil
}

func (r *stubPlayerRepo) all() []domain.Player {
	items := make([]domain.Player, 0, len(r.players))
	for _, p := range r.players {
		items = append(items, *p)
	}
	return items
}

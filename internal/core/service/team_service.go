package service

import (
	"context"

	"github.com/scoresense/sports-api/internal/core/domain"
	"github.com/scoresense/sports-api/internal/core/ports"
)

// TeamCache is an optional read-through cache for single-team reads. Writes
// invalidate; the referential resolver never consults it.
type TeamCache interface {
	Get(ctx context.Context, id int64) (*domain.Team, bool)
	Set(ctx context.Context, team *domain.Team)
	Invalidate(ctx context.Context, id int64)
}

type TeamService struct {
	teams ports.TeamRepository
	cache TeamCache
}

// NewTeamService creates a TeamService. cache may be nil to disable caching.
func NewTeamService(teams ports.TeamRepository, cache TeamCache) *TeamService {
	return &TeamService{teams: teams, cache: cache}
}

func (s *TeamService) GetByID(ctx context.Context, id int64) (*domain.Team, error) {
	if s.cache != nil {
		if team, ok := s.cache.Get(ctx, id); ok {
			return team, nil
		}
	}

	team, err := s.teams.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		s.cache.Set(ctx, team)
	}
	return team, nil
}

func (s *TeamService) GetAllPaged(ctx context.Context, spec ports.PageSpec) (*ports.Page[domain.Team], error) {
	return s.teams.FindAll(ctx, spec.Normalize())
}

func (s *TeamService) Create(ctx context.Context, in ports.TeamInput) (*domain.Team, error) {
	team := &domain.Team{
		Name:        in.Name,
		City:        in.City,
		Stadium:     in.Stadium,
		FoundedYear: in.FoundedYear,
	}
	return s.teams.Create(ctx, team)
}

func (s *TeamService) Update(ctx context.Context, id int64, in ports.TeamInput) (*domain.Team, error) {
	team, err := s.teams.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	team.Name = in.Name
	team.City = in.City
	team.Stadium = in.Stadium
	team.FoundedYear = in.FoundedYear

	updated, err := s.teams.Update(ctx, team)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		s.cache.Invalidate(ctx, id)
	}
	return updated, nil
}

func (s *TeamService) Delete(ctx context.Context, id int64) error {
	exists, err := s.teams.ExistsByID(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return domain.NewNotFound("Team", id)
	}
	if err := s.teams.DeleteByID(ctx, id); err != nil {
		return err
	}
	if s.cache != nil {
		s.cache.Invalidate(ctx, id)
	}
	return nil
}

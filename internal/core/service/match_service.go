package service

import (
	"context"

	"github.com/scoresense/sports-api/internal/core/domain"
	"github.com/scoresense/sports-api/internal/core/ports"
)

type MatchService struct {
	matches ports.MatchRepository
	teams   ports.TeamRepository
}

func NewMatchService(matches ports.MatchRepository, teams ports.TeamRepository) *MatchService {
	return &MatchService{matches: matches, teams: teams}
}

func (s *MatchService) GetByID(ctx context.Context, id int64) (*domain.Match, error) {
	return s.matches.FindByID(ctx, id)
}

func (s *MatchService) GetAllPaged(ctx context.Context, spec ports.PageSpec) (*ports.Page[domain.Match], error) {
	return s.matches.FindAll(ctx, spec.Normalize())
}

func (s *MatchService) GetByHomeTeam(ctx context.Context, teamID int64) ([]domain.Match, error) {
	return s.matches.FindByHomeTeamID(ctx, teamID)
}

func (s *MatchService) GetByAwayTeam(ctx context.Context, teamID int64) ([]domain.Match, error) {
	return s.matches.FindByAwayTeamID(ctx, teamID)
}

// Create resolves both team references; either failure aborts the write.
func (s *MatchService) Create(ctx context.Context, in ports.MatchInput) (*domain.Match, error) {
	home, err := Resolve(ctx, s.teams, "Team", in.HomeTeamID)
	if err != nil {
		return nil, err
	}
	away, err := Resolve(ctx, s.teams, "Team", in.AwayTeamID)
	if err != nil {
		return nil, err
	}

	match := &domain.Match{
		MatchDate:  in.MatchDate,
		HomeScore:  in.HomeScore,
		AwayScore:  in.AwayScore,
		HomeTeamID: home.TeamID,
		AwayTeamID: away.TeamID,
	}
	return s.matches.Create(ctx, match)
}

package service

import (
	"context"

	"github.com/scoresense/sports-api/internal/core/domain"
	"github.com/scoresense/sports-api/internal/core/ports"
)

type PlayerStatsService struct {
	stats   ports.PlayerStatsRepository
	players ports.PlayerRepository
	matches ports.MatchRepository
}

func NewPlayerStatsService(stats ports.PlayerStatsRepository, players ports.PlayerRepository, matches ports.MatchRepository) *PlayerStatsService {
	return &PlayerStatsService{stats: stats, players: players, matches: matches}
}

func (s *PlayerStatsService) GetByID(ctx context.Context, id int64) (*domain.PlayerStats, error) {
	return s.stats.FindByID(ctx, id)
}

func (s *PlayerStatsService) GetAll(ctx context.Context) ([]domain.PlayerStats, error) {
	return s.stats.FindAllList(ctx)
}

func (s *PlayerStatsService) GetAllPaged(ctx context.Context, spec ports.PageSpec) (*ports.Page[domain.PlayerStats], error) {
	return s.stats.FindAll(ctx, spec.Normalize())
}

func (s *PlayerStatsService) GetWithRedCards(ctx context.Context) ([]domain.PlayerStats, error) {
	return s.stats.FindWithRedCards(ctx)
}

func (s *PlayerStatsService) GetWithMinGoals(ctx context.Context, minGoals int) ([]domain.PlayerStats, error) {
	return s.stats.FindWithMinGoals(ctx, minGoals)
}

// Create resolves the player and match references; either failure aborts
// the write.
func (s *PlayerStatsService) Create(ctx context.Context, in ports.PlayerStatsInput) (*domain.PlayerStats, error) {
	player, err := Resolve(ctx, s.players, "Player", in.PlayerID)
	if err != nil {
		return nil, err
	}
	match, err := Resolve(ctx, s.matches, "Match", in.MatchID)
	if err != nil {
		return nil, err
	}

	stats := &domain.PlayerStats{
		PlayerID:      player.PlayerID,
		MatchID:       match.MatchID,
		Goals:         in.Goals,
		Assists:       in.Assists,
		YellowCards:   in.YellowCards,
		RedCards:      in.RedCards,
		MinutesPlayed: in.MinutesPlayed,
	}
	return s.stats.Create(ctx, stats)
}

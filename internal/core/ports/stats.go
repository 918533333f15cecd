package ports

import (
	"context"

	"github.com/scoresense/sports-api/internal/core/domain"
)

type PlayerStatsRepository interface {
	FindByID(ctx context.Context, id int64) (*domain.PlayerStats, error)
	FindAll(ctx context.Context, spec PageSpec) (*Page[domain.PlayerStats], error)
	FindAllList(ctx context.Context) ([]domain.PlayerStats, error)
	FindWithRedCards(ctx context.Context) ([]domain.PlayerStats, error)
	FindWithMinGoals(ctx context.Context, minGoals int) ([]domain.PlayerStats, error)
	Create(ctx context.Context, stats *domain.PlayerStats) (*domain.PlayerStats, error)
}

// PlayerStatsInput carries the writable fields of a statistics row. PlayerID
// and MatchID are foreign references and must resolve before persistence.
type PlayerStatsInput struct {
	PlayerID      int64
	MatchID       int64
	Goals         int
	Assists       int
	YellowCards   int
	RedCards      int
	MinutesPlayed int
}

type PlayerStatsService interface {
	GetByID(ctx context.Context, id int64) (*domain.PlayerStats, error)
	GetAll(ctx context.Context) ([]domain.PlayerStats, error)
	GetAllPaged(ctx context.Context, spec PageSpec) (*Page[domain.PlayerStats], error)
	GetWithRedCards(ctx context.Context) ([]domain.PlayerStats, error)
	GetWithMinGoals(ctx context.Context, minGoals int) ([]domain.PlayerStats, error)
	Create(ctx context.Context, in PlayerStatsInput) (*domain.PlayerStats, error)
}

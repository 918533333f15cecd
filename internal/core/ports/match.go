package ports

import (
	"context"
	"time"

	"github.com/scoresense/sports-api/internal/core/domain"
)

type MatchRepository interface {
	FindByID(ctx context.Context, id int64) (*domain.Match, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	FindAll(ctx context.Context, spec PageSpec) (*Page[domain.Match], error)
	FindByHomeTeamID(ctx context.Context, teamID int64) ([]domain.Match, error)
	FindByAwayTeamID(ctx context.Context, teamID int64) ([]domain.Match, error)
	Create(ctx context.Context, match *domain.Match) (*domain.Match, error)
}

// MatchInput carries the writable fields of a match. Both team ids are
// foreign references and must resolve before persistence.
type MatchInput struct {
	MatchDate  time.Time
	HomeScore  int
	AwayScore  int
	HomeTeamID int64
	AwayTeamID int64
}

type MatchService interface {
	GetByID(ctx context.Context, id int64) (*domain.Match, error)
	GetAllPaged(ctx context.Context, spec PageSpec) (*Page[domain.Match], error)
	GetByHomeTeam(ctx context.Context, teamID int64) ([]domain.Match, error)
	GetByAwayTeam(ctx context.Context, teamID int64) ([]domain.Match, error)
	Create(ctx context.Context, in MatchInput) (*domain.Match, error)
}

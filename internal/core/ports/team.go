package ports

import (
	"context"

	"github.com/scoresense/sports-api/internal/core/domain"
)

type TeamRepository interface {
	FindByID(ctx context.Context, id int64) (*domain.Team, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	FindAll(ctx context.Context, spec PageSpec) (*Page[domain.Team], error)
	Create(ctx context.Context, team *domain.Team) (*domain.Team, error)
	Update(ctx context.Context, team *domain.Team) (*domain.Team, error)
	DeleteByID(ctx context.Context, id int64) error
}

type TeamInput struct {
	Name        string
	City        string
	Stadium     string
	FoundedYear int
}

type TeamService interface {
	GetByID(ctx context.Context, id int64) (*domain.Team, error)
	GetAllPaged(ctx context.Context, spec PageSpec) (*Page[domain.Team], error)
	Create(ctx context.Context, in TeamInput) (*domain.Team, error)
	Update(ctx context.Context, id int64, in TeamInput) (*domain.Team, error)
	Delete(ctx context.Context, id int64) error
}

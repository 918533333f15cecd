package ports

import (
	"context"

	"github.com/scoresense/sports-api/internal/core/domain"
)

type PlayerRepository interface {
	FindByID(ctx context.Context, id int64) (*domain.Player, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	FindAll(ctx context.Context, spec PageSpec) (*Page[domain.Player], error)
	FindAllList(ctx context.Context) ([]domain.Player, error)
	FindByNationality(ctx context.Context, nationality string, spec PageSpec) (*Page[domain.Player], error)
	FindByTeamID(ctx context.Context, teamID int64, spec PageSpec) (*Page[domain.Player], error)
	Create(ctx context.Context, player *domain.Player) (*domain.Player, error)
	Update(ctx context.Context, player *domain.Player) (*domain.Player, error)
	DeleteByID(ctx context.Context, id int64) error
}

// PlayerInput carries the writable fields of a player. TeamID is a foreign
// reference and must resolve before persistence.
type PlayerInput struct {
	Name        string
	Position    string
	Age         int
	Nationality string
	Height      int
	Weight      int
	TeamID      int64
}

type PlayerService interface {
	GetByID(ctx context.Context, id int64) (*domain.Player, error)
	GetAll(ctx context.Context) ([]domain.Player, error)
	GetAllPaged(ctx context.Context, spec PageSpec) (*Page[domain.Player], error)
	GetByNationality(ctx context.Context, nationality string, spec PageSpec) (*Page[domain.Player], error)
	GetByTeam(ctx context.Context, teamID int64, spec PageSpec) (*Page[domain.Player], error)
	Create(ctx context.Context, in PlayerInput) (*domain.Player, error)
	Update(ctx context.Context, id int64, in PlayerInput) (*domain.Player, error)
	Delete(ctx context.Context, id int64) error
}

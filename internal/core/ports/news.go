package ports

import (
	"context"
	"time"

	"github.com/scoresense/sports-api/internal/core/domain"
)

type NewsRepository interface {
	FindByID(ctx context.Context, id int64) (*domain.News, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	FindAll(ctx context.Context, spec PageSpec) (*Page[domain.News], error)
	FindAllList(ctx context.Context) ([]domain.News, error)
	FindByTeamID(ctx context.Context, teamID int64) ([]domain.News, error)
	Create(ctx context.Context, news *domain.News) (*domain.News, error)
	Update(ctx context.Context, news *domain.News) (*domain.News, error)
	DeleteByID(ctx context.Context, id int64) error
}

type NewsInput struct {
	Title       string
	Content     string
	PublishedAt time.Time
	TeamID      int64
}

type NewsService interface {
	GetByID(ctx context.Context, id int64) (*domain.News, error)
	GetAll(ctx context.Context) ([]domain.News, error)
	GetAllPaged(ctx context.Context, spec PageSpec) (*Page[domain.News], error)
	GetByTeam(ctx context.Context, teamID int64) ([]domain.News, error)
	Create(ctx context.Context, in NewsInput) (*domain.News, error)
	Update(ctx context.Context, id int64, in NewsInput) (*domain.News, error)
	Delete(ctx context.Context, id int64) error
}

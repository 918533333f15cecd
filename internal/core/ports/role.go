package ports

import (
	"context"

	"github.com/scoresense/sports-api/internal/core/domain"
)

type RoleInput struct {
	Name        string
	Description string
}

type RoleService interface {
	GetAll(ctx context.Context) ([]domain.Role, error)
	GetByID(ctx context.Context, id int64) (*domain.Role, error)
	Create(ctx context.Context, in RoleInput) (*domain.Role, error)
	Delete(ctx context.Context, id int64) error
}

package service

import (
	"context"

	"github.com/scoresense/sports-api/internal/core/domain"
	"github.com/scoresense/sports-api/internal/core/ports"
)

type RoleService struct {
	roles ports.RoleRepository
}

func NewRoleService(roles ports.RoleRepository) *RoleService {
	return &RoleService{roles: roles}
}

func (s *RoleService) GetAll(ctx context.Context) ([]domain.Role, error) {
	return s.roles.FindAll(ctx)
}

func (s *RoleService) GetByID(ctx context.Context, id int64) (*domain.Role, error) {
	return s.roles.FindByID(ctx, id)
}

func (s *RoleService) Create(ctx context.Context, in ports.RoleInput) (*domain.Role, error) {
	role := &domain.Role{
		Name:        in.Name,
		Description: in.Description,
	}
	return s.roles.Create(ctx, role)
}

func (s *RoleService) Delete(ctx context.Context, id int64) error {
	exists, err := s.roles.ExistsByID(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return domain.NewNotFound("Role", id)
	}
	return s.roles.DeleteByID(ctx, id)
}

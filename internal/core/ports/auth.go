package ports

import (
	"context"

	"github.com/scoresense/sports-api/internal/core/domain"
)

// UserRepository defines the persistence surface for the credential store.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
}

// RoleRepository defines the persistence surface for the role lookup set.
type RoleRepository interface {
	FindByID(ctx context.Context, id int64) (*domain.Role, error)
	FindAll(ctx context.Context) ([]domain.Role, error)
	Create(ctx context.Context, role *domain.Role) (*domain.Role, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	DeleteByID(ctx context.Context, id int64) error
}

// RegisterInput carries a registration request. RoleID zero means the
// default standard-user role.
type RegisterInput struct {
	Username string
	Password string
	RoleID   int64
}

// AuthService orchestrates registration and login.
type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (string, *domain.User, error)
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
}

// TokenService issues and validates signed, time-bounded session tokens.
type TokenService interface {
	Issue(user *domain.User) (string, error)
	Validate(token string) (*domain.Claims, error)
}

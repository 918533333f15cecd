package service

import (
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/scoresense/sports-api/internal/core/domain"
	"github.com/scoresense/sports-api/internal/core/ports"
	"github.com/scoresense/sports-api/internal/pkg/metrics"
)

// AuthService orchestrates registration and login against the credential
// store, the password verifier, and the token service.
type AuthService struct {
	users  ports.UserRepository
	roles  ports.RoleRepository
	tokens ports.TokenService
}

func NewAuthService(users ports.UserRepository, roles ports.RoleRepository, tokens ports.TokenService) *AuthService {
	return &AuthService{users: users, roles: roles, tokens: tokens}
}

// Register creates an identity and issues a token for it. A zero RoleID
// falls back to the standard user role; an unknown RoleID fails with
// ErrRoleNotFound. A taken username fails with ErrDuplicateUsername — the
// store's unique index is the arbiter, so a concurrent duplicate surfaces
// the same way.
func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (string, *domain.User, error) {
	token, user, err := s.register(ctx, in)
	metrics.AuthAttemptsTotal.WithLabelValues("register", result(err)).Inc()
	return token, user, err
}

func (s *AuthService) register(ctx context.Context, in ports.RegisterInput) (string, *domain.User, error) {
	if in.Username == "" || in.Password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	roleID := in.RoleID
	if roleID == 0 {
		roleID = domain.DefaultRoleID
	}
	role, err := s.roles.FindByID(ctx, roleID)
	if err != nil {
		if domain.IsNotFound(err) {
			return "", nil, domain.ErrRoleNotFound
		}
		return "", nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Username:     in.Username,
		PasswordHash: string(hash),
		RoleID:       role.RoleID,
		Role:         *role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return "", nil, err
	}
	created.Role = *role

	token, err := s.tokens.Issue(created)
	if err != nil {
		return "", nil, err
	}
	return token, created, nil
}

// Login verifies the credentials and issues a token. An unknown username and
// a wrong password both fail with ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	token, user, err := s.login(ctx, username, password)
	metrics.AuthAttemptsTotal.WithLabelValues("login", result(err)).Inc()
	return token, user, err
}

func (s *AuthService) login(ctx context.Context, username, password string) (string, *domain.User, error) {
	if username == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if domain.IsNotFound(err) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func result(err error) string {
	if err != nil {
		return "failure"
	}
	return "success"
}

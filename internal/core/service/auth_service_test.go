package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/scoresense/sports-api/internal/core/domain"
	"github.com/scoresense/sports-api/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stub repositories
// ---------------------------------------------------------------------------

type stubUserRepo struct {
	users  map[string]*domain.User
	nextID int64
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User), nextID: 1}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, exists := r.users[user.Username]; exists {
		return nil, domain.ErrDuplicateUsername
	}
	clone := cloneUser(user)
	clone.UserID = r.nextID
	r.nextID++
	r.users[clone.Username] = cloneUser(clone)
	return cloneUser(clone), nil
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	u, ok := r.users[username]
	if !ok {
		return nil, domain.NewNotFound("User", 0)
	}
	return cloneUser(u), nil
}

type stubRoleRepo struct {
	roles map[int64]*domain.Role
}

func newStubRoleRepo() *stubRoleRepo {
	return &stubRoleRepo{roles: map[int64]*domain.Role{
		1: {RoleID: 1, Name: domain.RoleAdmin},
		2: {RoleID: 2, Name: domain.RoleUser},
	}}
}

func (r *stubRoleRepo) FindByID(_ context.Context, id int64) (*domain.Role, error) {
	role, ok := r.roles[id]
	if !ok {
		return nil, domain.NewNotFound("Role", id)
	}
	clone := *role
	return &clone, nil
}

func (r *stubRoleRepo) FindAll(_ context.Context) ([]domain.Role, error) {
	out := make([]domain.Role, 0, len(r.roles))
	for _, role := range r.roles {
		out = append(out, *role)
	}
	return out, nil
}

func (r *stubRoleRepo) Create(_ context.Context, role *domain.Role) (*domain.Role, error) {
	clone := *role
	clone.RoleID = int64(len(r.roles) + 1)
	r.roles[clone.RoleID] = &clone
	return &clone, nil
}

func (r *stubRoleRepo) ExistsByID(_ context.Context, id int64) (bool, error) {
	_, ok := r.roles[id]
	return ok, nil
}

func (r *stubRoleRepo) DeleteByID(_ context.Context, id int64) error {
	delete(r.roles, id)
	return nil
}

func newAuthService() (*AuthService, *stubUserRepo) {
	users := newStubUserRepo()
	tokens := NewTokenService("secret", time.Hour)
	return NewAuthService(users, newStubRoleRepo(), tokens), users
}

// ---------------------------------------------------------------------------
// Register
// ---------------------------------------------------------------------------

func TestAuthService_Register_Success(t *testing.T) {
	svc, _ := newAuthService()

	token, user, err := svc.Register(context.Background(), ports.RegisterInput{
		Username: "alice",
		Password: "pass123",
	})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}
	if user.PasswordHash == "pass123" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("pass123")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
}

func TestAuthService_Register_DefaultsToUserRole(t *testing.T) {
	svc, _ := newAuthService()

	_, user, err := svc.Register(context.Background(), ports.RegisterInput{
		Username: "coach1",
		Password: "pass123",
	})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user.RoleID != domain.DefaultRoleID {
		t.Fatalf("expected role id %d, got %d", domain.DefaultRoleID, user.RoleID)
	}
	if user.Role.Name != domain.RoleUser {
		t.Fatalf("expected role %q, got %q", domain.RoleUser, user.Role.Name)
	}
}

func TestAuthService_Register_ExplicitAdminRole(t *testing.T) {
	svc, _ := newAuthService()

	_, user, err := svc.Register(context.Background(), ports.RegisterInput{
		Username: "root",
		Password: "pass123",
		RoleID:   1,
	})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user.Role.Name != domain.RoleAdmin {
		t.Fatalf("expected role %q, got %q", domain.RoleAdmin, user.Role.Name)
	}
}

func TestAuthService_Register_UnknownRole(t *testing.T) {
	svc, users := newAuthService()

	_, _, err := svc.Register(context.Background(), ports.RegisterInput{
		Username: "bob",
		Password: "pass123",
		RoleID:   99,
	})
	if !errors.Is(err, domain.ErrRoleNotFound) {
		t.Fatalf("expected ErrRoleNotFound, got %v", err)
	}
	if len(users.users) != 0 {
		t.Fatalf("expected no user stored, got %d", len(users.users))
	}
}

func TestAuthService_Register_EmptyCredentials(t *testing.T) {
	svc, _ := newAuthService()

	if _, _, err := svc.Register(context.Background(), ports.RegisterInput{Username: "", Password: "pass"}); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, _, err := svc.Register(context.Background(), ports.RegisterInput{Username: "bob", Password: ""}); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	svc, _ := newAuthService()

	if _, _, err := svc.Register(context.Background(), ports.RegisterInput{Username: "bob", Password: "pass"}); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	_, _, err := svc.Register(context.Background(), ports.RegisterInput{Username: "bob", Password: "pass2"})
	if !errors.Is(err, domain.ErrDuplicateUsername) {
		t.Fatalf("expected ErrDuplicateUsername, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// Login
// ---------------------------------------------------------------------------

func TestAuthService_Login_Success(t *testing.T) {
	svc, _ := newAuthService()

	if _, _, err := svc.Register(context.Background(), ports.RegisterInput{Username: "carol", Password: "s3cret"}); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	token, user, err := svc.Login(context.Background(), "carol", "s3cret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}
	if user.Username != "carol" {
		t.Fatalf("unexpected user: %+v", user)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc, _ := newAuthService()

	if _, _, err := svc.Register(context.Background(), ports.RegisterInput{Username: "dave", Password: "right"}); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if _, _, err := svc.Login(context.Background(), "dave", "wrong"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	svc, _ := newAuthService()

	if _, _, err := svc.Login(context.Background(), "ghost", "pass"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

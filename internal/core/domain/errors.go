package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrUnauthenticated covers a missing, malformed, or expired credential.
	ErrUnauthenticated = errors.New("authentication required")
	// ErrForbidden covers a valid credential whose role is not allowed.
	ErrForbidden = errors.New("access forbidden")

	// ErrInvalidCredentials is returned on any failed login. It deliberately
	// does not distinguish an unknown username from a wrong password.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrDuplicateUsername  = errors.New("username already taken")
	ErrRoleNotFound       = errors.New("role not found")

	ErrTokenExpired = errors.New("token expired")
	ErrTokenInvalid = errors.New("token invalid")
)

// NotFoundError reports a dangling reference or an unknown entity id.
type NotFoundError struct {
	Resource string
	ID       int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with id %d not found", e.Resource, e.ID)
}

// NewNotFound builds a NotFoundError for the given resource and id.
func NewNotFound(resource string, id int64) error {
	return &NotFoundError{Resource: resource, ID: id}
}

// IsNotFound reports whether err is (or wraps) a NotFoundError.
func IsNotFound(err error) bool {
	var nfe *NotFoundError
	return errors.As(err, &nfe)
}

package graph

import (
	"errors"

	"github.com/graphql-go/graphql/gqlerrors"

	"github.com/scoresense/sports-api/internal/core/domain"
)

// ResolverError returns the error a resolver produced, stripped of the
// located wrappers the executor layers around it. Those wrappers do not
// implement Unwrap, so errors.Is and errors.As only work on the stripped
// value.
func ResolverError(ferr gqlerrors.FormattedError) error {
	return stripLocated(ferr.OriginalError())
}

func stripLocated(err error) error {
	for {
		switch wrapped := err.(type) {
		case *gqlerrors.Error:
			if wrapped.OriginalError == nil {
				return wrapped
			}
			err = wrapped.OriginalError
		case gqlerrors.Error:
			if wrapped.OriginalError == nil {
				return wrapped
			}
			err = wrapped.OriginalError
		case gqlerrors.FormattedError:
			if wrapped.OriginalError() == nil {
				return wrapped
			}
			err = wrapped.OriginalError()
		default:
			return err
		}
	}
}

// formatError renders a resolver error for the wire, attaching the error
// kind under extensions.code. GraphQL responses are always HTTP 200, so the
// code carries the same taxonomy the REST error handler maps to statuses.
func formatError(err error) gqlerrors.FormattedError {
	if err == nil {
		return gqlerrors.FormattedError{Message: "unknown error"}
	}
	ferr := gqlerrors.FormatError(err)
	ferr.Extensions = map[string]interface{}{"code": errorCode(stripLocated(err))}
	return ferr
}

func errorCode(err error) string {
	var nfe *domain.NotFoundError
	switch {
	case errors.Is(err, domain.ErrUnauthenticated),
		errors.Is(err, domain.ErrTokenExpired),
		errors.Is(err, domain.ErrTokenInvalid):
		return "UNAUTHENTICATED"
	case errors.Is(err, domain.ErrForbidden):
		return "FORBIDDEN"
	case errors.As(err, &nfe):
		return "NOT_FOUND"
	case errors.Is(err, domain.ErrInvalidCredentials):
		return "UNAUTHENTICATED"
	case errors.Is(err, domain.ErrDuplicateUsername):
		return "CONFLICT"
	case errors.Is(err, domain.ErrRoleNotFound):
		return "BAD_REQUEST"
	default:
		return "INTERNAL"
	}
}

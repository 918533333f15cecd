package service

import (
	"context"

	"github.com/scoresense/sports-api/internal/core/domain"
	"github.com/scoresense/sports-api/internal/pkg/metrics"
)

// refLookup is the minimal read surface a foreign-key check needs.
type refLookup[T any] interface {
	FindByID(ctx context.Context, id int64) (*T, error)
}

// Resolve binds a caller-supplied id to an existing row before a write. A
// missing row fails with a NotFoundError carrying the resource name and id.
// Every entity service funnels its foreign references through here, so the
// REST and GraphQL write paths share one validation behavior.
//
// Resolution reads always hit the repository, never a cache: a reference
// must exist at the moment of the write.
func Resolve[T any](ctx context.Context, lookup refLookup[T], resource string, id int64) (*T, error) {
	entity, err := lookup.FindByID(ctx, id)
	if err != nil {
		if domain.IsNotFound(err) {
			metrics.ReferenceResolutionsTotal.WithLabelValues(resource, "not_found").Inc()
			return nil, domain.NewNotFound(resource, id)
		}
		return nil, err
	}
	metrics.ReferenceResolutionsTotal.WithLabelValues(resource, "resolved").Inc()
	return entity, nil
}

// ResolveChanged applies Resolve only when the incoming id differs from the
// entity's current value. Unchanged references are not re-resolved, which
// keeps updates from paying redundant lookups. A (nil, nil) return means the
// reference is unchanged.
func ResolveChanged[T any](ctx context.Context, lookup refLookup[T], resource string, id, current int64) (*T, error) {
	if id == current {
		return nil, nil
	}
	return Resolve(ctx, lookup, resource, id)
}

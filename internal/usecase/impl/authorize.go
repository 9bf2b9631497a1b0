package impl

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/errors"

	"github.com/google/uuid"
)

// authorizeOwner loads a resource and checks that userID owns it.
// missing is the repository sentinel for an absent row; it becomes notFound.
// A resource owned by someone else becomes denied.
func authorizeOwner[T entity.Owned](
	ctx context.Context,
	userID uuid.UUID,
	load func(context.Context) (T, error),
	missing error,
	notFound, denied *domainerrors.BaseError,
) (T, error) {
	var zero T

	resource, err := load(ctx)
	if err != nil {
		if errors.Is(err, missing) {
			return zero, errors.Wrap(notFound, "resource lookup")
		}

		return zero, errors.Wrap(err, "failed to load resource")
	}

	if resource.OwnerID() != userID {
		return zero, errors.Wrap(denied, "resource belongs to another user")
	}

	return resource, nil
}

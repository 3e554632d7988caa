package services

import (
	apperrors "finvault/internal/errors"
)

// owned is implemented by every user-owned entity.
type owned interface {
	OwnerID() int64
}

// authorize is the ownership guard applied before every single-entity read,
// update or delete. An absent entity yields the entity's not-found sentinel;
// an entity owned by another user yields Forbidden and is never returned.
// List accessors filter by user instead and do not pass through here.
func authorize[T owned](entity T, found bool, userID int64, notFound *apperrors.AppError) (T, error) {
	var zero T
	if !found {
		return zero, notFound
	}
	if entity.OwnerID() != userID {
		return zero, apperrors.ErrForbidden
	}
	return entity, nil
}

package impl

import (
	domainerrors "kindling/internal/domain/errors"
	"kindling/internal/domain/entity"
	"kindling/internal/errors"

	"github.com/google/uuid"
)

// ownedRow resolves a fetch result into an authorized row. It maps the
// repository's not-found sentinel to NOT_FOUND and a foreign owner to
// OWNERSHIP_VIOLATION, keeping "doesn't exist" and "not yours" distinct.
// Callers run it inside the same transaction as the write it guards, on the
// pre-mutation row state, so a concurrent ownership change cannot slip
// between the check and the write.
func ownedRow[T entity.Owned](caller uuid.UUID, row T, err, notFound error) (T, error) {
	var zero T

	if err != nil {
		if errors.Is(err, notFound) {
			return zero, errors.WithStack(domainerrors.ErrNotFound)
		}

		return zero, errors.Wrap(err, "failed to load row for ownership check")
	}

	if row.Owner() != caller {
		return zero, errors.WithStack(domainerrors.ErrOwnershipViolation)
	}

	return row, nil
}

// assertStillOwned re-verifies ownership on the post-mutation row. Update
// mutators call it after the write lands as a defense against logic that
// accidentally changes the owner column; a failure rolls the transaction back.
func assertStillOwned(caller uuid.UUID, row entity.Owned, err error) error {
	if err != nil {
		return errors.Wrap(err, "failed to reload row after mutation")
	}

	if row.Owner() != caller {
		return errors.WithStack(domainerrors.ErrOwnershipViolation)
	}

	return nil
}

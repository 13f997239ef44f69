package postgres

import (
	"errors"
	"fmt"

	"github.com/lib/pq"

	"manga_ingest/internal/storage"
)

const uniqueViolation = "23505"

// mapError translates driver errors into storage errors.
func mapError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		return fmt.Errorf("%s: %w", pqErr.Constraint, storage.ErrDuplicate)
	}
	return err
}

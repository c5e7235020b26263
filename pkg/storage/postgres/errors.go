package postgres

import (
	"errors"
	"fmt"
	"gmao/pkg/storage"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// wrapError annotates err with msg and maps integrity violations to the
// storage sentinel errors.
func wrapError(err error, msg string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation:
			return fmt.Errorf("%s: %w (%s)", msg, storage.ErrDuplicate, pgErr.ConstraintName)
		case pgerrcode.ForeignKeyViolation, pgerrcode.CheckViolation, pgerrcode.NotNullViolation:
			return fmt.Errorf("%s: %w (%s)", msg, storage.ErrConstraint, pgErr.ConstraintName)
		}
	}

	return fmt.Errorf("%s: %w", msg, err)
}

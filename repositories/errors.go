package repositories

import (
	"github.com/cockroachdb/errors"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/driveline/rental-backend/models"
)

func IsUniqueViolationError(err error) bool {
	var pgxErr *pgconn.PgError
	return errors.As(err, &pgxErr) && pgxErr.Code == pgerrcode.UniqueViolation
}

func IsForeignKeyViolationError(err error) bool {
	var pgxErr *pgconn.PgError
	return errors.As(err, &pgxErr) && pgxErr.Code == pgerrcode.ForeignKeyViolation
}

// TranslatePostgresError maps driver errors onto the model sentinel errors so
// handlers can render the right status code.
func TranslatePostgresError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, pgx.ErrNoRows):
		return errors.Join(models.NotFoundError, err)
	case IsUniqueViolationError(err):
		return errors.Join(models.ConflictError, err)
	case IsForeignKeyViolationError(err):
		return errors.Join(models.BadParameterError, err)
	default:
		return err
	}
}

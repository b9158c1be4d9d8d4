package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolationCode = "23505"

func asPgError(err error, target **pgconn.PgError) bool {
	return errors.As(err, target)
}

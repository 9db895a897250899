package service

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// StoreMessage returns the concise driver-level message when err originated
// in Postgres, otherwise err.Error(). Handlers use it to build the error
// body for commit-time persistence failures.
func StoreMessage(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Message
	}
	return err.Error()
}

package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

// PostgreSQL SQLSTATE codes for integrity constraint violations.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeCheckViolation      = "23514"
)

// Errors names the domain error each storage failure maps to. A nil field
// leaves that failure unmapped.
type Errors struct {
	NotFound      error
	Duplicate     error
	MissingParent error
	Invalid       error
}

// Map translates err into the matching domain error. Check violations keep
// the constraint name in the message. Unrecognized errors are returned
// unchanged.
func (e Errors) Map(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) && e.NotFound != nil {
		return e.NotFound
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch {
	case pgErr.Code == codeUniqueViolation && e.Duplicate != nil:
		return e.Duplicate
	case pgErr.Code == codeForeignKeyViolation && e.MissingParent != nil:
		return e.MissingParent
	case pgErr.Code == codeCheckViolation && e.Invalid != nil:
		return fmt.Errorf("%w: violates %s", e.Invalid, pgErr.ConstraintName)
	}
	return err
}

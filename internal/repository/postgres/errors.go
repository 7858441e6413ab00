package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	apperrors "github.com/dragenda/agenda-api/pkg/errors"
)

// pq error codes that map onto the app taxonomy.
const (
	pqUniqueViolation     = "23505"
	pqForeignKeyViolation = "23503"
	pqInvalidEnumValue    = "22P02"
	pqCheckViolation      = "23514"
)

// wrapError translates store failures into app errors: constraint violations
// become Conflict or BadRequest, a missing row becomes NotFound, anything
// else is wrapped as-is for the caller to treat as a storage failure.
func wrapError(err error, resource string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return apperrors.NotFound(resource, err)
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch string(pqErr.Code) {
		case pqUniqueViolation:
			return apperrors.Conflict(fmt.Sprintf("%s already exists", resource), err)
		case pqForeignKeyViolation:
			return apperrors.Conflict(fmt.Sprintf("%s references a missing row", resource), err)
		case pqInvalidEnumValue, pqCheckViolation:
			return apperrors.BadRequest(fmt.Sprintf("invalid %s value", resource), err)
		}
	}
	return fmt.Errorf("%s: %w", resource, err)
}

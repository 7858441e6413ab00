package postgres

import (
	"database/sql"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"

	apperrors "github.com/dragenda/agenda-api/pkg/errors"
)

func TestWrapErrorUniqueViolation(t *testing.T) {
	err := wrapError(&pq.Error{Code: pq.ErrorCode(pqUniqueViolation)}, "user")
	assert.Equal(t, apperrors.ErrConflict, apperrors.CodeOf(err))
	assert.Contains(t, err.Error(), "user already exists")
}

func TestWrapErrorForeignKeyViolation(t *testing.T) {
	err := wrapError(&pq.Error{Code: pq.ErrorCode(pqForeignKeyViolation)}, "appointment")
	assert.Equal(t, apperrors.ErrConflict, apperrors.CodeOf(err))
}

func TestWrapErrorInvalidEnum(t *testing.T) {
	err := wrapError(&pq.Error{Code: pq.ErrorCode(pqInvalidEnumValue)}, "patient")
	assert.Equal(t, apperrors.ErrBadRequest, apperrors.CodeOf(err))
}

func TestWrapErrorNoRows(t *testing.T) {
	err := wrapError(sql.ErrNoRows, "clinic")
	assert.Equal(t, apperrors.ErrNotFound, apperrors.CodeOf(err))
}

func TestWrapErrorPassthrough(t *testing.T) {
	cause := fmt.Errorf("connection refused")
	err := wrapError(cause, "clinic")
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, apperrors.ErrInternal, apperrors.CodeOf(err))
}

func TestWrapErrorNil(t *testing.T) {
	assert.NoError(t, wrapError(nil, "clinic"))
}

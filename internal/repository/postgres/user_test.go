package postgres

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dragenda/agenda-api/internal/model"
	apperrors "github.com/dragenda/agenda-api/pkg/errors"
)

func TestUserGetByEmail(t *testing.T) {
	base, mock := newTestBase(t)
	repo := NewUserRepository(base)

	rows := sqlmock.NewRows([]string{
		"id", "name", "email", "email_verified", "image", "created_at", "updated_at",
	}).AddRow("user-1", "Ada", "ada@example.com", true, nil, testNow, testNow)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE email = $1")).
		WithArgs("ada@example.com").
		WillReturnRows(rows)

	user, err := repo.GetByEmail(context.Background(), "ada@example.com")
	require.NoError(t, err)
	assert.Equal(t, "user-1", user.ID)
	assert.True(t, user.EmailVerified)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserCreateDuplicateEmail(t *testing.T) {
	base, mock := newTestBase(t)
	repo := NewUserRepository(base)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO users")).
		WillReturnError(&pq.Error{Code: pq.ErrorCode(pqUniqueViolation)})

	err := repo.Create(context.Background(), &model.User{
		ID:    "user-1",
		Name:  "Ada",
		Email: "ada@example.com",
	})
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrConflict, apperrors.CodeOf(err))
}

func TestUserUpdateMissing(t *testing.T) {
	base, mock := newTestBase(t)
	repo := NewUserRepository(base)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE users")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(context.Background(), &model.User{ID: "missing"})
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrNotFound, apperrors.CodeOf(err))
}

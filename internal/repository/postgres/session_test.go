package postgres

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/dragenda/agenda-api/pkg/errors"
)

func TestSessionGetByToken(t *testing.T) {
	base, mock := newTestBase(t)
	repo := NewSessionRepository(base)

	expires := testNow.Add(time.Hour)
	rows := sqlmock.NewRows([]string{
		"session.id", "session.expires_at", "session.token",
		"session.ip_address", "session.user_agent", "session.user_id",
		"session.created_at", "session.updated_at",
		"user.id", "user.name", "user.email", "user.email_verified",
		"user.image", "user.created_at", "user.updated_at",
	}).AddRow(
		"sess-1", expires, "tok-1",
		nil, nil, "user-1",
		testNow, testNow,
		"user-1", "Ada", "ada@example.com", true,
		nil, testNow, testNow,
	)
	mock.ExpectQuery(regexp.QuoteMeta("FROM sessions s")).
		WithArgs("tok-1").
		WillReturnRows(rows)

	su, err := repo.GetByToken(context.Background(), "tok-1")
	require.NoError(t, err)
	assert.Equal(t, "sess-1", su.Session.ID)
	assert.Equal(t, "user-1", su.User.ID)
	assert.Equal(t, "ada@example.com", su.User.Email)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionGetByTokenUnknown(t *testing.T) {
	base, mock := newTestBase(t)
	repo := NewSessionRepository(base)

	mock.ExpectQuery(regexp.QuoteMeta("FROM sessions s")).
		WithArgs("nope").
		WillReturnRows(sqlmock.NewRows([]string{"session.id"}))

	_, err := repo.GetByToken(context.Background(), "nope")
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrNotFound, apperrors.CodeOf(err))
}

func TestSessionDeleteExpired(t *testing.T) {
	base, mock := newTestBase(t)
	repo := NewSessionRepository(base)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM sessions WHERE expires_at < $1")).
		WithArgs(testNow).
		WillReturnResult(sqlmock.NewResult(0, 3))

	n, err := repo.DeleteExpired(context.Background(), testNow)
	require.NoError(t, err)
	assert.EqualValues(t, 3, n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

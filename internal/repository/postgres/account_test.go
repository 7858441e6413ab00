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

func TestAccountListForUser(t *testing.T) {
	base, mock := newTestBase(t)
	repo := NewAccountRepository(base)

	rows := sqlmock.NewRows([]string{
		"id", "account_id", "provider_id", "user_id",
		"access_token", "refresh_token", "id_token",
		"access_token_expires_at", "refresh_token_expires_at",
		"scope", "password", "created_at", "updated_at",
	}).
		AddRow("acc-1", "ext-1", "google", "user-1", nil, nil, nil, nil, nil, nil, nil, testNow, testNow).
		AddRow("acc-2", "user-1", "credential", "user-1", nil, nil, nil, nil, nil, nil, "hash", testNow, testNow)

	mock.ExpectQuery(regexp.QuoteMeta("FROM accounts")).
		WithArgs("user-1").
		WillReturnRows(rows)

	accounts, err := repo.ListForUser(context.Background(), "user-1")
	require.NoError(t, err)
	require.Len(t, accounts, 2)
	assert.Equal(t, "google", accounts[0].ProviderID)
	assert.Equal(t, "credential", accounts[1].ProviderID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountDeleteMissing(t *testing.T) {
	base, mock := newTestBase(t)
	repo := NewAccountRepository(base)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM accounts")).
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), "missing")
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrNotFound, apperrors.CodeOf(err))
}

func TestVerificationGetByIdentifier(t *testing.T) {
	base, mock := newTestBase(t)
	repo := NewVerificationRepository(base)

	rows := sqlmock.NewRows([]string{
		"id", "identifier", "value", "expires_at", "created_at", "updated_at",
	}).AddRow("ver-1", "ada@example.com", "code", testNow.Add(time.Hour), testNow, testNow)

	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY created_at DESC")).
		WithArgs("ada@example.com").
		WillReturnRows(rows)

	v, err := repo.GetByIdentifier(context.Background(), "ada@example.com")
	require.NoError(t, err)
	assert.Equal(t, "ver-1", v.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVerificationDeleteExpired(t *testing.T) {
	base, mock := newTestBase(t)
	repo := NewVerificationRepository(base)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM verifications WHERE expires_at < $1")).
		WithArgs(testNow).
		WillReturnResult(sqlmock.NewResult(0, 3))

	n, err := repo.DeleteExpired(context.Background(), testNow)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

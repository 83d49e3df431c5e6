package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"solgate/internal/core/domain"
	"solgate/pkg/apperror"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const mockAddress = "4Nd1mYvHGJKyXoYeNUkesubHrxwTnYvSy8W4bVf9kTqB"

func newTestRecord() *domain.WalletRecord {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return &domain.WalletRecord{
		Address:   mockAddress,
		SecretEnc: "sealed_secretbox_payload",
		Verified:  false,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func walletColumns() []string {
	return []string{"address", "secret_enc", "verified", "created_at", "updated_at"}
}

func walletRow(rec *domain.WalletRecord) *pgxmock.Rows {
	return pgxmock.NewRows(walletColumns()).AddRow(
		rec.Address, rec.SecretEnc, rec.Verified, rec.CreatedAt, rec.UpdatedAt,
	)
}

func TestWalletRepo_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewWalletRepo(mock)
	rec := newTestRecord()

	mock.ExpectExec("INSERT INTO wallets").
		WithArgs(rec.Address, rec.SecretEnc, rec.Verified, rec.CreatedAt, rec.UpdatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err = repo.Create(context.Background(), rec)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWalletRepo_Create_DuplicateAddress(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewWalletRepo(mock)
	rec := newTestRecord()

	mock.ExpectExec("INSERT INTO wallets").
		WithArgs(rec.Address, rec.SecretEnc, rec.Verified, rec.CreatedAt, rec.UpdatedAt).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "wallets_pkey"})

	err = repo.Create(context.Background(), rec)
	assert.True(t, apperror.HasCode(err, apperror.CodeDuplicateAddress))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWalletRepo_GetByAddress(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewWalletRepo(mock)
	rec := newTestRecord()

	mock.ExpectQuery("SELECT .+ FROM wallets WHERE address").
		WithArgs(rec.Address).
		WillReturnRows(walletRow(rec))

	result, err := repo.GetByAddress(context.Background(), rec.Address)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, rec.Address, result.Address)
	assert.Equal(t, rec.SecretEnc, result.SecretEnc)
	assert.False(t, result.Verified)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWalletRepo_GetByAddress_Missing(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewWalletRepo(mock)

	mock.ExpectQuery("SELECT .+ FROM wallets WHERE address").
		WithArgs(mockAddress).
		WillReturnError(pgx.ErrNoRows)

	result, err := repo.GetByAddress(context.Background(), mockAddress)
	assert.NoError(t, err)
	assert.Nil(t, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWalletRepo_MarkVerified(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewWalletRepo(mock)

	mock.ExpectExec("UPDATE wallets SET verified").
		WithArgs(mockAddress).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err = repo.MarkVerified(context.Background(), mockAddress)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWalletRepo_MarkVerified_Conflict(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewWalletRepo(mock)
	rec := newTestRecord()
	rec.Verified = true

	// Zero rows updated and the re-read shows a verified row: a concurrent
	// check already won the swap.
	mock.ExpectExec("UPDATE wallets SET verified").
		WithArgs(mockAddress).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	mock.ExpectQuery("SELECT .+ FROM wallets WHERE address").
		WithArgs(mockAddress).
		WillReturnRows(walletRow(rec))

	err = repo.MarkVerified(context.Background(), mockAddress)
	assert.True(t, apperror.HasCode(err, apperror.CodeVerifyConflict))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWalletRepo_MarkVerified_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewWalletRepo(mock)

	mock.ExpectExec("UPDATE wallets SET verified").
		WithArgs(mockAddress).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	mock.ExpectQuery("SELECT .+ FROM wallets WHERE address").
		WithArgs(mockAddress).
		WillReturnError(pgx.ErrNoRows)

	err = repo.MarkVerified(context.Background(), mockAddress)
	assert.True(t, apperror.HasCode(err, apperror.CodeWalletNotFound))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWalletRepo_MarkVerified_ExecError(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewWalletRepo(mock)

	mock.ExpectExec("UPDATE wallets SET verified").
		WithArgs(mockAddress).
		WillReturnError(errors.New("connection reset"))

	err = repo.MarkVerified(context.Background(), mockAddress)
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWalletRepo_ListAll(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewWalletRepo(mock)
	first := newTestRecord()
	second := newTestRecord()
	second.Address = "9WzDXwBbmkg8ZTbNMqUxvQRAyrZzDsGYdLVL9zYtAWWM"
	second.Verified = true

	rows := pgxmock.NewRows(walletColumns()).
		AddRow(first.Address, first.SecretEnc, first.Verified, first.CreatedAt, first.UpdatedAt).
		AddRow(second.Address, second.SecretEnc, second.Verified, second.CreatedAt, second.UpdatedAt)

	mock.ExpectQuery("SELECT .+ FROM wallets ORDER BY created_at").
		WillReturnRows(rows)

	records, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, first.Address, records[0].Address)
	assert.Equal(t, second.Address, records[1].Address)
	assert.True(t, records[1].Verified)
	assert.NoError(t, mock.ExpectationsWereMet())
}

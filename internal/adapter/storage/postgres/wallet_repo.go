package postgres

import (
	"context"
	"errors"
	"fmt"

	"solgate/internal/core/domain"
	"solgate/pkg/apperror"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolation = "23505"

// WalletRepo implements ports.WalletRepository.
type WalletRepo struct {
	pool Pool
}

// NewWalletRepo creates a new WalletRepo.
func NewWalletRepo(pool Pool) *WalletRepo {
	return &WalletRepo{pool: pool}
}

// Create inserts a new wallet record. Address uniqueness is enforced by the
// primary key; a violation surfaces as CodeDuplicateAddress so the caller
// can retry with a fresh keypair.
func (r *WalletRepo) Create(ctx context.Context, rec *domain.WalletRecord) error {
	query := `INSERT INTO wallets (address, secret_enc, verified, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := r.pool.Exec(ctx, query,
		rec.Address, rec.SecretEnc, rec.Verified, rec.CreatedAt, rec.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return apperror.ErrDuplicateAddress(err)
		}
		return fmt.Errorf("insert wallet: %w", err)
	}
	return nil
}

// GetByAddress fetches a wallet by address. Returns (nil, nil) when absent.
func (r *WalletRepo) GetByAddress(ctx context.Context, address string) (*domain.WalletRecord, error) {
	query := `SELECT address, secret_enc, verified, created_at, updated_at
		FROM wallets WHERE address = $1`

	rec := &domain.WalletRecord{}
	err := r.pool.QueryRow(ctx, query, address).Scan(
		&rec.Address, &rec.SecretEnc, &rec.Verified, &rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get wallet by address: %w", err)
	}
	return rec, nil
}

// MarkVerified flips verified false -> true with compare-and-swap semantics:
// the WHERE clause only matches the unverified row, so of two concurrent
// grants exactly one update takes effect. When no row was updated the state
// is re-read to distinguish "already verified" from "no such wallet".
func (r *WalletRepo) MarkVerified(ctx context.Context, address string) error {
	query := `UPDATE wallets SET verified = TRUE, updated_at = NOW()
		WHERE address = $1 AND verified = FALSE`

	tag, err := r.pool.Exec(ctx, query, address)
	if err != nil {
		return fmt.Errorf("mark wallet verified: %w", err)
	}
	if tag.RowsAffected() > 0 {
		return nil
	}

	rec, err := r.GetByAddress(ctx, address)
	if err != nil {
		return fmt.Errorf("re-read wallet after stale verify: %w", err)
	}
	if rec == nil {
		return apperror.ErrWalletNotFound()
	}
	return apperror.ErrVerifyConflict()
}

// ListAll returns every wallet record, oldest first. Export tool only.
func (r *WalletRepo) ListAll(ctx context.Context) ([]domain.WalletRecord, error) {
	query := `SELECT address, secret_enc, verified, created_at, updated_at
		FROM wallets ORDER BY created_at`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list wallets: %w", err)
	}
	defer rows.Close()

	var records []domain.WalletRecord
	for rows.Next() {
		var rec domain.WalletRecord
		if err := rows.Scan(&rec.Address, &rec.SecretEnc, &rec.Verified, &rec.CreatedAt, &rec.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan wallet row: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate wallet rows: %w", err)
	}
	return records, nil
}

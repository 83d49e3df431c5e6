package ports

import (
	"context"

	"solgate/internal/core/domain"
)

//go:generate mockgen -source=repositories.go -destination=mocks/repositories_mock.go -package=mocks

// WalletRepository defines persistence operations for provisioned wallets.
// The wallets table is the single shared mutable resource: all cross-handler
// coordination goes through MarkVerified's compare-and-swap semantics, so the
// same invariants hold with multiple process instances on one database.
type WalletRepository interface {
	// Create inserts a new wallet record. Returns an apperror with code
	// CodeDuplicateAddress when the address already exists.
	Create(ctx context.Context, rec *domain.WalletRecord) error

	// GetByAddress fetches a wallet by address. Returns (nil, nil) when absent.
	GetByAddress(ctx context.Context, address string) (*domain.WalletRecord, error)

	// MarkVerified flips verified from false to true for the address.
	// Returns CodeVerifyConflict when a concurrent check already verified the
	// record (the caller must discard any credential it issued), and
	// CodeWalletNotFound when no record exists.
	MarkVerified(ctx context.Context, address string) error

	// ListAll returns every wallet record. Used by the export tool only.
	ListAll(ctx context.Context) ([]domain.WalletRecord, error)
}

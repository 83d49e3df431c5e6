package integration

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"solgate/internal/core/domain"
	"solgate/pkg/apperror"
)

// In-memory stand-ins for the PostgreSQL ledger and the external Solana and
// Telegram dependencies. The wallet repo reproduces the compare-and-swap
// semantics of the SQL UPDATE so concurrency tests exercise the real race.

type inMemoryWalletRepo struct {
	mu      sync.Mutex
	records map[string]*domain.WalletRecord
}

func newInMemoryWalletRepo() *inMemoryWalletRepo {
	return &inMemoryWalletRepo{records: make(map[string]*domain.WalletRecord)}
}

func (r *inMemoryWalletRepo) Create(ctx context.Context, rec *domain.WalletRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.records[rec.Address]; exists {
		return apperror.ErrDuplicateAddress(errors.New("address exists"))
	}
	cp := *rec
	r.records[rec.Address] = &cp
	return nil
}

func (r *inMemoryWalletRepo) GetByAddress(ctx context.Context, address string) (*domain.WalletRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.records[address]
	if !ok {
		return nil, nil
	}
	cp := *rec
	return &cp, nil
}

func (r *inMemoryWalletRepo) MarkVerified(ctx context.Context, address string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.records[address]
	if !ok {
		return apperror.ErrWalletNotFound()
	}
	if rec.Verified {
		return apperror.ErrVerifyConflict()
	}
	rec.Verified = true
	rec.UpdatedAt = time.Now().UTC()
	return nil
}

func (r *inMemoryWalletRepo) ListAll(ctx context.Context) ([]domain.WalletRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.WalletRecord, 0, len(r.records))
	for _, rec := range r.records {
		out = append(out, *rec)
	}
	return out, nil
}

// stubOracle serves balances from a settable in-memory map.
type stubOracle struct {
	mu        sync.Mutex
	balances  map[string]uint64
	sigs      map[string]string
	failuresN int // fail the next N balance queries
}

func newStubOracle() *stubOracle {
	return &stubOracle{
		balances: make(map[string]uint64),
		sigs:     make(map[string]string),
	}
}

func (o *stubOracle) fund(address string, lamports uint64, signature string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.balances[address] = lamports
	o.sigs[address] = signature
}

func (o *stubOracle) failNext(n int) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.failuresN = n
}

func (o *stubOracle) ConfirmedBalance(ctx context.Context, address string) (uint64, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.failuresN > 0 {
		o.failuresN--
		return 0, apperror.ErrLedgerUnavailable(errors.New("rpc node unreachable"))
	}
	return o.balances[address], nil
}

func (o *stubOracle) LatestSignature(ctx context.Context, address string) (string, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.sigs[address], nil
}

// stubIssuer mints unique invite links and counts how many were requested.
type stubIssuer struct {
	issued atomic.Int64
}

func (i *stubIssuer) IssueInviteLink(ctx context.Context, ttl time.Duration) (string, error) {
	n := i.issued.Add(1)
	return fmt.Sprintf("https://t.me/+invite-%d", n), nil
}

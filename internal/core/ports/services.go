package ports

import (
	"context"
	"time"

	"solgate/internal/core/domain"
)

//go:generate mockgen -source=services.go -destination=mocks/services_mock.go -package=mocks

// KeyProvisioner produces a fresh custodial keypair. The secret is the raw
// private key material; collision avoidance is delegated to keypair entropy.
type KeyProvisioner interface {
	Provision() (address string, secret []byte, err error)
}

// BalanceOracle queries the external ledger for an address. Calls are
// network-bound and eventually consistent; any failure means "not yet paid"
// to the caller, never a fatal condition.
type BalanceOracle interface {
	// ConfirmedBalance returns the confirmed balance in lamports.
	ConfirmedBalance(ctx context.Context, address string) (uint64, error)

	// LatestSignature returns the most recent transaction signature for the
	// address, or "" when the address has no activity.
	LatestSignature(ctx context.Context, address string) (string, error)
}

// InviteIssuer mints a single-use, expiring invite link to the paid group.
// Failures are surfaced upward as transient; never retried internally.
// Unused links expire naturally, so issue-and-discard leaks nothing.
type InviteIssuer interface {
	IssueInviteLink(ctx context.Context, ttl time.Duration) (string, error)
}

// SecretVault seals private key material for storage and opens it again.
// Only the persistence path seals; only the export tool opens.
type SecretVault interface {
	Seal(secret []byte) (string, error)
	Open(sealed string) ([]byte, error)
}

// CheckGate rate-limits payment checks per address so repeated button
// presses don't translate into redundant ledger queries. Best effort: a
// gate failure must never block a check.
type CheckGate interface {
	// TryAcquire returns true when no check for the address ran within ttl.
	TryAcquire(ctx context.Context, address string, ttl time.Duration) (bool, error)
}

// OperatorTokenService mints and validates the short-lived tokens that
// authorize privileged operations such as the wallet export.
type OperatorTokenService interface {
	Mint(purpose string, ttl time.Duration) (string, time.Time, error)
	Validate(token string, purpose string) error
}

// ProvisionResult is returned to the router for rendering payment instructions.
type ProvisionResult struct {
	Address          string
	RequiredLamports uint64
}

// CheckResult carries the outcome of a payment check. InviteLink and
// Signature are set only when Outcome is Granted; Signature may still be
// empty because the transaction reference is informational, not a gate.
type CheckResult struct {
	Outcome    domain.CheckOutcome
	InviteLink string
	Signature  string
}

// AccessService is the verification engine: it owns the
// provision -> payment detection -> credential issuance state machine.
type AccessService interface {
	// HandleProvisionRequest generates a keypair, persists the wallet record
	// and returns the address to display. Retries once with a fresh keypair
	// if the address collides.
	HandleProvisionRequest(ctx context.Context, userID int64) (*ProvisionResult, error)

	// HandleCheckPayment runs the idempotent payment check for an address.
	// It never returns an error for expected conditions; those are outcomes.
	HandleCheckPayment(ctx context.Context, address string) (*CheckResult, error)
}

// ExportService produces the privileged cleartext report of custodial keys
// and balances. Not part of the serving path.
type ExportService interface {
	Export(ctx context.Context, dir string) (path string, err error)
}

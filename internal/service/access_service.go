package service

import (
	"context"
	"fmt"
	"time"

	"solgate/internal/core/domain"
	"solgate/internal/core/ports"
	"solgate/pkg/apperror"

	"github.com/rs/zerolog"
)

// AccessServiceImpl implements ports.AccessService, the state machine that
// takes an address from Provisioned through AwaitingPayment to Verified.
// It holds no in-process locks: two concurrent checks for the same address
// may both query the ledger and both request an invite link, and the wallet
// repository's compare-and-swap decides which grant stands. The loser
// discards its link (unused links expire on their own) and reports
// AlreadyVerified.
type AccessServiceImpl struct {
	provisioner ports.KeyProvisioner
	walletRepo  ports.WalletRepository
	oracle      ports.BalanceOracle
	issuer      ports.InviteIssuer
	vault       ports.SecretVault
	required    uint64
	inviteTTL   time.Duration
	log         zerolog.Logger
}

// NewAccessService creates a new AccessServiceImpl.
func NewAccessService(
	provisioner ports.KeyProvisioner,
	walletRepo ports.WalletRepository,
	oracle ports.BalanceOracle,
	issuer ports.InviteIssuer,
	vault ports.SecretVault,
	requiredLamports uint64,
	inviteTTL time.Duration,
	log zerolog.Logger,
) *AccessServiceImpl {
	return &AccessServiceImpl{
		provisioner: provisioner,
		walletRepo:  walletRepo,
		oracle:      oracle,
		issuer:      issuer,
		vault:       vault,
		required:    requiredLamports,
		inviteTTL:   inviteTTL,
		log:         log,
	}
}

// HandleProvisionRequest generates a custodial keypair, seals the private
// key and persists the wallet record. An address collision is handled by
// retrying once with fresh key material before surfacing failure.
func (s *AccessServiceImpl) HandleProvisionRequest(ctx context.Context, userID int64) (*ports.ProvisionResult, error) {
	const attempts = 2

	var lastErr error
	for i := 0; i < attempts; i++ {
		address, secret, err := s.provisioner.Provision()
		if err != nil {
			return nil, apperror.InternalError(fmt.Errorf("provision keypair: %w", err))
		}

		sealed, err := s.vault.Seal(secret)
		if err != nil {
			return nil, apperror.InternalError(fmt.Errorf("seal secret: %w", err))
		}

		now := time.Now().UTC()
		rec := &domain.WalletRecord{
			Address:   address,
			SecretEnc: sealed,
			Verified:  false,
			CreatedAt: now,
			UpdatedAt: now,
		}

		if err := s.walletRepo.Create(ctx, rec); err != nil {
			if apperror.HasCode(err, apperror.CodeDuplicateAddress) {
				s.log.Warn().Str("address", address).Msg("address collision on provision, retrying with fresh keypair")
				lastErr = err
				continue
			}
			return nil, apperror.InternalError(fmt.Errorf("create wallet: %w", err))
		}

		s.log.Info().
			Str("address", address).
			Int64("user_id", userID).
			Msg("wallet provisioned")

		return &ports.ProvisionResult{
			Address:          address,
			RequiredLamports: s.required,
		}, nil
	}

	return nil, apperror.InternalError(fmt.Errorf("provision retries exhausted: %w", lastErr))
}

// HandleCheckPayment runs one idempotent payment check for an address.
// Ledger and issuer failures become TransientFailure outcomes: the record
// stays unverified and the user retries by pressing the button again; the
// engine never retries in a loop itself.
func (s *AccessServiceImpl) HandleCheckPayment(ctx context.Context, address string) (*ports.CheckResult, error) {
	rec, err := s.walletRepo.GetByAddress(ctx, address)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("load wallet: %w", err))
	}
	if rec == nil {
		return &ports.CheckResult{Outcome: domain.OutcomeNotFound}, nil
	}
	if rec.Verified {
		// Idempotent re-check: never re-issue a credential.
		return &ports.CheckResult{Outcome: domain.OutcomeAlreadyVerified}, nil
	}

	balance, err := s.oracle.ConfirmedBalance(ctx, address)
	if err != nil {
		s.log.Warn().Err(err).Str("address", address).Msg("balance query failed, treating as not yet paid")
		return &ports.CheckResult{Outcome: domain.OutcomeTransientFailure}, nil
	}
	if balance < s.required {
		return &ports.CheckResult{Outcome: domain.OutcomeInsufficientBalance}, nil
	}

	// Best-effort transaction reference for display; absence never blocks
	// the grant.
	signature, err := s.oracle.LatestSignature(ctx, address)
	if err != nil {
		s.log.Debug().Err(err).Str("address", address).Msg("signature lookup failed, granting without reference")
		signature = ""
	}

	link, err := s.issuer.IssueInviteLink(ctx, s.inviteTTL)
	if err != nil {
		// Record stays unverified; the next check issues a new link.
		s.log.Warn().Err(err).Str("address", address).Msg("invite issuance failed")
		return &ports.CheckResult{Outcome: domain.OutcomeTransientFailure}, nil
	}

	if err := s.walletRepo.MarkVerified(ctx, address); err != nil {
		switch apperror.Code(err) {
		case apperror.CodeVerifyConflict:
			// A concurrent check won the race. Discard the link we just
			// issued; it expires unused.
			s.log.Info().Str("address", address).Msg("concurrent check already verified, discarding invite link")
			return &ports.CheckResult{Outcome: domain.OutcomeAlreadyVerified}, nil
		case apperror.CodeWalletNotFound:
			return &ports.CheckResult{Outcome: domain.OutcomeNotFound}, nil
		default:
			s.log.Error().Err(err).Str("address", address).Msg("persisting verification failed")
			return &ports.CheckResult{Outcome: domain.OutcomeTransientFailure}, nil
		}
	}

	s.log.Info().
		Str("address", address).
		Uint64("balance", balance).
		Str("signature", signature).
		Msg("payment verified, access granted")

	return &ports.CheckResult{
		Outcome:    domain.OutcomeGranted,
		InviteLink: link,
		Signature:  signature,
	}, nil
}

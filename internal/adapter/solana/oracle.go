package solana

import (
	"context"
	"fmt"

	"solgate/pkg/apperror"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
)

// Oracle implements ports.BalanceOracle against a Solana JSON-RPC node.
// Balances are eventually consistent at the configured commitment level: a
// confirmed payment may lag the chain by one or more polling intervals.
type Oracle struct {
	client     *rpc.Client
	commitment rpc.CommitmentType
}

// NewOracle creates an oracle for the given RPC endpoint.
// commitment: "confirmed" or "finalized" (anything else falls back to confirmed).
func NewOracle(endpoint string, commitment string) *Oracle {
	c := rpc.CommitmentConfirmed
	if commitment == "finalized" {
		c = rpc.CommitmentFinalized
	}
	return &Oracle{
		client:     rpc.New(endpoint),
		commitment: c,
	}
}

// ConfirmedBalance returns the confirmed balance of the address in lamports.
func (o *Oracle) ConfirmedBalance(ctx context.Context, address string) (uint64, error) {
	pub, err := solana.PublicKeyFromBase58(address)
	if err != nil {
		return 0, fmt.Errorf("parse address %q: %w", address, err)
	}

	out, err := o.client.GetBalance(ctx, pub, o.commitment)
	if err != nil {
		return 0, apperror.ErrLedgerUnavailable(fmt.Errorf("get balance: %w", err))
	}
	return out.Value, nil
}

// LatestSignature returns the most recent transaction signature for the
// address, or "" when the address has no confirmed activity.
func (o *Oracle) LatestSignature(ctx context.Context, address string) (string, error) {
	pub, err := solana.PublicKeyFromBase58(address)
	if err != nil {
		return "", fmt.Errorf("parse address %q: %w", address, err)
	}

	limit := 1
	sigs, err := o.client.GetSignaturesForAddressWithOpts(ctx, pub, &rpc.GetSignaturesForAddressOpts{
		Limit:      &limit,
		Commitment: o.commitment,
	})
	if err != nil {
		return "", apperror.ErrLedgerUnavailable(fmt.Errorf("get signatures: %w", err))
	}
	if len(sigs) == 0 {
		return "", nil
	}
	return sigs[0].Signature.String(), nil
}

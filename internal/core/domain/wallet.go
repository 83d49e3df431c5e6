package domain

import (
	"strconv"
	"time"
)

// WalletRecord represents one custodial address provisioned for a user.
// The private key is stored sealed and never leaves the persistence
// boundary except through the privileged export tool.
type WalletRecord struct {
	Address   string    `json:"address"`
	SecretEnc string    `json:"-"` // sealed private key material, never expose
	Verified  bool      `json:"verified"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CheckOutcome classifies the result of a payment check for an address.
type CheckOutcome string

const (
	OutcomeGranted             CheckOutcome = "GRANTED"
	OutcomeAlreadyVerified     CheckOutcome = "ALREADY_VERIFIED"
	OutcomeNotFound            CheckOutcome = "NOT_FOUND"
	OutcomeInsufficientBalance CheckOutcome = "INSUFFICIENT_BALANCE"
	OutcomeTransientFailure    CheckOutcome = "TRANSIENT_FAILURE"
)

// Terminal reports whether the outcome ends the payment flow for the address.
// Granted and AlreadyVerified mean the record reached its final verified state.
func (o CheckOutcome) Terminal() bool {
	return o == OutcomeGranted || o == OutcomeAlreadyVerified
}

// LamportsPerSOL is the number of base ledger units in one SOL.
const LamportsPerSOL uint64 = 1_000_000_000

// DefaultRequiredLamports is the fixed payment threshold: 0.1 SOL.
const DefaultRequiredLamports uint64 = LamportsPerSOL / 10

// SOLString renders a lamport amount as a SOL decimal for display.
// Trailing zeros are trimmed: 100,000,000 lamports reads "0.1", not "0.10".
func SOLString(lamports uint64) string {
	return strconv.FormatFloat(float64(lamports)/float64(LamportsPerSOL), 'f', -1, 64)
}

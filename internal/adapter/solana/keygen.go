package solana

import (
	"fmt"

	"github.com/gagliardetto/solana-go"
)

// Provisioner implements ports.KeyProvisioner with ed25519 keypairs.
// Address uniqueness rests on keypair entropy, not application logic.
type Provisioner struct{}

// NewProvisioner creates a new keypair provisioner.
func NewProvisioner() *Provisioner {
	return &Provisioner{}
}

// Provision generates a fresh keypair and returns the base58 public address
// plus the raw private key material.
func (p *Provisioner) Provision() (string, []byte, error) {
	key, err := solana.NewRandomPrivateKey()
	if err != nil {
		return "", nil, fmt.Errorf("generate keypair: %w", err)
	}
	return key.PublicKey().String(), []byte(key), nil
}

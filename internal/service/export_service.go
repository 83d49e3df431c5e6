package service

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"solgate/internal/core/domain"
	"solgate/internal/core/ports"

	"github.com/gagliardetto/solana-go"
	"github.com/rs/zerolog"
)

// ExportServiceImpl implements ports.ExportService: the privileged batch job
// that dumps decoded custodial keys with their current balances. It is not
// part of the serving path and callers must present a valid operator token
// before invoking it.
type ExportServiceImpl struct {
	walletRepo ports.WalletRepository
	oracle     ports.BalanceOracle
	vault      ports.SecretVault
	log        zerolog.Logger
}

// NewExportService creates a new ExportServiceImpl.
func NewExportService(
	walletRepo ports.WalletRepository,
	oracle ports.BalanceOracle,
	vault ports.SecretVault,
	log zerolog.Logger,
) *ExportServiceImpl {
	return &ExportServiceImpl{
		walletRepo: walletRepo,
		oracle:     oracle,
		vault:      vault,
		log:        log,
	}
}

// Export writes a cleartext report of {base58 private key, balance} per
// wallet to a timestamped file under dir and returns the file path.
func (s *ExportServiceImpl) Export(ctx context.Context, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}

	timestamp := strings.ReplaceAll(time.Now().UTC().Format(time.RFC3339), ":", "-")
	path := filepath.Join(dir, fmt.Sprintf("private-keys-%s.txt", timestamp))

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_EXCL, 0o600)
	if err != nil {
		return "", fmt.Errorf("create export file: %w", err)
	}
	defer f.Close()

	records, err := s.walletRepo.ListAll(ctx)
	if err != nil {
		return "", fmt.Errorf("list wallets: %w", err)
	}

	w := bufio.NewWriter(f)
	fmt.Fprintln(w, "Private Keys and Balances:")
	fmt.Fprintln(w, "---------------------------")

	for _, rec := range records {
		secret, err := s.vault.Open(rec.SecretEnc)
		if err != nil {
			s.log.Error().Err(err).Str("address", rec.Address).Msg("cannot open sealed secret, skipping")
			continue
		}

		balance := "n/a"
		if lamports, err := s.oracle.ConfirmedBalance(ctx, rec.Address); err != nil {
			s.log.Warn().Err(err).Str("address", rec.Address).Msg("balance query failed during export")
		} else {
			balance = domain.SOLString(lamports)
		}

		fmt.Fprintf(w, "Private Key: %s, BAL: %s SOL\n", solana.PrivateKey(secret).String(), balance)
		fmt.Fprintln(w, "---------------------------")
	}

	if err := w.Flush(); err != nil {
		return "", fmt.Errorf("flush export file: %w", err)
	}

	s.log.Info().Str("path", path).Int("wallets", len(records)).Msg("wallet export written")
	return path, nil
}

// Command export is the privileged operational tool that dumps every
// custodial private key with its current balance to a cleartext file.
// It refuses to run without a valid operator token scoped to wallet export;
// mint one with -mint on a host that holds the operator secret.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"solgate/config"
	solanaAdapter "solgate/internal/adapter/solana"
	pgStorage "solgate/internal/adapter/storage/postgres"
	"solgate/internal/service"
	"solgate/pkg/logger"
)

func main() {
	var (
		configPath = flag.String("config", "", "path to config file (default: config.yaml lookup)")
		token      = flag.String("token", "", "operator token authorizing the export")
		mint       = flag.Bool("mint", false, "mint a fresh operator token and exit")
		outDir     = flag.String("out", "exports", "directory for the export file")
	)
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	if cfg.Operator.Secret == "" {
		log.Fatal().Msg("operator secret is not configured; export is disabled")
	}
	tokenSvc := service.NewJWTOperatorTokenService(cfg.Operator.Secret)

	if *mint {
		minted, expiresAt, err := tokenSvc.Mint(service.PurposeWalletExport, cfg.Operator.TokenTTL)
		if err != nil {
			log.Fatal().Err(err).Msg("minting operator token failed")
		}
		fmt.Printf("%s\n", minted)
		log.Info().Time("expires_at", expiresAt).Msg("operator token minted")
		return
	}

	if err := tokenSvc.Validate(*token, service.PurposeWalletExport); err != nil {
		log.Fatal().Err(err).Msg("export refused: operator token invalid")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	vault, err := service.NewSecretboxVault(cfg.Vault.Key)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize secret vault")
	}

	exportSvc := service.NewExportService(
		pgStorage.NewWalletRepo(pool),
		solanaAdapter.NewOracle(cfg.Solana.RPCEndpoint, cfg.Solana.Commitment),
		vault,
		logger.Component(log, "export"),
	)

	path, err := exportSvc.Export(ctx, *outDir)
	if err != nil {
		log.Fatal().Err(err).Msg("export failed")
	}

	fmt.Printf("Private keys and balances exported to %s\n", path)
}

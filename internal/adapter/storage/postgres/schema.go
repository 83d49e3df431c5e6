package postgres

import (
	"context"
	"fmt"
)

// There are no migrations beyond initial creation; the schema is a single
// table and the verified flag only ever moves false -> true.
const walletsSchema = `
CREATE TABLE IF NOT EXISTS wallets (
	address    TEXT PRIMARY KEY,
	secret_enc TEXT NOT NULL,
	verified   BOOLEAN NOT NULL DEFAULT FALSE,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`

// EnsureSchema creates the wallets table if it does not exist.
func EnsureSchema(ctx context.Context, pool Pool) error {
	if _, err := pool.Exec(ctx, walletsSchema); err != nil {
		return fmt.Errorf("ensure wallets schema: %w", err)
	}
	return nil
}

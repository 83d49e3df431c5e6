package integration

import (
	"context"
	"sync"
	"testing"

	"solgate/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestConcurrentChecks fires many simultaneous payment checks against one
// funded address. The wallet ledger's compare-and-swap must let exactly one
// check grant access; every other check reports the address as already
// verified and discards the link it may have issued.
func TestConcurrentChecks(t *testing.T) {
	app := newTestEngine(t)
	ctx := context.Background()

	prov, err := app.svc.HandleProvisionRequest(ctx, 7)
	require.NoError(t, err)
	app.oracle.fund(prov.Address, requiredLamports*2, "sig-concurrent")

	const concurrency = 50

	var wg sync.WaitGroup
	outcomes := make([]domain.CheckOutcome, concurrency)
	links := make([]string, concurrency)
	errs := make([]error, concurrency)

	for i := 0; i < concurrency; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			result, err := app.svc.HandleCheckPayment(ctx, prov.Address)
			if err != nil {
				errs[idx] = err
				return
			}
			outcomes[idx] = result.Outcome
			links[idx] = result.InviteLink
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		require.NoError(t, err)
	}

	granted, already, delivered := 0, 0, 0
	for i, outcome := range outcomes {
		switch outcome {
		case domain.OutcomeGranted:
			granted++
		case domain.OutcomeAlreadyVerified:
			already++
		default:
			t.Fatalf("unexpected outcome %s", outcome)
		}
		if links[i] != "" {
			delivered++
		}
	}

	assert.Equal(t, 1, granted, "exactly one check may grant access")
	assert.Equal(t, concurrency-1, already)
	assert.Equal(t, 1, delivered, "exactly one invite link may reach the user")

	rec, err := app.repo.GetByAddress(ctx, prov.Address)
	require.NoError(t, err)
	assert.True(t, rec.Verified)
}

// TestConcurrentProvisions checks that parallel provision requests each get
// a distinct address with its own sealed secret.
func TestConcurrentProvisions(t *testing.T) {
	app := newTestEngine(t)
	ctx := context.Background()

	const concurrency = 20

	var wg sync.WaitGroup
	addresses := make([]string, concurrency)
	errs := make([]error, concurrency)

	for i := 0; i < concurrency; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			prov, err := app.svc.HandleProvisionRequest(ctx, int64(idx))
			if err != nil {
				errs[idx] = err
				return
			}
			addresses[idx] = prov.Address
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		require.NoError(t, err)
	}

	seen := make(map[string]bool, concurrency)
	for _, addr := range addresses {
		assert.False(t, seen[addr], "addresses must be unique")
		seen[addr] = true
	}

	records, err := app.repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, records, concurrency)
}

//go:build integration

package db_test

import (
	"math"
	"testing"

	"github.com/emergency-fund/fund-ledger/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBalance(t *testing.T) {
	ctx := t.Context()
	t.Cleanup(func() {
		resetDatabase(t)
	})

	t.Run("missing balance is zero", func(t *testing.T) {
		balance, err := testDB.GetBalance(ctx, testutil.RandomAddress(t).String())
		require.NoError(t, err)
		assert.Zero(t, balance)
	})
	t.Run("set and overwrite", func(t *testing.T) {
		address := testutil.RandomAddress(t).String()

		for _, amount := range []uint64{100, 0, math.MaxUint64} {
			err := testDB.SetBalance(ctx, address, amount)
			require.NoError(t, err)

			balance, err := testDB.GetBalance(ctx, address)
			require.NoError(t, err)
			assert.Equal(t, amount, balance)
		}
	})
}

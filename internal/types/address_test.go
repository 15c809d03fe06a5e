package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddress(t *testing.T) {
	var addr Address
	for i := range addr {
		addr[i] = byte(i + 1)
	}

	t.Run("base58 round trip", func(t *testing.T) {
		parsed, err := ParseAddress(addr.String())
		require.NoError(t, err)
		assert.Equal(t, addr, parsed)
	})
	t.Run("json", func(t *testing.T) {
		bz, err := json.Marshal(addr)
		require.NoError(t, err)
		assert.Equal(t, `"`+addr.String()+`"`, string(bz))

		var decoded Address
		require.NoError(t, json.Unmarshal(bz, &decoded))
		assert.Equal(t, addr, decoded)
	})
	t.Run("invalid", func(t *testing.T) {
		_, err := ParseAddress("")
		require.Error(t, err)

		// valid base58, wrong length
		_, err = ParseAddress("3yZe7d")
		require.Error(t, err)

		// 0 is not part of the base58 alphabet
		_, err = ParseAddress("0000")
		require.Error(t, err)
	})
}

func TestDeriveFundAddress(t *testing.T) {
	var authority, other, program Address
	authority[0] = 1
	other[0] = 2
	program[0] = 9

	first, err := DeriveFundAddress(authority, "emergency_fund", program)
	require.NoError(t, err)
	second, err := DeriveFundAddress(authority, "emergency_fund", program)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.False(t, first.IsZero())

	otherSeed, err := DeriveFundAddress(authority, "fund", program)
	require.NoError(t, err)
	assert.NotEqual(t, first, otherSeed)

	otherAuthority, err := DeriveFundAddress(other, "emergency_fund", program)
	require.NoError(t, err)
	assert.NotEqual(t, first, otherAuthority)

	_, err = DeriveFundAddress(authority, "this-seed-is-definitely-longer-than-32-bytes", program)
	require.Error(t, err)
}

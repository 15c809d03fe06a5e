package types

import (
	"fmt"
	"math"

	sdkmath "cosmossdk.io/math"
)

// UnitsPerToken is the number of base units in one whole token (lamports per SOL).
const UnitsPerToken = 1_000_000_000

var maxAmount = sdkmath.NewUint(math.MaxUint64)

// ErrAmountOverflow is returned when a sum leaves the unsigned 64-bit range.
var ErrAmountOverflow = fmt.Errorf("amount exceeds %d", uint64(math.MaxUint64))

// CheckedAdd adds two amounts and rejects results that do not fit in 64 bits.
func CheckedAdd(a, b uint64) (uint64, error) {
	sum := sdkmath.NewUint(a).AddUint64(b)
	if sum.GT(maxAmount) {
		return 0, ErrAmountOverflow
	}
	return sum.Uint64(), nil
}

// FormatTokens renders a base unit amount as a decimal token amount, e.g.
// 1500000000 -> "1.5".
func FormatTokens(amount uint64) string {
	whole := amount / UnitsPerToken
	frac := amount % UnitsPerToken
	if frac == 0 {
		return fmt.Sprintf("%d", whole)
	}
	s := fmt.Sprintf("%d.%09d", whole, frac)
	for s[len(s)-1] == '0' {
		s = s[:len(s)-1]
	}
	return s
}

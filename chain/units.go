package chain

import (
	"math/big"

	"github.com/shopspring/decimal"
)

// FromWei converts a base-unit integer amount to a decimal using the asset's
// scale (18 for ETH, token-specific for ERC-20).
func FromWei(wei *big.Int, decimals int32) decimal.Decimal {
	if wei == nil {
		return decimal.Zero
	}
	return decimal.NewFromBigInt(wei, -decimals)
}

// ToWei converts a decimal amount to the asset's base-unit integer,
// truncating anything below one base unit.
func ToWei(amount decimal.Decimal, decimals int32) *big.Int {
	return amount.Shift(decimals).Truncate(0).BigInt()
}

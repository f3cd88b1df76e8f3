package chain_test

import (
	"math/big"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/solventhq/solvent-go/chain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromWei(t *testing.T) {
	wei, ok := new(big.Int).SetString("1500000000000000000", 10)
	require.True(t, ok)

	eth := chain.FromWei(wei, chain.EtherDecimals)
	assert.Equal(t, "1.5", eth.String())
}

func TestFromWeiNil(t *testing.T) {
	assert.True(t, chain.FromWei(nil, chain.EtherDecimals).IsZero())
}

func TestToWei(t *testing.T) {
	wei := chain.ToWei(decimal.RequireFromString("1.5"), chain.EtherDecimals)
	assert.Equal(t, "1500000000000000000", wei.String())
}

func TestToWeiTokenDecimals(t *testing.T) {
	// USDC carries 6 decimals.
	base := chain.ToWei(decimal.RequireFromString("150.25"), 6)
	assert.Equal(t, "150250000", base.String())
}

func TestToWeiTruncatesSubBaseUnit(t *testing.T) {
	base := chain.ToWei(decimal.RequireFromString("0.0000005"), 6)
	assert.Equal(t, "0", base.String())
}

func TestWeiRoundTrip(t *testing.T) {
	amount := decimal.RequireFromString("42.000000000000000001")
	back := chain.FromWei(chain.ToWei(amount, chain.EtherDecimals), chain.EtherDecimals)
	assert.True(t, amount.Equal(back), "got %s", back)
}

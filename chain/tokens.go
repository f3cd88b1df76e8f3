package chain

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
)

// erc20ABI covers the subset of the ERC-20 interface the facade uses.
const erc20ABI = `[
	{"constant":true,"inputs":[],"name":"symbol","outputs":[{"name":"","type":"string"}],"type":"function"},
	{"constant":true,"inputs":[],"name":"decimals","outputs":[{"name":"","type":"uint8"}],"type":"function"},
	{"constant":true,"inputs":[{"name":"owner","type":"address"}],"name":"balanceOf","outputs":[{"name":"","type":"uint256"}],"type":"function"},
	{"constant":false,"inputs":[{"name":"to","type":"address"},{"name":"value","type":"uint256"}],"name":"transfer","outputs":[{"name":"","type":"bool"}],"type":"function"}
]`

// Token is an ERC-20 contract bound to the standard ABI.
type Token struct {
	*Contract
}

// Token binds an ERC-20 token at the given contract address.
func (c *Client) Token(address string) (*Token, error) {
	contract, err := c.Contract(address, erc20ABI)
	if err != nil {
		return nil, err
	}
	return &Token{Contract: contract}, nil
}

// Symbol fetches the token's ticker symbol.
func (t *Token) Symbol(ctx context.Context) (string, error) {
	results, err := t.Call(ctx, "symbol")
	if err != nil {
		return "", err
	}

	symbol, ok := results[0].(string)
	if !ok {
		return "", fmt.Errorf("unexpected symbol type %T", results[0])
	}
	return symbol, nil
}

// Decimals fetches the token's base-unit scale.
func (t *Token) Decimals(ctx context.Context) (uint8, error) {
	results, err := t.Call(ctx, "decimals")
	if err != nil {
		return 0, err
	}

	decimals, ok := results[0].(uint8)
	if !ok {
		return 0, fmt.Errorf("unexpected decimals type %T", results[0])
	}
	return decimals, nil
}

// Balance fetches a holder's token balance, scaled by the token's decimals.
func (t *Token) Balance(ctx context.Context, holder string) (decimal.Decimal, error) {
	if !common.IsHexAddress(holder) {
		return decimal.Zero, fmt.Errorf("invalid address: %s", holder)
	}

	decimals, err := t.Decimals(ctx)
	if err != nil {
		return decimal.Zero, err
	}

	results, err := t.Call(ctx, "balanceOf", common.HexToAddress(holder))
	if err != nil {
		return decimal.Zero, err
	}

	raw, ok := results[0].(*big.Int)
	if !ok {
		return decimal.Zero, fmt.Errorf("unexpected balance type %T", results[0])
	}
	return FromWei(raw, int32(decimals)), nil
}

// Transfer moves tokens from the wallet to a recipient. The amount is in
// whole token units; it is scaled by the token's decimals before packing.
// Returns the transaction hash.
func (t *Token) Transfer(ctx context.Context, wallet *Wallet, to string, amount decimal.Decimal) (string, error) {
	if !common.IsHexAddress(to) {
		return "", fmt.Errorf("invalid recipient address: %s", to)
	}

	decimals, err := t.Decimals(ctx)
	if err != nil {
		return "", err
	}

	value := ToWei(amount, int32(decimals))
	return t.Transact(ctx, wallet, "transfer", common.HexToAddress(to), value)
}

// Package chain is a thin facade over go-ethereum for the on-chain side of
// the SDK: wallets, ETH and token transfers, generic contract calls and ENS.
// All heavy lifting (gas pricing, broadcasting, signing primitives) is
// delegated to the underlying library; this package only validates, shapes
// requests and types responses.
package chain

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// EtherDecimals is the ETH base unit scale (1 ETH = 10^18 wei).
const EtherDecimals = 18

// Client wraps an ethclient connection.
type Client struct {
	eth    *ethclient.Client
	logger *zap.Logger
}

// Dial connects to an Ethereum JSON-RPC endpoint. A nil logger is replaced
// with a nop logger.
func Dial(rpcURL string, logger *zap.Logger) (*Client, error) {
	eth, err := ethclient.Dial(rpcURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RPC endpoint: %w", err)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{eth: eth, logger: logger}, nil
}

// Close releases the underlying RPC connection.
func (c *Client) Close() {
	c.eth.Close()
}

// Balance fetches the ETH balance of an address, in ether.
func (c *Client) Balance(ctx context.Context, address string) (decimal.Decimal, error) {
	if !common.IsHexAddress(address) {
		return decimal.Zero, fmt.Errorf("invalid address: %s", address)
	}

	wei, err := c.eth.BalanceAt(ctx, common.HexToAddress(address), nil)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to fetch balance: %w", err)
	}

	c.logger.Debug("fetched balance", zap.String("address", address))
	return FromWei(wei, EtherDecimals), nil
}

// BlockNumber fetches the current block height.
func (c *Client) BlockNumber(ctx context.Context) (uint64, error) {
	number, err := c.eth.BlockNumber(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch block number: %w", err)
	}
	return number, nil
}

// ChainID fetches the network's chain id, needed for EIP-155 signing.
func (c *Client) ChainID(ctx context.Context) (*big.Int, error) {
	id, err := c.eth.ChainID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch chain id: %w", err)
	}
	return id, nil
}

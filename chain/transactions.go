package chain

import (
	"context"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// receiptPollInterval is how often WaitMined re-checks for a receipt.
const receiptPollInterval = 2 * time.Second

// Send transfers ether. It resolves the nonce, asks the node for a gas price
// and a gas estimate (with the buffer applied by estimateGas), signs with
// EIP-155 and broadcasts. Returns the transaction hash.
func (c *Client) Send(ctx context.Context, wallet *Wallet, to string, amount decimal.Decimal) (string, error) {
	if !common.IsHexAddress(to) {
		return "", fmt.Errorf("invalid recipient address: %s", to)
	}
	toAddr := common.HexToAddress(to)
	value := ToWei(amount, EtherDecimals)

	nonce, err := c.eth.PendingNonceAt(ctx, wallet.Address())
	if err != nil {
		return "", fmt.Errorf("failed to fetch nonce: %w", err)
	}

	gasPrice, err := c.eth.SuggestGasPrice(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to fetch gas price: %w", err)
	}

	gasLimit, err := c.estimateGas(ctx, ethereum.CallMsg{
		From:  wallet.Address(),
		To:    &toAddr,
		Value: value,
	})
	if err != nil {
		return "", err
	}

	chainID, err := c.ChainID(ctx)
	if err != nil {
		return "", err
	}

	tx := types.NewTransaction(nonce, toAddr, value, gasLimit, gasPrice, nil)
	signedTx, err := types.SignTx(tx, types.NewEIP155Signer(chainID), wallet.privateKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign transaction: %w", err)
	}

	if err := c.eth.SendTransaction(ctx, signedTx); err != nil {
		return "", fmt.Errorf("failed to send transaction: %w", err)
	}

	hash := signedTx.Hash().Hex()
	c.logger.Info("sent transaction",
		zap.String("hash", hash),
		zap.String("to", to),
		zap.String("amount", amount.String()))
	return hash, nil
}

// Transaction fetches a transaction by hash. The second return reports
// whether it is still pending.
func (c *Client) Transaction(ctx context.Context, hash string) (*types.Transaction, bool, error) {
	tx, pending, err := c.eth.TransactionByHash(ctx, common.HexToHash(hash))
	if err != nil {
		return nil, false, fmt.Errorf("failed to fetch transaction: %w", err)
	}
	return tx, pending, nil
}

// Receipt fetches the receipt of a mined transaction.
func (c *Client) Receipt(ctx context.Context, hash string) (*types.Receipt, error) {
	receipt, err := c.eth.TransactionReceipt(ctx, common.HexToHash(hash))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch receipt: %w", err)
	}
	return receipt, nil
}

// WaitMined polls until the transaction is mined or the context ends.
func (c *Client) WaitMined(ctx context.Context, hash string) (*types.Receipt, error) {
	ticker := time.NewTicker(receiptPollInterval)
	defer ticker.Stop()

	for {
		receipt, err := c.eth.TransactionReceipt(ctx, common.HexToHash(hash))
		if err == nil {
			return receipt, nil
		}

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("gave up waiting for transaction %s: %w", hash, ctx.Err())
		case <-ticker.C:
		}
	}
}

// estimateGas asks the node for a gas estimate and adds a 20% buffer to
// absorb state drift between estimation and inclusion.
func (c *Client) estimateGas(ctx context.Context, msg ethereum.CallMsg) (uint64, error) {
	gas, err := c.eth.EstimateGas(ctx, msg)
	if err != nil {
		return 0, fmt.Errorf("failed to estimate gas: %w", err)
	}
	return gas + gas/5, nil
}

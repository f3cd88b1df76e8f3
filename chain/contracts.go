package chain

import (
	"context"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"go.uber.org/zap"
)

// Contract is a deployed contract bound to an ABI. Call reads state,
// Transact signs and broadcasts a state change.
type Contract struct {
	client  *Client
	address common.Address
	abi     abi.ABI
}

// Contract binds a deployed contract from its address and ABI JSON.
func (c *Client) Contract(address, abiJSON string) (*Contract, error) {
	if !common.IsHexAddress(address) {
		return nil, fmt.Errorf("invalid contract address: %s", address)
	}

	parsed, err := abi.JSON(strings.NewReader(abiJSON))
	if err != nil {
		return nil, fmt.Errorf("failed to parse ABI: %w", err)
	}

	return &Contract{
		client:  c,
		address: common.HexToAddress(address),
		abi:     parsed,
	}, nil
}

// Address returns the bound contract address.
func (k *Contract) Address() common.Address {
	return k.address
}

// Call executes a read-only method and returns the unpacked outputs.
func (k *Contract) Call(ctx context.Context, method string, args ...interface{}) ([]interface{}, error) {
	input, err := k.abi.Pack(method, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to pack call: %w", err)
	}

	output, err := k.client.eth.CallContract(ctx, ethereum.CallMsg{
		To:   &k.address,
		Data: input,
	}, nil)
	if err != nil {
		return nil, fmt.Errorf("contract call failed: %w", err)
	}

	results, err := k.abi.Unpack(method, output)
	if err != nil {
		return nil, fmt.Errorf("failed to unpack result: %w", err)
	}
	return results, nil
}

// Transact signs and broadcasts a state-changing method call. Returns the
// transaction hash.
func (k *Contract) Transact(ctx context.Context, wallet *Wallet, method string, args ...interface{}) (string, error) {
	input, err := k.abi.Pack(method, args...)
	if err != nil {
		return "", fmt.Errorf("failed to pack call: %w", err)
	}

	nonce, err := k.client.eth.PendingNonceAt(ctx, wallet.Address())
	if err != nil {
		return "", fmt.Errorf("failed to fetch nonce: %w", err)
	}

	gasPrice, err := k.client.eth.SuggestGasPrice(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to fetch gas price: %w", err)
	}

	gasLimit, err := k.client.estimateGas(ctx, ethereum.CallMsg{
		From: wallet.Address(),
		To:   &k.address,
		Data: input,
	})
	if err != nil {
		return "", err
	}

	chainID, err := k.client.ChainID(ctx)
	if err != nil {
		return "", err
	}

	tx := types.NewTransaction(nonce, k.address, nil, gasLimit, gasPrice, input)
	signedTx, err := types.SignTx(tx, types.NewEIP155Signer(chainID), wallet.privateKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign transaction: %w", err)
	}

	if err := k.client.eth.SendTransaction(ctx, signedTx); err != nil {
		return "", fmt.Errorf("failed to send transaction: %w", err)
	}

	hash := signedTx.Hash().Hex()
	k.client.logger.Info("sent contract transaction",
		zap.String("hash", hash),
		zap.String("contract", k.address.Hex()),
		zap.String("method", method))
	return hash, nil
}

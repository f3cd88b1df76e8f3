package chain

import (
	"crypto/ecdsa"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/tyler-smith/go-bip39"
)

// DerivationPathFormat is the BIP-44 path template for Ethereum accounts.
const DerivationPathFormat = "m/44'/60'/0'/0/%d"

// Wallet is a locally held signing key.
type Wallet struct {
	privateKey *ecdsa.PrivateKey
}

// NewWallet generates a fresh wallet with a 24-word mnemonic. The mnemonic is
// returned exactly once; it is the only recovery material.
func NewWallet() (string, *Wallet, error) {
	entropy, err := bip39.NewEntropy(256)
	if err != nil {
		return "", nil, fmt.Errorf("failed to generate entropy: %w", err)
	}

	mnemonic, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return "", nil, fmt.Errorf("failed to generate mnemonic: %w", err)
	}

	wallet, err := FromMnemonic(mnemonic, 0)
	if err != nil {
		return "", nil, err
	}
	return mnemonic, wallet, nil
}

// FromMnemonic derives the wallet at account index from a BIP-39 mnemonic
// along the standard Ethereum BIP-44 path.
func FromMnemonic(mnemonic string, index uint32) (*Wallet, error) {
	if !bip39.IsMnemonicValid(mnemonic) {
		return nil, fmt.Errorf("invalid mnemonic")
	}

	seed := bip39.NewSeed(mnemonic, "")

	path, err := accounts.ParseDerivationPath(fmt.Sprintf(DerivationPathFormat, index))
	if err != nil {
		return nil, fmt.Errorf("failed to parse derivation path: %w", err)
	}

	privateKey, err := deriveKey(seed, path)
	if err != nil {
		return nil, fmt.Errorf("failed to derive key: %w", err)
	}
	return &Wallet{privateKey: privateKey}, nil
}

// FromPrivateKey loads a wallet from a hex-encoded private key.
func FromPrivateKey(hexKey string) (*Wallet, error) {
	privateKey, err := crypto.HexToECDSA(strings.TrimPrefix(hexKey, "0x"))
	if err != nil {
		return nil, fmt.Errorf("failed to parse private key: %w", err)
	}
	return &Wallet{privateKey: privateKey}, nil
}

// Address returns the wallet's Ethereum address.
func (w *Wallet) Address() common.Address {
	return crypto.PubkeyToAddress(w.privateKey.PublicKey)
}

// SignMessage signs an EIP-191 personal message and returns the hex-encoded
// 65-byte signature with the legacy 27/28 recovery id, the format wallet
// ownership checks expect.
func (w *Wallet) SignMessage(message []byte) (string, error) {
	prefixed := fmt.Sprintf("\x19Ethereum Signed Message:\n%d%s", len(message), message)
	digest := crypto.Keccak256([]byte(prefixed))

	signature, err := crypto.Sign(digest, w.privateKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign message: %w", err)
	}

	signature[64] += 27
	return "0x" + hex.EncodeToString(signature), nil
}

package chain

import (
	"crypto/ecdsa"
	"crypto/hmac"
	"crypto/sha512"
	"encoding/binary"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/crypto"
)

// hdKey is one node of a BIP-32 hierarchical deterministic key tree.
type hdKey struct {
	privateKey []byte
	publicKey  []byte
	chainCode  []byte
	depth      uint8
}

// deriveKey derives a secp256k1 private key from a BIP-39 seed along a BIP-44
// derivation path.
func deriveKey(seed []byte, path accounts.DerivationPath) (*ecdsa.PrivateKey, error) {
	key, err := newMasterKey(seed)
	if err != nil {
		return nil, fmt.Errorf("failed to create master key: %w", err)
	}

	for _, childNum := range path {
		key, err = deriveChild(key, childNum)
		if err != nil {
			return nil, fmt.Errorf("failed to derive child key: %w", err)
		}
	}

	privateKey, err := crypto.ToECDSA(key.privateKey)
	if err != nil {
		return nil, fmt.Errorf("failed to convert to ECDSA key: %w", err)
	}
	return privateKey, nil
}

// newMasterKey creates the BIP-32 root from a seed.
func newMasterKey(seed []byte) (*hdKey, error) {
	hash := hmacSHA512([]byte("Bitcoin seed"), seed)

	privateKey := hash[:32]
	chainCode := hash[32:]

	if !isValidPrivateKey(privateKey) {
		return nil, fmt.Errorf("invalid private key")
	}

	return &hdKey{
		privateKey: privateKey,
		publicKey:  compressedPublicKey(privateKey),
		chainCode:  chainCode,
		depth:      0,
	}, nil
}

// deriveChild derives one child node, hardened or normal.
func deriveChild(parent *hdKey, childNum uint32) (*hdKey, error) {
	var data []byte
	if childNum >= 0x80000000 {
		// Hardened derivation commits to the private key.
		data = append([]byte{0x00}, parent.privateKey...)
	} else {
		data = parent.publicKey
	}

	childNumBytes := make([]byte, 4)
	binary.BigEndian.PutUint32(childNumBytes, childNum)
	data = append(data, childNumBytes...)

	hash := hmacSHA512(parent.chainCode, data)
	il := hash[:32]
	ir := hash[32:]

	// child key = (parent key + IL) mod n
	childInt := new(big.Int).Add(
		new(big.Int).SetBytes(parent.privateKey),
		new(big.Int).SetBytes(il),
	)
	childInt.Mod(childInt, curveOrder())

	if childInt.Sign() == 0 {
		return nil, fmt.Errorf("invalid private key")
	}

	childKey := childInt.Bytes()
	if len(childKey) < 32 {
		padded := make([]byte, 32)
		copy(padded[32-len(childKey):], childKey)
		childKey = padded
	}

	return &hdKey{
		privateKey: childKey,
		publicKey:  compressedPublicKey(childKey),
		chainCode:  ir,
		depth:      parent.depth + 1,
	}, nil
}

// compressedPublicKey derives the 33-byte compressed secp256k1 public key.
func compressedPublicKey(privateKey []byte) []byte {
	curve := crypto.S256()
	x, y := curve.ScalarBaseMult(privateKey)

	prefix := byte(0x02)
	if y.Bit(0) == 1 {
		prefix = 0x03
	}

	out := make([]byte, 33)
	out[0] = prefix
	x.FillBytes(out[1:])
	return out
}

func hmacSHA512(key, data []byte) []byte {
	h := hmac.New(sha512.New, key)
	h.Write(data)
	return h.Sum(nil)
}

func isValidPrivateKey(privateKey []byte) bool {
	if len(privateKey) != 32 {
		return false
	}

	keyInt := new(big.Int).SetBytes(privateKey)
	return keyInt.Sign() != 0 && keyInt.Cmp(curveOrder()) < 0
}

// curveOrder returns the secp256k1 group order n.
func curveOrder() *big.Int {
	return crypto.S256().Params().N
}

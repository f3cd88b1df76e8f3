package chain

import (
	"fmt"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/ethereum/go-ethereum/common"
	"github.com/gagliardetto/solana-go"
)

// payout networks with local address validation
const (
	NetworkEthereum = "ethereum"
	NetworkPolygon  = "polygon"
	NetworkBase     = "base"
	NetworkArbitrum = "arbitrum"
	NetworkSolana   = "solana"
	NetworkBitcoin  = "bitcoin"
)

// ValidateAddress checks that an address matches the given payout network's
// format. EVM networks share the Ethereum format; Bitcoin accepts mainnet
// encodings; Solana accepts base58 public keys. Unknown networks pass, the
// remote service has the authoritative list.
func ValidateAddress(network, address string) error {
	switch network {
	case NetworkEthereum, NetworkPolygon, NetworkBase, NetworkArbitrum:
		if !common.IsHexAddress(address) {
			return fmt.Errorf("invalid %s address: %s", network, address)
		}
	case NetworkBitcoin:
		if _, err := btcutil.DecodeAddress(address, &chaincfg.MainNetParams); err != nil {
			return fmt.Errorf("invalid bitcoin address: %w", err)
		}
	case NetworkSolana:
		if _, err := solana.PublicKeyFromBase58(address); err != nil {
			return fmt.Errorf("invalid solana address: %w", err)
		}
	}
	return nil
}

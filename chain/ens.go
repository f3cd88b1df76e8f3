package chain

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	ens "github.com/wealdtech/go-ens/v3"
)

// ResolveName resolves an ENS name to an address.
func (c *Client) ResolveName(name string) (common.Address, error) {
	address, err := ens.Resolve(c.eth, name)
	if err != nil {
		return common.Address{}, fmt.Errorf("failed to resolve %q: %w", name, err)
	}
	return address, nil
}

// LookupAddress reverse-resolves an address to its primary ENS name. An
// address without a reverse record is an error from the underlying resolver.
func (c *Client) LookupAddress(address string) (string, error) {
	if !common.IsHexAddress(address) {
		return "", fmt.Errorf("invalid address: %s", address)
	}

	name, err := ens.ReverseResolve(c.eth, common.HexToAddress(address))
	if err != nil {
		return "", fmt.Errorf("failed to reverse-resolve %s: %w", address, err)
	}
	return name, nil
}

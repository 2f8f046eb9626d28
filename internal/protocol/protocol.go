package protocol

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"

	"github.com/defitrack/pairstate/internal/apperrors"
)

// Network identifies a chain by its chain ID.
type Network uint64

const (
	Mainnet Network = 1
	BSC     Network = 56
	Polygon Network = 137
	Sepolia Network = 11155111
)

// Protocol enumerates the supported UniswapV2-style DEX families. The set is
// closed: every variant carries a fixed pair deployment code hash and a
// static per-network factory table.
type Protocol uint8

const (
	UniswapV2 Protocol = iota
	SushiSwap
	PancakeSwap
	QuickSwap
)

var protocolNames = map[Protocol]string{
	UniswapV2:   "uniswapv2",
	SushiSwap:   "sushiswap",
	PancakeSwap: "pancakeswap",
	QuickSwap:   "quickswap",
}

// pairCodeHashes holds the keccak256 of each protocol's pair creation code.
// QuickSwap is a byte-for-byte UniswapV2 fork, so they share a hash.
var pairCodeHashes = map[Protocol]common.Hash{
	UniswapV2:   common.HexToHash("0x96e8ac4277198ff8b6f785478aa9a39f403cb768dd02cbee326c3e7da348845f"),
	SushiSwap:   common.HexToHash("0xe18a34eb0e04b04f7a0ac29a6e80748dca96319b42c54d679cb821dca90c6303"),
	PancakeSwap: common.HexToHash("0x00fb7f630766e6a796048ea87d01acd3068e8ff67d078148a3fa3f4a84f69bd5"),
	QuickSwap:   common.HexToHash("0x96e8ac4277198ff8b6f785478aa9a39f403cb768dd02cbee326c3e7da348845f"),
}

var factoryAddresses = map[Protocol]map[Network]common.Address{
	UniswapV2: {
		Mainnet: common.HexToAddress("0x5C69bEe701ef814a2B6a3EDD4B1652CB9cc5aA6f"),
		Sepolia: common.HexToAddress("0xF62c03E08ada871A0bEb309762E260a7a6a880E6"),
	},
	SushiSwap: {
		Mainnet: common.HexToAddress("0xC0AEe478e3658e2610c5F7A4A2E1777cE9e4f2Ac"),
		BSC:     common.HexToAddress("0xc35DADB65012eC5796536bD9864eD8773aBc74C4"),
		Polygon: common.HexToAddress("0xc35DADB65012eC5796536bD9864eD8773aBc74C4"),
	},
	PancakeSwap: {
		BSC: common.HexToAddress("0xcA143Ce32Fe78f1f7019d7d551a6402fC5350c73"),
	},
	QuickSwap: {
		Polygon: common.HexToAddress("0x5757371414417b8C6CAad45bAeF941aBc7d3Ab32"),
	},
}

// String returns the canonical lowercase name of the protocol.
func (p Protocol) String() string {
	name, ok := protocolNames[p]
	if !ok {
		return "unknown"
	}
	return name
}

// PairCodeHash returns the hash of the deployment code of the pairs this
// protocol's factory deploys.
func (p Protocol) PairCodeHash() common.Hash {
	return pairCodeHashes[p]
}

// FactoryAddress returns the factory contract address of the protocol on the
// given network. The second return value is false when the protocol is not
// deployed there; this is a recoverable condition, not an error.
func (p Protocol) FactoryAddress(network Network) (common.Address, bool) {
	addr, ok := factoryAddresses[p][network]
	return addr, ok
}

// Parse resolves a protocol from its canonical name.
func Parse(name string) (Protocol, error) {
	for p, n := range protocolNames {
		if n == name {
			return p, nil
		}
	}
	return 0, errors.Wrapf(apperrors.ErrInvalidArgument, "unknown protocol %q", name)
}

package uniswapv2

import (
	"strings"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"

	"github.com/defitrack/pairstate/internal/apperrors"
	"github.com/defitrack/pairstate/internal/multicall"
	"github.com/defitrack/pairstate/internal/protocol"
)

// Minimal factory ABI for building the createPair call.
const factoryABIJSON = `[
	{"inputs":[{"internalType":"address","name":"tokenA","type":"address"},{"internalType":"address","name":"tokenB","type":"address"}],"name":"createPair","outputs":[{"internalType":"address","name":"pair","type":"address"}],"stateMutability":"nonpayable","type":"function"}
]`

// Factory identifies a deployed UniswapV2-style factory contract. The
// multicall handle is shared with every pair the factory constructs; the
// factory never owns it.
type Factory struct {
	mc         *multicall.Multicall
	addr       common.Address
	proto      protocol.Protocol
	factoryABI abi.ABI
}

// NewFactory creates a factory handle at a known address. The address is
// assumed to hold a createPair-capable contract; this is not verified here.
func NewFactory(mc *multicall.Multicall, addr common.Address, proto protocol.Protocol) (*Factory, error) {
	factoryABI, err := abi.JSON(strings.NewReader(factoryABIJSON))
	if err != nil {
		return nil, errors.Wrap(err, "abi.JSON")
	}

	return &Factory{
		mc:         mc,
		addr:       addr,
		proto:      proto,
		factoryABI: factoryABI,
	}, nil
}

// NewFactoryForNetwork creates a factory handle using the registry's address
// for the protocol on the given network.
func NewFactoryForNetwork(mc *multicall.Multicall, network protocol.Network, proto protocol.Protocol) (*Factory, error) {
	addr, ok := proto.FactoryAddress(network)
	if !ok {
		return nil, errors.Wrapf(apperrors.ErrUnsupportedNetwork, "%s on chain %d", proto, network)
	}

	return NewFactory(mc, addr, proto)
}

// Address returns the contract address of the factory.
func (f *Factory) Address() common.Address {
	return f.addr
}

// Protocol returns the protocol of the factory.
func (f *Factory) Protocol() protocol.Protocol {
	return f.proto
}

// PairCodeHash returns the deployment code hash of the pairs this factory
// deploys.
func (f *Factory) PairCodeHash() common.Hash {
	return f.proto.PairCodeHash()
}

// CreatePairCall builds the createPair(tokenA, tokenB) call message. The
// message is neither signed nor submitted; submission is the caller's job.
func (f *Factory) CreatePairCall(tokenA, tokenB common.Address) (ethereum.CallMsg, error) {
	data, err := f.factoryABI.Pack("createPair", tokenA, tokenB)
	if err != nil {
		return ethereum.CallMsg{}, errors.Wrap(err, "f.factoryABI.Pack")
	}

	to := f.addr
	return ethereum.CallMsg{To: &to, Data: data}, nil
}

// PairFor returns the deterministic pair address for two tokens under this
// factory.
func (f *Factory) PairFor(tokenA, tokenB common.Address) (common.Address, error) {
	return PairFor(f.addr, f.PairCodeHash(), tokenA, tokenB)
}

// Pair derives the pair address for two tokens and wraps it in a Pair with
// the sorted tokens pre-populated. The pair is not considered deployed until
// the first successful sync.
func (f *Factory) Pair(tokenA, tokenB common.Address) (*Pair, error) {
	token0, token1, err := SortTokens(tokenA, tokenB)
	if err != nil {
		return nil, errors.Wrap(err, "SortTokens")
	}

	addr, err := PairFor(f.addr, f.PairCodeHash(), token0, token1)
	if err != nil {
		return nil, errors.Wrap(err, "PairFor")
	}

	p := NewPair(f.mc, addr, f.proto)
	p.tokens = &Tokens{Token0: token0, Token1: token1}
	return p, nil
}

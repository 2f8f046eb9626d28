package multicall

import (
	"context"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"

	"github.com/defitrack/pairstate/internal/apperrors"
)

// DefaultAddress is the Multicall3 deployment, identical on every supported
// network.
var DefaultAddress = common.HexToAddress("0xcA11bde05977b3631167028862bE2a173976CA11")

const aggregate3ABIJSON = `[
	{"inputs":[{"components":[{"internalType":"address","name":"target","type":"address"},{"internalType":"bool","name":"allowFailure","type":"bool"},{"internalType":"bytes","name":"callData","type":"bytes"}],"internalType":"struct Multicall3.Call3[]","name":"calls","type":"tuple[]"}],"name":"aggregate3","outputs":[{"components":[{"internalType":"bool","name":"success","type":"bool"},{"internalType":"bytes","name":"returnData","type":"bytes"}],"internalType":"struct Multicall3.Result[]","name":"returnData","type":"tuple[]"}],"stateMutability":"payable","type":"function"}
]`

// EthCaller represents interface for calling contracts.
type EthCaller interface {
	CallContract(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error)
}

// Call is a single read call inside a batch. AllowFailure lets the call
// revert without aborting the rest of the batch.
type Call struct {
	Target       common.Address
	AllowFailure bool
	CallData     []byte
}

// Result is the per-call outcome reported by the multicall contract: the
// call's own success flag plus its raw return payload.
type Result struct {
	Success    bool
	ReturnData []byte
}

// Multicall submits batches of read calls through a Multicall3 contract in a
// single round trip.
type Multicall struct {
	contract common.Address
	cABI     abi.ABI
	caller   EthCaller
}

// New creates a Multicall bound to the given contract address.
func New(caller EthCaller, contract common.Address) (*Multicall, error) {
	cABI, err := abi.JSON(strings.NewReader(aggregate3ABIJSON))
	if err != nil {
		return nil, errors.Wrap(err, "abi.JSON")
	}

	return &Multicall{
		contract: contract,
		cABI:     cABI,
		caller:   caller,
	}, nil
}

// Contract returns the address of the multicall contract.
func (m *Multicall) Contract() common.Address {
	return m.contract
}

// Aggregate submits the calls as one aggregate3 round trip and returns the
// per-call results in call order. Every returned error wraps
// apperrors.ErrTransport: the batch either reached the node and came back
// whole, or it failed as a unit.
func (m *Multicall) Aggregate(ctx context.Context, calls []Call) ([]Result, error) {
	data, err := m.cABI.Pack("aggregate3", calls)
	if err != nil {
		return nil, errors.Wrap(err, "m.cABI.Pack")
	}

	raw, err := m.caller.CallContract(
		ctx,
		ethereum.CallMsg{
			To:   &m.contract,
			Data: data,
		},
		nil,
	)
	if err != nil {
		return nil, errors.Wrapf(apperrors.ErrTransport, "m.caller.CallContract: %v", err)
	}

	var results []Result
	if err := m.cABI.UnpackIntoInterface(&results, "aggregate3", raw); err != nil {
		return nil, errors.Wrapf(apperrors.ErrTransport, "m.cABI.UnpackIntoInterface: %v", err)
	}

	if len(results) != len(calls) {
		return nil, errors.Wrapf(apperrors.ErrTransport,
			"result length mismatch: expected %d, got %d", len(calls), len(results))
	}

	return results, nil
}

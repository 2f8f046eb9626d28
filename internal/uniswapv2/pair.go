package uniswapv2

import (
	"context"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"github.com/defitrack/pairstate/internal/apperrors"
	"github.com/defitrack/pairstate/internal/multicall"
	"github.com/defitrack/pairstate/internal/protocol"
)

// Minimal pair ABI for reading tokens and reserves.
const pairABIJSON = `[
	{"inputs":[],"name":"token0","outputs":[{"internalType":"address","name":"","type":"address"}],"stateMutability":"view","type":"function"},
	{"inputs":[],"name":"token1","outputs":[{"internalType":"address","name":"","type":"address"}],"stateMutability":"view","type":"function"},
	{"inputs":[],"name":"getReserves","outputs":[{"internalType":"uint112","name":"_reserve0","type":"uint112"},{"internalType":"uint112","name":"_reserve1","type":"uint112"},{"internalType":"uint32","name":"_blockTimestampLast","type":"uint32"}],"stateMutability":"view","type":"function"}
]`

var (
	pairABI abi.ABI

	// failureArgs is the generic (bool, string) shape a multicall wraps
	// around an allowed failure.
	failureArgs abi.Arguments
)

func init() {
	var err error
	pairABI, err = abi.JSON(strings.NewReader(pairABIJSON))
	if err != nil {
		panic(err)
	}

	boolType, err := abi.NewType("bool", "", nil)
	if err != nil {
		panic(err)
	}
	stringType, err := abi.NewType("string", "", nil)
	if err != nil {
		panic(err)
	}
	failureArgs = abi.Arguments{{Type: boolType}, {Type: stringType}}
}

// Tokens is the ordered token addresses of a pair. Token0 is always the
// lexicographically lesser address.
type Tokens struct {
	Token0 common.Address
	Token1 common.Address
}

// Reserves holds the pool's token quantities and the timestamp of the last
// on-chain update.
type Reserves struct {
	Reserve0           *big.Int
	Reserve1           *big.Int
	BlockTimestampLast uint32
}

// Pair is a cached view of a UniswapV2-style liquidity pair. The address may
// be speculative: a pair derived from a factory exists as a value before the
// pool contract is deployed on chain.
//
// A Pair is owned by one caller at a time. Sync mutates it in place and must
// not run concurrently on the same instance.
type Pair struct {
	mc       *multicall.Multicall
	addr     common.Address
	tokens   *Tokens
	reserves *Reserves
	deployed bool
	proto    protocol.Protocol
}

// NewPair creates an unsynced pair at a known address.
func NewPair(mc *multicall.Multicall, addr common.Address, proto protocol.Protocol) *Pair {
	return &Pair{
		mc:    mc,
		addr:  addr,
		proto: proto,
	}
}

// Address returns the address of the pair.
func (p *Pair) Address() common.Address {
	return p.addr
}

// Protocol returns the protocol of the pair.
func (p *Pair) Protocol() protocol.Protocol {
	return p.proto
}

// CodeHash returns the hash of the pair's deployment code.
func (p *Pair) CodeHash() common.Hash {
	return p.proto.PairCodeHash()
}

// Deployed reports whether the pair contract was present on chain at the last
// sync. Always false before the first sync.
func (p *Pair) Deployed() bool {
	return p.deployed
}

// Tokens returns the ordered token addresses, if known.
func (p *Pair) Tokens() (Tokens, bool) {
	if p.tokens == nil {
		return Tokens{}, false
	}
	return *p.tokens, true
}

// Reserves returns the cached reserves, if known.
func (p *Pair) Reserves() (Reserves, bool) {
	if p.reserves == nil {
		return Reserves{}, false
	}
	return *p.reserves, true
}

// String renders the known state of the pair for logs and consoles.
func (p *Pair) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Pair:     %s", p.addr.Hex())
	if p.tokens != nil {
		fmt.Fprintf(&b, "\nToken0:   %s\nToken1:   %s", p.tokens.Token0.Hex(), p.tokens.Token1.Hex())
	}
	if p.reserves != nil {
		fmt.Fprintf(&b, "\nReserve0: %s\nReserve1: %s", p.reserves.Reserve0, p.reserves.Reserve1)
	}
	return b.String()
}

// Sync refreshes the requested facets of the pair with a single batched round
// trip. Any individual revert is taken to mean the pair contract is not
// deployed: both facets are cleared and deployed is forced false, even for
// calls that individually succeeded. The pair is only mutated after the whole
// batch has been resolved, so a transport or decode failure leaves the
// previous state intact.
func (p *Pair) Sync(ctx context.Context, syncTokens, syncReserves bool) (*Pair, error) {
	if !syncTokens && !syncReserves {
		return p, nil
	}

	methods := make([]string, 0, 3)
	if syncTokens {
		methods = append(methods, "token0", "token1")
	}
	if syncReserves {
		methods = append(methods, "getReserves")
	}

	calls := make([]multicall.Call, len(methods))
	for i, method := range methods {
		data, err := pairABI.Pack(method)
		if err != nil {
			return nil, errors.Wrap(err, "pairABI.Pack")
		}
		calls[i] = multicall.Call{
			Target:       p.addr,
			AllowFailure: true,
			CallData:     data,
		}
	}

	results, err := p.mc.Aggregate(ctx, calls)
	if err != nil {
		return nil, errors.Wrap(err, "p.mc.Aggregate")
	}

	outcomes := make([]callOutcome, len(results))
	allOK := true
	var decodeErr error
	for i, res := range results {
		outcomes[i] = resolveOutcome(methods[i], res)
		switch outcomes[i].kind {
		case outcomeMalformed:
			decodeErr = multierr.Append(decodeErr, errors.Wrap(apperrors.ErrMalformedResponse, methods[i]))
		case outcomeReverted:
			allOK = false
		}
	}
	if decodeErr != nil {
		return nil, decodeErr
	}

	if !allOK {
		// Assume any revert means the contract has not been deployed yet. A
		// half-observed pool is never committed.
		p.tokens = nil
		p.reserves = nil
		p.deployed = false
		return p, nil
	}

	var (
		tokens   *Tokens
		reserves *Reserves
	)
	next := 0
	if syncTokens {
		token0, err := decodeAddress(outcomes[next])
		if err != nil {
			return nil, errors.Wrap(err, "token0")
		}
		token1, err := decodeAddress(outcomes[next+1])
		if err != nil {
			return nil, errors.Wrap(err, "token1")
		}
		next += 2
		tokens = &Tokens{Token0: token0, Token1: token1}
	}
	if syncReserves {
		r, err := decodeReserves(outcomes[next])
		if err != nil {
			return nil, errors.Wrap(err, "getReserves")
		}
		reserves = r
	}

	// Commit point: every requested call succeeded.
	if syncTokens {
		p.tokens = tokens
	}
	if syncReserves {
		p.reserves = reserves
	}
	p.deployed = true

	return p, nil
}

type outcomeKind int

const (
	outcomeOK outcomeKind = iota
	outcomeReverted
	outcomeMalformed
)

// callOutcome is the resolved result of one batched call: decoded outputs, a
// revert with an optional reason, or a payload neither shape recognizes.
type callOutcome struct {
	kind    outcomeKind
	outputs []interface{}
	reason  string
}

// methodReturnSizes holds the exact encoded size of each method's outputs.
// The ABI unpacker tolerates trailing bytes, so without the length check an
// encoded failure tuple would pass for a genuine value.
var methodReturnSizes = map[string]int{
	"token0":      32,
	"token1":      32,
	"getReserves": 96,
}

// resolveOutcome classifies one multicall result for the given pair method.
func resolveOutcome(method string, res multicall.Result) callOutcome {
	if !res.Success {
		// An individual revert inside the batch is the "not deployed" signal,
		// not an error.
		reason, err := abi.UnpackRevert(res.ReturnData)
		if err != nil {
			reason = ""
		}
		return callOutcome{kind: outcomeReverted, reason: reason}
	}

	if len(res.ReturnData) == methodReturnSizes[method] {
		outputs, err := pairABI.Unpack(method, res.ReturnData)
		if err == nil {
			return callOutcome{kind: outcomeOK, outputs: outputs}
		}
	}

	if reason, ok := decodeFailureTuple(res.ReturnData); ok {
		return callOutcome{kind: outcomeReverted, reason: reason}
	}

	return callOutcome{kind: outcomeMalformed}
}

// decodeFailureTuple attempts to read the payload as the generic
// (bool, string) failure shape.
func decodeFailureTuple(data []byte) (string, bool) {
	vals, err := failureArgs.Unpack(data)
	if err != nil || len(vals) != 2 {
		return "", false
	}

	msg, ok := vals[1].(string)
	if !ok {
		return "", false
	}
	return msg, true
}

func decodeAddress(o callOutcome) (common.Address, error) {
	if len(o.outputs) != 1 {
		return common.Address{}, errors.Wrapf(apperrors.ErrMalformedResponse, "expected 1 output, got %d", len(o.outputs))
	}
	addr, ok := o.outputs[0].(common.Address)
	if !ok {
		return common.Address{}, errors.Wrap(apperrors.ErrMalformedResponse, "output is not an address")
	}
	return addr, nil
}

func decodeReserves(o callOutcome) (*Reserves, error) {
	if len(o.outputs) != 3 {
		return nil, errors.Wrapf(apperrors.ErrMalformedResponse, "expected 3 outputs, got %d", len(o.outputs))
	}
	reserve0, ok0 := o.outputs[0].(*big.Int)
	reserve1, ok1 := o.outputs[1].(*big.Int)
	ts, ok2 := o.outputs[2].(uint32)
	if !ok0 || !ok1 || !ok2 {
		return nil, errors.Wrap(apperrors.ErrMalformedResponse, "unexpected reserve output types")
	}

	return &Reserves{
		Reserve0:           new(big.Int).Set(reserve0),
		Reserve1:           new(big.Int).Set(reserve1),
		BlockTimestampLast: ts,
	}, nil
}

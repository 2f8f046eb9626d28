package dto

import (
	"github.com/ethereum/go-ethereum/common"

	"github.com/defitrack/pairstate/internal/protocol"
	"github.com/defitrack/pairstate/internal/uniswapv2"
)

// LookupRequest represents a request to resolve and sync a liquidity pair.
type LookupRequest struct {
	Protocol     protocol.Protocol
	TokenA       common.Address
	TokenB       common.Address
	SyncTokens   bool
	SyncReserves bool
}

// PairState is an immutable snapshot of a pair taken after a sync.
type PairState struct {
	Address  common.Address
	Deployed bool
	Tokens   *uniswapv2.Tokens
	Reserves *uniswapv2.Reserves
}

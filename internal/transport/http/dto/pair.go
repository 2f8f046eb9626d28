package dto

import (
	"github.com/ethereum/go-ethereum/common"

	"github.com/defitrack/pairstate/internal/protocol"
)

// PairRequest represents a parsed HTTP request for the /pair endpoint.
type PairRequest struct {
	Protocol     protocol.Protocol
	TokenA       common.Address
	TokenB       common.Address
	SyncTokens   bool
	SyncReserves bool
}

// PairResponse is the JSON body returned by the /pair endpoint. Token and
// reserve fields are omitted when the corresponding facet is unknown.
type PairResponse struct {
	Address   string `json:"address"`
	Deployed  bool   `json:"deployed"`
	Token0    string `json:"token0,omitempty"`
	Token1    string `json:"token1,omitempty"`
	Reserve0  string `json:"reserve0,omitempty"`
	Reserve1  string `json:"reserve1,omitempty"`
	UpdatedAt uint32 `json:"updated_at,omitempty"`
}

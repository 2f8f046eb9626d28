package service

import (
	"context"

	"github.com/defitrack/pairstate/internal/multicall"
	"github.com/defitrack/pairstate/internal/protocol"
	"github.com/defitrack/pairstate/internal/service/dto"
)

// Service represents interface for business logic.
type Service interface {
	Lookup(ctx context.Context, req dto.LookupRequest) (*dto.PairState, error)
}

// PairService resolves and syncs liquidity pairs on a single network.
type PairService struct {
	mc      *multicall.Multicall
	network protocol.Network
}

// NewPairService creates PairService.
func NewPairService(mc *multicall.Multicall, network protocol.Network) *PairService {
	return &PairService{mc: mc, network: network}
}

package service

import (
	"context"

	"github.com/pkg/errors"

	"github.com/defitrack/pairstate/internal/service/dto"
	"github.com/defitrack/pairstate/internal/service/validate"
	"github.com/defitrack/pairstate/internal/uniswapv2"
)

// Lookup performs the complete business logic for a pair lookup.
//
// It validates the request, resolves the protocol's factory on the service's
// network, derives the deterministic pair address without a chain query, and
// refreshes the requested facets with a single batched round trip. A pair
// whose contract is not deployed comes back with Deployed=false; that is the
// expected steady state for speculative addresses, not an error.
func (s *PairService) Lookup(ctx context.Context, req dto.LookupRequest) (*dto.PairState, error) {
	if err := validate.LookupRequestValidate(req); err != nil {
		return nil, errors.Wrap(err, "validate.LookupRequestValidate")
	}

	factory, err := uniswapv2.NewFactoryForNetwork(s.mc, s.network, req.Protocol)
	if err != nil {
		return nil, errors.Wrap(err, "uniswapv2.NewFactoryForNetwork")
	}

	pair, err := factory.Pair(req.TokenA, req.TokenB)
	if err != nil {
		return nil, errors.Wrap(err, "factory.Pair")
	}

	if _, err := pair.Sync(ctx, req.SyncTokens, req.SyncReserves); err != nil {
		return nil, errors.Wrap(err, "pair.Sync")
	}

	state := &dto.PairState{
		Address:  pair.Address(),
		Deployed: pair.Deployed(),
	}
	if tokens, ok := pair.Tokens(); ok {
		state.Tokens = &tokens
	}
	if reserves, ok := pair.Reserves(); ok {
		state.Reserves = &reserves
	}

	return state, nil
}

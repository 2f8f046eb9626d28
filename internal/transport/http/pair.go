package http

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/defitrack/pairstate/internal/apperrors"
	"github.com/defitrack/pairstate/internal/service/dto"
	httpdto "github.com/defitrack/pairstate/internal/transport/http/dto"
	"github.com/defitrack/pairstate/internal/transport/http/validate"
)

func (s *Server) handlePair(w http.ResponseWriter, r *http.Request) {
	req, code, err := validate.PairRequestValidate(r)
	if err != nil {
		if code == 0 {
			code = http.StatusBadRequest
		}
		http.Error(w, err.Error(), code)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), s.requestTimeout)
	defer cancel()

	state, err := s.pairs.Lookup(ctx, dto.LookupRequest{
		Protocol:     req.Protocol,
		TokenA:       req.TokenA,
		TokenB:       req.TokenB,
		SyncTokens:   req.SyncTokens,
		SyncReserves: req.SyncReserves,
	})
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrInvalidArgument),
			errors.Is(err, apperrors.ErrIdenticalTokens),
			errors.Is(err, apperrors.ErrUnsupportedNetwork):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, apperrors.ErrTransport),
			errors.Is(err, apperrors.ErrMalformedResponse):
			http.Error(w, err.Error(), http.StatusBadGateway)
		default:
			http.Error(w, "internal error", http.StatusInternalServerError)
		}
		return
	}

	resp := httpdto.PairResponse{
		Address:  state.Address.Hex(),
		Deployed: state.Deployed,
	}
	if state.Tokens != nil {
		resp.Token0 = state.Tokens.Token0.Hex()
		resp.Token1 = state.Tokens.Token1.Hex()
	}
	if state.Reserves != nil {
		resp.Reserve0 = state.Reserves.Reserve0.String()
		resp.Reserve1 = state.Reserves.Reserve1.String()
		resp.UpdatedAt = state.Reserves.BlockTimestampLast
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Printf("pair write error: %v", err)
	}
}

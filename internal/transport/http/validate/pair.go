package validate

import (
	"net/http"
	"strconv"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"

	"github.com/defitrack/pairstate/internal/protocol"
	"github.com/defitrack/pairstate/internal/transport/http/dto"
)

// PairRequestValidate validates /pair request and returns dto.
//
// The tokens and reserves flags default to true when absent; passing both as
// false turns the lookup into a pure address derivation.
func PairRequestValidate(r *http.Request) (*dto.PairRequest, int, error) {
	q := r.URL.Query()
	protoStr := q.Get("protocol")
	tokenA := q.Get("token_a")
	tokenB := q.Get("token_b")
	if protoStr == "" || tokenA == "" || tokenB == "" {
		return nil, http.StatusBadRequest, errors.New("missing params")
	}
	if !common.IsHexAddress(tokenA) || !common.IsHexAddress(tokenB) {
		return nil, http.StatusBadRequest, errors.New("bad address format")
	}

	proto, err := protocol.Parse(protoStr)
	if err != nil {
		return nil, http.StatusBadRequest, errors.New("unknown protocol")
	}

	syncTokens, err := parseFlag(q.Get("tokens"))
	if err != nil {
		return nil, http.StatusBadRequest, errors.New("bad tokens flag")
	}
	syncReserves, err := parseFlag(q.Get("reserves"))
	if err != nil {
		return nil, http.StatusBadRequest, errors.New("bad reserves flag")
	}

	return &dto.PairRequest{
		Protocol:     proto,
		TokenA:       common.HexToAddress(tokenA),
		TokenB:       common.HexToAddress(tokenB),
		SyncTokens:   syncTokens,
		SyncReserves: syncReserves,
	}, 0, nil
}

func parseFlag(s string) (bool, error) {
	if s == "" {
		return true, nil
	}
	return strconv.ParseBool(s)
}

package validate

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"

	"github.com/defitrack/pairstate/internal/protocol"
)

func request(t *testing.T, query string) *http.Request {
	t.Helper()
	return httptest.NewRequest(http.MethodGet, "/pair?"+query, nil)
}

func TestPairRequestValidate(t *testing.T) {
	t.Parallel()

	const (
		tokenA = "0x1111111111111111111111111111111111111111"
		tokenB = "0x2222222222222222222222222222222222222222"
	)

	t.Run("valid request with defaults", func(t *testing.T) {
		t.Parallel()

		req, code, err := PairRequestValidate(request(t,
			"protocol=uniswapv2&token_a="+tokenA+"&token_b="+tokenB))
		require.NoError(t, err)
		require.Zero(t, code)
		require.Equal(t, protocol.UniswapV2, req.Protocol)
		require.Equal(t, common.HexToAddress(tokenA), req.TokenA)
		require.Equal(t, common.HexToAddress(tokenB), req.TokenB)
		require.True(t, req.SyncTokens)
		require.True(t, req.SyncReserves)
	})

	t.Run("explicit flags", func(t *testing.T) {
		t.Parallel()

		req, _, err := PairRequestValidate(request(t,
			"protocol=sushiswap&token_a="+tokenA+"&token_b="+tokenB+"&tokens=false&reserves=true"))
		require.NoError(t, err)
		require.Equal(t, protocol.SushiSwap, req.Protocol)
		require.False(t, req.SyncTokens)
		require.True(t, req.SyncReserves)
	})

	t.Run("missing params", func(t *testing.T) {
		t.Parallel()

		_, code, err := PairRequestValidate(request(t, "protocol=uniswapv2&token_a="+tokenA))
		require.Error(t, err)
		require.Equal(t, http.StatusBadRequest, code)
	})

	t.Run("bad address format", func(t *testing.T) {
		t.Parallel()

		_, code, err := PairRequestValidate(request(t,
			"protocol=uniswapv2&token_a=0x123&token_b="+tokenB))
		require.Error(t, err)
		require.Equal(t, http.StatusBadRequest, code)
	})

	t.Run("unknown protocol", func(t *testing.T) {
		t.Parallel()

		_, code, err := PairRequestValidate(request(t,
			"protocol=balancer&token_a="+tokenA+"&token_b="+tokenB))
		require.Error(t, err)
		require.Equal(t, http.StatusBadRequest, code)
	})

	t.Run("bad flag", func(t *testing.T) {
		t.Parallel()

		_, code, err := PairRequestValidate(request(t,
			"protocol=uniswapv2&token_a="+tokenA+"&token_b="+tokenB+"&tokens=maybe"))
		require.Error(t, err)
		require.Equal(t, http.StatusBadRequest, code)
	})
}

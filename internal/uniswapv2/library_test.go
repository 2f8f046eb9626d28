package uniswapv2

import (
	"math/rand"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"

	"github.com/defitrack/pairstate/internal/apperrors"
	"github.com/defitrack/pairstate/internal/protocol"
)

func TestSortTokens(t *testing.T) {
	t.Parallel()

	lesser := common.HexToAddress("0x1111111111111111111111111111111111111111")
	greater := common.HexToAddress("0x2222222222222222222222222222222222222222")

	t.Run("already sorted", func(t *testing.T) {
		t.Parallel()

		token0, token1, err := SortTokens(lesser, greater)
		require.NoError(t, err)
		require.Equal(t, lesser, token0)
		require.Equal(t, greater, token1)
	})

	t.Run("swapped input yields same order", func(t *testing.T) {
		t.Parallel()

		token0, token1, err := SortTokens(greater, lesser)
		require.NoError(t, err)
		require.Equal(t, lesser, token0)
		require.Equal(t, greater, token1)
	})

	t.Run("idempotent", func(t *testing.T) {
		t.Parallel()

		token0, token1, err := SortTokens(lesser, greater)
		require.NoError(t, err)
		again0, again1, err := SortTokens(token0, token1)
		require.NoError(t, err)
		require.Equal(t, token0, again0)
		require.Equal(t, token1, again1)
	})

	t.Run("identical addresses", func(t *testing.T) {
		t.Parallel()

		_, _, err := SortTokens(lesser, lesser)
		require.Error(t, err)
		require.ErrorIs(t, err, apperrors.ErrIdenticalTokens)
	})
}

func TestPairFor(t *testing.T) {
	t.Parallel()

	factory, ok := protocol.UniswapV2.FactoryAddress(protocol.Mainnet)
	require.True(t, ok)
	codeHash := protocol.UniswapV2.PairCodeHash()

	weth := common.HexToAddress("0xC02aaA39b223FE8D0A0e5C4F27eAD9083C756Cc2")
	usdc := common.HexToAddress("0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48")

	t.Run("known mainnet pair", func(t *testing.T) {
		t.Parallel()

		addr, err := PairFor(factory, codeHash, weth, usdc)
		require.NoError(t, err)
		require.Equal(t, common.HexToAddress("0xB4e16d0168e52d35CaCD2c6185b44281Ec28C9Dc"), addr)
	})

	t.Run("symmetric", func(t *testing.T) {
		t.Parallel()

		ab, err := PairFor(factory, codeHash, weth, usdc)
		require.NoError(t, err)
		ba, err := PairFor(factory, codeHash, usdc, weth)
		require.NoError(t, err)
		require.Equal(t, ab, ba)
	})

	t.Run("deterministic", func(t *testing.T) {
		t.Parallel()

		first, err := PairFor(factory, codeHash, weth, usdc)
		require.NoError(t, err)
		second, err := PairFor(factory, codeHash, weth, usdc)
		require.NoError(t, err)
		require.Equal(t, first, second)
	})

	t.Run("identical tokens", func(t *testing.T) {
		t.Parallel()

		_, err := PairFor(factory, codeHash, weth, weth)
		require.Error(t, err)
		require.ErrorIs(t, err, apperrors.ErrIdenticalTokens)
	})

	t.Run("distinct token pairs yield distinct addresses", func(t *testing.T) {
		t.Parallel()

		rng := rand.New(rand.NewSource(42))
		seen := make(map[common.Address]struct{})

		const pairs = 200
		for i := 0; i < pairs; i++ {
			var a, b common.Address
			rng.Read(a[:])
			rng.Read(b[:])
			if a == b {
				continue
			}

			addr, err := PairFor(factory, codeHash, a, b)
			require.NoError(t, err)

			_, dup := seen[addr]
			require.False(t, dup, "collision for pair %s/%s", a.Hex(), b.Hex())
			seen[addr] = struct{}{}
		}
	})
}

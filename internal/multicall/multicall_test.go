package multicall

import (
	"context"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/defitrack/pairstate/internal/apperrors"
	"github.com/defitrack/pairstate/internal/multicall/mock"
)

func newMulticall(t *testing.T) (*Multicall, *mock.MockEthCaller) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	caller := mock.NewMockEthCaller(ctrl)
	m, err := New(caller, DefaultAddress)
	require.NoError(t, err)
	return m, caller
}

func mustPackResponse(t *testing.T, m *Multicall, results []Result) []byte {
	t.Helper()

	out, err := m.cABI.Methods["aggregate3"].Outputs.Pack(results)
	require.NoError(t, err)
	return out
}

func TestAggregate(t *testing.T) {
	t.Parallel()

	target := common.HexToAddress("0x1111111111111111111111111111111111111111")
	calls := []Call{
		{Target: target, AllowFailure: true, CallData: crypto.Keccak256([]byte("token0()"))[:4]},
		{Target: target, AllowFailure: true, CallData: crypto.Keccak256([]byte("token1()"))[:4]},
	}

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		m, caller := newMulticall(t)
		want := []Result{
			{Success: true, ReturnData: common.HexToHash("0x01").Bytes()},
			{Success: false, ReturnData: []byte{}},
		}

		caller.EXPECT().
			CallContract(gomock.Any(), gomock.Any(), gomock.Nil()).
			DoAndReturn(func(_ context.Context, msg ethereum.CallMsg, _ *big.Int) ([]byte, error) {
				require.NotNil(t, msg.To)
				require.Equal(t, DefaultAddress, *msg.To)
				selector := crypto.Keccak256([]byte("aggregate3((address,bool,bytes)[])"))[:4]
				require.Equal(t, selector, msg.Data[:4])
				return mustPackResponse(t, m, want), nil
			})

		got, err := m.Aggregate(context.Background(), calls)
		require.NoError(t, err)
		require.Equal(t, want, got)
	})

	t.Run("call contract error", func(t *testing.T) {
		t.Parallel()

		m, caller := newMulticall(t)
		caller.EXPECT().
			CallContract(gomock.Any(), gomock.Any(), gomock.Nil()).
			Return(nil, errors.New("dial tcp: connection refused"))

		_, err := m.Aggregate(context.Background(), calls)
		require.Error(t, err)
		require.ErrorIs(t, err, apperrors.ErrTransport)
	})

	t.Run("garbage response", func(t *testing.T) {
		t.Parallel()

		m, caller := newMulticall(t)
		caller.EXPECT().
			CallContract(gomock.Any(), gomock.Any(), gomock.Nil()).
			Return([]byte("not abi data"), nil)

		_, err := m.Aggregate(context.Background(), calls)
		require.Error(t, err)
		require.ErrorIs(t, err, apperrors.ErrTransport)
	})

	t.Run("result length mismatch", func(t *testing.T) {
		t.Parallel()

		m, caller := newMulticall(t)
		caller.EXPECT().
			CallContract(gomock.Any(), gomock.Any(), gomock.Nil()).
			Return(mustPackResponse(t, m, []Result{{Success: true}}), nil)

		_, err := m.Aggregate(context.Background(), calls)
		require.Error(t, err)
		require.ErrorIs(t, err, apperrors.ErrTransport)
	})
}

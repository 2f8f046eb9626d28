package uniswapv2

import (
	"bytes"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"

	"github.com/defitrack/pairstate/internal/apperrors"
)

// SortTokens canonicalizes two token addresses into ascending raw-byte order.
// token0 is always the lesser address; this is the only ordering the rest of
// the package relies on.
func SortTokens(tokenA, tokenB common.Address) (common.Address, common.Address, error) {
	switch bytes.Compare(tokenA.Bytes(), tokenB.Bytes()) {
	case -1:
		return tokenA, tokenB, nil
	case 1:
		return tokenB, tokenA, nil
	default:
		return common.Address{}, common.Address{}, errors.Wrap(apperrors.ErrIdenticalTokens, tokenA.Hex())
	}
}

// PairFor computes the deterministic address of the pair the factory would
// deploy for the two tokens, without touching the network. The returned
// address may not hold a deployed contract.
//
// The address is the low 20 bytes of
// keccak256(0xff ++ factory ++ keccak256(token0 ++ token1) ++ codeHash).
func PairFor(factory common.Address, codeHash common.Hash, tokenA, tokenB common.Address) (common.Address, error) {
	token0, token1, err := SortTokens(tokenA, tokenB)
	if err != nil {
		return common.Address{}, errors.Wrap(err, "SortTokens")
	}

	salt := crypto.Keccak256(token0.Bytes(), token1.Bytes())

	data := append([]byte{0xff}, factory.Bytes()...)
	data = append(data, salt...)
	data = append(data, codeHash.Bytes()...)

	return common.BytesToAddress(crypto.Keccak256(data)), nil
}

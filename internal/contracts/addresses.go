package contracts

import (
	"github.com/ethereum/go-ethereum/common"

	"github.com/defitrack/pairstate/internal/protocol"
)

// TokenInfo bundles a token's address and decimals for lookup by symbol.
type TokenInfo struct {
	Address  common.Address
	Decimals int
	Symbol   string
}

var knownTokens = map[protocol.Network]map[string]TokenInfo{
	protocol.Mainnet: {
		"WETH": {common.HexToAddress("0xC02aaA39b223FE8D0A0e5C4F27eAD9083C756Cc2"), 18, "WETH"},
		"USDC": {common.HexToAddress("0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48"), 6, "USDC"},
		"USDT": {common.HexToAddress("0xdAC17F958D2ee523a2206206994597C13D831ec7"), 6, "USDT"},
		"DAI":  {common.HexToAddress("0x6B175474E89094C44Da98b954EedeAC495271d0F"), 18, "DAI"},
		"WBTC": {common.HexToAddress("0x2260FAC5E5542a773Aa44fBCfeDf7C193bc2C599"), 8, "WBTC"},
	},
	protocol.BSC: {
		"WBNB": {common.HexToAddress("0xbb4CdB9CBd36B01bD1cBaEBF2De08d9173bc095c"), 18, "WBNB"},
		"BUSD": {common.HexToAddress("0xe9e7CEA3DedcA5984780Bafc599bD69ADd087D56"), 18, "BUSD"},
	},
	protocol.Polygon: {
		"WMATIC": {common.HexToAddress("0x0d500B1d8E8eF31E21C99d1Db9A6444d3ADf1270"), 18, "WMATIC"},
		"USDC":   {common.HexToAddress("0x2791Bca1f2de4661ED88A30C99A7a9449Aa84174"), 6, "USDC"},
	},
}

// Token returns the token info for a symbol on the given network.
func Token(symbol string, network protocol.Network) (TokenInfo, bool) {
	info, ok := knownTokens[network][symbol]
	return info, ok
}

// Address returns the address of a token symbol on the given network.
func Address(symbol string, network protocol.Network) (common.Address, bool) {
	info, ok := Token(symbol, network)
	return info.Address, ok
}

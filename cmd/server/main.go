package main

import (
	"log"
	"os"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"

	"github.com/defitrack/pairstate/internal/config"
	"github.com/defitrack/pairstate/internal/multicall"
	"github.com/defitrack/pairstate/internal/protocol"
	"github.com/defitrack/pairstate/internal/service"
	transporthttp "github.com/defitrack/pairstate/internal/transport/http"
)

func main() {
	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = "cfg/config.yaml"
	}

	cfg := config.Load(path)

	rpc, err := ethclient.Dial(cfg.RPCURL)
	if err != nil {
		log.Fatalf("ethclient.Dial: %v", err)
	}

	mcAddr := multicall.DefaultAddress
	if cfg.MulticallAddress != "" {
		mcAddr = common.HexToAddress(cfg.MulticallAddress)
	}

	mc, err := multicall.New(rpc, mcAddr)
	if err != nil {
		log.Fatalf("multicall.New: %v", err)
	}

	svc := service.NewPairService(mc, protocol.Network(cfg.ChainID))

	srv, err := transporthttp.NewServer(svc, &cfg)
	if err != nil {
		log.Fatalf("transporthttp.NewServer: %v", err)
	}

	if err := srv.ListenAndServe(cfg.ListenAddr); err != nil {
		log.Fatalf("srv.ListenAndServe: %v", err)
	}
}

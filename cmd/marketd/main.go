package main

import (
	"net/http"

	"github.com/ZilDuck/zilliqa-nft-marketplace/generated/dic"
	"github.com/ZilDuck/zilliqa-nft-marketplace/internal/config"
	"go.uber.org/zap"
)

var container *dic.Container

func main() {
	config.Init()
	container, _ = dic.NewContainer()

	container.GetElastic().InstallMappings()
	container.GetActionIndexer().Subscribe()

	go container.GetDaemon().Execute()

	zap.L().With(zap.String("port", config.Get().Port)).Info("Marketplace Started")

	if err := http.ListenAndServe(":"+config.Get().Port, container.GetApi().Router()); err != nil {
		zap.L().With(zap.Error(err)).Fatal("Failed to start marketplace")
	}
}

package di

import (
	"time"

	"github.com/ZilDuck/zilliqa-nft-marketplace/internal/api"
	"github.com/ZilDuck/zilliqa-nft-marketplace/internal/config"
	"github.com/ZilDuck/zilliqa-nft-marketplace/internal/daemon"
	"github.com/ZilDuck/zilliqa-nft-marketplace/internal/elastic_search"
	"github.com/ZilDuck/zilliqa-nft-marketplace/internal/indexer"
	"github.com/ZilDuck/zilliqa-nft-marketplace/internal/ledger"
	"github.com/ZilDuck/zilliqa-nft-marketplace/internal/marketplace"
	"github.com/ZilDuck/zilliqa-nft-marketplace/internal/messenger"
	"github.com/ZilDuck/zilliqa-nft-marketplace/internal/repository"
	"github.com/ZilDuck/zilliqa-nft-marketplace/internal/zilliqa"
	"github.com/patrickmn/go-cache"
	"github.com/sarulabs/dingo/v4"
	"go.uber.org/zap"
)

var Definitions = []dingo.Def{
	{
		Name: "elastic",
		Build: func() (elastic_search.Index, error) {
			elastic, err := elastic_search.New()
			if err != nil {
				zap.L().With(zap.Error(err)).Fatal("Failed to start ES")
			}

			return elastic, nil
		},
	},
	{
		Name: "cache",
		Build: func() (*cache.Cache, error) {
			return cache.New(5*time.Minute, 10*time.Minute), nil
		},
	},
	{
		Name: "zilliqa",
		Build: func() (*zilliqa.Provider, error) {
			client, err := zilliqa.NewClient(
				config.Get().Zilliqa.Url,
				config.Get().Zilliqa.Timeout,
				config.Get().Zilliqa.Debug,
			)
			if err != nil {
				return nil, err
			}

			return zilliqa.NewProvider(client), nil
		},
	},
	{
		Name: "gateway",
		Build: func(provider *zilliqa.Provider) (zilliqa.Gateway, error) {
			return zilliqa.NewGateway(
				provider,
				config.Get().Zilliqa.Url,
				config.Get().Zilliqa.PrivateKey,
				config.Get().Zilliqa.ChainId,
				config.Get().Zilliqa.GasPrice,
			), nil
		},
	},
	{
		Name: "ledger",
		Build: func() (ledger.Ledger, error) {
			return ledger.NewMemoryLedger(), nil
		},
	},
	{
		Name: "collection.repo",
		Build: func(elastic elastic_search.Index, c *cache.Cache) (repository.CollectionRepository, error) {
			return repository.NewCollectionRepository(elastic, c), nil
		},
	},
	{
		Name: "messenger",
		Build: func() (messenger.MessageService, error) {
			return messenger.NewMessenger(config.Get().AmqpUri), nil
		},
	},
	{
		Name: "action.indexer",
		Build: func(elastic elastic_search.Index, messageService messenger.MessageService) (indexer.ActionIndexer, error) {
			return indexer.NewActionIndexer(elastic, messageService), nil
		},
	},
	{
		Name: "daemon",
		Build: func(elastic elastic_search.Index) (*daemon.Daemon, error) {
			return daemon.NewDaemon(elastic, 5), nil
		},
	},
	{
		Name: "api",
		Build: func(mp *marketplace.Marketplace) (api.Server, error) {
			return api.NewServer(mp), nil
		},
	},
	{
		Name: "marketplace",
		Build: func(
			l ledger.Ledger,
			gateway zilliqa.Gateway,
			collections repository.CollectionRepository,
		) (*marketplace.Marketplace, error) {
			mpConfig := config.Get().Marketplace

			fees := marketplace.FeeConfig{
				Owner:         mpConfig.Owner,
				Holding:       mpConfig.Holding,
				Dev:           mpConfig.Dev,
				Charity:       mpConfig.Charity,
				Team:          mpConfig.Team,
				DevFeeBps:     mpConfig.DevFeeBps,
				CharityFeeBps: mpConfig.CharityFeeBps,
				TeamFeeBps:    mpConfig.TeamFeeBps,
			}

			return marketplace.New(fees, l, gateway, collections, marketplace.SystemClock), nil
		},
	},
}

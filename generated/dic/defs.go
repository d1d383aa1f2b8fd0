package dic

import (
	"errors"

	"github.com/sarulabs/di/v2"
	"github.com/sarulabs/dingo/v4"

	api "github.com/ZilDuck/zilliqa-nft-marketplace/internal/api"
	daemon "github.com/ZilDuck/zilliqa-nft-marketplace/internal/daemon"
	elasticsearch "github.com/ZilDuck/zilliqa-nft-marketplace/internal/elastic_search"
	indexer "github.com/ZilDuck/zilliqa-nft-marketplace/internal/indexer"
	ledger "github.com/ZilDuck/zilliqa-nft-marketplace/internal/ledger"
	marketplace "github.com/ZilDuck/zilliqa-nft-marketplace/internal/marketplace"
	messenger "github.com/ZilDuck/zilliqa-nft-marketplace/internal/messenger"
	repository "github.com/ZilDuck/zilliqa-nft-marketplace/internal/repository"
	zilliqa "github.com/ZilDuck/zilliqa-nft-marketplace/internal/zilliqa"
	gocache "github.com/patrickmn/go-cache"
)

func getDiDefs(provider dingo.Provider) []di.Def {
	return []di.Def{
		{
			Name:  "action.indexer",
			Scope: "",
			Build: func(ctn di.Container) (interface{}, error) {
				d, err := provider.Get("action.indexer")
				if err != nil {
					var eo indexer.ActionIndexer
					return eo, err
				}
				pi0, err := ctn.SafeGet("elastic")
				if err != nil {
					var eo indexer.ActionIndexer
					return eo, err
				}
				p0, ok := pi0.(elasticsearch.Index)
				if !ok {
					var eo indexer.ActionIndexer
					return eo, errors.New("could not cast parameter 0 to elasticsearch.Index")
				}
				pi1, err := ctn.SafeGet("messenger")
				if err != nil {
					var eo indexer.ActionIndexer
					return eo, err
				}
				p1, ok := pi1.(messenger.MessageService)
				if !ok {
					var eo indexer.ActionIndexer
					return eo, errors.New("could not cast parameter 1 to messenger.MessageService")
				}
				b, ok := d.Build.(func(elasticsearch.Index, messenger.MessageService) (indexer.ActionIndexer, error))
				if !ok {
					var eo indexer.ActionIndexer
					return eo, errors.New("could not cast build function to func(elasticsearch.Index, messenger.MessageService) (indexer.ActionIndexer, error)")
				}
				return b(p0, p1)
			},
			Unshared: false,
		},
		{
			Name:  "api",
			Scope: "",
			Build: func(ctn di.Container) (interface{}, error) {
				d, err := provider.Get("api")
				if err != nil {
					var eo api.Server
					return eo, err
				}
				pi0, err := ctn.SafeGet("marketplace")
				if err != nil {
					var eo api.Server
					return eo, err
				}
				p0, ok := pi0.(*marketplace.Marketplace)
				if !ok {
					var eo api.Server
					return eo, errors.New("could not cast parameter 0 to *marketplace.Marketplace")
				}
				b, ok := d.Build.(func(*marketplace.Marketplace) (api.Server, error))
				if !ok {
					var eo api.Server
					return eo, errors.New("could not cast build function to func(*marketplace.Marketplace) (api.Server, error)")
				}
				return b(p0)
			},
			Unshared: false,
		},
		{
			Name:  "cache",
			Scope: "",
			Build: func(ctn di.Container) (interface{}, error) {
				d, err := provider.Get("cache")
				if err != nil {
					var eo *gocache.Cache
					return eo, err
				}
				b, ok := d.Build.(func() (*gocache.Cache, error))
				if !ok {
					var eo *gocache.Cache
					return eo, errors.New("could not cast build function to func() (*gocache.Cache, error)")
				}
				return b()
			},
			Unshared: false,
		},
		{
			Name:  "collection.repo",
			Scope: "",
			Build: func(ctn di.Container) (interface{}, error) {
				d, err := provider.Get("collection.repo")
				if err != nil {
					var eo repository.CollectionRepository
					return eo, err
				}
				pi0, err := ctn.SafeGet("elastic")
				if err != nil {
					var eo repository.CollectionRepository
					return eo, err
				}
				p0, ok := pi0.(elasticsearch.Index)
				if !ok {
					var eo repository.CollectionRepository
					return eo, errors.New("could not cast parameter 0 to elasticsearch.Index")
				}
				pi1, err := ctn.SafeGet("cache")
				if err != nil {
					var eo repository.CollectionRepository
					return eo, err
				}
				p1, ok := pi1.(*gocache.Cache)
				if !ok {
					var eo repository.CollectionRepository
					return eo, errors.New("could not cast parameter 1 to *gocache.Cache")
				}
				b, ok := d.Build.(func(elasticsearch.Index, *gocache.Cache) (repository.CollectionRepository, error))
				if !ok {
					var eo repository.CollectionRepository
					return eo, errors.New("could not cast build function to func(elasticsearch.Index, *gocache.Cache) (repository.CollectionRepository, error)")
				}
				return b(p0, p1)
			},
			Unshared: false,
		},
		{
			Name:  "daemon",
			Scope: "",
			Build: func(ctn di.Container) (interface{}, error) {
				d, err := provider.Get("daemon")
				if err != nil {
					var eo *daemon.Daemon
					return eo, err
				}
				pi0, err := ctn.SafeGet("elastic")
				if err != nil {
					var eo *daemon.Daemon
					return eo, err
				}
				p0, ok := pi0.(elasticsearch.Index)
				if !ok {
					var eo *daemon.Daemon
					return eo, errors.New("could not cast parameter 0 to elasticsearch.Index")
				}
				b, ok := d.Build.(func(elasticsearch.Index) (*daemon.Daemon, error))
				if !ok {
					var eo *daemon.Daemon
					return eo, errors.New("could not cast build function to func(elasticsearch.Index) (*daemon.Daemon, error)")
				}
				return b(p0)
			},
			Unshared: false,
		},
		{
			Name:  "elastic",
			Scope: "",
			Build: func(ctn di.Container) (interface{}, error) {
				d, err := provider.Get("elastic")
				if err != nil {
					var eo elasticsearch.Index
					return eo, err
				}
				b, ok := d.Build.(func() (elasticsearch.Index, error))
				if !ok {
					var eo elasticsearch.Index
					return eo, errors.New("could not cast build function to func() (elasticsearch.Index, error)")
				}
				return b()
			},
			Unshared: false,
		},
		{
			Name:  "gateway",
			Scope: "",
			Build: func(ctn di.Container) (interface{}, error) {
				d, err := provider.Get("gateway")
				if err != nil {
					var eo zilliqa.Gateway
					return eo, err
				}
				pi0, err := ctn.SafeGet("zilliqa")
				if err != nil {
					var eo zilliqa.Gateway
					return eo, err
				}
				p0, ok := pi0.(*zilliqa.Provider)
				if !ok {
					var eo zilliqa.Gateway
					return eo, errors.New("could not cast parameter 0 to *zilliqa.Provider")
				}
				b, ok := d.Build.(func(*zilliqa.Provider) (zilliqa.Gateway, error))
				if !ok {
					var eo zilliqa.Gateway
					return eo, errors.New("could not cast build function to func(*zilliqa.Provider) (zilliqa.Gateway, error)")
				}
				return b(p0)
			},
			Unshared: false,
		},
		{
			Name:  "ledger",
			Scope: "",
			Build: func(ctn di.Container) (interface{}, error) {
				d, err := provider.Get("ledger")
				if err != nil {
					var eo ledger.Ledger
					return eo, err
				}
				b, ok := d.Build.(func() (ledger.Ledger, error))
				if !ok {
					var eo ledger.Ledger
					return eo, errors.New("could not cast build function to func() (ledger.Ledger, error)")
				}
				return b()
			},
			Unshared: false,
		},
		{
			Name:  "marketplace",
			Scope: "",
			Build: func(ctn di.Container) (interface{}, error) {
				d, err := provider.Get("marketplace")
				if err != nil {
					var eo *marketplace.Marketplace
					return eo, err
				}
				pi0, err := ctn.SafeGet("ledger")
				if err != nil {
					var eo *marketplace.Marketplace
					return eo, err
				}
				p0, ok := pi0.(ledger.Ledger)
				if !ok {
					var eo *marketplace.Marketplace
					return eo, errors.New("could not cast parameter 0 to ledger.Ledger")
				}
				pi1, err := ctn.SafeGet("gateway")
				if err != nil {
					var eo *marketplace.Marketplace
					return eo, err
				}
				p1, ok := pi1.(zilliqa.Gateway)
				if !ok {
					var eo *marketplace.Marketplace
					return eo, errors.New("could not cast parameter 1 to zilliqa.Gateway")
				}
				pi2, err := ctn.SafeGet("collection.repo")
				if err != nil {
					var eo *marketplace.Marketplace
					return eo, err
				}
				p2, ok := pi2.(repository.CollectionRepository)
				if !ok {
					var eo *marketplace.Marketplace
					return eo, errors.New("could not cast parameter 2 to repository.CollectionRepository")
				}
				b, ok := d.Build.(func(ledger.Ledger, zilliqa.Gateway, repository.CollectionRepository) (*marketplace.Marketplace, error))
				if !ok {
					var eo *marketplace.Marketplace
					return eo, errors.New("could not cast build function to func(ledger.Ledger, zilliqa.Gateway, repository.CollectionRepository) (*marketplace.Marketplace, error)")
				}
				return b(p0, p1, p2)
			},
			Unshared: false,
		},
		{
			Name:  "messenger",
			Scope: "",
			Build: func(ctn di.Container) (interface{}, error) {
				d, err := provider.Get("messenger")
				if err != nil {
					var eo messenger.MessageService
					return eo, err
				}
				b, ok := d.Build.(func() (messenger.MessageService, error))
				if !ok {
					var eo messenger.MessageService
					return eo, errors.New("could not cast build function to func() (messenger.MessageService, error)")
				}
				return b()
			},
			Unshared: false,
		},
		{
			Name:  "zilliqa",
			Scope: "",
			Build: func(ctn di.Container) (interface{}, error) {
				d, err := provider.Get("zilliqa")
				if err != nil {
					var eo *zilliqa.Provider
					return eo, err
				}
				b, ok := d.Build.(func() (*zilliqa.Provider, error))
				if !ok {
					var eo *zilliqa.Provider
					return eo, errors.New("could not cast build function to func() (*zilliqa.Provider, error)")
				}
				return b()
			},
			Unshared: false,
		},
	}
}

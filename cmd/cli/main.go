package main

import (
	"errors"
	"os"
	"strconv"
	"strings"

	"github.com/ZilDuck/zilliqa-nft-marketplace/generated/dic"
	"github.com/ZilDuck/zilliqa-nft-marketplace/internal/config"
	"github.com/ZilDuck/zilliqa-nft-marketplace/internal/dev"
	"github.com/ZilDuck/zilliqa-nft-marketplace/internal/elastic_search"
	"github.com/ZilDuck/zilliqa-nft-marketplace/internal/entity"
	"github.com/ZilDuck/zilliqa-nft-marketplace/internal/factory"
	"github.com/ZilDuck/zilliqa-nft-marketplace/internal/marketplace"
	"github.com/ZilDuck/zilliqa-nft-marketplace/internal/repository"
	"github.com/ZilDuck/zilliqa-nft-marketplace/internal/zilliqa"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

var (
	container      *dic.Container
	elastic        elastic_search.Index
	provider       *zilliqa.Provider
	collectionRepo repository.CollectionRepository
	mp             *marketplace.Marketplace
)

func main() {
	config.Init()

	container, _ = dic.NewContainer()
	elastic = container.GetElastic()
	provider = container.GetZilliqa()
	collectionRepo = container.GetCollectionRepo()
	mp = container.GetMarketplace()

	app := &cli.App{
		Commands: []*cli.Command{
			{
				Name:   "registerCollection",
				Usage:  "Register an external ZRC-6 contract so its tokens can be listed",
				Action: registerCollection,
			},
			{
				Name:   "verifyCollection",
				Usage:  "Mark a registered collection as verified",
				Action: verifyCollection,
			},
			{
				Name:   "royaltySplit",
				Usage:  "Configure the auction royalty split table for a collection (dest:bps pairs)",
				Action: configureRoyaltySplit,
			},
			{
				Name:   "emergencyCancel",
				Usage:  "Force delist a sale and return the token to its seller",
				Action: emergencyCancel,
			},
			{
				Name:   "claim",
				Usage:  "Retry a pending custody release",
				Action: claim,
			},
			{
				Name:   "claimFunds",
				Usage:  "Retry the parked payouts for an account",
				Action: claimFunds,
			},
			{
				Name:   "pause",
				Usage:  "Pause the marketplace",
				Action: pause,
			},
			{
				Name:   "unpause",
				Usage:  "Unpause the marketplace",
				Action: unpause,
			},
			{
				Name:   "listings",
				Usage:  "Show the active listings for a collection",
				Action: listings,
			},
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		zap.L().With(zap.Error(err)).Fatal("Failed to start CLI")
	}
}

// COLLECTIONS
func registerCollection(c *cli.Context) error {
	contractAddr := c.Args().First()
	if contractAddr == "" {
		return errors.New("no contract provided")
	}

	registered, err := collectionRepo.IsRegistered(contractAddr)
	if err != nil {
		return err
	}
	if registered {
		zap.S().Errorf("Collection already registered: %s", contractAddr)
		return nil
	}

	init, err := provider.GetSmartContractInit(contractAddr)
	if err != nil {
		zap.L().With(zap.Error(err)).Error("Failed to get contract init")
		return err
	}

	collection, err := factory.CreateCollectionFromInit(contractAddr, init)
	if err != nil {
		zap.S().Errorf("Not a ZRC-6 contract: %s", contractAddr)
		return err
	}

	elastic.Save(elastic_search.CollectionIndex.Get(), collection)
	zap.S().Infof("Registered collection %s (%s)", collection.Name, collection.Address)

	return nil
}

func verifyCollection(c *cli.Context) error {
	contractAddr := c.Args().First()
	if contractAddr == "" {
		return errors.New("no contract provided")
	}

	collection, err := collectionRepo.GetCollectionByAddress(contractAddr)
	if err != nil {
		zap.S().Errorf("Failed to find collection: %s", contractAddr)
		return err
	}

	collection.Verified = true
	elastic.Save(elastic_search.CollectionIndex.Get(), *collection)
	zap.S().Infof("Verified collection %s", contractAddr)

	return nil
}

// MARKETPLACE
func configureRoyaltySplit(c *cli.Context) error {
	contractAddr := c.Args().First()
	if contractAddr == "" {
		return errors.New("no contract provided")
	}

	splits := make([]entity.RoyaltySplit, 0)
	for _, pair := range c.Args().Tail() {
		parts := strings.Split(pair, ":")
		if len(parts) != 2 {
			return errors.New("splits must be provided as destination:bps")
		}

		bps, err := strconv.ParseUint(parts[1], 10, 64)
		if err != nil {
			return err
		}

		splits = append(splits, entity.RoyaltySplit{Destination: parts[0], Bps: bps})
	}

	owner := config.Get().Marketplace.Owner
	if err := mp.ConfigureRoyaltySplit(owner, contractAddr, splits); err != nil {
		zap.L().With(zap.Error(err)).Error("Failed to configure royalty split")
		return err
	}

	zap.S().Infof("Configured %d royalty splits for %s", len(splits), contractAddr)

	return nil
}

func emergencyCancel(c *cli.Context) error {
	contractAddr, tokenId, err := listingArgs(c)
	if err != nil {
		return err
	}

	owner := config.Get().Marketplace.Owner
	if err := mp.EmergencyCancelSale(owner, contractAddr, tokenId); err != nil {
		zap.L().With(zap.Error(err)).Error("Failed to cancel sale")
		return err
	}

	zap.S().Infof("Cancelled sale of %s %d", contractAddr, tokenId)

	return nil
}

func claim(c *cli.Context) error {
	contractAddr, tokenId, err := listingArgs(c)
	if err != nil {
		return err
	}

	if err := mp.ClaimPendingRelease(contractAddr, tokenId); err != nil {
		zap.L().With(zap.Error(err)).Error("Failed to claim pending release")
		return err
	}

	zap.S().Infof("Released %s %d", contractAddr, tokenId)

	return nil
}

func claimFunds(c *cli.Context) error {
	account := c.Args().First()
	if account == "" {
		return errors.New("no account provided")
	}

	if err := mp.ClaimPayout(account); err != nil {
		zap.L().With(zap.Error(err)).Error("Failed to claim pending payout")
		return err
	}

	zap.S().Infof("Paid out pending funds to %s", account)

	return nil
}

func pause(c *cli.Context) error {
	return mp.Pause(config.Get().Marketplace.Owner)
}

func unpause(c *cli.Context) error {
	return mp.Unpause(config.Get().Marketplace.Owner)
}

func listings(c *cli.Context) error {
	contractAddr := c.Args().First()
	if contractAddr == "" {
		return errors.New("no contract provided")
	}

	for _, tokenId := range mp.ListByContract(contractAddr) {
		if sale, err := mp.GetSale(contractAddr, tokenId); err == nil {
			dev.Dump(sale)
			continue
		}
		if auction, err := mp.GetAuction(contractAddr, tokenId); err == nil {
			dev.Dump(auction)
		}
	}

	zap.S().Infof("%d active listings for %s", mp.Count(contractAddr), contractAddr)

	return nil
}

func listingArgs(c *cli.Context) (string, uint64, error) {
	contractAddr := c.Args().First()
	if contractAddr == "" {
		return "", 0, errors.New("no contract provided")
	}

	tokenId, err := strconv.ParseUint(c.Args().Get(1), 10, 64)
	if err != nil {
		return "", 0, errors.New("no token id provided")
	}

	return contractAddr, tokenId, nil
}

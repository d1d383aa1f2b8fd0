package repository

import (
	"encoding/json"
	"errors"

	"github.com/ZilDuck/zilliqa-nft-marketplace/internal/elastic_search"
	"github.com/ZilDuck/zilliqa-nft-marketplace/internal/entity"
	"github.com/olivere/elastic/v7"
	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"
)

var (
	ErrCollectionNotFound = errors.New("collection not found")
)

// CollectionRepository answers whether an external NFT contract is known to
// the marketplace and whether it has been verified by the platform.
type CollectionRepository interface {
	GetCollectionByAddress(contractAddr string) (*entity.Collection, error)
	GetAllCollections(size, page int) ([]entity.Collection, int64, error)
	IsRegistered(contractAddr string) (bool, error)
	IsVerified(contractAddr string) (bool, error)
}

type collectionRepository struct {
	elastic elastic_search.Index
	cache   *cache.Cache
}

func NewCollectionRepository(elastic elastic_search.Index, c *cache.Cache) CollectionRepository {
	return collectionRepository{elastic, c}
}

func (r collectionRepository) GetCollectionByAddress(contractAddr string) (*entity.Collection, error) {
	if cached, found := r.cache.Get(entity.CreateCollectionSlug(contractAddr)); found {
		collection := cached.(entity.Collection)
		return &collection, nil
	}

	pendingRequest := r.elastic.GetRequest(entity.CreateCollectionSlug(contractAddr))
	if pendingRequest != nil {
		pendingCollection := pendingRequest.Entity.(entity.Collection)
		return &pendingCollection, nil
	}

	results, err := search(r.elastic.GetClient().
		Search(elastic_search.CollectionIndex.Get()).
		Query(elastic.NewTermQuery("address.keyword", contractAddr)))

	collection, err := r.findOne(results, err)
	if err != nil {
		if errors.Is(err, ErrCollectionNotFound) {
			zap.S().Warnf("%s: %s", err.Error(), contractAddr)
		}
		return nil, err
	}

	r.cache.Set(collection.Slug(), *collection, cache.DefaultExpiration)

	return collection, nil
}

func (r collectionRepository) GetAllCollections(size, page int) ([]entity.Collection, int64, error) {
	from := size*page - size

	results, err := search(r.elastic.GetClient().
		Search(elastic_search.CollectionIndex.Get()).
		Sort("blockNum", true).
		Size(size).
		From(from))

	return r.findMany(results, err)
}

func (r collectionRepository) IsRegistered(contractAddr string) (bool, error) {
	_, err := r.GetCollectionByAddress(contractAddr)
	if err != nil {
		if errors.Is(err, ErrCollectionNotFound) {
			return false, nil
		}
		return false, err
	}

	return true, nil
}

func (r collectionRepository) IsVerified(contractAddr string) (bool, error) {
	collection, err := r.GetCollectionByAddress(contractAddr)
	if err != nil {
		if errors.Is(err, ErrCollectionNotFound) {
			return false, nil
		}
		return false, err
	}

	return collection.Verified, nil
}

func (r collectionRepository) findOne(results *elastic.SearchResult, err error) (*entity.Collection, error) {
	if err != nil {
		return nil, err
	}

	if len(results.Hits.Hits) == 0 {
		return nil, ErrCollectionNotFound
	}

	var collection entity.Collection
	hit := results.Hits.Hits[0]
	if err = json.Unmarshal(hit.Source, &collection); err != nil {
		return nil, err
	}

	return &collection, nil
}

func (r collectionRepository) findMany(results *elastic.SearchResult, err error) ([]entity.Collection, int64, error) {
	collections := make([]entity.Collection, 0)

	if err != nil {
		return collections, 0, err
	}

	for _, hit := range results.Hits.Hits {
		var collection entity.Collection
		if err := json.Unmarshal(hit.Source, &collection); err == nil {
			collections = append(collections, collection)
		}
	}

	return collections, results.TotalHits(), nil
}

package marketplace

import (
	"math/big"

	"github.com/ZilDuck/zilliqa-nft-marketplace/internal/entity"
	"go.uber.org/zap"
)

// maxPriceBits is the widest price the listing records accept. Prices are
// quoted in the base fungible unit (Qa), which comfortably fits 128 bits.
const maxPriceBits = 128

// ListingRegistry owns the sale and auction records and the secondary indices
// over them. After any successful mutation a tokenId is present in the
// contract and seller indices iff a primary record exists for its key.
type ListingRegistry struct {
	sales    map[entity.ListingKey]entity.Sale
	auctions map[entity.ListingKey]entity.Auction

	byContract map[string][]uint64
	bySeller   map[string]map[string][]uint64
}

func NewListingRegistry() *ListingRegistry {
	return &ListingRegistry{
		sales:      make(map[entity.ListingKey]entity.Sale),
		auctions:   make(map[entity.ListingKey]entity.Auction),
		byContract: make(map[string][]uint64),
		bySeller:   make(map[string]map[string][]uint64),
	}
}

func (r *ListingRegistry) CreateSale(contract string, tokenId uint64, seller string, price *big.Int, now uint64) (*entity.Sale, error) {
	key := entity.ListingKey{Contract: contract, TokenId: tokenId}
	if r.IsListed(key) {
		return nil, ErrAlreadyListed
	}

	if price == nil || price.Sign() <= 0 {
		return nil, ErrPriceTooLow
	}
	if price.BitLen() > maxPriceBits {
		return nil, ErrOverflowRange
	}

	sale := entity.Sale{
		Contract:  contract,
		TokenId:   tokenId,
		Seller:    seller,
		Price:     new(big.Int).Set(price),
		StartedAt: now,
	}

	r.sales[key] = sale
	r.indexAdd(contract, seller, tokenId)

	zap.L().With(
		zap.String("contract", contract),
		zap.Uint64("tokenId", tokenId),
		zap.String("seller", seller),
		zap.String("price", price.String()),
	).Info("Registry: Sale created")

	return &sale, nil
}

func (r *ListingRegistry) CreateAuction(contract string, tokenId uint64, seller string, startingPrice, endingPrice *big.Int, duration, now uint64) (*entity.Auction, error) {
	key := entity.ListingKey{Contract: contract, TokenId: tokenId}
	if r.IsListed(key) {
		return nil, ErrAlreadyListed
	}

	if startingPrice == nil || startingPrice.Sign() <= 0 {
		return nil, ErrPriceTooLow
	}
	if endingPrice == nil || endingPrice.Sign() < 0 {
		return nil, ErrPriceTooLow
	}
	if startingPrice.BitLen() > maxPriceBits || endingPrice.BitLen() > maxPriceBits {
		return nil, ErrOverflowRange
	}
	if duration == 0 {
		return nil, ErrOverflowRange
	}

	auction := entity.Auction{
		Contract:      contract,
		TokenId:       tokenId,
		Seller:        seller,
		StartingPrice: new(big.Int).Set(startingPrice),
		EndingPrice:   new(big.Int).Set(endingPrice),
		Duration:      duration,
		StartedAt:     now,
	}

	r.auctions[key] = auction
	r.indexAdd(contract, seller, tokenId)

	zap.L().With(
		zap.String("contract", contract),
		zap.Uint64("tokenId", tokenId),
		zap.String("seller", seller),
		zap.String("startingPrice", startingPrice.String()),
		zap.String("endingPrice", endingPrice.String()),
		zap.Uint64("duration", duration),
	).Info("Registry: Auction created")

	return &auction, nil
}

func (r *ListingRegistry) GetSale(contract string, tokenId uint64) (entity.Sale, error) {
	sale, ok := r.sales[entity.ListingKey{Contract: contract, TokenId: tokenId}]
	if !ok {
		return entity.Sale{}, ErrNotListed
	}

	return sale, nil
}

func (r *ListingRegistry) GetAuction(contract string, tokenId uint64) (entity.Auction, error) {
	auction, ok := r.auctions[entity.ListingKey{Contract: contract, TokenId: tokenId}]
	if !ok {
		return entity.Auction{}, ErrNotAuctioned
	}

	return auction, nil
}

func (r *ListingRegistry) RemoveSale(contract string, tokenId uint64) (entity.Sale, error) {
	key := entity.ListingKey{Contract: contract, TokenId: tokenId}
	sale, ok := r.sales[key]
	if !ok {
		return entity.Sale{}, ErrNotListed
	}

	delete(r.sales, key)
	r.indexRemove(contract, sale.Seller, tokenId)

	zap.L().With(
		zap.String("contract", contract),
		zap.Uint64("tokenId", tokenId),
	).Info("Registry: Sale removed")

	return sale, nil
}

func (r *ListingRegistry) RemoveAuction(contract string, tokenId uint64) (entity.Auction, error) {
	key := entity.ListingKey{Contract: contract, TokenId: tokenId}
	auction, ok := r.auctions[key]
	if !ok {
		return entity.Auction{}, ErrNotAuctioned
	}

	delete(r.auctions, key)
	r.indexRemove(contract, auction.Seller, tokenId)

	zap.L().With(
		zap.String("contract", contract),
		zap.Uint64("tokenId", tokenId),
	).Info("Registry: Auction removed")

	return auction, nil
}

func (r *ListingRegistry) IsListed(key entity.ListingKey) bool {
	if _, ok := r.sales[key]; ok {
		return true
	}
	_, ok := r.auctions[key]

	return ok
}

func (r *ListingRegistry) IsAuctioned(key entity.ListingKey) bool {
	_, ok := r.auctions[key]
	return ok
}

// TokenIdsByContract returns a snapshot of the listed token ids for a
// contract. Removal reorders the underlying set, so the order carries no
// meaning.
func (r *ListingRegistry) TokenIdsByContract(contract string) []uint64 {
	return copyTokenIds(r.byContract[contract])
}

func (r *ListingRegistry) TokenIdsBySeller(seller, contract string) []uint64 {
	contracts, ok := r.bySeller[seller]
	if !ok {
		return []uint64{}
	}

	return copyTokenIds(contracts[contract])
}

func (r *ListingRegistry) Count(contract string) int {
	return len(r.byContract[contract])
}

// CheckInvariant cross-checks the primary records against the contract index.
// A mismatch is a fatal bookkeeping bug, not a caller error.
func (r *ListingRegistry) CheckInvariant() error {
	indexed := 0
	for contract, tokenIds := range r.byContract {
		indexed += len(tokenIds)
		for _, tokenId := range tokenIds {
			if !r.IsListed(entity.ListingKey{Contract: contract, TokenId: tokenId}) {
				return ErrInvariantViolation
			}
		}
	}

	if indexed != len(r.sales)+len(r.auctions) {
		return ErrInvariantViolation
	}

	return nil
}

func (r *ListingRegistry) indexAdd(contract, seller string, tokenId uint64) {
	r.byContract[contract] = append(r.byContract[contract], tokenId)

	if _, ok := r.bySeller[seller]; !ok {
		r.bySeller[seller] = make(map[string][]uint64)
	}
	r.bySeller[seller][contract] = append(r.bySeller[seller][contract], tokenId)
}

func (r *ListingRegistry) indexRemove(contract, seller string, tokenId uint64) {
	r.byContract[contract] = swapAndPop(r.byContract[contract], tokenId)
	if len(r.byContract[contract]) == 0 {
		delete(r.byContract, contract)
	}

	if contracts, ok := r.bySeller[seller]; ok {
		contracts[contract] = swapAndPop(contracts[contract], tokenId)
		if len(contracts[contract]) == 0 {
			delete(contracts, contract)
		}
		if len(contracts) == 0 {
			delete(r.bySeller, seller)
		}
	}
}

// swapAndPop removes tokenId by overwriting it with the last element and
// truncating. Membership is preserved, order is not.
func swapAndPop(tokenIds []uint64, tokenId uint64) []uint64 {
	for idx := range tokenIds {
		if tokenIds[idx] == tokenId {
			tokenIds[idx] = tokenIds[len(tokenIds)-1]
			return tokenIds[:len(tokenIds)-1]
		}
	}

	return tokenIds
}

func copyTokenIds(tokenIds []uint64) []uint64 {
	snapshot := make([]uint64, len(tokenIds))
	copy(snapshot, tokenIds)

	return snapshot
}

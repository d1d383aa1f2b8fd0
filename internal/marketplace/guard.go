package marketplace

import (
	"github.com/ZilDuck/zilliqa-nft-marketplace/internal/entity"
	"github.com/ZilDuck/zilliqa-nft-marketplace/internal/repository"
)

// AccessGuard is the set of capability checks consulted before any mutating
// operation. Every check is read-only; a failed check aborts the enclosing
// operation before it touches registry, order book or escrow state.
type AccessGuard struct {
	registry    *ListingRegistry
	book        *OrderBook
	gateway     TokenGateway
	collections repository.CollectionRepository
}

func NewAccessGuard(registry *ListingRegistry, book *OrderBook, gateway TokenGateway, collections repository.CollectionRepository) *AccessGuard {
	return &AccessGuard{registry: registry, book: book, gateway: gateway, collections: collections}
}

func (g *AccessGuard) IsListed(key entity.ListingKey) error {
	if !g.registry.IsListed(key) {
		return ErrNotListed
	}

	return nil
}

func (g *AccessGuard) IsNotListed(key entity.ListingKey) error {
	if g.registry.IsListed(key) {
		return ErrAlreadyListed
	}

	return nil
}

func (g *AccessGuard) IsAuctioned(key entity.ListingKey) error {
	if !g.registry.IsAuctioned(key) {
		return ErrNotAuctioned
	}

	return nil
}

func (g *AccessGuard) CallerOwnsToken(caller, contract string, tokenId uint64) error {
	owner, err := g.gateway.OwnerOf(contract, tokenId)
	if err != nil {
		return ErrExternalTransfer
	}
	if owner != caller {
		return ErrUnauthorized
	}

	return nil
}

func (g *AccessGuard) CallerIsSeller(caller string, sale entity.Sale) error {
	if sale.Seller != caller {
		return ErrUnauthorized
	}

	return nil
}

func (g *AccessGuard) CallerIsNotSeller(caller string, sale entity.Sale) error {
	if sale.Seller == caller {
		return ErrUnauthorized
	}

	return nil
}

func (g *AccessGuard) CallerIsAuctioneer(caller string, auction entity.Auction) error {
	if auction.Seller != caller {
		return ErrUnauthorized
	}

	return nil
}

func (g *AccessGuard) CallerIsNotAuctioneer(caller string, auction entity.Auction) error {
	if auction.Seller == caller {
		return ErrUnauthorized
	}

	return nil
}

func (g *AccessGuard) HasOffer(key entity.ListingKey, offerer string) error {
	if !g.book.HasOffer(key, offerer) {
		return ErrOfferNotFound
	}

	return nil
}

func (g *AccessGuard) HasNoOffer(key entity.ListingKey, offerer string) error {
	if g.book.HasOffer(key, offerer) {
		return ErrDuplicateOffer
	}

	return nil
}

func (g *AccessGuard) HasBid(key entity.ListingKey, bidder string) error {
	if !g.book.HasBid(key, bidder) {
		return ErrBidNotFound
	}

	return nil
}

func (g *AccessGuard) HasNoBid(key entity.ListingKey, bidder string) error {
	if g.book.HasBid(key, bidder) {
		return ErrDuplicateBid
	}

	return nil
}

func (g *AccessGuard) ContractIsRegistered(contract string) error {
	registered, err := g.collections.IsRegistered(contract)
	if err != nil {
		return err
	}
	if !registered {
		return ErrContractNotRegistered
	}

	return nil
}

func (g *AccessGuard) ContractIsVerified(contract string) error {
	verified, err := g.collections.IsVerified(contract)
	if err != nil {
		return err
	}
	if !verified {
		return ErrContractNotVerified
	}

	return nil
}

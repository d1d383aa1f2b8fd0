package marketplace

import (
	"math/big"

	"github.com/ZilDuck/zilliqa-nft-marketplace/internal/entity"
	"github.com/ZilDuck/zilliqa-nft-marketplace/internal/ledger"
	"go.uber.org/zap"
)

// OrderBook owns the offer and bid sequences attached to listings. Offers are
// kept in ascending price order, bids in insertion order with strictly
// increasing prices, so the best order of either kind is always the last
// element. Placed amounts are escrowed into the holding account and refunded
// on cancellation or when the owning listing is removed.
type OrderBook struct {
	offers map[entity.ListingKey][]entity.Offer
	bids   map[entity.ListingKey][]entity.Bid

	ledger  ledger.Ledger
	holding string
	refund  func(account string, amount *big.Int)
}

// NewOrderBook wires the book to the ledger for escrow and to a refund
// function for bulk refunds on listing removal. The refund function must not
// fail; rejected refunds are parked on the settlement side.
func NewOrderBook(l ledger.Ledger, holding string, refund func(account string, amount *big.Int)) *OrderBook {
	return &OrderBook{
		offers:  make(map[entity.ListingKey][]entity.Offer),
		bids:    make(map[entity.ListingKey][]entity.Bid),
		ledger:  l,
		holding: holding,
		refund:  refund,
	}
}

// PlaceOffer escrows the offered amount and inserts the offer keeping the
// sequence sorted by ascending price. Offers must undercut the asking price;
// one outstanding offer per offerer.
func (b *OrderBook) PlaceOffer(sale entity.Sale, offerer string, price *big.Int, now uint64) (*entity.Offer, error) {
	if price == nil || price.Sign() <= 0 {
		return nil, ErrPriceTooLow
	}
	if price.Cmp(sale.Price) >= 0 {
		return nil, ErrPriceTooHigh
	}

	key := sale.Key()
	for _, offer := range b.offers[key] {
		if offer.Offerer == offerer {
			return nil, ErrDuplicateOffer
		}
	}

	if err := b.ledger.Transfer(offerer, b.holding, price); err != nil {
		zap.L().With(zap.String("offerer", offerer), zap.Error(err)).Warn("OrderBook: Failed to escrow offer")
		return nil, err
	}

	offer := entity.Offer{
		Contract: sale.Contract,
		TokenId:  sale.TokenId,
		Offerer:  offerer,
		Price:    new(big.Int).Set(price),
		Time:     now,
	}

	// Scan-and-shift insert. Offer counts per listing are small, so the
	// linear cost is fine.
	offers := append(b.offers[key], entity.Offer{})
	pos := len(offers) - 1
	for pos > 0 && offers[pos-1].Price.Cmp(offer.Price) > 0 {
		offers[pos] = offers[pos-1]
		pos--
	}
	offers[pos] = offer
	b.offers[key] = offers

	zap.L().With(
		zap.String("contract", sale.Contract),
		zap.Uint64("tokenId", sale.TokenId),
		zap.String("offerer", offerer),
		zap.String("price", price.String()),
	).Info("OrderBook: Offer placed")

	return &offer, nil
}

// PlaceBid escrows the bid amount and appends the bid. A bid must reach the
// current decayed price and strictly exceed the previous highest bid, so the
// sequence stays strictly increasing by construction.
func (b *OrderBook) PlaceBid(auction entity.Auction, bidder string, price *big.Int, now uint64) (*entity.Bid, error) {
	if auction.Expired(now) {
		return nil, ErrExpired
	}

	if price == nil || price.Sign() <= 0 {
		return nil, ErrPriceTooLow
	}

	key := auction.Key()
	bids := b.bids[key]
	for _, bid := range bids {
		if bid.Bidder == bidder {
			return nil, ErrDuplicateBid
		}
	}

	current := CurrentPrice(auction.StartingPrice, auction.EndingPrice, auction.Duration, auction.Elapsed(now))
	if price.Cmp(current) < 0 {
		return nil, ErrPriceTooLow
	}
	if len(bids) > 0 && price.Cmp(bids[len(bids)-1].Price) <= 0 {
		return nil, ErrPriceTooLow
	}

	if err := b.ledger.Transfer(bidder, b.holding, price); err != nil {
		zap.L().With(zap.String("bidder", bidder), zap.Error(err)).Warn("OrderBook: Failed to escrow bid")
		return nil, err
	}

	bid := entity.Bid{
		Contract: auction.Contract,
		TokenId:  auction.TokenId,
		Bidder:   bidder,
		Price:    new(big.Int).Set(price),
		Time:     now,
	}
	b.bids[key] = append(bids, bid)

	zap.L().With(
		zap.String("contract", auction.Contract),
		zap.Uint64("tokenId", auction.TokenId),
		zap.String("bidder", bidder),
		zap.String("price", price.String()),
	).Info("OrderBook: Bid placed")

	return &bid, nil
}

// CancelOffer refunds the offerer's escrowed amount and compacts the sequence
// preserving relative order.
func (b *OrderBook) CancelOffer(key entity.ListingKey, offerer string) (*entity.Offer, error) {
	offers := b.offers[key]
	for idx := range offers {
		if offers[idx].Offerer != offerer {
			continue
		}

		offer := offers[idx]
		if err := b.ledger.Transfer(b.holding, offerer, offer.Price); err != nil {
			zap.L().With(zap.String("offerer", offerer), zap.Error(err)).Error("OrderBook: Failed to refund offer")
			return nil, err
		}

		b.offers[key] = append(offers[:idx], offers[idx+1:]...)
		if len(b.offers[key]) == 0 {
			delete(b.offers, key)
		}

		return &offer, nil
	}

	return nil, ErrOfferNotFound
}

func (b *OrderBook) CancelBid(key entity.ListingKey, bidder string) (*entity.Bid, error) {
	bids := b.bids[key]
	for idx := range bids {
		if bids[idx].Bidder != bidder {
			continue
		}

		bid := bids[idx]
		if err := b.ledger.Transfer(b.holding, bidder, bid.Price); err != nil {
			zap.L().With(zap.String("bidder", bidder), zap.Error(err)).Error("OrderBook: Failed to refund bid")
			return nil, err
		}

		b.bids[key] = append(bids[:idx], bids[idx+1:]...)
		if len(b.bids[key]) == 0 {
			delete(b.bids, key)
		}

		return &bid, nil
	}

	return nil, ErrBidNotFound
}

// TakeTopOffer pops the highest-priced offer without refunding it. The caller
// settles the escrowed amount.
func (b *OrderBook) TakeTopOffer(key entity.ListingKey) (*entity.Offer, error) {
	offers := b.offers[key]
	if len(offers) == 0 {
		return nil, ErrOfferNotFound
	}

	offer := offers[len(offers)-1]
	b.offers[key] = offers[:len(offers)-1]
	if len(b.offers[key]) == 0 {
		delete(b.offers, key)
	}

	return &offer, nil
}

func (b *OrderBook) TakeTopBid(key entity.ListingKey) (*entity.Bid, error) {
	bids := b.bids[key]
	if len(bids) == 0 {
		return nil, ErrBidNotFound
	}

	bid := bids[len(bids)-1]
	b.bids[key] = bids[:len(bids)-1]
	if len(b.bids[key]) == 0 {
		delete(b.bids, key)
	}

	return &bid, nil
}

// DropAll refunds every outstanding offer and bid for a listing and discards
// the sequences. Each entry is removed from the book before its refund runs,
// so a retried removal can never pay the same entry twice; a rejected refund
// is parked for the destination instead of blocking the removal.
func (b *OrderBook) DropAll(key entity.ListingKey) {
	offers := b.offers[key]
	delete(b.offers, key)
	for _, offer := range offers {
		b.refund(offer.Offerer, offer.Price)
	}

	bids := b.bids[key]
	delete(b.bids, key)
	for _, bid := range bids {
		b.refund(bid.Bidder, bid.Price)
	}
}

// Offers returns a read-only snapshot in ascending price order.
func (b *OrderBook) Offers(key entity.ListingKey) []entity.Offer {
	offers := make([]entity.Offer, len(b.offers[key]))
	copy(offers, b.offers[key])

	return offers
}

func (b *OrderBook) Bids(key entity.ListingKey) []entity.Bid {
	bids := make([]entity.Bid, len(b.bids[key]))
	copy(bids, b.bids[key])

	return bids
}

func (b *OrderBook) HasOffer(key entity.ListingKey, offerer string) bool {
	for _, offer := range b.offers[key] {
		if offer.Offerer == offerer {
			return true
		}
	}

	return false
}

func (b *OrderBook) HasBid(key entity.ListingKey, bidder string) bool {
	for _, bid := range b.bids[key] {
		if bid.Bidder == bidder {
			return true
		}
	}

	return false
}

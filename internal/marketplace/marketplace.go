package marketplace

import (
	"math/big"
	"sync"
	"time"

	"github.com/ZilDuck/zilliqa-nft-marketplace/internal/entity"
	"github.com/ZilDuck/zilliqa-nft-marketplace/internal/event"
	"github.com/ZilDuck/zilliqa-nft-marketplace/internal/factory"
	"github.com/ZilDuck/zilliqa-nft-marketplace/internal/ledger"
	"github.com/ZilDuck/zilliqa-nft-marketplace/internal/repository"
	"go.uber.org/zap"
)

// Clock supplies the wall-clock timestamp operations are evaluated against.
// Auction expiry is checked lazily at call time; there is no scheduler.
type Clock func() uint64

func SystemClock() uint64 {
	return uint64(time.Now().Unix())
}

// Marketplace is the public operation surface. A single write lock serializes
// every mutating operation, reproducing the global transaction sequencer the
// original contracts ran under: no two settlement sequences can interleave,
// and reads always observe a consistent snapshot of the registry and its
// indices.
//
// Every mutating operation runs guard checks first, then collects any inbound
// funds, then mutates the registry and order book, then distributes funds,
// and moves token custody last.
type Marketplace struct {
	mu sync.RWMutex

	fees   FeeConfig
	paused bool
	clock  Clock

	registry   *ListingRegistry
	book       *OrderBook
	escrow     *EscrowCoordinator
	settlement *SettlementEngine
	guard      *AccessGuard

	ledger  ledger.Ledger
	gateway TokenGateway
}

func New(fees FeeConfig, l ledger.Ledger, gateway TokenGateway, collections repository.CollectionRepository, clock Clock) *Marketplace {
	registry := NewListingRegistry()
	settlement := NewSettlementEngine(l, gateway, fees)
	book := NewOrderBook(l, fees.Holding, settlement.payOrPark)

	return &Marketplace{
		fees:       fees,
		clock:      clock,
		registry:   registry,
		book:       book,
		escrow:     NewEscrowCoordinator(gateway, fees.Holding),
		settlement: settlement,
		guard:      NewAccessGuard(registry, book, gateway, collections),
		ledger:     l,
		gateway:    gateway,
	}
}

func (m *Marketplace) CreateSale(caller, contract string, tokenId uint64, price *big.Int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.paused {
		return ErrPaused
	}

	key := entity.ListingKey{Contract: contract, TokenId: tokenId}
	if err := m.guard.ContractIsRegistered(contract); err != nil {
		return err
	}
	if err := m.guard.ContractIsVerified(contract); err != nil {
		return err
	}
	if err := m.guard.IsNotListed(key); err != nil {
		return err
	}
	if err := m.guard.CallerOwnsToken(caller, contract, tokenId); err != nil {
		return err
	}

	if err := m.escrow.Escrow(contract, tokenId, caller); err != nil {
		return err
	}

	now := m.clock()
	sale, err := m.registry.CreateSale(contract, tokenId, caller, price, now)
	if err != nil {
		// Guards made creation infallible; hand the token back if not.
		_ = m.escrow.Release(contract, tokenId, caller)
		return err
	}

	event.EmitEvent(event.ListingCreatedEvent, factory.CreateListingAction(entity.ListingCreatedAction, contract, tokenId, caller, sale.Price.String(), now))

	return nil
}

func (m *Marketplace) CreateAuction(caller, contract string, tokenId uint64, startingPrice, endingPrice *big.Int, duration uint64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.paused {
		return ErrPaused
	}

	key := entity.ListingKey{Contract: contract, TokenId: tokenId}
	if err := m.guard.ContractIsRegistered(contract); err != nil {
		return err
	}
	if err := m.guard.ContractIsVerified(contract); err != nil {
		return err
	}
	if err := m.guard.IsNotListed(key); err != nil {
		return err
	}
	if err := m.guard.CallerOwnsToken(caller, contract, tokenId); err != nil {
		return err
	}

	if startingPrice == nil || startingPrice.Sign() <= 0 || endingPrice == nil || endingPrice.Sign() < 0 {
		return ErrPriceTooLow
	}
	if startingPrice.BitLen() > maxPriceBits || endingPrice.BitLen() > maxPriceBits || duration == 0 {
		return ErrOverflowRange
	}

	if err := m.escrow.Escrow(contract, tokenId, caller); err != nil {
		return err
	}

	now := m.clock()
	auction, err := m.registry.CreateAuction(contract, tokenId, caller, startingPrice, endingPrice, duration, now)
	if err != nil {
		_ = m.escrow.Release(contract, tokenId, caller)
		return err
	}

	event.EmitEvent(event.ListingCreatedEvent, factory.CreateListingAction(entity.ListingCreatedAction, contract, tokenId, caller, auction.StartingPrice.String(), now))

	return nil
}

// Buy settles a fixed-price sale. The buyer may pay more than the ask; the
// overpayment goes to the dev cut. Payment is collected into the holding
// account before any state changes, so a failed payment aborts cleanly.
func (m *Marketplace) Buy(caller, contract string, tokenId uint64, paid *big.Int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.paused {
		return ErrPaused
	}

	sale, err := m.registry.GetSale(contract, tokenId)
	if err != nil {
		return err
	}
	if err := m.guard.CallerIsNotSeller(caller, sale); err != nil {
		return err
	}
	if paid == nil || paid.Cmp(sale.Price) < 0 {
		return ErrPriceTooLow
	}

	payouts, err := m.settlement.PlanSale(sale, paid)
	if err != nil {
		return err
	}

	if err := m.ledger.Transfer(caller, m.fees.Holding, paid); err != nil {
		zap.L().With(zap.String("buyer", caller), zap.Error(err)).Warn("Marketplace: Buyer payment failed")
		return ErrExternalTransfer
	}

	return m.finalizeSale(sale, caller, paid, payouts)
}

// AcceptOffer sells to the highest offerer at their offered price. The
// remaining offers are refunded when the listing is removed.
func (m *Marketplace) AcceptOffer(caller, contract string, tokenId uint64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.paused {
		return ErrPaused
	}

	sale, err := m.registry.GetSale(contract, tokenId)
	if err != nil {
		return err
	}
	if err := m.guard.CallerIsSeller(caller, sale); err != nil {
		return err
	}

	key := sale.Key()
	offers := m.book.Offers(key)
	if len(offers) == 0 {
		return ErrOfferNotFound
	}
	top := offers[len(offers)-1]

	// Settle at the offered price, not the ask.
	agreed := sale
	agreed.Price = top.Price

	payouts, err := m.settlement.PlanSale(agreed, top.Price)
	if err != nil {
		return err
	}

	if _, err := m.book.TakeTopOffer(key); err != nil {
		return err
	}

	event.EmitEvent(event.OfferAcceptedEvent, factory.CreateOrderAction(entity.OfferAcceptedAction, contract, tokenId, top.Offerer, top.Price, m.clock()))

	return m.finalizeSale(agreed, top.Offerer, top.Price, payouts)
}

// finalizeSale removes the listing (refunding any remaining orders), then
// distributes the payouts, then releases custody, in that fixed order. The
// buyer's payment is already in holding; from here nothing unwinds, rejected
// transfers degrade to pending payouts or a pending release.
func (m *Marketplace) finalizeSale(sale entity.Sale, buyer string, paid *big.Int, payouts []Payout) error {
	key := sale.Key()
	now := m.clock()

	m.book.DropAll(key)
	if _, err := m.registry.RemoveSale(sale.Contract, sale.TokenId); err != nil {
		// Unreachable under the write lock; the listing was just read. Hand
		// the payment back if it ever trips.
		m.settlement.payOrPark(buyer, paid)
		return err
	}

	m.settlement.Distribute(payouts)

	fee := new(big.Int)
	for _, payout := range payouts {
		if payout.Royalty {
			event.EmitEvent(event.RoyaltyPaidEvent, factory.CreateRoyaltyAction(sale.Contract, sale.TokenId, payout.Destination, payout.Amount, now))
		} else if payout.Destination != sale.Seller {
			fee.Add(fee, payout.Amount)
		}
	}

	releaseErr := m.escrow.Release(sale.Contract, sale.TokenId, buyer)

	event.EmitEvent(event.SaleSettledEvent, factory.CreateSaleAction(sale.Contract, sale.TokenId, sale.Seller, buyer, paid, fee, now))

	zap.L().With(
		zap.String("contract", sale.Contract),
		zap.Uint64("tokenId", sale.TokenId),
		zap.String("seller", sale.Seller),
		zap.String("buyer", buyer),
		zap.String("paid", paid.String()),
	).Info("Marketplace: Sale finalized")

	// Funds are fully distributed; a failed release is claimable later.
	if releaseErr != nil {
		return releaseErr
	}

	return nil
}

// AcceptBid closes an auction in favour of the highest bidder at their bid,
// refunding every other bid.
func (m *Marketplace) AcceptBid(caller, contract string, tokenId uint64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.paused {
		return ErrPaused
	}

	auction, err := m.registry.GetAuction(contract, tokenId)
	if err != nil {
		return err
	}
	if err := m.guard.CallerIsAuctioneer(caller, auction); err != nil {
		return err
	}

	key := auction.Key()
	bid, err := m.book.TakeTopBid(key)
	if err != nil {
		return err
	}

	payouts := m.settlement.PlanAuction(auction, *bid)

	now := m.clock()
	m.book.DropAll(key)
	if _, err := m.registry.RemoveAuction(contract, tokenId); err != nil {
		m.settlement.payOrPark(bid.Bidder, bid.Price)
		return err
	}

	m.settlement.Distribute(payouts)

	fee := new(big.Int)
	for _, payout := range payouts {
		if payout.Royalty {
			event.EmitEvent(event.RoyaltyPaidEvent, factory.CreateRoyaltyAction(contract, tokenId, payout.Destination, payout.Amount, now))
		} else if payout.Destination != auction.Seller {
			fee.Add(fee, payout.Amount)
		}
	}

	releaseErr := m.escrow.Release(contract, tokenId, bid.Bidder)

	event.EmitEvent(event.BidAcceptedEvent, factory.CreateOrderAction(entity.BidAcceptedAction, contract, tokenId, bid.Bidder, bid.Price, now))
	event.EmitEvent(event.SaleSettledEvent, factory.CreateSaleAction(contract, tokenId, auction.Seller, bid.Bidder, bid.Price, fee, now))

	zap.L().With(
		zap.String("contract", contract),
		zap.Uint64("tokenId", tokenId),
		zap.String("seller", auction.Seller),
		zap.String("bidder", bid.Bidder),
		zap.String("bid", bid.Price.String()),
	).Info("Marketplace: Auction finalized")

	return releaseErr
}

func (m *Marketplace) CancelSale(caller, contract string, tokenId uint64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.paused {
		return ErrPaused
	}

	sale, err := m.registry.GetSale(contract, tokenId)
	if err != nil {
		return err
	}
	if err := m.guard.CallerIsSeller(caller, sale); err != nil {
		return err
	}

	return m.delist(sale.Key(), sale.Seller, false)
}

// EmergencyCancelSale lets the marketplace owner delist a token while the
// marketplace is paused. Outstanding offers are refunded as usual.
func (m *Marketplace) EmergencyCancelSale(caller, contract string, tokenId uint64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if caller != m.fees.Owner {
		return ErrUnauthorized
	}

	sale, err := m.registry.GetSale(contract, tokenId)
	if err != nil {
		return err
	}

	zap.L().With(
		zap.String("contract", contract),
		zap.Uint64("tokenId", tokenId),
	).Warn("Marketplace: Emergency cancel")

	return m.delist(sale.Key(), sale.Seller, false)
}

func (m *Marketplace) CancelAuction(caller, contract string, tokenId uint64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.paused {
		return ErrPaused
	}

	auction, err := m.registry.GetAuction(contract, tokenId)
	if err != nil {
		return err
	}
	if err := m.guard.CallerIsAuctioneer(caller, auction); err != nil {
		return err
	}

	return m.delist(auction.Key(), auction.Seller, true)
}

// delist refunds every outstanding order, removes the record and hands the
// token back to the seller.
func (m *Marketplace) delist(key entity.ListingKey, seller string, auction bool) error {
	m.book.DropAll(key)

	if auction {
		if _, err := m.registry.RemoveAuction(key.Contract, key.TokenId); err != nil {
			return err
		}
	} else {
		if _, err := m.registry.RemoveSale(key.Contract, key.TokenId); err != nil {
			return err
		}
	}

	releaseErr := m.escrow.Release(key.Contract, key.TokenId, seller)

	event.EmitEvent(event.ListingCancelledEvent, factory.CreateListingAction(entity.ListingCancelledAction, key.Contract, key.TokenId, seller, "", m.clock()))

	return releaseErr
}

func (m *Marketplace) MakeOffer(caller, contract string, tokenId uint64, price *big.Int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.paused {
		return ErrPaused
	}

	sale, err := m.registry.GetSale(contract, tokenId)
	if err != nil {
		return err
	}
	if err := m.guard.CallerIsNotSeller(caller, sale); err != nil {
		return err
	}

	now := m.clock()
	offer, err := m.book.PlaceOffer(sale, caller, price, now)
	if err != nil {
		return err
	}

	event.EmitEvent(event.OfferCreatedEvent, factory.CreateOrderAction(entity.OfferCreatedAction, contract, tokenId, caller, offer.Price, now))

	return nil
}

func (m *Marketplace) CancelOffer(caller, contract string, tokenId uint64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	offer, err := m.book.CancelOffer(entity.ListingKey{Contract: contract, TokenId: tokenId}, caller)
	if err != nil {
		return err
	}

	event.EmitEvent(event.OfferCancelledEvent, factory.CreateOrderAction(entity.OfferCancelledAction, contract, tokenId, caller, offer.Price, m.clock()))

	return nil
}

func (m *Marketplace) MakeBid(caller, contract string, tokenId uint64, price *big.Int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.paused {
		return ErrPaused
	}

	auction, err := m.registry.GetAuction(contract, tokenId)
	if err != nil {
		return err
	}
	if err := m.guard.CallerIsNotAuctioneer(caller, auction); err != nil {
		return err
	}

	now := m.clock()
	bid, err := m.book.PlaceBid(auction, caller, price, now)
	if err != nil {
		return err
	}

	event.EmitEvent(event.BidCreatedEvent, factory.CreateOrderAction(entity.BidCreatedAction, contract, tokenId, caller, bid.Price, now))

	return nil
}

func (m *Marketplace) CancelBid(caller, contract string, tokenId uint64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	bid, err := m.book.CancelBid(entity.ListingKey{Contract: contract, TokenId: tokenId}, caller)
	if err != nil {
		return err
	}

	event.EmitEvent(event.BidCancelledEvent, factory.CreateOrderAction(entity.BidCancelledAction, contract, tokenId, caller, bid.Price, m.clock()))

	return nil
}

// TransferWithoutSale moves an unlisted token the caller owns. The
// marketplace never takes custody.
func (m *Marketplace) TransferWithoutSale(caller, contract string, tokenId uint64, to string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.paused {
		return ErrPaused
	}

	key := entity.ListingKey{Contract: contract, TokenId: tokenId}
	if err := m.guard.IsNotListed(key); err != nil {
		return err
	}
	if err := m.guard.CallerOwnsToken(caller, contract, tokenId); err != nil {
		return err
	}

	if err := m.gateway.TransferCustody(contract, caller, to, tokenId); err != nil {
		return ErrExternalTransfer
	}

	event.EmitEvent(event.SaleSettledEvent, factory.CreateTransferAction(contract, tokenId, caller, to, m.clock()))

	return nil
}

// ClaimPendingRelease retries the custody transfer for a settlement whose
// final release was rejected by the token contract.
func (m *Marketplace) ClaimPendingRelease(contract string, tokenId uint64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	_, err := m.escrow.Claim(contract, tokenId)

	return err
}

// ClaimPayout retries the parked fund transfers for an account that rejected
// a payout or refund during settlement.
func (m *Marketplace) ClaimPayout(account string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	_, err := m.settlement.ClaimPayout(account)

	return err
}

func (m *Marketplace) ConfigureRoyaltySplit(caller, contract string, splits []entity.RoyaltySplit) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if caller != m.fees.Owner {
		return ErrUnauthorized
	}

	return m.settlement.ConfigureRoyaltySplit(contract, splits)
}

func (m *Marketplace) Pause(caller string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if caller != m.fees.Owner {
		return ErrUnauthorized
	}

	m.paused = true
	zap.L().Warn("Marketplace: Paused")

	return nil
}

func (m *Marketplace) Unpause(caller string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if caller != m.fees.Owner {
		return ErrUnauthorized
	}

	m.paused = false
	zap.L().Info("Marketplace: Unpaused")

	return nil
}

func (m *Marketplace) GetCurrentPrice(contract string, tokenId uint64) (*big.Int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if sale, err := m.registry.GetSale(contract, tokenId); err == nil {
		return new(big.Int).Set(sale.Price), nil
	}

	auction, err := m.registry.GetAuction(contract, tokenId)
	if err != nil {
		return nil, ErrNotListed
	}

	return CurrentPrice(auction.StartingPrice, auction.EndingPrice, auction.Duration, auction.Elapsed(m.clock())), nil
}

func (m *Marketplace) GetSale(contract string, tokenId uint64) (entity.Sale, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.registry.GetSale(contract, tokenId)
}

func (m *Marketplace) GetAuction(contract string, tokenId uint64) (entity.Auction, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.registry.GetAuction(contract, tokenId)
}

func (m *Marketplace) ListByContract(contract string) []uint64 {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.registry.TokenIdsByContract(contract)
}

func (m *Marketplace) ListBySeller(seller, contract string) []uint64 {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.registry.TokenIdsBySeller(seller, contract)
}

func (m *Marketplace) Count(contract string) int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.registry.Count(contract)
}

func (m *Marketplace) Offers(contract string, tokenId uint64) []entity.Offer {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.book.Offers(entity.ListingKey{Contract: contract, TokenId: tokenId})
}

func (m *Marketplace) Bids(contract string, tokenId uint64) []entity.Bid {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.book.Bids(entity.ListingKey{Contract: contract, TokenId: tokenId})
}

func (m *Marketplace) PendingRelease(contract string, tokenId uint64) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.escrow.PendingRelease(contract, tokenId)
}

func (m *Marketplace) PendingPayout(account string) (*big.Int, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.settlement.PendingPayout(account)
}

package marketplace

import (
	"math/big"
	"testing"

	"github.com/ZilDuck/zilliqa-nft-marketplace/internal/entity"
	"github.com/ZilDuck/zilliqa-nft-marketplace/internal/ledger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSale() entity.Sale {
	return entity.Sale{
		Contract:  zrc6Addr,
		TokenId:   1,
		Seller:    sellerAddr,
		Price:     big.NewInt(100),
		StartedAt: 1000,
	}
}

func testAuction() entity.Auction {
	return entity.Auction{
		Contract:      zrc6Addr,
		TokenId:       1,
		Seller:        sellerAddr,
		StartingPrice: big.NewInt(1000),
		EndingPrice:   big.NewInt(100),
		Duration:      900,
		StartedAt:     1000,
	}
}

func newTestBook() (*OrderBook, ledger.Ledger) {
	l := ledger.NewMemoryLedger()
	settlement := NewSettlementEngine(l, newFakeGateway(), testFees())

	return NewOrderBook(l, holdingAddr, settlement.payOrPark), l
}

func TestOrderBook_OffersStayAscending(t *testing.T) {
	book, l := newTestBook()
	sale := testSale()

	for _, offer := range []struct {
		offerer string
		price   int64
	}{
		{"0xa", 50},
		{"0xb", 30},
		{"0xc", 40},
	} {
		l.Deposit(offer.offerer, big.NewInt(offer.price))
		_, err := book.PlaceOffer(sale, offer.offerer, big.NewInt(offer.price), 1000)
		require.NoError(t, err)
	}

	offers := book.Offers(sale.Key())
	require.Len(t, offers, 3)
	assert.Equal(t, big.NewInt(30), offers[0].Price)
	assert.Equal(t, big.NewInt(40), offers[1].Price)
	assert.Equal(t, big.NewInt(50), offers[2].Price)

	assert.Equal(t, big.NewInt(120), l.Balance(holdingAddr))
}

func TestOrderBook_RejectsBadOffers(t *testing.T) {
	book, l := newTestBook()
	sale := testSale()

	l.Deposit("0xa", big.NewInt(500))

	_, err := book.PlaceOffer(sale, "0xa", big.NewInt(100), 1000)
	assert.ErrorIs(t, err, ErrPriceTooHigh)

	_, err = book.PlaceOffer(sale, "0xa", big.NewInt(0), 1000)
	assert.ErrorIs(t, err, ErrPriceTooLow)

	_, err = book.PlaceOffer(sale, "0xa", big.NewInt(50), 1000)
	require.NoError(t, err)

	_, err = book.PlaceOffer(sale, "0xa", big.NewInt(60), 1000)
	assert.ErrorIs(t, err, ErrDuplicateOffer)

	_, err = book.PlaceOffer(sale, "0xbroke", big.NewInt(50), 1000)
	assert.ErrorIs(t, err, ledger.ErrInsufficientFunds)
}

func TestOrderBook_CancelOfferRefundsAndCompacts(t *testing.T) {
	book, l := newTestBook()
	sale := testSale()

	for _, offerer := range []string{"0xa", "0xb", "0xc"} {
		l.Deposit(offerer, big.NewInt(100))
	}

	_, err := book.PlaceOffer(sale, "0xa", big.NewInt(30), 1000)
	require.NoError(t, err)
	_, err = book.PlaceOffer(sale, "0xb", big.NewInt(40), 1000)
	require.NoError(t, err)
	_, err = book.PlaceOffer(sale, "0xc", big.NewInt(50), 1000)
	require.NoError(t, err)

	cancelled, err := book.CancelOffer(sale.Key(), "0xb")
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(40), cancelled.Price)
	assert.Equal(t, big.NewInt(100), l.Balance("0xb"))

	offers := book.Offers(sale.Key())
	require.Len(t, offers, 2)
	assert.Equal(t, big.NewInt(30), offers[0].Price)
	assert.Equal(t, big.NewInt(50), offers[1].Price)

	_, err = book.CancelOffer(sale.Key(), "0xb")
	assert.ErrorIs(t, err, ErrOfferNotFound)
}

func TestOrderBook_BidsMustBeatDecayedPriceAndLastBid(t *testing.T) {
	book, l := newTestBook()
	auction := testAuction()

	for _, bidder := range []string{"0xa", "0xb", "0xc"} {
		l.Deposit(bidder, big.NewInt(1000))
	}

	// Halfway through the schedule the price has decayed to 550.
	now := uint64(1450)

	_, err := book.PlaceBid(auction, "0xa", big.NewInt(500), now)
	assert.ErrorIs(t, err, ErrPriceTooLow)

	_, err = book.PlaceBid(auction, "0xa", big.NewInt(600), now)
	require.NoError(t, err)

	// Matching the highest bid is not enough.
	_, err = book.PlaceBid(auction, "0xb", big.NewInt(600), now)
	assert.ErrorIs(t, err, ErrPriceTooLow)

	_, err = book.PlaceBid(auction, "0xb", big.NewInt(601), now)
	require.NoError(t, err)

	_, err = book.PlaceBid(auction, "0xa", big.NewInt(700), now)
	assert.ErrorIs(t, err, ErrDuplicateBid)

	bids := book.Bids(auction.Key())
	require.Len(t, bids, 2)
	assert.Equal(t, big.NewInt(600), bids[0].Price)
	assert.Equal(t, big.NewInt(601), bids[1].Price)
}

func TestOrderBook_RejectsBidOnExpiredAuction(t *testing.T) {
	book, l := newTestBook()
	auction := testAuction()

	l.Deposit("0xa", big.NewInt(1000))

	_, err := book.PlaceBid(auction, "0xa", big.NewInt(500), 1901)
	assert.ErrorIs(t, err, ErrExpired)
}

func TestOrderBook_TakeTopReturnsBest(t *testing.T) {
	book, l := newTestBook()
	sale := testSale()
	auction := testAuction()
	auction.TokenId = 2

	l.Deposit("0xa", big.NewInt(2000))
	l.Deposit("0xb", big.NewInt(2000))

	_, err := book.PlaceOffer(sale, "0xa", big.NewInt(30), 1000)
	require.NoError(t, err)
	_, err = book.PlaceOffer(sale, "0xb", big.NewInt(50), 1000)
	require.NoError(t, err)

	top, err := book.TakeTopOffer(sale.Key())
	require.NoError(t, err)
	assert.Equal(t, "0xb", top.Offerer)
	assert.Len(t, book.Offers(sale.Key()), 1)

	_, err = book.PlaceBid(auction, "0xa", big.NewInt(1000), 1000)
	require.NoError(t, err)
	_, err = book.PlaceBid(auction, "0xb", big.NewInt(1100), 1000)
	require.NoError(t, err)

	topBid, err := book.TakeTopBid(auction.Key())
	require.NoError(t, err)
	assert.Equal(t, "0xb", topBid.Bidder)
	assert.Equal(t, big.NewInt(1100), topBid.Price)

	_, err = book.TakeTopBid(entity.ListingKey{Contract: zrc6Addr, TokenId: 99})
	assert.ErrorIs(t, err, ErrBidNotFound)
}

func TestOrderBook_DropAllRefundsEverything(t *testing.T) {
	book, l := newTestBook()
	sale := testSale()
	auction := testAuction()

	l.Deposit("0xa", big.NewInt(1000))
	l.Deposit("0xb", big.NewInt(1000))

	_, err := book.PlaceOffer(sale, "0xa", big.NewInt(50), 1000)
	require.NoError(t, err)
	_, err = book.PlaceBid(auction, "0xb", big.NewInt(1000), 1000)
	require.NoError(t, err)

	book.DropAll(sale.Key())

	assert.Equal(t, big.NewInt(1000), l.Balance("0xa"))
	assert.Equal(t, big.NewInt(1000), l.Balance("0xb"))
	assert.Equal(t, "0", l.Balance(holdingAddr).String())
	assert.Empty(t, book.Offers(sale.Key()))
	assert.Empty(t, book.Bids(sale.Key()))
}

func TestOrderBook_DropAllParksRejectedRefunds(t *testing.T) {
	l := ledger.NewMemoryLedger()
	settlement := NewSettlementEngine(l, newFakeGateway(), testFees())
	book := NewOrderBook(l, holdingAddr, settlement.payOrPark)
	sale := testSale()

	l.Deposit("0xa", big.NewInt(100))
	l.Deposit("0xb", big.NewInt(100))

	_, err := book.PlaceOffer(sale, "0xa", big.NewInt(30), 1000)
	require.NoError(t, err)
	_, err = book.PlaceOffer(sale, "0xb", big.NewInt(50), 1000)
	require.NoError(t, err)

	l.Freeze("0xa")
	book.DropAll(sale.Key())

	assert.Empty(t, book.Offers(sale.Key()))
	assert.Equal(t, big.NewInt(100), l.Balance("0xb"))
	assert.Equal(t, big.NewInt(70), l.Balance("0xa"))
	assert.Equal(t, big.NewInt(30), l.Balance(holdingAddr))

	pending, ok := settlement.PendingPayout("0xa")
	require.True(t, ok)
	assert.Equal(t, big.NewInt(30), pending)

	// A repeated drop finds nothing left to refund.
	book.DropAll(sale.Key())
	assert.Equal(t, big.NewInt(30), l.Balance(holdingAddr))
	assert.Equal(t, big.NewInt(100), l.Balance("0xb"))

	l.Unfreeze("0xa")

	_, err = settlement.ClaimPayout("0xa")
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(100), l.Balance("0xa"))
	assert.Equal(t, "0", l.Balance(holdingAddr).String())

	_, err = settlement.ClaimPayout("0xa")
	assert.ErrorIs(t, err, ErrPendingPayoutNotFound)
}

package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListingSlugIsStable(t *testing.T) {
	sale := Sale{Contract: "0xabc", TokenId: 7}
	auction := Auction{Contract: "0xabc", TokenId: 7}

	assert.Equal(t, "listing-7-0xabc", sale.Slug())
	assert.Equal(t, sale.Slug(), auction.Slug())
	assert.Equal(t, sale.Slug(), sale.Key().Slug())
}

func TestAuctionExpiry(t *testing.T) {
	auction := Auction{StartedAt: 1000, Duration: 900}

	assert.False(t, auction.Expired(1900))
	assert.True(t, auction.Expired(1901))

	assert.Equal(t, uint64(0), auction.Elapsed(999))
	assert.Equal(t, uint64(450), auction.Elapsed(1450))
}

func TestMarketplaceActionSlugIsDeterministic(t *testing.T) {
	action := MarketplaceAction{
		Contract: "0xabc",
		TokenId:  7,
		Action:   SaleSettledAction,
		From:     "0xseller",
		To:       "0xbuyer",
		Time:     1000,
	}

	assert.Equal(t, action.Slug(), action.Slug())
	assert.Len(t, action.Slug(), 32)

	other := action
	other.Time = 1001
	assert.NotEqual(t, action.Slug(), other.Slug())
}

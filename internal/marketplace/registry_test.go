package marketplace

import (
	"math/big"
	"testing"

	"github.com/ZilDuck/zilliqa-nft-marketplace/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_SaleRoundTrip(t *testing.T) {
	registry := NewListingRegistry()

	created, err := registry.CreateSale(zrc6Addr, 1, sellerAddr, big.NewInt(100), 1000)
	require.NoError(t, err)
	assert.Equal(t, sellerAddr, created.Seller)

	sale, err := registry.GetSale(zrc6Addr, 1)
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(100), sale.Price)
	assert.Equal(t, uint64(1000), sale.StartedAt)

	assert.True(t, registry.IsListed(entity.ListingKey{Contract: zrc6Addr, TokenId: 1}))
	assert.NoError(t, registry.CheckInvariant())

	removed, err := registry.RemoveSale(zrc6Addr, 1)
	require.NoError(t, err)
	assert.Equal(t, sellerAddr, removed.Seller)

	_, err = registry.GetSale(zrc6Addr, 1)
	assert.ErrorIs(t, err, ErrNotListed)
	assert.NoError(t, registry.CheckInvariant())
}

func TestRegistry_AuctionRoundTrip(t *testing.T) {
	registry := NewListingRegistry()

	_, err := registry.CreateAuction(zrc6Addr, 1, sellerAddr, big.NewInt(1000), big.NewInt(100), 900, 1000)
	require.NoError(t, err)

	auction, err := registry.GetAuction(zrc6Addr, 1)
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(1000), auction.StartingPrice)
	assert.Equal(t, big.NewInt(100), auction.EndingPrice)
	assert.True(t, registry.IsAuctioned(entity.ListingKey{Contract: zrc6Addr, TokenId: 1}))

	_, err = registry.RemoveAuction(zrc6Addr, 1)
	require.NoError(t, err)
	assert.NoError(t, registry.CheckInvariant())
}

func TestRegistry_RejectsDoubleListing(t *testing.T) {
	registry := NewListingRegistry()

	_, err := registry.CreateSale(zrc6Addr, 1, sellerAddr, big.NewInt(100), 1000)
	require.NoError(t, err)

	_, err = registry.CreateSale(zrc6Addr, 1, sellerAddr, big.NewInt(200), 1000)
	assert.ErrorIs(t, err, ErrAlreadyListed)

	_, err = registry.CreateAuction(zrc6Addr, 1, sellerAddr, big.NewInt(1000), big.NewInt(100), 900, 1000)
	assert.ErrorIs(t, err, ErrAlreadyListed)
}

func TestRegistry_ValidatesPrices(t *testing.T) {
	registry := NewListingRegistry()

	_, err := registry.CreateSale(zrc6Addr, 1, sellerAddr, big.NewInt(0), 1000)
	assert.ErrorIs(t, err, ErrPriceTooLow)

	_, err = registry.CreateSale(zrc6Addr, 1, sellerAddr, nil, 1000)
	assert.ErrorIs(t, err, ErrPriceTooLow)

	tooWide := new(big.Int).Lsh(big.NewInt(1), 129)
	_, err = registry.CreateSale(zrc6Addr, 1, sellerAddr, tooWide, 1000)
	assert.ErrorIs(t, err, ErrOverflowRange)

	_, err = registry.CreateAuction(zrc6Addr, 1, sellerAddr, big.NewInt(1000), big.NewInt(100), 0, 1000)
	assert.ErrorIs(t, err, ErrOverflowRange)

	_, err = registry.CreateAuction(zrc6Addr, 1, sellerAddr, tooWide, big.NewInt(100), 900, 1000)
	assert.ErrorIs(t, err, ErrOverflowRange)
}

func TestRegistry_IndicesSurviveUnorderedRemoval(t *testing.T) {
	registry := NewListingRegistry()

	for tokenId := uint64(1); tokenId <= 5; tokenId++ {
		_, err := registry.CreateSale(zrc6Addr, tokenId, sellerAddr, big.NewInt(100), 1000)
		require.NoError(t, err)
	}

	_, err := registry.RemoveSale(zrc6Addr, 3)
	require.NoError(t, err)

	tokenIds := registry.TokenIdsByContract(zrc6Addr)
	assert.ElementsMatch(t, []uint64{1, 2, 4, 5}, tokenIds)
	assert.Equal(t, 4, registry.Count(zrc6Addr))
	assert.NoError(t, registry.CheckInvariant())

	_, err = registry.RemoveSale(zrc6Addr, 1)
	require.NoError(t, err)
	_, err = registry.RemoveSale(zrc6Addr, 5)
	require.NoError(t, err)

	assert.ElementsMatch(t, []uint64{2, 4}, registry.TokenIdsByContract(zrc6Addr))
	assert.NoError(t, registry.CheckInvariant())
}

func TestRegistry_SellerIndex(t *testing.T) {
	registry := NewListingRegistry()

	_, err := registry.CreateSale(zrc6Addr, 1, sellerAddr, big.NewInt(100), 1000)
	require.NoError(t, err)
	_, err = registry.CreateSale(zrc6Addr, 2, "0xother", big.NewInt(100), 1000)
	require.NoError(t, err)

	assert.Equal(t, []uint64{1}, registry.TokenIdsBySeller(sellerAddr, zrc6Addr))
	assert.Equal(t, []uint64{2}, registry.TokenIdsBySeller("0xother", zrc6Addr))
	assert.Empty(t, registry.TokenIdsBySeller("0xnobody", zrc6Addr))

	_, err = registry.RemoveSale(zrc6Addr, 1)
	require.NoError(t, err)

	assert.Empty(t, registry.TokenIdsBySeller(sellerAddr, zrc6Addr))
}

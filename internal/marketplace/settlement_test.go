package marketplace

import (
	"math/big"
	"testing"

	"github.com/ZilDuck/zilliqa-nft-marketplace/internal/entity"
	"github.com/ZilDuck/zilliqa-nft-marketplace/internal/ledger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSettlement() (*SettlementEngine, *fakeGateway, ledger.Ledger) {
	gateway := newFakeGateway()
	l := ledger.NewMemoryLedger()

	return NewSettlementEngine(l, gateway, testFees()), gateway, l
}

func payoutTotal(payouts []Payout) *big.Int {
	total := new(big.Int)
	for _, payout := range payouts {
		total.Add(total, payout.Amount)
	}
	return total
}

func payoutFor(payouts []Payout, destination string) *big.Int {
	for _, payout := range payouts {
		if payout.Destination == destination {
			return payout.Amount
		}
	}
	return nil
}

func TestPlanSale_FlatDevCut(t *testing.T) {
	engine, _, _ := newTestSettlement()

	payouts, err := engine.PlanSale(testSale(), big.NewInt(100))
	require.NoError(t, err)

	assert.Equal(t, big.NewInt(2), payoutFor(payouts, devAddr))
	assert.Equal(t, big.NewInt(98), payoutFor(payouts, sellerAddr))
	assert.Equal(t, big.NewInt(100), payoutTotal(payouts))
}

func TestPlanSale_OverpaymentGoesToDev(t *testing.T) {
	engine, _, _ := newTestSettlement()

	payouts, err := engine.PlanSale(testSale(), big.NewInt(120))
	require.NoError(t, err)

	assert.Equal(t, big.NewInt(22), payoutFor(payouts, devAddr))
	assert.Equal(t, big.NewInt(98), payoutFor(payouts, sellerAddr))
	assert.Equal(t, big.NewInt(120), payoutTotal(payouts))
}

func TestPlanSale_HonoursRoyaltyCapability(t *testing.T) {
	engine, gateway, _ := newTestSettlement()
	gateway.royaltyRecipients[zrc6Addr] = "0xcreator"
	gateway.royaltyBps[zrc6Addr] = 1000

	payouts, err := engine.PlanSale(testSale(), big.NewInt(100))
	require.NoError(t, err)

	assert.Equal(t, big.NewInt(2), payoutFor(payouts, devAddr))
	assert.Equal(t, big.NewInt(10), payoutFor(payouts, "0xcreator"))
	assert.Equal(t, big.NewInt(88), payoutFor(payouts, sellerAddr))
	assert.Equal(t, big.NewInt(100), payoutTotal(payouts))

	for _, payout := range payouts {
		assert.Equal(t, payout.Destination == "0xcreator", payout.Royalty)
	}
}

func TestPlanSale_ClampsRoyaltyToSellerShare(t *testing.T) {
	engine, gateway, _ := newTestSettlement()
	gateway.royaltyRecipients[zrc6Addr] = "0xcreator"
	gateway.royaltyBps[zrc6Addr] = 20000

	payouts, err := engine.PlanSale(testSale(), big.NewInt(100))
	require.NoError(t, err)

	assert.Equal(t, big.NewInt(98), payoutFor(payouts, "0xcreator"))
	assert.Equal(t, "0", payoutFor(payouts, sellerAddr).String())
	assert.Equal(t, big.NewInt(100), payoutTotal(payouts))
}

func TestPlanSale_RoyaltyLookupFailureAborts(t *testing.T) {
	engine, gateway, _ := newTestSettlement()
	gateway.royaltyErr = errRejected

	_, err := engine.PlanSale(testSale(), big.NewInt(100))
	assert.ErrorIs(t, err, ErrExternalTransfer)
}

func TestPlanAuction_CharityTeamAndSplits(t *testing.T) {
	engine, _, _ := newTestSettlement()

	require.NoError(t, engine.ConfigureRoyaltySplit(zrc6Addr, []entity.RoyaltySplit{
		{Destination: "0xcreator", Bps: 500},
		{Destination: "0xrights", Bps: 400},
	}))

	bid := entity.Bid{Contract: zrc6Addr, TokenId: 1, Bidder: buyerAddr, Price: big.NewInt(1000), Time: 1450}
	payouts := engine.PlanAuction(testAuction(), bid)

	assert.Equal(t, big.NewInt(10), payoutFor(payouts, charityAddr))
	assert.Equal(t, big.NewInt(20), payoutFor(payouts, teamAddr))
	assert.Equal(t, big.NewInt(50), payoutFor(payouts, "0xcreator"))
	assert.Equal(t, big.NewInt(40), payoutFor(payouts, "0xrights"))
	assert.Equal(t, big.NewInt(880), payoutFor(payouts, sellerAddr))
	assert.Equal(t, big.NewInt(1000), payoutTotal(payouts))
}

func TestPlanAuction_WithoutSplits(t *testing.T) {
	engine, _, _ := newTestSettlement()

	bid := entity.Bid{Contract: zrc6Addr, TokenId: 1, Bidder: buyerAddr, Price: big.NewInt(600), Time: 1450}
	payouts := engine.PlanAuction(testAuction(), bid)

	assert.Equal(t, big.NewInt(6), payoutFor(payouts, charityAddr))
	assert.Equal(t, big.NewInt(12), payoutFor(payouts, teamAddr))
	assert.Equal(t, big.NewInt(582), payoutFor(payouts, sellerAddr))
	assert.Equal(t, big.NewInt(600), payoutTotal(payouts))
}

func TestConfigureRoyaltySplit_Validation(t *testing.T) {
	engine, _, _ := newTestSettlement()

	err := engine.ConfigureRoyaltySplit(zrc6Addr, []entity.RoyaltySplit{{Destination: "", Bps: 100}})
	assert.ErrorIs(t, err, ErrBadRoyaltySplit)

	err = engine.ConfigureRoyaltySplit(zrc6Addr, []entity.RoyaltySplit{{Destination: "0xa", Bps: 0}})
	assert.ErrorIs(t, err, ErrBadRoyaltySplit)

	err = engine.ConfigureRoyaltySplit(zrc6Addr, []entity.RoyaltySplit{
		{Destination: "0xa", Bps: 5000},
		{Destination: "0xb", Bps: 4500},
	})
	assert.ErrorIs(t, err, ErrBadRoyaltySplit)

	err = engine.ConfigureRoyaltySplit(zrc6Addr, []entity.RoyaltySplit{
		{Destination: "0xa", Bps: 5000},
		{Destination: "0xb", Bps: 4499},
	})
	assert.NoError(t, err)
	assert.Len(t, engine.RoyaltySplits(zrc6Addr), 2)
}

func TestDistribute_PaysFromHolding(t *testing.T) {
	engine, _, l := newTestSettlement()

	l.Deposit(holdingAddr, big.NewInt(100))

	engine.Distribute([]Payout{
		{Destination: devAddr, Amount: big.NewInt(2)},
		{Destination: sellerAddr, Amount: big.NewInt(98)},
	})

	assert.Equal(t, big.NewInt(2), l.Balance(devAddr))
	assert.Equal(t, big.NewInt(98), l.Balance(sellerAddr))
	assert.Equal(t, "0", l.Balance(holdingAddr).String())
}

func TestDistribute_SkipsZeroAmounts(t *testing.T) {
	engine, _, l := newTestSettlement()

	engine.Distribute([]Payout{{Destination: devAddr, Amount: new(big.Int)}})

	_, ok := engine.PendingPayout(devAddr)
	assert.False(t, ok)
	assert.Equal(t, "0", l.Balance(devAddr).String())
}

func TestDistribute_ParksRejectedPayout(t *testing.T) {
	engine, _, l := newTestSettlement()

	l.Deposit(holdingAddr, big.NewInt(100))
	l.Freeze(devAddr)

	engine.Distribute([]Payout{
		{Destination: devAddr, Amount: big.NewInt(2)},
		{Destination: sellerAddr, Amount: big.NewInt(98)},
	})

	assert.Equal(t, big.NewInt(98), l.Balance(sellerAddr))
	assert.Equal(t, big.NewInt(2), l.Balance(holdingAddr))

	pending, ok := engine.PendingPayout(devAddr)
	require.True(t, ok)
	assert.Equal(t, big.NewInt(2), pending)

	_, err := engine.ClaimPayout(devAddr)
	assert.ErrorIs(t, err, ErrExternalTransfer)

	l.Unfreeze(devAddr)

	claimed, err := engine.ClaimPayout(devAddr)
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(2), claimed)
	assert.Equal(t, big.NewInt(2), l.Balance(devAddr))
	assert.Equal(t, "0", l.Balance(holdingAddr).String())

	_, err = engine.ClaimPayout(devAddr)
	assert.ErrorIs(t, err, ErrPendingPayoutNotFound)
}

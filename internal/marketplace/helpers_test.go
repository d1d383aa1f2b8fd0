package marketplace

import (
	"errors"
	"math/big"

	"github.com/ZilDuck/zilliqa-nft-marketplace/internal/entity"
	"github.com/ZilDuck/zilliqa-nft-marketplace/internal/ledger"
)

const (
	ownerAddr   = "0xowner"
	holdingAddr = "0xholding"
	devAddr     = "0xdev"
	charityAddr = "0xcharity"
	teamAddr    = "0xteam"

	sellerAddr = "0xseller"
	buyerAddr  = "0xbuyer"

	zrc6Addr = "0xzrc6"
)

var errRejected = errors.New("transition rejected")

type fakeGateway struct {
	owners map[string]map[uint64]string

	royaltyRecipients map[string]string
	royaltyBps        map[string]uint64
	royaltyErr        error

	failTransferTo map[string]bool
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{
		owners:            map[string]map[uint64]string{},
		royaltyRecipients: map[string]string{},
		royaltyBps:        map[string]uint64{},
		failTransferTo:    map[string]bool{},
	}
}

func (g *fakeGateway) mint(contract string, tokenId uint64, owner string) {
	if _, ok := g.owners[contract]; !ok {
		g.owners[contract] = map[uint64]string{}
	}
	g.owners[contract][tokenId] = owner
}

func (g *fakeGateway) OwnerOf(contract string, tokenId uint64) (string, error) {
	owner, ok := g.owners[contract][tokenId]
	if !ok {
		return "", errRejected
	}
	return owner, nil
}

func (g *fakeGateway) BalanceOf(contract, owner string) (uint64, error) {
	balance := uint64(0)
	for _, tokenOwner := range g.owners[contract] {
		if tokenOwner == owner {
			balance++
		}
	}
	return balance, nil
}

func (g *fakeGateway) TokenAt(contract, owner string, index uint64) (uint64, error) {
	return 0, errRejected
}

func (g *fakeGateway) TokenURI(contract string, tokenId uint64) (string, error) {
	return "", nil
}

func (g *fakeGateway) TransferCustody(contract, from, to string, tokenId uint64) error {
	if g.failTransferTo[to] {
		return errRejected
	}

	owner, ok := g.owners[contract][tokenId]
	if !ok || owner != from {
		return errRejected
	}

	g.owners[contract][tokenId] = to

	return nil
}

func (g *fakeGateway) SupportsRoyaltyCapability(contract string) (bool, error) {
	if g.royaltyErr != nil {
		return false, g.royaltyErr
	}
	_, ok := g.royaltyRecipients[contract]
	return ok, nil
}

func (g *fakeGateway) RoyaltyInfo(contract string, tokenId uint64, saleValue *big.Int) (string, *big.Int, error) {
	if g.royaltyErr != nil {
		return "", nil, g.royaltyErr
	}

	amount := new(big.Int).Mul(saleValue, new(big.Int).SetUint64(g.royaltyBps[contract]))
	amount.Quo(amount, new(big.Int).SetUint64(entity.TotalBps))

	return g.royaltyRecipients[contract], amount, nil
}

type fakeCollections struct {
	registered map[string]bool
	verified   map[string]bool
}

func newFakeCollections(contracts ...string) *fakeCollections {
	c := &fakeCollections{registered: map[string]bool{}, verified: map[string]bool{}}
	for _, contract := range contracts {
		c.registered[contract] = true
		c.verified[contract] = true
	}
	return c
}

func (c *fakeCollections) GetCollectionByAddress(contractAddr string) (*entity.Collection, error) {
	if !c.registered[contractAddr] {
		return nil, errRejected
	}
	return &entity.Collection{Address: contractAddr, Verified: c.verified[contractAddr]}, nil
}

func (c *fakeCollections) GetAllCollections(size, page int) ([]entity.Collection, int64, error) {
	return nil, 0, nil
}

func (c *fakeCollections) IsRegistered(contractAddr string) (bool, error) {
	return c.registered[contractAddr], nil
}

func (c *fakeCollections) IsVerified(contractAddr string) (bool, error) {
	return c.verified[contractAddr], nil
}

type fakeClock struct {
	now uint64
}

func (c *fakeClock) Now() uint64 {
	return c.now
}

func (c *fakeClock) Advance(seconds uint64) {
	c.now += seconds
}

func testFees() FeeConfig {
	return FeeConfig{
		Owner:         ownerAddr,
		Holding:       holdingAddr,
		Dev:           devAddr,
		Charity:       charityAddr,
		Team:          teamAddr,
		DevFeeBps:     200,
		CharityFeeBps: 100,
		TeamFeeBps:    200,
	}
}

type fixture struct {
	mp          *Marketplace
	ledger      ledger.Ledger
	gateway     *fakeGateway
	collections *fakeCollections
	clock       *fakeClock
}

func newFixture() *fixture {
	gateway := newFakeGateway()
	collections := newFakeCollections(zrc6Addr)
	clock := &fakeClock{now: 1000}
	l := ledger.NewMemoryLedger()

	return &fixture{
		mp:          New(testFees(), l, gateway, collections, clock.Now),
		ledger:      l,
		gateway:     gateway,
		collections: collections,
		clock:       clock,
	}
}

func (f *fixture) fund(addr string, amount int64) {
	f.ledger.Deposit(addr, big.NewInt(amount))
}

func (f *fixture) listToken(tokenId uint64, price int64) {
	f.gateway.mint(zrc6Addr, tokenId, sellerAddr)
	if err := f.mp.CreateSale(sellerAddr, zrc6Addr, tokenId, big.NewInt(price)); err != nil {
		panic(err)
	}
}

func (f *fixture) auctionToken(tokenId uint64, startingPrice, endingPrice int64, duration uint64) {
	f.gateway.mint(zrc6Addr, tokenId, sellerAddr)
	if err := f.mp.CreateAuction(sellerAddr, zrc6Addr, tokenId, big.NewInt(startingPrice), big.NewInt(endingPrice), duration); err != nil {
		panic(err)
	}
}

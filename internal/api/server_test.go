package api

import (
	"encoding/json"
	"math/big"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ZilDuck/zilliqa-nft-marketplace/internal/entity"
	"github.com/ZilDuck/zilliqa-nft-marketplace/internal/ledger"
	"github.com/ZilDuck/zilliqa-nft-marketplace/internal/marketplace"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubGateway struct {
	owners map[uint64]string
}

func (g *stubGateway) OwnerOf(contract string, tokenId uint64) (string, error) {
	return g.owners[tokenId], nil
}

func (g *stubGateway) BalanceOf(contract, owner string) (uint64, error) { return 0, nil }

func (g *stubGateway) TokenAt(contract, owner string, index uint64) (uint64, error) { return 0, nil }

func (g *stubGateway) TokenURI(contract string, tokenId uint64) (string, error) { return "", nil }

func (g *stubGateway) TransferCustody(contract, from, to string, tokenId uint64) error {
	g.owners[tokenId] = to
	return nil
}

func (g *stubGateway) SupportsRoyaltyCapability(contract string) (bool, error) { return false, nil }

func (g *stubGateway) RoyaltyInfo(contract string, tokenId uint64, saleValue *big.Int) (string, *big.Int, error) {
	return "", nil, nil
}

type stubCollections struct{}

func (stubCollections) GetCollectionByAddress(contractAddr string) (*entity.Collection, error) {
	return &entity.Collection{Address: contractAddr, Verified: true}, nil
}

func (stubCollections) GetAllCollections(size, page int) ([]entity.Collection, int64, error) {
	return nil, 0, nil
}

func (stubCollections) IsRegistered(contractAddr string) (bool, error) { return true, nil }

func (stubCollections) IsVerified(contractAddr string) (bool, error) { return true, nil }

func newTestServer(t *testing.T) *httptest.Server {
	gateway := &stubGateway{owners: map[uint64]string{1: "0xseller"}}

	fees := marketplace.FeeConfig{
		Owner:     "0xowner",
		Holding:   "0xholding",
		Dev:       "0xdev",
		DevFeeBps: 200,
	}

	mp := marketplace.New(fees, ledger.NewMemoryLedger(), gateway, stubCollections{}, func() uint64 { return 1000 })
	require.NoError(t, mp.CreateSale("0xseller", "0xzrc6", 1, big.NewInt(100)))

	return httptest.NewServer(NewServer(mp).Router())
}

func TestServer_Health(t *testing.T) {
	server := newTestServer(t)
	defer server.Close()

	resp, err := http.Get(server.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestServer_GetListing(t *testing.T) {
	server := newTestServer(t)
	defer server.Close()

	resp, err := http.Get(server.URL + "/listings/0xzrc6/1")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var sale entity.Sale
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&sale))
	assert.Equal(t, "0xseller", sale.Seller)
	assert.Equal(t, big.NewInt(100), sale.Price)
}

func TestServer_GetListingNotFound(t *testing.T) {
	server := newTestServer(t)
	defer server.Close()

	resp, err := http.Get(server.URL + "/listings/0xzrc6/99")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestServer_GetPrice(t *testing.T) {
	server := newTestServer(t)
	defer server.Close()

	resp, err := http.Get(server.URL + "/listings/0xzrc6/1/price")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "100", body["price"])
}

func TestServer_GetListings(t *testing.T) {
	server := newTestServer(t)
	defer server.Close()

	resp, err := http.Get(server.URL + "/listings/0xzrc6")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Contract string   `json:"contract"`
		TokenIds []uint64 `json:"tokenIds"`
		Count    int      `json:"count"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, []uint64{1}, body.TokenIds)
	assert.Equal(t, 1, body.Count)
}

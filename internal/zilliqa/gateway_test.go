package zilliqa

import (
	"encoding/json"
	"fmt"
	"math/big"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGateway(t *testing.T, subStates map[string]string) (Gateway, *httptest.Server) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var request rpcRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&request))

		params, ok := request.Params.([]interface{})
		require.True(t, ok)
		require.True(t, len(params) >= 2)

		field, ok := params[1].(string)
		require.True(t, ok)

		result, found := subStates[field]
		if !found {
			result = "null"
		}

		_, _ = fmt.Fprintf(w, `{"id": %d, "jsonrpc": "2.0", "result": %s}`, request.Id, result)
	}))

	client, err := NewClient(server.URL, 5, false)
	require.NoError(t, err)

	return NewGateway(NewProvider(client), server.URL, testPrivateKey, 333, "2000000000"), server
}

// Throwaway key, never funded.
const testPrivateKey = "e19d05c5452b1c2b7e2e2f1a6e9e5a4b8f7c6d5e4f3a2b1c0d9e8f7a6b5c4d3e"

func TestGateway_OwnerOf(t *testing.T) {
	gateway, server := newTestGateway(t, map[string]string{
		"token_owners": `{"token_owners": {"7": "0xowner"}}`,
	})
	defer server.Close()

	owner, err := gateway.OwnerOf("0xcontract", 7)
	require.NoError(t, err)
	assert.Equal(t, "0xowner", owner)

	_, err = gateway.OwnerOf("0xcontract", 8)
	assert.ErrorIs(t, err, ErrTokenNotFound)
}

func TestGateway_BalanceOf(t *testing.T) {
	gateway, server := newTestGateway(t, map[string]string{
		"balances": `{"balances": {"0xowner": "3"}}`,
	})
	defer server.Close()

	balance, err := gateway.BalanceOf("0xcontract", "0xowner")
	require.NoError(t, err)
	assert.Equal(t, uint64(3), balance)

	balance, err = gateway.BalanceOf("0xcontract", "0xother")
	require.NoError(t, err)
	assert.Equal(t, uint64(0), balance)
}

func TestGateway_TokenAt(t *testing.T) {
	gateway, server := newTestGateway(t, map[string]string{
		"token_owners": `{"token_owners": {"3": "0xowner", "1": "0xowner", "2": "0xother"}}`,
	})
	defer server.Close()

	tokenId, err := gateway.TokenAt("0xcontract", "0xowner", 0)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), tokenId)

	tokenId, err = gateway.TokenAt("0xcontract", "0xowner", 1)
	require.NoError(t, err)
	assert.Equal(t, uint64(3), tokenId)

	_, err = gateway.TokenAt("0xcontract", "0xowner", 2)
	assert.ErrorIs(t, err, ErrTokenNotFound)
}

func TestGateway_TokenURI(t *testing.T) {
	gateway, server := newTestGateway(t, map[string]string{
		"token_uris": `{"token_uris": {"7": "ipfs://QmSpecial"}}`,
		"base_uri":   `{"base_uri": "https://api.example.com/metadata/"}`,
	})
	defer server.Close()

	uri, err := gateway.TokenURI("0xcontract", 7)
	require.NoError(t, err)
	assert.Equal(t, "ipfs://QmSpecial", uri)

	uri, err = gateway.TokenURI("0xcontract", 8)
	require.NoError(t, err)
	assert.Equal(t, "https://api.example.com/metadata/8", uri)
}

func TestGateway_RoyaltyCapability(t *testing.T) {
	gateway, server := newTestGateway(t, map[string]string{
		"royalty_recipient": `{"royalty_recipient": "0xcreator"}`,
		"royalty_fee_bps":   `{"royalty_fee_bps": "1000"}`,
	})
	defer server.Close()

	supported, err := gateway.SupportsRoyaltyCapability("0xcontract")
	require.NoError(t, err)
	assert.True(t, supported)

	recipient, amount, err := gateway.RoyaltyInfo("0xcontract", 7, big.NewInt(550))
	require.NoError(t, err)
	assert.Equal(t, "0xcreator", recipient)
	assert.Equal(t, big.NewInt(55), amount)
}

func TestGateway_NoRoyaltyCapability(t *testing.T) {
	gateway, server := newTestGateway(t, map[string]string{})
	defer server.Close()

	supported, err := gateway.SupportsRoyaltyCapability("0xcontract")
	require.NoError(t, err)
	assert.False(t, supported)
}

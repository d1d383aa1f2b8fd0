package factory

import (
	"encoding/json"
	"testing"

	"github.com/ZilDuck/zilliqa-nft-marketplace/pkg/zil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const contractAddr = "8a79bac7a6cf7e0e4db119ec08a5b1c925d7a8b2"

const zrc6InitJson = `[
	{"vname": "name", "type": "String", "value": {"primitive": "The Bear Market"}},
	{"vname": "initial_base_uri", "type": "String", "value": {"primitive": "https://api.example.com/metadata/"}},
	{"vname": "_creation_block", "type": "BNum", "value": {"primitive": "2074989"}}
]`

func TestCreateCollectionFromInit(t *testing.T) {
	var init zil.Params
	require.NoError(t, json.Unmarshal([]byte(zrc6InitJson), &init))

	collection, err := CreateCollectionFromInit(contractAddr, init)
	require.NoError(t, err)

	assert.Equal(t, "The Bear Market", collection.Name)
	assert.Equal(t, contractAddr, collection.Address)
	assert.Contains(t, collection.AddressBech32, "zil1")
	assert.Equal(t, uint64(2074989), collection.BlockNum)
	assert.True(t, collection.ZRC6)
	assert.False(t, collection.Verified)
}

func TestCreateCollectionFromInit_RejectsNonZrc6(t *testing.T) {
	var init zil.Params
	require.NoError(t, json.Unmarshal([]byte(`[{"vname": "name", "type": "String", "value": {"primitive": "x"}}]`), &init))

	_, err := CreateCollectionFromInit(contractAddr, init)
	assert.ErrorIs(t, err, ErrNotAZrc6Contract)
}

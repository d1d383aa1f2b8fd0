package zil

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const initJson = `[
	{"vname": "_scilla_version", "type": "Uint32", "value": {"primitive": "0"}},
	{"vname": "name", "type": "String", "value": {"primitive": "The Bear Market"}},
	{"vname": "initial_base_uri", "type": "String", "value": {"primitive": "https://api.example.com/metadata/"}},
	{"vname": "adt", "type": "Bool", "value": {"constructor": "True", "argtypes": [], "arguments": []}}
]`

func TestParams_GetParam(t *testing.T) {
	var params Params
	require.NoError(t, json.Unmarshal([]byte(initJson), &params))

	name, err := params.GetParam("name")
	require.NoError(t, err)
	assert.Equal(t, "The Bear Market", name.String())

	_, err = params.GetParam("missing")
	assert.ErrorIs(t, err, ErrParamNotFound)
}

func TestParams_HasParam(t *testing.T) {
	var params Params
	require.NoError(t, json.Unmarshal([]byte(initJson), &params))

	assert.True(t, params.HasParam("initial_base_uri", "String"))
	assert.False(t, params.HasParam("initial_base_uri", "Uint32"))
	assert.False(t, params.HasParam("missing", "String"))
}

func TestParam_StringOnAdtValue(t *testing.T) {
	var params Params
	require.NoError(t, json.Unmarshal([]byte(initJson), &params))

	adt, err := params.GetParam("adt")
	require.NoError(t, err)
	assert.Equal(t, "", adt.String())
}

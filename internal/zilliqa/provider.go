package zilliqa

import (
	"encoding/json"
	"errors"

	"github.com/ZilDuck/zilliqa-nft-marketplace/pkg/zil"
)

type Provider struct {
	rpcClient *rpcClient
}

func NewProvider(rpcClient *rpcClient) *Provider {
	return &Provider{rpcClient: rpcClient}
}

func (p *Provider) GetNetworkId() (string, error) {
	response, err := p.call("GetNetworkId")
	if err != nil {
		return "", err
	}

	var networkId string
	if err := json.Unmarshal(response.Result, &networkId); err != nil {
		return "", err
	}

	return networkId, nil
}

func (p *Provider) GetMinimumGasPrice() (string, error) {
	response, err := p.call("GetMinimumGasPrice")
	if err != nil {
		return "", err
	}

	var gasPrice string
	if err := json.Unmarshal(response.Result, &gasPrice); err != nil {
		return "", err
	}

	return gasPrice, nil
}

// GetSmartContractSubState returns the raw JSON of one field of a contract's
// mutable state, optionally indexed.
func (p *Provider) GetSmartContractSubState(contractAddr string, params ...interface{}) (string, error) {
	if len(params) == 0 {
		return "", errors.New("first parameter should be the variable name")
	}

	response, err := p.call("GetSmartContractSubState", append([]interface{}{contractAddr}, params...)...)
	if err != nil {
		return "", err
	}

	return response.ResultAsString(), nil
}

// GetSmartContractInit returns a contract's immutable init parameters.
func (p *Provider) GetSmartContractInit(contractAddr string) (zil.Params, error) {
	response, err := p.call("GetSmartContractInit", contractAddr)
	if err != nil {
		return nil, err
	}

	var params zil.Params
	if err := json.Unmarshal(response.Result, &params); err != nil {
		return nil, err
	}

	return params, nil
}

func (p *Provider) call(method string, params ...interface{}) (*rpcResponse, error) {
	response, err := p.rpcClient.call(method, params)
	if err != nil {
		return nil, err
	}

	if response == nil {
		return nil, errors.New("no response from RPC")
	}

	if response.Error != nil {
		return nil, *response.Error
	}

	return response, nil
}

package zilliqa

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"sort"
	"strconv"

	"github.com/Zilliqa/gozilliqa-sdk/account"
	contract2 "github.com/Zilliqa/gozilliqa-sdk/contract"
	"github.com/Zilliqa/gozilliqa-sdk/core"
	provider2 "github.com/Zilliqa/gozilliqa-sdk/provider"
	"github.com/Zilliqa/gozilliqa-sdk/util"
	"go.uber.org/zap"
)

const msgVersion = 1

var (
	ErrTokenNotFound      = errors.New("token not found")
	ErrStateFieldNotFound = errors.New("contract state field not found")
	ErrTxNotConfirmed     = errors.New("transaction not confirmed")
)

// Gateway exposes a ZRC-6 contract's capability surface to the marketplace:
// ownership and balance reads over contract substate, and custody transfers
// submitted as signed TransferFrom transitions. The marketplace holding
// account must be an approved operator of listed tokens.
type Gateway interface {
	OwnerOf(contract string, tokenId uint64) (string, error)
	BalanceOf(contract, owner string) (uint64, error)
	TokenAt(contract, owner string, index uint64) (uint64, error)
	TokenURI(contract string, tokenId uint64) (string, error)
	TransferCustody(contract, from, to string, tokenId uint64) error
	SupportsRoyaltyCapability(contract string) (bool, error)
	RoyaltyInfo(contract string, tokenId uint64, saleValue *big.Int) (string, *big.Int, error)
}

type gateway struct {
	provider    *Provider
	sdkProvider *provider2.Provider
	wallet      *account.Wallet
	chainId     int
	gasPrice    string
}

func NewGateway(provider *Provider, nodeUrl, privateKey string, chainId int, gasPrice string) Gateway {
	wallet := account.NewWallet()
	wallet.AddByPrivateKey(privateKey)

	return gateway{
		provider:    provider,
		sdkProvider: provider2.NewProvider(nodeUrl),
		wallet:      wallet,
		chainId:     chainId,
		gasPrice:    gasPrice,
	}
}

func (g gateway) OwnerOf(contract string, tokenId uint64) (string, error) {
	owners, err := g.subStateMap(contract, "token_owners", fmt.Sprintf("%d", tokenId))
	if err != nil {
		return "", err
	}

	owner, ok := owners[fmt.Sprintf("%d", tokenId)]
	if !ok {
		return "", ErrTokenNotFound
	}

	return owner, nil
}

func (g gateway) BalanceOf(contract, owner string) (uint64, error) {
	balances, err := g.subStateMap(contract, "balances", owner)
	if err != nil {
		return 0, err
	}

	balance, ok := balances[owner]
	if !ok {
		return 0, nil
	}

	return strconv.ParseUint(balance, 10, 64)
}

// TokenAt enumerates an owner's tokens in ascending token id order.
func (g gateway) TokenAt(contract, owner string, index uint64) (uint64, error) {
	owners, err := g.subStateMap(contract, "token_owners")
	if err != nil {
		return 0, err
	}

	tokenIds := make([]uint64, 0)
	for id, tokenOwner := range owners {
		if tokenOwner != owner {
			continue
		}
		tokenId, err := strconv.ParseUint(id, 10, 64)
		if err != nil {
			return 0, err
		}
		tokenIds = append(tokenIds, tokenId)
	}
	sort.Slice(tokenIds, func(i, j int) bool { return tokenIds[i] < tokenIds[j] })

	if index >= uint64(len(tokenIds)) {
		return 0, ErrTokenNotFound
	}

	return tokenIds[index], nil
}

func (g gateway) TokenURI(contract string, tokenId uint64) (string, error) {
	uris, err := g.subStateMap(contract, "token_uris", fmt.Sprintf("%d", tokenId))
	if err == nil {
		if uri, ok := uris[fmt.Sprintf("%d", tokenId)]; ok && uri != "" {
			return uri, nil
		}
	}

	baseUri, err := g.subStateString(contract, "base_uri")
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%s%d", baseUri, tokenId), nil
}

func (g gateway) TransferCustody(contractAddr, from, to string, tokenId uint64) error {
	c := contract2.Contract{
		Address:  contractAddr,
		Signer:   g.wallet,
		Provider: g.sdkProvider,
	}

	args := []core.ContractValue{
		{VName: "to", Type: "ByStr20", Value: to},
		{VName: "token_id", Type: "Uint256", Value: fmt.Sprintf("%d", tokenId)},
	}

	params := contract2.CallParams{
		Version:  strconv.FormatInt(int64(util.Pack(g.chainId, msgVersion)), 10),
		GasPrice: g.gasPrice,
		GasLimit: "40000",
		Amount:   "0",
	}

	tx, err := c.Call("TransferFrom", args, params, true)
	if err != nil {
		zap.L().With(
			zap.String("contract", contractAddr),
			zap.Uint64("tokenId", tokenId),
			zap.String("from", from),
			zap.String("to", to),
			zap.Error(err),
		).Error("Gateway: TransferFrom failed")
		return err
	}

	tx.Confirm(tx.ID, 300, 3, g.sdkProvider)
	if tx.Status != core.Confirmed {
		zap.L().With(
			zap.String("contract", contractAddr),
			zap.Uint64("tokenId", tokenId),
			zap.String("txId", tx.ID),
		).Error("Gateway: TransferFrom not confirmed")
		return ErrTxNotConfirmed
	}

	return nil
}

func (g gateway) SupportsRoyaltyCapability(contract string) (bool, error) {
	_, err := g.subStateString(contract, "royalty_recipient")
	if err != nil {
		if errors.Is(err, ErrStateFieldNotFound) {
			return false, nil
		}
		return false, err
	}

	return true, nil
}

func (g gateway) RoyaltyInfo(contract string, tokenId uint64, saleValue *big.Int) (string, *big.Int, error) {
	recipient, err := g.subStateString(contract, "royalty_recipient")
	if err != nil {
		return "", nil, err
	}

	feeBpsAsString, err := g.subStateString(contract, "royalty_fee_bps")
	if err != nil {
		return "", nil, err
	}

	feeBps, err := strconv.ParseUint(feeBpsAsString, 10, 64)
	if err != nil {
		return "", nil, err
	}

	amount := new(big.Int).Mul(saleValue, new(big.Int).SetUint64(feeBps))
	amount.Quo(amount, big.NewInt(10000))

	return recipient, amount, nil
}

func (g gateway) subStateMap(contract, field string, indices ...interface{}) (map[string]string, error) {
	raw, err := g.provider.GetSmartContractSubState(contract, field, indices)
	if err != nil {
		return nil, err
	}
	if raw == "" || raw == "null" {
		return nil, ErrStateFieldNotFound
	}

	var state map[string]map[string]string
	if err := json.Unmarshal([]byte(raw), &state); err != nil {
		return nil, err
	}

	values, ok := state[field]
	if !ok {
		return nil, ErrStateFieldNotFound
	}

	return values, nil
}

func (g gateway) subStateString(contract, field string) (string, error) {
	raw, err := g.provider.GetSmartContractSubState(contract, field, []string{})
	if err != nil {
		return "", err
	}
	if raw == "" || raw == "null" {
		return "", ErrStateFieldNotFound
	}

	var state map[string]string
	if err := json.Unmarshal([]byte(raw), &state); err != nil {
		return "", err
	}

	value, ok := state[field]
	if !ok {
		return "", ErrStateFieldNotFound
	}

	return value, nil
}

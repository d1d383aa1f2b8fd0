package factory

import (
	"errors"
	"strconv"

	"github.com/ZilDuck/zilliqa-nft-marketplace/internal/entity"
	"github.com/ZilDuck/zilliqa-nft-marketplace/pkg/zil"
	"github.com/Zilliqa/gozilliqa-sdk/bech32"
	"go.uber.org/zap"
)

var ErrNotAZrc6Contract = errors.New("contract does not carry the zrc6 init shape")

// CreateCollectionFromInit builds a Collection from a contract's immutable
// init parameters. ZRC-6 contracts always carry initial_base_uri in init.
func CreateCollectionFromInit(contractAddr string, init zil.Params) (entity.Collection, error) {
	if !init.HasParam("initial_base_uri", "String") {
		return entity.Collection{}, ErrNotAZrc6Contract
	}

	name := ""
	if nameParam, err := init.GetParam("name"); err == nil {
		name = nameParam.String()
	}

	blockNum := uint64(0)
	if creationBlock, err := init.GetParam("_creation_block"); err == nil {
		blockNum, _ = strconv.ParseUint(creationBlock.String(), 10, 64)
	}

	contractBech32, err := bech32.ToBech32Address(contractAddr)
	if err != nil {
		zap.L().With(zap.Error(err), zap.String("address", contractAddr)).Error("Failed to create bech32 address")
	}

	return entity.Collection{
		Name:          name,
		Address:       contractAddr,
		AddressBech32: contractBech32,
		BlockNum:      blockNum,
		ZRC6:          true,
		Verified:      false,
	}, nil
}

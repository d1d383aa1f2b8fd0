package factory

import (
	"math/big"

	"github.com/ZilDuck/zilliqa-nft-marketplace/internal/entity"
)

func CreateListingAction(action entity.ActionType, contract string, tokenId uint64, seller, price string, now uint64) entity.MarketplaceAction {
	return entity.MarketplaceAction{
		Contract: contract,
		TokenId:  tokenId,
		Action:   action,
		From:     seller,
		Cost:     price,
		Time:     now,
	}
}

func CreateSaleAction(contract string, tokenId uint64, seller, buyer string, cost, fee *big.Int, now uint64) entity.MarketplaceAction {
	return entity.MarketplaceAction{
		Contract: contract,
		TokenId:  tokenId,
		Action:   entity.SaleSettledAction,
		From:     seller,
		To:       buyer,
		Cost:     cost.String(),
		Fee:      fee.String(),
		Time:     now,
	}
}

func CreateOrderAction(action entity.ActionType, contract string, tokenId uint64, actor string, price *big.Int, now uint64) entity.MarketplaceAction {
	return entity.MarketplaceAction{
		Contract: contract,
		TokenId:  tokenId,
		Action:   action,
		From:     actor,
		Cost:     price.String(),
		Time:     now,
	}
}

func CreateTransferAction(contract string, tokenId uint64, from, to string, now uint64) entity.MarketplaceAction {
	return entity.MarketplaceAction{
		Contract: contract,
		TokenId:  tokenId,
		Action:   entity.TransferAction,
		From:     from,
		To:       to,
		Time:     now,
	}
}

func CreateRoyaltyAction(contract string, tokenId uint64, recipient string, amount *big.Int, now uint64) entity.MarketplaceAction {
	return entity.MarketplaceAction{
		Contract: contract,
		TokenId:  tokenId,
		Action:   entity.RoyaltyPaidAction,
		To:       recipient,
		Royalty:  amount.String(),
		Time:     now,
	}
}

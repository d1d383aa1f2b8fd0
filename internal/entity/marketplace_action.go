package entity

import (
	"crypto/md5"
	"fmt"
)

// MarketplaceAction is the index document emitted for every observable
// marketplace event. Actions are written for external indexers and are never
// read back by the engine itself.
type MarketplaceAction struct {
	Contract string     `json:"contract"`
	TokenId  uint64     `json:"tokenId"`
	Action   ActionType `json:"action"`
	From     string     `json:"from"`
	To       string     `json:"to"`
	Cost     string     `json:"cost"`
	Fee      string     `json:"fee"`
	Royalty  string     `json:"royalty"`
	Time     uint64     `json:"time"`
}

type ActionType string

const (
	ListingCreatedAction   ActionType = "listing"
	ListingCancelledAction ActionType = "delisting"
	SaleSettledAction      ActionType = "sale"
	TransferAction         ActionType = "transfer"
	OfferCreatedAction     ActionType = "offer"
	OfferCancelledAction   ActionType = "offerCancelled"
	OfferAcceptedAction    ActionType = "offerAccepted"
	BidCreatedAction       ActionType = "bid"
	BidCancelledAction     ActionType = "bidCancelled"
	BidAcceptedAction      ActionType = "bidAccepted"
	RoyaltyPaidAction      ActionType = "royaltyPaid"
)

func (a MarketplaceAction) Slug() string {
	return CreateMarketplaceActionSlug(a.TokenId, a.Contract, string(a.Action), a.Time, a.From, a.To)
}

func CreateMarketplaceActionSlug(tokenId uint64, contract, action string, time uint64, from, to string) string {
	data := []byte(fmt.Sprintf("marketaction-%d-%s-%s-%d-%s-%s", tokenId, contract, action, time, from, to))
	return fmt.Sprintf("%x", md5.Sum(data))
}

package entity

import "math/big"

// Offer is a buyer's proposal below the asking price of a sale. Offers on a
// listing are kept in ascending price order, one outstanding offer per
// offerer. The offered amount is escrowed for the lifetime of the offer.
type Offer struct {
	Contract string   `json:"contract"`
	TokenId  uint64   `json:"tokenId"`
	Offerer  string   `json:"offerer"`
	Price    *big.Int `json:"price"`
	Time     uint64   `json:"time"`
}

func (o Offer) Slug() string {
	return CreateListingSlug(o.TokenId, o.Contract)
}

// Bid is placed against an auction. Each new bid must strictly exceed the
// previous highest, so the sequence is strictly increasing in price.
type Bid struct {
	Contract string   `json:"contract"`
	TokenId  uint64   `json:"tokenId"`
	Bidder   string   `json:"bidder"`
	Price    *big.Int `json:"price"`
	Time     uint64   `json:"time"`
}

func (b Bid) Slug() string {
	return CreateListingSlug(b.TokenId, b.Contract)
}

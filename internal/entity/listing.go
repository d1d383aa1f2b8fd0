package entity

import (
	"fmt"
	"math/big"

	"github.com/gosimple/slug"
)

// ListingKey identifies a listing by the NFT contract that minted the token
// and the token id within that contract. A token has at most one active
// listing (sale or auction) at any time.
type ListingKey struct {
	Contract string `json:"contract"`
	TokenId  uint64 `json:"tokenId"`
}

func (k ListingKey) Slug() string {
	return CreateListingSlug(k.TokenId, k.Contract)
}

func CreateListingSlug(tokenId uint64, contract string) string {
	return slug.Make(fmt.Sprintf("listing-%d-%s", tokenId, contract))
}

type Sale struct {
	Contract  string   `json:"contract"`
	TokenId   uint64   `json:"tokenId"`
	Seller    string   `json:"seller"`
	Price     *big.Int `json:"price"`
	StartedAt uint64   `json:"startedAt"`
}

func (s Sale) Key() ListingKey {
	return ListingKey{Contract: s.Contract, TokenId: s.TokenId}
}

func (s Sale) Slug() string {
	return CreateListingSlug(s.TokenId, s.Contract)
}

type Auction struct {
	Contract      string   `json:"contract"`
	TokenId       uint64   `json:"tokenId"`
	Seller        string   `json:"seller"`
	StartingPrice *big.Int `json:"startingPrice"`
	EndingPrice   *big.Int `json:"endingPrice"`
	Duration      uint64   `json:"duration"`
	StartedAt     uint64   `json:"startedAt"`
}

func (a Auction) Key() ListingKey {
	return ListingKey{Contract: a.Contract, TokenId: a.TokenId}
}

func (a Auction) Slug() string {
	return CreateListingSlug(a.TokenId, a.Contract)
}

func (a Auction) Active() bool {
	return a.StartedAt > 0
}

func (a Auction) Expired(now uint64) bool {
	return now > a.StartedAt+a.Duration
}

func (a Auction) Elapsed(now uint64) uint64 {
	if now <= a.StartedAt {
		return 0
	}

	return now - a.StartedAt
}

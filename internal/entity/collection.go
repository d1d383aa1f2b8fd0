package entity

import (
	"fmt"

	"github.com/gosimple/slug"
)

// Collection is a registered external NFT contract. Only registered
// collections can be listed; verification is a curation flag set by the
// platform.
type Collection struct {
	Name          string `json:"name"`
	Address       string `json:"address"`
	AddressBech32 string `json:"addressBech32"`
	BlockNum      uint64 `json:"blockNum"`
	ZRC6          bool   `json:"zrc6"`
	Verified      bool   `json:"verified"`
	RoyaltyBps    uint64 `json:"royaltyBps"`
}

func (c Collection) Slug() string {
	return CreateCollectionSlug(c.Address)
}

func CreateCollectionSlug(contract string) string {
	return slug.Make(fmt.Sprintf("collection-%s", contract))
}

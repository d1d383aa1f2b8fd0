package marketplace

import "math/big"

// TokenGateway is the capability surface of the external NFT contract that
// holds token ownership. Custody of a listed token moves to the marketplace
// holding address for the lifetime of the listing.
type TokenGateway interface {
	OwnerOf(contract string, tokenId uint64) (string, error)
	BalanceOf(contract, owner string) (uint64, error)
	TokenAt(contract, owner string, index uint64) (uint64, error)
	TokenURI(contract string, tokenId uint64) (string, error)
	TransferCustody(contract, from, to string, tokenId uint64) error
	SupportsRoyaltyCapability(contract string) (bool, error)
	RoyaltyInfo(contract string, tokenId uint64, saleValue *big.Int) (string, *big.Int, error)
}

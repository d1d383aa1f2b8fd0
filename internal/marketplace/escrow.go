package marketplace

import (
	"github.com/ZilDuck/zilliqa-nft-marketplace/internal/entity"
	"go.uber.org/zap"
)

// EscrowCoordinator moves token custody between the owner and the marketplace
// holding address. A release that the token contract rejects after the
// listing is already finalized is recorded as a pending release instead of
// stranding the token; the recipient claims it later.
type EscrowCoordinator struct {
	gateway TokenGateway
	holding string

	pending map[entity.ListingKey]string
}

func NewEscrowCoordinator(gateway TokenGateway, holding string) *EscrowCoordinator {
	return &EscrowCoordinator{
		gateway: gateway,
		holding: holding,
		pending: make(map[entity.ListingKey]string),
	}
}

func (e *EscrowCoordinator) Escrow(contract string, tokenId uint64, from string) error {
	if err := e.gateway.TransferCustody(contract, from, e.holding, tokenId); err != nil {
		zap.L().With(
			zap.String("contract", contract),
			zap.Uint64("tokenId", tokenId),
			zap.String("from", from),
			zap.Error(err),
		).Error("Escrow: Failed to take custody")
		return ErrExternalTransfer
	}

	return nil
}

// Release hands the token to its final recipient. On failure the release is
// parked for ClaimPendingRelease rather than rolled back: the registry state
// is already finalized at this point.
func (e *EscrowCoordinator) Release(contract string, tokenId uint64, to string) error {
	if err := e.gateway.TransferCustody(contract, e.holding, to, tokenId); err != nil {
		key := entity.ListingKey{Contract: contract, TokenId: tokenId}
		e.pending[key] = to

		zap.L().With(
			zap.String("contract", contract),
			zap.Uint64("tokenId", tokenId),
			zap.String("to", to),
			zap.Error(err),
		).Warn("Escrow: Release failed, parked as pending")

		return ErrExternalTransfer
	}

	return nil
}

// Claim retries a parked release for its recorded recipient.
func (e *EscrowCoordinator) Claim(contract string, tokenId uint64) (string, error) {
	key := entity.ListingKey{Contract: contract, TokenId: tokenId}
	to, ok := e.pending[key]
	if !ok {
		return "", ErrPendingReleaseNotFound
	}

	if err := e.gateway.TransferCustody(contract, e.holding, to, tokenId); err != nil {
		zap.L().With(
			zap.String("contract", contract),
			zap.Uint64("tokenId", tokenId),
			zap.String("to", to),
			zap.Error(err),
		).Warn("Escrow: Claim failed")
		return "", ErrExternalTransfer
	}

	delete(e.pending, key)

	zap.L().With(
		zap.String("contract", contract),
		zap.Uint64("tokenId", tokenId),
		zap.String("to", to),
	).Info("Escrow: Pending release claimed")

	return to, nil
}

func (e *EscrowCoordinator) PendingRelease(contract string, tokenId uint64) (string, bool) {
	to, ok := e.pending[entity.ListingKey{Contract: contract, TokenId: tokenId}]
	return to, ok
}

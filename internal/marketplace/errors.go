package marketplace

import "errors"

var (
	ErrNotListed     = errors.New("token is not listed")
	ErrAlreadyListed = errors.New("token is already listed")
	ErrNotAuctioned  = errors.New("token is not auctioned")

	ErrUnauthorized          = errors.New("caller is not authorized")
	ErrContractNotRegistered = errors.New("contract is not registered")
	ErrContractNotVerified   = errors.New("contract is not verified")

	ErrExpired      = errors.New("auction has expired")
	ErrPriceTooLow  = errors.New("price is too low")
	ErrPriceTooHigh = errors.New("price is too high")

	ErrOverflowRange = errors.New("value exceeds allotted range")

	ErrDuplicateOffer = errors.New("offerer already has an outstanding offer")
	ErrDuplicateBid   = errors.New("bidder already has an outstanding bid")
	ErrOfferNotFound  = errors.New("offer not found")
	ErrBidNotFound    = errors.New("bid not found")

	ErrExternalTransfer = errors.New("external transfer failed")
	ErrPaused           = errors.New("marketplace is paused")

	ErrPendingReleaseNotFound = errors.New("no pending release for token")
	ErrPendingPayoutNotFound  = errors.New("no pending payout for account")
	ErrBadRoyaltySplit        = errors.New("royalty shares exceed the allowed total")

	// ErrInvariantViolation flags internal bookkeeping inconsistency. It is
	// unreachable through the public surface of a correct build.
	ErrInvariantViolation = errors.New("registry invariant violation")
)

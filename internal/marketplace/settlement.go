package marketplace

import (
	"math/big"

	"github.com/ZilDuck/zilliqa-nft-marketplace/internal/entity"
	"github.com/ZilDuck/zilliqa-nft-marketplace/internal/ledger"
	"go.uber.org/zap"
)

// FeeConfig carries the injected fee destinations and basis point cuts. These
// were compiled-in literals in the original contracts; here they come from
// configuration.
type FeeConfig struct {
	Owner   string
	Holding string
	Dev     string
	Charity string
	Team    string

	DevFeeBps     uint64
	CharityFeeBps uint64
	TeamFeeBps    uint64
}

type Payout struct {
	Destination string
	Amount      *big.Int
	Royalty     bool
}

// SettlementEngine computes and executes the payout split for a finalized
// trade. Planning happens before any state is touched (it is the only step
// that can fail, external royalty lookups included); distribution runs after
// the listing and its orders are gone from the registry and always moves
// funds already sitting in the holding account. That fixed order is the
// reentrancy defense.
//
// Once funds are collected a trade never unwinds: a payout or refund the
// destination account rejects stays in holding and is parked as a pending
// payout, claimable through ClaimPayout once the account can receive again.
//
// Sales and auctions settle under two deliberately different policies: sales
// take a flat dev cut plus any overpayment and honour the token contract's
// royalty capability; auctions take charity and team cuts and apply the
// per-collection royalty split table.
type SettlementEngine struct {
	ledger  ledger.Ledger
	gateway TokenGateway
	fees    FeeConfig

	splits  map[string][]entity.RoyaltySplit
	pending map[string]*big.Int
}

func NewSettlementEngine(l ledger.Ledger, gateway TokenGateway, fees FeeConfig) *SettlementEngine {
	return &SettlementEngine{
		ledger:  l,
		gateway: gateway,
		fees:    fees,
		splits:  make(map[string][]entity.RoyaltySplit),
		pending: make(map[string]*big.Int),
	}
}

// ConfigureRoyaltySplit installs the per-collection split table used by
// auction settlement. The shares must sum below entity.MaxRoyaltyShareBps.
func (s *SettlementEngine) ConfigureRoyaltySplit(contract string, splits []entity.RoyaltySplit) error {
	total := uint64(0)
	for _, split := range splits {
		if split.Destination == "" || split.Bps == 0 {
			return ErrBadRoyaltySplit
		}
		total += split.Bps
	}

	if total >= entity.MaxRoyaltyShareBps {
		return ErrBadRoyaltySplit
	}

	installed := make([]entity.RoyaltySplit, len(splits))
	copy(installed, splits)
	s.splits[contract] = installed

	zap.L().With(
		zap.String("contract", contract),
		zap.Int("destinations", len(splits)),
		zap.Uint64("totalBps", total),
	).Info("Settlement: Royalty split configured")

	return nil
}

func (s *SettlementEngine) RoyaltySplits(contract string) []entity.RoyaltySplit {
	splits := make([]entity.RoyaltySplit, len(s.splits[contract]))
	copy(splits, s.splits[contract])

	return splits
}

// PlanSale computes the payouts for a finalized sale of price P where the
// buyer paid paid ≥ P. The dev cut is DevFeeBps of P plus the whole
// overpayment; the royalty is whatever the token contract's royalty
// capability reports for P, clamped so the seller share never goes negative.
// Truncation remainders accrue to the seller, so dev and royalty each receive
// exactly the floor of their entitlement and the payouts sum to paid.
func (s *SettlementEngine) PlanSale(sale entity.Sale, paid *big.Int) ([]Payout, error) {
	price := sale.Price
	overpaid := new(big.Int).Sub(paid, price)

	devCut := bpsShare(price, s.fees.DevFeeBps)
	devCut.Add(devCut, overpaid)

	sellerCut := new(big.Int).Sub(paid, devCut)

	payouts := []Payout{{Destination: s.fees.Dev, Amount: devCut}}

	supported, err := s.gateway.SupportsRoyaltyCapability(sale.Contract)
	if err != nil {
		return nil, ErrExternalTransfer
	}
	if supported {
		recipient, royalty, err := s.gateway.RoyaltyInfo(sale.Contract, sale.TokenId, price)
		if err != nil {
			return nil, ErrExternalTransfer
		}
		if royalty != nil && royalty.Sign() > 0 && recipient != "" {
			if royalty.Cmp(sellerCut) > 0 {
				royalty = new(big.Int).Set(sellerCut)
			}
			sellerCut.Sub(sellerCut, royalty)
			payouts = append(payouts, Payout{Destination: recipient, Amount: royalty, Royalty: true})
		}
	}

	return append(payouts, Payout{Destination: sale.Seller, Amount: sellerCut}), nil
}

// PlanAuction computes the payouts for a winning bid: charity and team cuts
// first, then each configured royalty split share of the bid, remainder to
// the seller.
func (s *SettlementEngine) PlanAuction(auction entity.Auction, bid entity.Bid) []Payout {
	charityCut := bpsShare(bid.Price, s.fees.CharityFeeBps)
	teamCut := bpsShare(bid.Price, s.fees.TeamFeeBps)

	sellerCut := new(big.Int).Sub(bid.Price, charityCut)
	sellerCut.Sub(sellerCut, teamCut)

	payouts := []Payout{
		{Destination: s.fees.Charity, Amount: charityCut},
		{Destination: s.fees.Team, Amount: teamCut},
	}

	for _, split := range s.splits[auction.Contract] {
		cut := bpsShare(bid.Price, split.Bps)
		sellerCut.Sub(sellerCut, cut)
		payouts = append(payouts, Payout{Destination: split.Destination, Amount: cut, Royalty: true})
	}

	return append(payouts, Payout{Destination: auction.Seller, Amount: sellerCut})
}

// Distribute pays out a plan from the holding account, which the caller has
// already funded. Rejected lines are parked, never re-ordered or retried
// in-line, so every line lands exactly once.
func (s *SettlementEngine) Distribute(payouts []Payout) {
	for _, payout := range payouts {
		if payout.Amount.Sign() == 0 {
			continue
		}
		s.payOrPark(payout.Destination, payout.Amount)
	}
}

// payOrPark moves an amount out of holding. When the destination rejects the
// transfer the amount stays in holding and accrues to the destination's
// pending payout.
func (s *SettlementEngine) payOrPark(destination string, amount *big.Int) {
	if err := s.ledger.Transfer(s.fees.Holding, destination, amount); err != nil {
		zap.L().With(
			zap.String("destination", destination),
			zap.String("amount", amount.String()),
			zap.Error(err),
		).Warn("Settlement: Payout rejected, parked as pending")

		if pending, ok := s.pending[destination]; ok {
			pending.Add(pending, amount)
			return
		}
		s.pending[destination] = new(big.Int).Set(amount)
	}
}

// ClaimPayout retries the accumulated parked payouts for an account.
func (s *SettlementEngine) ClaimPayout(account string) (*big.Int, error) {
	amount, ok := s.pending[account]
	if !ok {
		return nil, ErrPendingPayoutNotFound
	}

	if err := s.ledger.Transfer(s.fees.Holding, account, amount); err != nil {
		zap.L().With(
			zap.String("account", account),
			zap.String("amount", amount.String()),
			zap.Error(err),
		).Warn("Settlement: Payout claim failed")
		return nil, ErrExternalTransfer
	}

	delete(s.pending, account)

	zap.L().With(
		zap.String("account", account),
		zap.String("amount", amount.String()),
	).Info("Settlement: Pending payout claimed")

	return amount, nil
}

func (s *SettlementEngine) PendingPayout(account string) (*big.Int, bool) {
	amount, ok := s.pending[account]
	if !ok {
		return nil, false
	}

	return new(big.Int).Set(amount), true
}

// bpsShare returns amount·bps/10000, truncated. The remainder stays with the
// largest line item, the seller's share.
func bpsShare(amount *big.Int, bps uint64) *big.Int {
	share := new(big.Int).Mul(amount, new(big.Int).SetUint64(bps))
	return share.Quo(share, new(big.Int).SetUint64(entity.TotalBps))
}

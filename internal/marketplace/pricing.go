package marketplace

import "math/big"

// CurrentPrice returns the price of a declining auction after elapsed seconds.
// The price moves linearly from startingPrice to endingPrice over duration and
// clamps at endingPrice once elapsed reaches duration. The delta is signed so
// an ascending schedule works too, although auctions are created declining.
//
// Division truncates toward zero, matching the contract arithmetic the
// schedule mirrors. Duration is validated non-zero when the auction is
// created.
func CurrentPrice(startingPrice, endingPrice *big.Int, duration, elapsed uint64) *big.Int {
	if elapsed >= duration {
		return new(big.Int).Set(endingPrice)
	}

	delta := new(big.Int).Sub(endingPrice, startingPrice)
	delta.Mul(delta, new(big.Int).SetUint64(elapsed))
	delta.Quo(delta, new(big.Int).SetUint64(duration))

	return delta.Add(delta, startingPrice)
}

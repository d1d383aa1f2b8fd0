package entity

const (
	// TotalBps is the denominator of all basis point fee math.
	TotalBps uint64 = 10000

	// MaxRoyaltyShareBps caps the sum of configured royalty shares for a
	// contract, leaving headroom for the platform, charity and team cuts.
	MaxRoyaltyShareBps uint64 = 9500
)

// RoyaltySplit routes a basis point share of auction proceeds to a
// destination, typically the collection creator or rights holder.
type RoyaltySplit struct {
	Destination string `json:"destination"`
	Bps         uint64 `json:"bps"`
}

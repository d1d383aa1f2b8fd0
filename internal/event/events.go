package event

type Type string

const (
	ListingCreatedEvent   Type = "ListingCreatedEvent"
	ListingCancelledEvent Type = "ListingCancelledEvent"
	SaleSettledEvent      Type = "SaleSettledEvent"
	OfferCreatedEvent     Type = "OfferCreatedEvent"
	OfferCancelledEvent   Type = "OfferCancelledEvent"
	OfferAcceptedEvent    Type = "OfferAcceptedEvent"
	BidCreatedEvent       Type = "BidCreatedEvent"
	BidCancelledEvent     Type = "BidCancelledEvent"
	BidAcceptedEvent      Type = "BidAcceptedEvent"
	RoyaltyPaidEvent      Type = "RoyaltyPaidEvent"
)

package indexer

import (
	"encoding/json"

	"github.com/ZilDuck/zilliqa-nft-marketplace/internal/elastic_search"
	"github.com/ZilDuck/zilliqa-nft-marketplace/internal/entity"
	"github.com/ZilDuck/zilliqa-nft-marketplace/internal/event"
	"github.com/ZilDuck/zilliqa-nft-marketplace/internal/messenger"
	"go.uber.org/zap"
)

// ActionIndexer listens for marketplace events and writes each one as an
// action document, fanning the payload out to the queue for downstream
// consumers. Actions are write-only from the engine's point of view.
type ActionIndexer interface {
	Subscribe()
	IndexAction(action entity.MarketplaceAction)
	Flush()
}

type actionIndexer struct {
	elastic   elastic_search.Index
	messenger messenger.MessageService
}

func NewActionIndexer(elastic elastic_search.Index, messageService messenger.MessageService) ActionIndexer {
	return actionIndexer{elastic, messageService}
}

var eventItems = map[event.Type]messenger.Item{
	event.ListingCreatedEvent:   messenger.ListingUpdate,
	event.ListingCancelledEvent: messenger.ListingUpdate,
	event.SaleSettledEvent:      messenger.TradeSettled,
	event.RoyaltyPaidEvent:      messenger.TradeSettled,
	event.OfferCreatedEvent:     messenger.OrderUpdate,
	event.OfferCancelledEvent:   messenger.OrderUpdate,
	event.OfferAcceptedEvent:    messenger.OrderUpdate,
	event.BidCreatedEvent:       messenger.OrderUpdate,
	event.BidCancelledEvent:     messenger.OrderUpdate,
	event.BidAcceptedEvent:      messenger.OrderUpdate,
}

func (i actionIndexer) Subscribe() {
	for eventType, item := range eventItems {
		eventItem := item
		event.AddEventListener(eventType, func(msg interface{}) {
			action, ok := msg.(entity.MarketplaceAction)
			if !ok {
				zap.L().Error("ActionIndexer: Unexpected event payload")
				return
			}

			i.IndexAction(action)
			i.publish(eventItem, action)
		})
	}

	zap.L().Info("ActionIndexer: Subscribed to marketplace events")
}

func (i actionIndexer) IndexAction(action entity.MarketplaceAction) {
	zap.L().With(
		zap.String("contract", action.Contract),
		zap.Uint64("tokenId", action.TokenId),
		zap.String("action", string(action.Action)),
	).Info("ActionIndexer: Index action")

	i.elastic.AddIndexRequest(elastic_search.MarketplaceActionIndex.Get(), action, elastic_search.MarketAction)
	i.elastic.BatchPersist()
}

func (i actionIndexer) Flush() {
	i.elastic.Persist()
}

func (i actionIndexer) publish(item messenger.Item, action entity.MarketplaceAction) {
	body, err := json.Marshal(action)
	if err != nil {
		zap.L().With(zap.Error(err)).Error("ActionIndexer: Failed to marshal action")
		return
	}

	if err := i.messenger.SendMessage(item, body, false); err != nil {
		zap.L().With(zap.Error(err)).Error("ActionIndexer: Failed to publish action")
	}
}

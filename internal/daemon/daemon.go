package daemon

import (
	"time"

	"github.com/ZilDuck/zilliqa-nft-marketplace/internal/elastic_search"
	"go.uber.org/zap"
)

// Daemon flushes buffered action documents on a fixed cadence so indexed
// actions never sit in the request cache longer than the persist interval.
type Daemon struct {
	elastic        elastic_search.Index
	persistSeconds int
}

func NewDaemon(elastic elastic_search.Index, persistSeconds int) *Daemon {
	return &Daemon{elastic: elastic, persistSeconds: persistSeconds}
}

func (d *Daemon) Execute() {
	zap.L().Info("Daemon Started")

	for {
		if !d.elastic.BatchPersist() {
			d.elastic.Persist()
		}

		time.Sleep(time.Duration(d.persistSeconds) * time.Second)
	}
}

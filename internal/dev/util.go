package dev

import (
	"encoding/json"
	"log"

	"github.com/ZilDuck/zilliqa-nft-marketplace/internal/config"
)

// Dump pretty-prints a value when DEBUG is set. The CLI listing commands use
// it to render sales and auctions.
func Dump(el interface{}) {
	if !config.Get().Debug {
		return
	}

	pretty, err := json.MarshalIndent(el, "", "  ")
	if err != nil {
		log.Println(err)
		return
	}

	log.Println(string(pretty))
}

// DD dumps and halts.
func DD(el interface{}) {
	Dump(el)
	panic(nil)
}

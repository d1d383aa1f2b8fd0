package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/ZilDuck/zilliqa-nft-marketplace/internal/marketplace"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// Server exposes the read-only marketplace surface over HTTP. Mutations only
// happen through the engine itself.
type Server struct {
	marketplace *marketplace.Marketplace
}

func NewServer(mp *marketplace.Marketplace) Server {
	return Server{mp}
}

func (s Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/health", s.handleHealth).Methods("GET")
	r.HandleFunc("/listings/{contractAddr}", s.handleGetListings).Methods("GET")
	r.HandleFunc("/listings/{contractAddr}/{tokenId}", s.handleGetListing).Methods("GET")
	r.HandleFunc("/listings/{contractAddr}/{tokenId}/price", s.handleGetPrice).Methods("GET")
	r.HandleFunc("/listings/{contractAddr}/{tokenId}/offers", s.handleGetOffers).Methods("GET")
	r.HandleFunc("/listings/{contractAddr}/{tokenId}/bids", s.handleGetBids).Methods("GET")
	r.NotFoundHandler = notFoundHandler()

	return r
}

func (s Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = fmt.Fprintf(w, "OK")
}

func (s Server) handleGetListings(w http.ResponseWriter, r *http.Request) {
	contractAddr := mux.Vars(r)["contractAddr"]

	writeJson(w, map[string]interface{}{
		"contract": contractAddr,
		"tokenIds": s.marketplace.ListByContract(contractAddr),
		"count":    s.marketplace.Count(contractAddr),
	})
}

func (s Server) handleGetListing(w http.ResponseWriter, r *http.Request) {
	contractAddr := mux.Vars(r)["contractAddr"]
	tokenId, err := getTokenId(r)
	if err != nil {
		http.Error(w, "Invalid token id", http.StatusBadRequest)
		return
	}

	if sale, err := s.marketplace.GetSale(contractAddr, tokenId); err == nil {
		writeJson(w, sale)
		return
	}

	if auction, err := s.marketplace.GetAuction(contractAddr, tokenId); err == nil {
		writeJson(w, auction)
		return
	}

	zap.L().With(zap.String("contract", contractAddr), zap.Uint64("tokenId", tokenId)).Debug("Listing not available")
	http.Error(w, "Listing not available", http.StatusNotFound)
}

func (s Server) handleGetPrice(w http.ResponseWriter, r *http.Request) {
	contractAddr := mux.Vars(r)["contractAddr"]
	tokenId, err := getTokenId(r)
	if err != nil {
		http.Error(w, "Invalid token id", http.StatusBadRequest)
		return
	}

	price, err := s.marketplace.GetCurrentPrice(contractAddr, tokenId)
	if err != nil {
		http.Error(w, "Listing not available", http.StatusNotFound)
		return
	}

	writeJson(w, map[string]string{"price": price.String()})
}

func (s Server) handleGetOffers(w http.ResponseWriter, r *http.Request) {
	contractAddr := mux.Vars(r)["contractAddr"]
	tokenId, err := getTokenId(r)
	if err != nil {
		http.Error(w, "Invalid token id", http.StatusBadRequest)
		return
	}

	writeJson(w, s.marketplace.Offers(contractAddr, tokenId))
}

func (s Server) handleGetBids(w http.ResponseWriter, r *http.Request) {
	contractAddr := mux.Vars(r)["contractAddr"]
	tokenId, err := getTokenId(r)
	if err != nil {
		http.Error(w, "Invalid token id", http.StatusBadRequest)
		return
	}

	writeJson(w, s.marketplace.Bids(contractAddr, tokenId))
}

func getTokenId(r *http.Request) (uint64, error) {
	tokenId, ok := mux.Vars(r)["tokenId"]
	if !ok {
		return 0, errors.New("invalid parameters")
	}

	return strconv.ParseUint(tokenId, 10, 64)
}

func writeJson(w http.ResponseWriter, body interface{}) {
	w.Header().Add("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(body); err != nil {
		zap.L().With(zap.Error(err)).Warn("Failed to encode response")
	}
}

func notFoundHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(404)
		_, _ = fmt.Fprintf(w, "Page not found")
	})
}

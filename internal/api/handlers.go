/*
Package api
File: handlers.go
Description:
    The HTTP collaborator interface exposed to the rendering layer: a
    read-only state snapshot plus the action handlers as the only mutation
    entry points.

    Rejected actions map to HTTP 409 with the reason in the body; the game
    core itself never errors on a rejection. The /api/debug/state endpoint
    is the documented-unsafe escape hatch for debug tooling — it bypasses
    every validation the core performs.
*/

package api

import (
	"encoding/json"
	"net/http"

	"github.com/everforgeworks/emberwild-server/internal/game"
	"github.com/everforgeworks/emberwild-server/internal/persistence"
)

// Server bundles the handlers' dependencies.
type Server struct {
	Engine *game.Engine
	Saves  *persistence.Adapter
}

// Request DTOs. These define exactly what the client may send us.

type GatherRequest struct {
	ResourceID string  `json:"resource_id"`
	Amount     float64 `json:"amount"`
}

type BuyProducerRequest struct {
	ProducerID string `json:"producer_id"`
}

type PurchaseUpgradeRequest struct {
	UpgradeID string `json:"upgrade_id"`
}

type StartExpeditionRequest struct {
	ExpeditionID string `json:"expedition_id"`
}

type ConsumeRequest struct {
	ResourceID string  `json:"resource_id"`
	Amount     float64 `json:"amount"`
}

type ProducerQuoteResponse struct {
	ProducerID string  `json:"producer_id"`
	Cost       float64 `json:"cost"`
	CanAfford  bool    `json:"can_afford"`
}

// Routes registers every endpoint on the mux.
func (s *Server) Routes(mux *http.ServeMux) {
	mux.HandleFunc("/api/state", s.handleGetState)
	mux.HandleFunc("/api/data", s.handleGetData)
	mux.HandleFunc("/api/producers/quote", s.handleProducerQuote)

	mux.HandleFunc("/api/gather", s.handleGather)
	mux.HandleFunc("/api/producers/buy", s.handleBuyProducer)
	mux.HandleFunc("/api/upgrades/purchase", s.handlePurchaseUpgrade)
	mux.HandleFunc("/api/campfire/light", s.handleLightCampfire)
	mux.HandleFunc("/api/expeditions/start", s.handleStartExpedition)
	mux.HandleFunc("/api/consume", s.handleConsume)
	mux.HandleFunc("/api/reset", s.handleReset)

	mux.HandleFunc("/api/debug/state", s.handleDebugState)
}

// handleGetState returns the current snapshot.
func (s *Server) handleGetState(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.Engine.State())
}

// handleGetData returns the static config so the client can render names,
// descriptions and costs without duplicating them.
func (s *Server) handleGetData(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.Engine.Data())
}

// handleProducerQuote is the pre-purchase check: next cost and affordability.
func (s *Server) handleProducerQuote(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	state := s.Engine.State()
	p := state.ProducerByID(id)
	if p == nil {
		http.Error(w, "Producer not found", http.StatusNotFound)
		return
	}

	cost := s.Engine.ProducerCost(id)
	currency := p.CostResource
	if currency == "" {
		currency = "materials"
	}
	writeJSON(w, ProducerQuoteResponse{
		ProducerID: id,
		Cost:       cost,
		CanAfford:  game.HasEnoughResource(state.Resources, currency, cost),
	})
}

func (s *Server) handleGather(w http.ResponseWriter, r *http.Request) {
	var req GatherRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	if req.Amount <= 0 {
		req.Amount = 1
	}
	s.Engine.ClickGather(req.ResourceID, req.Amount)
	writeJSON(w, s.Engine.State())
}

func (s *Server) handleBuyProducer(w http.ResponseWriter, r *http.Request) {
	var req BuyProducerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	if !s.Engine.BuyProducer(req.ProducerID) {
		http.Error(w, "Cannot afford producer", http.StatusConflict)
		return
	}
	writeJSON(w, s.Engine.State())
}

func (s *Server) handlePurchaseUpgrade(w http.ResponseWriter, r *http.Request) {
	var req PurchaseUpgradeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	if !s.Engine.PurchaseUpgrade(req.UpgradeID) {
		http.Error(w, "Cannot purchase upgrade", http.StatusConflict)
		return
	}
	writeJSON(w, s.Engine.State())
}

func (s *Server) handleLightCampfire(w http.ResponseWriter, r *http.Request) {
	if !s.Engine.LightCampfire() {
		http.Error(w, "Not enough materials for the fire", http.StatusConflict)
		return
	}
	writeJSON(w, s.Engine.State())
}

func (s *Server) handleStartExpedition(w http.ResponseWriter, r *http.Request) {
	var req StartExpeditionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	if !s.Engine.StartExpedition(req.ExpeditionID) {
		http.Error(w, "Cannot start expedition", http.StatusConflict)
		return
	}
	writeJSON(w, s.Engine.State())
}

func (s *Server) handleConsume(w http.ResponseWriter, r *http.Request) {
	var req ConsumeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	if !s.Engine.ConsumeResource(req.ResourceID, req.Amount) {
		http.Error(w, "Nothing to consume", http.StatusConflict)
		return
	}
	writeJSON(w, s.Engine.State())
}

// handleReset wipes the running state AND the persisted save.
func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	s.Engine.Reset()
	if err := s.Saves.Clear(); err != nil {
		http.Error(w, "Reset applied but save not cleared", http.StatusInternalServerError)
		return
	}
	writeJSON(w, s.Engine.State())
}

// handleDebugState swaps in an arbitrary state with NO validation.
// Unsafe by design; exists only for out-of-band debug tooling.
func (s *Server) handleDebugState(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "POST only", http.StatusMethodNotAllowed)
		return
	}
	var state game.GameState
	if err := json.NewDecoder(r.Body).Decode(&state); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	s.Engine.ReplaceState(&state)
	writeJSON(w, s.Engine.State())
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

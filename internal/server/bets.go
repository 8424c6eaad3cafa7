package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/roci-emry/sports-betting/internal/ledger"
	"github.com/roci-emry/sports-betting/pkg/models"
)

// BetHandler exposes the bet ledger over HTTP
type BetHandler struct {
	ledger *ledger.Ledger
}

// NewBetHandler creates a bet handler
func NewBetHandler(l *ledger.Ledger) *BetHandler {
	return &BetHandler{
		ledger: l,
	}
}

// CreateBet records a new pending bet
func (h *BetHandler) CreateBet(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var input ledger.BetInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	bet, err := h.ledger.Record(ctx, input)
	if err != nil {
		if errors.Is(err, ledger.ErrInvalidInput) {
			respondError(w, http.StatusBadRequest, err.Error(), nil)
			return
		}
		respondError(w, http.StatusInternalServerError, "failed to record bet", err)
		return
	}

	respondJSON(w, http.StatusCreated, bet)
}

// GetBets lists all logged bets, newest first
func (h *BetHandler) GetBets(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	bets, err := h.ledger.List(ctx)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to retrieve bets", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"bets":  bets,
		"count": len(bets),
	})
}

// GetBetSummary returns aggregate performance over settled bets
func (h *BetHandler) GetBetSummary(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	bets, err := h.ledger.List(ctx)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to retrieve bets", err)
		return
	}

	respondJSON(w, http.StatusOK, ledger.ComputeStats(bets))
}

// SettleBet applies a win/loss/push result to a bet
func (h *BetHandler) SettleBet(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid bet ID", err)
		return
	}

	var body struct {
		Result models.BetResult `json:"result"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	bet, err := h.ledger.Settle(ctx, id, body.Result)
	if err != nil {
		switch {
		case errors.Is(err, ledger.ErrNotFound):
			respondError(w, http.StatusNotFound, "bet not found", nil)
		case errors.Is(err, ledger.ErrInvalidInput):
			respondError(w, http.StatusBadRequest, err.Error(), nil)
		default:
			respondError(w, http.StatusInternalServerError, "failed to settle bet", err)
		}
		return
	}

	respondJSON(w, http.StatusOK, bet)
}

// DeleteBet removes a bet permanently
func (h *BetHandler) DeleteBet(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid bet ID", err)
		return
	}

	if err := h.ledger.Delete(ctx, id); err != nil {
		if errors.Is(err, ledger.ErrNotFound) {
			respondError(w, http.StatusNotFound, "bet not found", nil)
			return
		}
		respondError(w, http.StatusInternalServerError, "failed to delete bet", err)
		return
	}

	respondJSON(w, http.StatusNoContent, nil)
}

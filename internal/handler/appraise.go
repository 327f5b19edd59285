package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/osse101/LootLedger_Go/internal/appraisal"
	"github.com/osse101/LootLedger_Go/internal/catalog"
	"github.com/osse101/LootLedger_Go/internal/domain"
	"github.com/osse101/LootLedger_Go/internal/logger"
	"github.com/osse101/LootLedger_Go/internal/loot"
	"github.com/osse101/LootLedger_Go/internal/metrics"
)

// AppraiseRequest is the body of a loot appraisal request. Loot is the
// raw text of the loot list, one "name,amount" pair per line.
type AppraiseRequest struct {
	Loot       string `json:"loot" validate:"required"`
	Level      string `json:"level,omitempty" validate:"omitempty,levelrange"`
	CurrencyGP int    `json:"currency_gp,omitempty" validate:"gte=0"`
}

// AppraiseResponse carries the totals and, when a level was requested,
// the comparison against expected wealth.
type AppraiseResponse struct {
	Summary    *appraisal.Summary    `json:"summary"`
	Comparison *appraisal.Comparison `json:"comparison,omitempty"`
}

// HandleAppraise prices a loot list
func HandleAppraise(svc appraisal.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req AppraiseRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		if err := GetValidator().ValidateStruct(req); err != nil {
			respondJSON(w, http.StatusBadRequest, FormatValidationError(err))
			return
		}

		lines, err := loot.ParseString(req.Loot)
		if err != nil {
			respondError(w, http.StatusBadRequest, "Invalid loot list")
			return
		}

		summary, err := svc.AppraiseLoot(r.Context(), lines, req.CurrencyGP)
		if err != nil {
			log.Error("Failed to appraise loot", "error", err)
			respondError(w, http.StatusInternalServerError, "Failed to appraise loot")
			return
		}
		metrics.LootLinesAppraised.Add(float64(len(lines)))

		resp := AppraiseResponse{Summary: summary}
		if req.Level != "" {
			comparison, err := svc.CompareToExpected(summary, req.Level)
			if err != nil {
				respondError(w, http.StatusBadRequest, domain.ErrMsgInvalidLevel)
				return
			}
			resp.Comparison = comparison
		}

		log.Info("Loot appraised via API",
			"lines", summary.Lines,
			"skipped", len(summary.Skipped))

		respondJSON(w, http.StatusOK, resp)
	}
}

// HandleGetItem prices a single item name
func HandleGetItem(svc appraisal.Service, cat *catalog.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		name := r.URL.Query().Get("name")
		if name == "" {
			respondError(w, http.StatusBadRequest, "Missing 'name' query parameter")
			return
		}

		amount := 1
		if raw := r.URL.Query().Get("amount"); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil || n < 0 {
				respondError(w, http.StatusBadRequest, "Invalid 'amount' query parameter")
				return
			}
			amount = n
		}

		info, err := svc.AppraiseItem(r.Context(), name, amount)
		if err != nil {
			if errors.Is(err, domain.ErrItemNotFound) {
				metrics.LookupMisses.Inc()
				respondJSON(w, http.StatusNotFound, ErrorResponse{
					Error:      err.Error(),
					Suggestion: cat.ClosestMatch(name),
				})
				return
			}
			log.Error("Failed to appraise item", "name", name, "error", err)
			respondError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}

		metrics.ItemsAppraised.WithLabelValues(string(info.Category)).Inc()
		respondJSON(w, http.StatusOK, info)
	}
}

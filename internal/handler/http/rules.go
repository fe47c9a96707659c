package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/ileskov/personahub/internal/logger"
	"github.com/ileskov/personahub/internal/utils"
	"github.com/ileskov/personahub/models"
)

// Operator handlers for the global field-path rules. The requireAdmin
// middleware has already run by the time these execute.

func (h *Handler) listRules(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	rules, err := h.services.RuleService.ListRules(ctx)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listRules").Msg("rule listing failed")
		http.Error(w, "rule listing failed", statusFromError(err))
		return
	}

	utils.WriteJSON(w, rules, http.StatusOK)
}

func (h *Handler) createRule(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var rule models.DataPrivacyRule
	if err := json.NewDecoder(r.Body).Decode(&rule); err != nil {
		log.Err(err).Str("func", "*Handler.createRule").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	created, err := h.services.RuleService.CreateRule(ctx, rule)
	if err != nil {
		log.Err(err).Str("func", "*Handler.createRule").Msg("rule creation failed")
		http.Error(w, "rule creation failed", statusFromError(err))
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) updateRule(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	ruleID, err := strconv.ParseInt(chi.URLParam(r, "ruleID"), 10, 64)
	if err != nil {
		http.Error(w, "invalid rule id", http.StatusBadRequest)
		return
	}

	var rule models.DataPrivacyRule
	if err := json.NewDecoder(r.Body).Decode(&rule); err != nil {
		log.Err(err).Str("func", "*Handler.updateRule").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}
	rule.RuleID = ruleID

	updated, err := h.services.RuleService.UpdateRule(ctx, rule)
	if err != nil {
		log.Err(err).Str("func", "*Handler.updateRule").Msg("rule update failed")
		http.Error(w, "rule update failed", statusFromError(err))
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

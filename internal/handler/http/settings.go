package http

import (
	"encoding/json"
	"net/http"

	"github.com/ileskov/personahub/internal/logger"
	"github.com/ileskov/personahub/internal/utils"
	"github.com/ileskov/personahub/models"
)

func (h *Handler) getSettings(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	settings, err := h.services.SettingsService.GetSettings(ctx, userID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getSettings").Msg("privacy settings lookup failed")
		http.Error(w, "privacy settings lookup failed", statusFromError(err))
		return
	}

	utils.WriteJSON(w, settings, http.StatusOK)
}

func (h *Handler) saveSettings(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var settings models.UserPrivacySettings
	if err := json.NewDecoder(r.Body).Decode(&settings); err != nil {
		log.Err(err).Str("func", "*Handler.saveSettings").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}
	// settings are always the caller's own; the body cannot address another user
	settings.UserID = userID

	saved, err := h.services.SettingsService.SaveSettings(ctx, settings)
	if err != nil {
		log.Err(err).Str("func", "*Handler.saveSettings").Msg("privacy settings save failed")
		http.Error(w, "privacy settings save failed", statusFromError(err))
		return
	}

	utils.WriteJSON(w, saved, http.StatusOK)
}

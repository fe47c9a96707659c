package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/ileskov/personahub/internal/logger"
	"github.com/ileskov/personahub/internal/utils"
	"github.com/ileskov/personahub/models"
)

// Public read handlers. Every response here has passed the privacy engine;
// the requester's token, when present, only ever widens the view through the
// engine itself, never by skipping it.

// profileRequestFromHTTP assembles the read request from the URL, the level
// query parameter, and whatever identity the optional auth middleware put in
// the context.
func profileRequestFromHTTP(r *http.Request, aiSafe bool) models.ProfileRequest {
	requesterID, _ := utils.GetUserIDFromContext(r.Context())

	return models.ProfileRequest{
		Owner:       chi.URLParam(r, "username"),
		RequesterID: requesterID,
		IsAdmin:     utils.GetIsAdminFromContext(r.Context()),
		Level:       r.URL.Query().Get("level"),
		AISafe:      aiSafe,
	}
}

func (h *Handler) profile(w http.ResponseWriter, r *http.Request) {
	h.serveProfile(w, r, false)
}

// aiProfile is the AI-tool read path. It forces the AI-safe modifier on top
// of whatever base level was requested, which triggers content sanitizing
// and honors each owner's ai_assistant_access opt-out.
func (h *Handler) aiProfile(w http.ResponseWriter, r *http.Request) {
	h.serveProfile(w, r, true)
}

func (h *Handler) serveProfile(w http.ResponseWriter, r *http.Request, aiSafe bool) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	resp, err := h.services.ProfileService.GetProfile(ctx, profileRequestFromHTTP(r, aiSafe))
	if err != nil {
		log.Err(err).Str("func", "*Handler.serveProfile").Msg("profile read failed")
		http.Error(w, "profile read failed", statusFromError(err))
		return
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}

func (h *Handler) profileEntry(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	entryID, err := entryIDFromURL(r)
	if err != nil {
		http.Error(w, "invalid entry id", http.StatusBadRequest)
		return
	}

	entry, err := h.services.ProfileService.GetProfileEntry(ctx, profileRequestFromHTTP(r, false), entryID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.profileEntry").Msg("profile entry read failed")
		http.Error(w, "profile entry read failed", statusFromError(err))
		return
	}

	utils.WriteJSON(w, entry, http.StatusOK)
}

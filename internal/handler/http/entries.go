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

// Entry management handlers. Everything here runs behind the strict auth
// middleware and is scoped to the authenticated owner; responses carry raw
// entries including internal IDs, which public read paths never do.

func (h *Handler) createEntry(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	ownerID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var entry models.DataEntry
	if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
		log.Err(err).Str("func", "*Handler.createEntry").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}
	entry.OwnerID = ownerID

	saved, err := h.services.EntryService.CreateEntry(ctx, entry)
	if err != nil {
		log.Err(err).Str("func", "*Handler.createEntry").Msg("entry creation failed")
		http.Error(w, "entry creation failed", statusFromError(err))
		return
	}

	utils.WriteJSON(w, saved, http.StatusCreated)
}

func (h *Handler) listOwnEntries(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	ownerID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	req := models.EntryListRequest{OwnerID: ownerID}
	if vis := r.URL.Query()["visibility"]; len(vis) > 0 {
		for _, v := range vis {
			req.Visibilities = append(req.Visibilities, models.ParseVisibility(v))
		}
	}

	entries, err := h.services.EntryService.ListOwnEntries(ctx, req)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listOwnEntries").Msg("entry listing failed")
		http.Error(w, "entry listing failed", statusFromError(err))
		return
	}

	utils.WriteJSON(w, entries, http.StatusOK)
}

func (h *Handler) getOwnEntry(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	ownerID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	entryID, err := entryIDFromURL(r)
	if err != nil {
		http.Error(w, "invalid entry id", http.StatusBadRequest)
		return
	}

	entry, err := h.services.EntryService.GetOwnEntry(ctx, ownerID, entryID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getOwnEntry").Msg("entry lookup failed")
		http.Error(w, "entry lookup failed", statusFromError(err))
		return
	}

	utils.WriteJSON(w, entry, http.StatusOK)
}

func (h *Handler) updateEntry(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	ownerID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	entryID, err := entryIDFromURL(r)
	if err != nil {
		http.Error(w, "invalid entry id", http.StatusBadRequest)
		return
	}

	var update models.EntryUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Str("func", "*Handler.updateEntry").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}
	update.ID = entryID
	update.OwnerID = ownerID

	updated, err := h.services.EntryService.UpdateEntry(ctx, update)
	if err != nil {
		log.Err(err).Str("func", "*Handler.updateEntry").Msg("entry update failed")
		http.Error(w, "entry update failed", statusFromError(err))
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteEntry(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	ownerID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	entryID, err := entryIDFromURL(r)
	if err != nil {
		http.Error(w, "invalid entry id", http.StatusBadRequest)
		return
	}

	if err := h.services.EntryService.DeleteEntry(ctx, ownerID, entryID); err != nil {
		log.Err(err).Str("func", "*Handler.deleteEntry").Msg("entry deletion failed")
		http.Error(w, "entry deletion failed", statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func entryIDFromURL(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "entryID"), 10, 64)
}

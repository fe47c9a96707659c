package service

import (
	"context"
	"fmt"

	"github.com/ileskov/personahub/internal/logger"
	"github.com/ileskov/personahub/internal/store"
	"github.com/ileskov/personahub/models"
)

// entryService is the concrete implementation of EntryService: the
// authenticated owner's management surface. Nothing here runs through the
// privacy engine — it returns raw rows, which is why every operation is
// owner-scoped.
type entryService struct {
	entryRepository store.EntryRepository
	logger          *logger.Logger
}

// NewEntryService constructs an EntryService backed by the given repository.
func NewEntryService(entryRepository store.EntryRepository, logger *logger.Logger) EntryService {
	return &entryService{
		entryRepository: entryRepository,
		logger:          logger,
	}
}

// CreateEntry persists a new profile entry for its owner. An absent
// visibility marker defaults to public; anything unrecognized degrades to
// private.
func (s *entryService) CreateEntry(ctx context.Context, entry models.DataEntry) (models.DataEntry, error) {
	log := logger.FromContext(ctx)

	if entry.OwnerID == 0 || entry.Title == "" {
		log.Error().Int64("ownerID", entry.OwnerID).Msg("invalid entry data provided")
		return models.DataEntry{}, ErrInvalidDataProvided
	}

	if entry.Visibility == "" {
		entry.Visibility = models.VisibilityPublic
	} else {
		entry.Visibility = models.ParseVisibility(string(entry.Visibility))
	}

	saved, err := s.entryRepository.SaveEntry(ctx, entry)
	if err != nil {
		log.Err(err).Int64("ownerID", entry.OwnerID).Msg("entry creation ended with error")
		return models.DataEntry{}, fmt.Errorf("entry creation ended with error: %w", err)
	}

	return saved, nil
}

// GetOwnEntry returns one raw entry, but only to its owner. A foreign entry
// surfaces as store.ErrEntryNotFound, indistinguishable from absence.
func (s *entryService) GetOwnEntry(ctx context.Context, ownerID, entryID int64) (models.DataEntry, error) {
	log := logger.FromContext(ctx)

	entry, err := s.entryRepository.GetEntry(ctx, entryID)
	if err != nil {
		log.Err(err).Int64("entryID", entryID).Msg("entry lookup failed")
		return models.DataEntry{}, fmt.Errorf("entry lookup failed: %w", err)
	}

	if entry.OwnerID != ownerID {
		return models.DataEntry{}, fmt.Errorf("entry lookup failed: %w", store.ErrEntryNotFound)
	}

	return entry, nil
}

// ListOwnEntries lists the owner's raw entries for the management view.
// The owner filter is mandatory here; listing without one is the read
// path's job and goes through the privacy engine instead.
func (s *entryService) ListOwnEntries(ctx context.Context, req models.EntryListRequest) ([]models.DataEntry, error) {
	log := logger.FromContext(ctx)

	if req.OwnerID == 0 {
		return nil, ErrInvalidDataProvided
	}

	entries, err := s.entryRepository.ListEntries(ctx, req)
	if err != nil {
		log.Err(err).Int64("ownerID", req.OwnerID).Msg("entry listing failed")
		return nil, fmt.Errorf("entry listing failed: %w", err)
	}

	return entries, nil
}

// UpdateEntry applies a partial update to one of the owner's entries.
func (s *entryService) UpdateEntry(ctx context.Context, update models.EntryUpdate) (models.DataEntry, error) {
	log := logger.FromContext(ctx)

	if update.ID == 0 || update.OwnerID == 0 {
		return models.DataEntry{}, ErrInvalidDataProvided
	}

	if update.Visibility != nil {
		normalized := models.ParseVisibility(string(*update.Visibility))
		update.Visibility = &normalized
	}

	updated, err := s.entryRepository.UpdateEntry(ctx, update)
	if err != nil {
		log.Err(err).Int64("entryID", update.ID).Msg("entry update failed")
		return models.DataEntry{}, fmt.Errorf("entry update failed: %w", err)
	}

	return updated, nil
}

// DeleteEntry removes one of the owner's entries.
func (s *entryService) DeleteEntry(ctx context.Context, ownerID, entryID int64) error {
	log := logger.FromContext(ctx)

	if ownerID == 0 || entryID == 0 {
		return ErrInvalidDataProvided
	}

	if err := s.entryRepository.DeleteEntry(ctx, ownerID, entryID); err != nil {
		log.Err(err).Int64("entryID", entryID).Msg("entry deletion failed")
		return fmt.Errorf("entry deletion failed: %w", err)
	}

	return nil
}

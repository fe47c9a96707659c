package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/ileskov/personahub/internal/logger"
	"github.com/ileskov/personahub/internal/privacy"
	"github.com/ileskov/personahub/internal/store"
	"github.com/ileskov/personahub/models"
)

// profileService is the concrete implementation of ProfileService. It is the
// only component that assembles read responses, and everything it returns has
// passed the privacy engine.
//
// The deployment mode is re-derived from the user count on every call and is
// never cached: registering a second user flips the system to multi-user
// semantics on the very next request.
type profileService struct {
	userRepository  store.UserRepository
	entryRepository store.EntryRepository
	ruleRepository  store.RuleRepository
	settingsService SettingsService
	engine          *privacy.Engine
	logger          *logger.Logger
}

// NewProfileService constructs a ProfileService.
func NewProfileService(
	userRepository store.UserRepository,
	entryRepository store.EntryRepository,
	ruleRepository store.RuleRepository,
	settingsService SettingsService,
	engine *privacy.Engine,
	logger *logger.Logger,
) ProfileService {
	return &profileService{
		userRepository:  userRepository,
		entryRepository: entryRepository,
		ruleRepository:  ruleRepository,
		settingsService: settingsService,
		engine:          engine,
		logger:          logger,
	}
}

// GetProfile renders the filtered profile view for the request.
//
// In single-user mode the sole user is the implicit owner and explicit
// username segments resolve to ErrOwnerNotFound. In multi-user mode an
// explicit username scopes the view to that owner, while the ownerless form
// yields the aggregate view across all users, each owner's entries filtered
// under that owner's own settings.
func (s *profileService) GetProfile(ctx context.Context, req models.ProfileRequest) (models.ProfileResponse, error) {
	log := logger.FromContext(ctx)

	mode, err := s.resolveMode(ctx)
	if err != nil {
		return models.ProfileResponse{}, err
	}

	if mode == privacy.MultiUser && req.Owner == "" {
		return s.aggregateProfile(ctx, req)
	}

	owner, err := s.resolveOwner(ctx, mode, req.Owner)
	if err != nil {
		return models.ProfileResponse{}, err
	}

	entries, err := s.entryRepository.ListEntries(ctx, models.EntryListRequest{OwnerID: owner.UserID})
	if err != nil {
		log.Err(err).Int64("ownerID", owner.UserID).Msg("profile entry listing failed")
		return models.ProfileResponse{}, fmt.Errorf("profile entry listing failed: %w", err)
	}

	settings, rules, err := s.filterInputs(ctx, owner.UserID)
	if err != nil {
		return models.ProfileResponse{}, err
	}

	rctx := requestContext(req, owner.UserID, false)
	filtered := s.engine.FilterEntries(entries, settings, rules, rctx)

	return models.ProfileResponse{
		Owner:   owner.Username,
		Level:   s.engine.ResolveLevel(settings, rctx).Token(),
		Entries: filtered,
		Count:   len(filtered),
	}, nil
}

// GetProfileEntry renders a single entry referenced directly by ID. Direct
// reference makes unlisted entries reachable; everything else the requester
// may not see comes back as store.ErrEntryNotFound.
func (s *profileService) GetProfileEntry(ctx context.Context, req models.ProfileRequest, entryID int64) (models.DataEntry, error) {
	log := logger.FromContext(ctx)

	mode, err := s.resolveMode(ctx)
	if err != nil {
		return models.DataEntry{}, err
	}

	entry, err := s.entryRepository.GetEntry(ctx, entryID)
	if err != nil {
		log.Err(err).Int64("entryID", entryID).Msg("profile entry lookup failed")
		return models.DataEntry{}, fmt.Errorf("profile entry lookup failed: %w", err)
	}

	// The URL's owner segment must agree with the entry's actual owner;
	// a mismatch is absence, not an error detail for the requester.
	if req.Owner != "" {
		owner, resolveErr := s.resolveOwner(ctx, mode, req.Owner)
		if resolveErr != nil {
			return models.DataEntry{}, resolveErr
		}
		if owner.UserID != entry.OwnerID {
			return models.DataEntry{}, fmt.Errorf("profile entry lookup failed: %w", store.ErrEntryNotFound)
		}
	}

	settings, rules, err := s.filterInputs(ctx, entry.OwnerID)
	if err != nil {
		return models.DataEntry{}, err
	}

	rctx := requestContext(req, entry.OwnerID, true)
	filtered := s.engine.FilterEntries([]models.DataEntry{entry}, settings, rules, rctx)
	if len(filtered) == 0 {
		return models.DataEntry{}, fmt.Errorf("profile entry lookup failed: %w", store.ErrEntryNotFound)
	}

	return filtered[0], nil
}

// aggregateProfile builds the ownerless multi-user view: all owners' entries,
// each filtered under its own owner's settings, in storage order.
func (s *profileService) aggregateProfile(ctx context.Context, req models.ProfileRequest) (models.ProfileResponse, error) {
	log := logger.FromContext(ctx)

	entries, err := s.entryRepository.ListEntries(ctx, models.EntryListRequest{})
	if err != nil {
		log.Err(err).Msg("aggregate entry listing failed")
		return models.ProfileResponse{}, fmt.Errorf("aggregate entry listing failed: %w", err)
	}

	rules, err := s.ruleRepository.ListActiveRules(ctx)
	if err != nil {
		log.Err(err).Msg("active rule listing failed")
		return models.ProfileResponse{}, fmt.Errorf("active rule listing failed: %w", err)
	}

	settingsByOwner := make(map[int64]models.UserPrivacySettings)
	filtered := make([]models.DataEntry, 0, len(entries))

	for _, entry := range entries {
		settings, ok := settingsByOwner[entry.OwnerID]
		if !ok {
			settings, err = s.settingsService.GetSettings(ctx, entry.OwnerID)
			if err != nil {
				return models.ProfileResponse{}, err
			}
			settingsByOwner[entry.OwnerID] = settings
		}

		rctx := requestContext(req, entry.OwnerID, false)
		filtered = append(filtered, s.engine.FilterEntries([]models.DataEntry{entry}, settings, rules, rctx)...)
	}

	resolved := privacy.ParseLevel(req.Level)
	resolved.AISafe = resolved.AISafe || req.AISafe

	return models.ProfileResponse{
		Level:   resolved.Token(),
		Entries: filtered,
		Count:   len(filtered),
	}, nil
}

func (s *profileService) resolveMode(ctx context.Context) (privacy.Mode, error) {
	count, err := s.userRepository.CountUsers(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("user count failed")
		return 0, fmt.Errorf("user count failed: %w", err)
	}

	return privacy.ResolveMode(count), nil
}

// resolveOwner maps the request's owner segment to a stored user under the
// current mode. Single-user mode accepts only the implicit form; an empty
// system has no owner to resolve at all.
func (s *profileService) resolveOwner(ctx context.Context, mode privacy.Mode, username string) (models.User, error) {
	if mode == privacy.SingleUser {
		if username != "" {
			return models.User{}, ErrOwnerNotFound
		}

		owner, err := s.userRepository.SoleUser(ctx)
		if err != nil {
			if errors.Is(err, store.ErrNoUserWasFound) {
				return models.User{}, ErrOwnerNotFound
			}
			return models.User{}, fmt.Errorf("sole user lookup failed: %w", err)
		}
		return owner, nil
	}

	owner, err := s.userRepository.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.User{}, ErrOwnerNotFound
		}
		return models.User{}, fmt.Errorf("owner lookup failed: %w", err)
	}

	return owner, nil
}

// filterInputs fetches the two snapshots the engine consumes. Both fetches
// fail closed: an error surfaces instead of filtering under guessed inputs.
func (s *profileService) filterInputs(ctx context.Context, ownerID int64) (models.UserPrivacySettings, []models.DataPrivacyRule, error) {
	settings, err := s.settingsService.GetSettings(ctx, ownerID)
	if err != nil {
		return models.UserPrivacySettings{}, nil, err
	}

	rules, err := s.ruleRepository.ListActiveRules(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("active rule listing failed")
		return models.UserPrivacySettings{}, nil, fmt.Errorf("active rule listing failed: %w", err)
	}

	return settings, rules, nil
}

func requestContext(req models.ProfileRequest, ownerID int64, direct bool) models.RequestContext {
	return models.RequestContext{
		RequesterID:     req.RequesterID,
		IsAdmin:         req.IsAdmin,
		RequestedLevel:  req.Level,
		AISafe:          req.AISafe,
		TargetOwnerID:   ownerID,
		DirectReference: direct,
	}
}

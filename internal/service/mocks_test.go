package service

import (
	"context"

	"github.com/ileskov/personahub/models"
)

// ─────────────────────────────────────────────
// Mock: store.UserRepository
// ─────────────────────────────────────────────

type mockUserRepository struct {
	createUserFn         func(ctx context.Context, user models.User) (models.User, error)
	findUserByUsernameFn func(ctx context.Context, username string) (models.User, error)
	findUserByIDFn       func(ctx context.Context, userID int64) (models.User, error)
	countUsersFn         func(ctx context.Context) (int, error)
	soleUserFn           func(ctx context.Context) (models.User, error)
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if m.createUserFn != nil {
		return m.createUserFn(ctx, user)
	}
	return user, nil
}

func (m *mockUserRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	if m.findUserByUsernameFn != nil {
		return m.findUserByUsernameFn(ctx, username)
	}
	return models.User{}, nil
}

func (m *mockUserRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	if m.findUserByIDFn != nil {
		return m.findUserByIDFn(ctx, userID)
	}
	return models.User{}, nil
}

func (m *mockUserRepository) CountUsers(ctx context.Context) (int, error) {
	if m.countUsersFn != nil {
		return m.countUsersFn(ctx)
	}
	return 0, nil
}

func (m *mockUserRepository) SoleUser(ctx context.Context) (models.User, error) {
	if m.soleUserFn != nil {
		return m.soleUserFn(ctx)
	}
	return models.User{}, nil
}

// ─────────────────────────────────────────────
// Mock: store.EntryRepository
// ─────────────────────────────────────────────

type mockEntryRepository struct {
	saveEntryFn   func(ctx context.Context, entry models.DataEntry) (models.DataEntry, error)
	getEntryFn    func(ctx context.Context, entryID int64) (models.DataEntry, error)
	listEntriesFn func(ctx context.Context, req models.EntryListRequest) ([]models.DataEntry, error)
	updateEntryFn func(ctx context.Context, update models.EntryUpdate) (models.DataEntry, error)
	deleteEntryFn func(ctx context.Context, ownerID, entryID int64) error
}

func (m *mockEntryRepository) SaveEntry(ctx context.Context, entry models.DataEntry) (models.DataEntry, error) {
	if m.saveEntryFn != nil {
		return m.saveEntryFn(ctx, entry)
	}
	return entry, nil
}

func (m *mockEntryRepository) GetEntry(ctx context.Context, entryID int64) (models.DataEntry, error) {
	if m.getEntryFn != nil {
		return m.getEntryFn(ctx, entryID)
	}
	return models.DataEntry{}, nil
}

func (m *mockEntryRepository) ListEntries(ctx context.Context, req models.EntryListRequest) ([]models.DataEntry, error) {
	if m.listEntriesFn != nil {
		return m.listEntriesFn(ctx, req)
	}
	return nil, nil
}

func (m *mockEntryRepository) UpdateEntry(ctx context.Context, update models.EntryUpdate) (models.DataEntry, error) {
	if m.updateEntryFn != nil {
		return m.updateEntryFn(ctx, update)
	}
	return models.DataEntry{}, nil
}

func (m *mockEntryRepository) DeleteEntry(ctx context.Context, ownerID, entryID int64) error {
	if m.deleteEntryFn != nil {
		return m.deleteEntryFn(ctx, ownerID, entryID)
	}
	return nil
}

// ─────────────────────────────────────────────
// Mock: store.SettingsRepository
// ─────────────────────────────────────────────

type mockSettingsRepository struct {
	getSettingsFn  func(ctx context.Context, userID int64) (models.UserPrivacySettings, error)
	saveSettingsFn func(ctx context.Context, settings models.UserPrivacySettings) (models.UserPrivacySettings, error)
}

func (m *mockSettingsRepository) GetSettings(ctx context.Context, userID int64) (models.UserPrivacySettings, error) {
	if m.getSettingsFn != nil {
		return m.getSettingsFn(ctx, userID)
	}
	return models.UserPrivacySettings{}, nil
}

func (m *mockSettingsRepository) SaveSettings(ctx context.Context, settings models.UserPrivacySettings) (models.UserPrivacySettings, error) {
	if m.saveSettingsFn != nil {
		return m.saveSettingsFn(ctx, settings)
	}
	return settings, nil
}

// ─────────────────────────────────────────────
// Mock: store.RuleRepository
// ─────────────────────────────────────────────

type mockRuleRepository struct {
	listActiveRulesFn func(ctx context.Context) ([]models.DataPrivacyRule, error)
	listRulesFn       func(ctx context.Context) ([]models.DataPrivacyRule, error)
	createRuleFn      func(ctx context.Context, rule models.DataPrivacyRule) (models.DataPrivacyRule, error)
	updateRuleFn      func(ctx context.Context, rule models.DataPrivacyRule) (models.DataPrivacyRule, error)
}

func (m *mockRuleRepository) ListActiveRules(ctx context.Context) ([]models.DataPrivacyRule, error) {
	if m.listActiveRulesFn != nil {
		return m.listActiveRulesFn(ctx)
	}
	return nil, nil
}

func (m *mockRuleRepository) ListRules(ctx context.Context) ([]models.DataPrivacyRule, error) {
	if m.listRulesFn != nil {
		return m.listRulesFn(ctx)
	}
	return nil, nil
}

func (m *mockRuleRepository) CreateRule(ctx context.Context, rule models.DataPrivacyRule) (models.DataPrivacyRule, error) {
	if m.createRuleFn != nil {
		return m.createRuleFn(ctx, rule)
	}
	return rule, nil
}

func (m *mockRuleRepository) UpdateRule(ctx context.Context, rule models.DataPrivacyRule) (models.DataPrivacyRule, error) {
	if m.updateRuleFn != nil {
		return m.updateRuleFn(ctx, rule)
	}
	return rule, nil
}

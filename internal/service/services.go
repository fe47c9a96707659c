package service

import (
	"github.com/ileskov/personahub/internal/config"
	"github.com/ileskov/personahub/internal/crypto"
	"github.com/ileskov/personahub/internal/logger"
	"github.com/ileskov/personahub/internal/privacy"
	"github.com/ileskov/personahub/internal/store"
)

type Services struct {
	AuthService     AuthService
	EntryService    EntryService
	SettingsService SettingsService
	RuleService     RuleService
	ProfileService  ProfileService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, engine *privacy.Engine, logger *logger.Logger) *Services {
	hasher := crypto.NewPasswordHasher()
	settingsService := NewSettingsService(storages.SettingsRepository, logger)

	return &Services{
		AuthService:     NewAuthService(storages.UserRepository, storages.SettingsRepository, hasher, cfg.App, logger),
		EntryService:    NewEntryService(storages.EntryRepository, logger),
		SettingsService: settingsService,
		RuleService:     NewRuleService(storages.RuleRepository, logger),
		ProfileService: NewProfileService(
			storages.UserRepository,
			storages.EntryRepository,
			storages.RuleRepository,
			settingsService,
			engine,
			logger,
		),
	}
}

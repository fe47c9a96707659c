package config

// validate checks invariants shared by every runtime. Server-only
// requirements live in [StructuredConfig.ValidateServer] so the client,
// which reuses the same merged config, is not forced to carry them.
func (cfg *StructuredConfig) validate() error {
	return nil
}

// ValidateServer checks the invariants the server runtime needs at startup:
// a storage DSN and a token signing key.
func (cfg *StructuredConfig) ValidateServer() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.App.TokenSignKey == "" {
		return ErrInvalidAppConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout == 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate checks that the merged [StructuredConfig] satisfies all
// invariants before the resolved view is built from it.
//
// Returns nil if the configuration is valid, or a descriptive error
// otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Session.UnlockTimeoutMinutes != nil && *cfg.Session.UnlockTimeoutMinutes < 0 {
		return ErrInvalidSessionConfigs
	}

	return nil
}

func (cfg *CLIConfig) validate() error {
	if cfg.Storage.VaultPath == "" || cfg.Storage.ActivityDBPath == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Session.Path == "" || cfg.Session.UnlockTimeout < 0 {
		return ErrInvalidSessionConfigs
	}

	return nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// StructuredConfig is the top-level configuration container for the
// kookie application. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line
// flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Storage holds the paths of the on-disk stores: the encrypted vault
	// file and the local activity database.
	Storage Storage `envPrefix:"KOOKIE_"`

	// Session holds the session cache settings: the session file path and
	// the unlock timeout.
	Session Session `envPrefix:"KOOKIE_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged after the values
	// already loaded from environment variables and flags.
	// Populated via the KOOKIE_CONFIG environment variable or the
	// -c / -config flag.
	JSONFilePath string `env:"KOOKIE_CONFIG"`
}

// Storage holds the paths of the persistent stores.
type Storage struct {
	// VaultPath is the path of the encrypted vault file.
	// Env: KOOKIE_VAULT_PATH
	VaultPath string `env:"VAULT_PATH"`

	// ActivityDBPath is the path of the local activity-log database.
	// Env: KOOKIE_ACTIVITY_DB_PATH
	ActivityDBPath string `env:"ACTIVITY_DB_PATH"`

	// NoActivityLog disables the local activity log entirely: no
	// database is opened and no operations are recorded.
	// Env: KOOKIE_NO_ACTIVITY
	NoActivityLog bool `env:"NO_ACTIVITY"`
}

// Session holds the session cache settings.
type Session struct {
	// Path is the path of the obfuscated session file.
	// Env: KOOKIE_SESSION_PATH
	Path string `env:"SESSION_PATH"`

	// UnlockTimeoutMinutes is how long a cached unlock stays valid, in
	// minutes. Zero disables session caching entirely; every command then
	// re-derives the key from a freshly entered password. A nil pointer
	// means the value was not configured and the default applies.
	// Env: KOOKIE_UNLOCK_TIMEOUT
	UnlockTimeoutMinutes *int `env:"UNLOCK_TIMEOUT"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (first source with a value wins):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}

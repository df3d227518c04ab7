package config

import "errors"

// Validation errors returned by [CLIConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an empty vault path after defaults were applied).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidSessionConfigs indicates invalid session cache settings
	// (for example, a negative unlock timeout).
	ErrInvalidSessionConfigs = errors.New("invalid session configuration")
)

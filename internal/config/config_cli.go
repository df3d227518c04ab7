package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const (
	defaultDirName        = ".kookie"
	defaultVaultFile      = "vault.json"
	defaultSessionFile    = ".session"
	defaultActivityDBFile = "activity.db"

	// defaultUnlockTimeoutMinutes applies when no timeout is configured
	// anywhere. An explicit zero still disables session caching.
	defaultUnlockTimeoutMinutes = 15
)

// CLIStorage holds the resolved paths of the persistent stores.
type CLIStorage struct {
	// VaultPath is the path of the encrypted vault file.
	VaultPath string
	// ActivityDBPath is the path of the local activity-log database.
	ActivityDBPath string
	// NoActivityLog disables the activity log entirely.
	NoActivityLog bool
}

// CLISession holds the resolved session cache settings.
type CLISession struct {
	// Path is the path of the obfuscated session file.
	Path string
	// UnlockTimeout is how long a cached unlock stays valid. Zero
	// disables session caching entirely.
	UnlockTimeout time.Duration
}

// CLIConfig is the resolved configuration view consumed by the command
// layer, assembled from [StructuredConfig] with defaults applied.
type CLIConfig struct {
	// Storage contains the resolved store paths.
	Storage CLIStorage
	// Session contains the resolved session cache settings.
	Session CLISession
}

// GetCLIConfig builds and validates the resolved config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], fills every path
// that is still empty with its default under ~/.kookie/, resolves the
// unlock timeout (default 15 minutes when unset, zero means disabled),
// and validates the resulting [CLIConfig].
func GetCLIConfig() (*CLIConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return resolveCLIConfig(cfg)
}

func resolveCLIConfig(cfg *StructuredConfig) (*CLIConfig, error) {
	vaultPath, err := pathOrDefault(cfg.Storage.VaultPath, defaultVaultFile)
	if err != nil {
		return nil, err
	}

	activityDBPath, err := pathOrDefault(cfg.Storage.ActivityDBPath, defaultActivityDBFile)
	if err != nil {
		return nil, err
	}

	sessionPath, err := pathOrDefault(cfg.Session.Path, defaultSessionFile)
	if err != nil {
		return nil, err
	}

	minutes := defaultUnlockTimeoutMinutes
	if cfg.Session.UnlockTimeoutMinutes != nil {
		minutes = *cfg.Session.UnlockTimeoutMinutes
	}

	cliCfg := &CLIConfig{
		Storage: CLIStorage{
			VaultPath:      vaultPath,
			ActivityDBPath: activityDBPath,
			NoActivityLog:  cfg.Storage.NoActivityLog,
		},
		Session: CLISession{
			Path:          sessionPath,
			UnlockTimeout: time.Duration(minutes) * time.Minute,
		},
	}

	return cliCfg, cliCfg.validate()
}

// pathOrDefault keeps a configured path as-is and falls back to
// ~/.kookie/<file> when the path is empty.
func pathOrDefault(configured, file string) (string, error) {
	if configured != "" {
		return configured, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("error resolving home directory: %w", err)
	}

	return filepath.Join(home, defaultDirName, file), nil
}

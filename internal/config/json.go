package config

import (
	"encoding/json"
	"fmt"
	"os"
)

type StructuredJSONConfig struct {
	Storage struct {
		VaultPath      string `json:"vault_path"`
		ActivityDBPath string `json:"activity_db_path"`
		NoActivityLog  bool   `json:"no_activity"`
	} `json:"storage,omitempty"`

	Session struct {
		Path                 string `json:"session_path"`
		UnlockTimeoutMinutes *int   `json:"unlock_timeout_minutes"`
	} `json:"session,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		Storage: Storage{
			VaultPath:      jsonCfg.Storage.VaultPath,
			ActivityDBPath: jsonCfg.Storage.ActivityDBPath,
			NoActivityLog:  jsonCfg.Storage.NoActivityLog,
		},
		Session: Session{
			Path:                 jsonCfg.Session.Path,
			UnlockTimeoutMinutes: jsonCfg.Session.UnlockTimeoutMinutes,
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

package config

import (
	"errors"
	"flag"
	"strconv"
)

// Minutes holds an optional whole-minute value parsed from a flag.
// It implements the flag.Value interface and remembers whether the flag
// was passed at all, so an explicit "0" (disable) can be told apart from
// an absent flag (use the default).
type Minutes struct {
	Value  int
	passed bool
}

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-vault vault file path
//	-session session file path
//	-activity-db activity database path
//	-no-activity disable the local activity log
//	-timeout unlock timeout in whole minutes (0 disables session caching)
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	var vaultPath string
	var sessionPath string
	var activityDBPath string
	var noActivityLog bool
	var unlockTimeout Minutes
	var jsonConfigPath string

	flag.StringVar(&vaultPath, "vault", "", "Vault file path")
	flag.StringVar(&sessionPath, "session", "", "Session file path")
	flag.StringVar(&activityDBPath, "activity-db", "", "Activity database path")
	flag.BoolVar(&noActivityLog, "no-activity", false, "Disable the local activity log")
	flag.Var(&unlockTimeout, "timeout", "Unlock timeout in minutes (0 disables session caching)")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &StructuredConfig{
		Storage: Storage{
			VaultPath:      vaultPath,
			ActivityDBPath: activityDBPath,
			NoActivityLog:  noActivityLog,
		},
		Session: Session{
			Path:                 sessionPath,
			UnlockTimeoutMinutes: unlockTimeout.Pointer(),
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns the minute count as a decimal string, or "" when the
// flag was never passed.
func (m *Minutes) String() string {
	if !m.passed {
		return ""
	}

	return strconv.Itoa(m.Value)
}

// Set parses the input string as a whole number of minutes. Negative
// values are rejected; zero is accepted and means "disabled".
func (m *Minutes) Set(s string) error {
	minutes, err := strconv.Atoi(s)
	if err != nil {
		return err
	}

	if minutes < 0 {
		return errors.New("timeout is a non-negative number of minutes")
	}

	m.Value = minutes
	m.passed = true
	return nil
}

// Pointer returns the parsed value, or nil when the flag was never passed.
func (m *Minutes) Pointer() *int {
	if !m.passed {
		return nil
	}

	v := m.Value
	return &v
}

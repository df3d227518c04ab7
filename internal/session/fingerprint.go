package session

import (
	"os"

	"github.com/denisbrodbeck/machineid"

	"github.com/MKhiriev/kookie/internal/utils"
)

// machineIDApp keys the HMAC inside machineid.ProtectedID, so the raw
// OS machine identifier never appears in kookie state.
const machineIDApp = "kookie"

// MachineFingerprint returns a stable identifier of the current machine
// for binding session files to it.
//
// The primary source is the OS machine ID (hashed, via
// machineid.ProtectedID). On systems without one, the hostname is used
// through the same keyed-hash construction. The fallback is weaker but
// still deterministic, which is all session binding needs.
func MachineFingerprint() (string, error) {
	id, err := machineid.ProtectedID(machineIDApp)
	if err == nil && id != "" {
		return id, nil
	}

	hostname, hostErr := os.Hostname()
	if hostErr != nil {
		return "", hostErr
	}

	return utils.HashString(hostname, machineIDApp), nil
}

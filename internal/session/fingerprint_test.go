package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMachineFingerprint_Stable(t *testing.T) {
	first, err := MachineFingerprint()
	require.NoError(t, err)
	require.NotEmpty(t, first)

	second, err := MachineFingerprint()
	require.NoError(t, err)

	assert.Equal(t, first, second, "fingerprint must not change between calls")
}

func TestMachineFingerprint_Shape(t *testing.T) {
	fingerprint, err := MachineFingerprint()
	require.NoError(t, err)

	// Both sources run through an HMAC-SHA256 hex digest, so the shape
	// is the same whether the OS machine id or the hostname fallback
	// produced it.
	assert.Len(t, fingerprint, 64)
	assert.Regexp(t, "^[0-9a-f]+$", fingerprint)
}

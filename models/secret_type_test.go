package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSecretType_Valid(t *testing.T) {
	for _, secretType := range AllSecretTypes() {
		t.Run(secretType.String(), func(t *testing.T) {
			parsed, err := ParseSecretType(secretType.String())
			require.NoError(t, err)
			assert.Equal(t, secretType, parsed)
		})
	}
}

func TestParseSecretType_NormalizesInput(t *testing.T) {
	parsed, err := ParseSecretType("  API-Key ")
	require.NoError(t, err)
	assert.Equal(t, SecretTypeAPIKey, parsed)
}

func TestParseSecretType_Unknown(t *testing.T) {
	_, err := ParseSecretType("ssh-key")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownSecretType)
}

func TestSecretType_Valid(t *testing.T) {
	assert.True(t, SecretTypeDBCredential.Valid())
	assert.False(t, SecretType("certificate").Valid())
	assert.False(t, SecretType("").Valid())
}

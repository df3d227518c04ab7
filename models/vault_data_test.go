package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testVaultData() *VaultData {
	return &VaultData{Entries: []SecretEntry{
		{ID: "id-1", Name: "github", Type: SecretTypePassword, Password: &PasswordData{Password: "a"}},
		{ID: "id-2", Name: "github", Type: SecretTypeAPIKey, APIKey: &APIKeyData{Key: "b"}},
		{ID: "id-3", Name: "prod-db", Type: SecretTypeDBCredential, DBCredential: &DBCredentialData{Password: "c"}},
	}}
}

func TestVaultData_IndexByID(t *testing.T) {
	data := testVaultData()

	assert.Equal(t, 1, data.IndexByID("id-2"))
	assert.Equal(t, -1, data.IndexByID("missing"))
}

func TestVaultData_IndicesByName(t *testing.T) {
	data := testVaultData()

	t.Run("name shared across types", func(t *testing.T) {
		assert.Equal(t, []int{0, 1}, data.IndicesByName("github"))
	})

	t.Run("unique name", func(t *testing.T) {
		assert.Equal(t, []int{2}, data.IndicesByName("prod-db"))
	})

	t.Run("unknown name", func(t *testing.T) {
		assert.Empty(t, data.IndicesByName("gitlab"))
	})
}

func TestVaultData_ContainsName(t *testing.T) {
	data := testVaultData()

	assert.True(t, data.ContainsName(SecretTypePassword, "github"))
	assert.False(t, data.ContainsName(SecretTypeNote, "github"))
	assert.False(t, data.ContainsName(SecretTypePassword, "gitlab"))
}

func TestVaultData_Wipe(t *testing.T) {
	data := testVaultData()

	data.Wipe()

	require.Empty(t, data.Entries)
}

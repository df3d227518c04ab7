package vault

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/MKhiriev/kookie/internal/activity"
	"github.com/MKhiriev/kookie/internal/crypto"
	"github.com/MKhiriev/kookie/internal/logger"
	"github.com/MKhiriev/kookie/internal/session"
	"github.com/MKhiriev/kookie/internal/store"
	"github.com/MKhiriev/kookie/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newRoundTripManager builds a manager on the real storage, crypto, and
// session stack. Each call simulates a fresh process: new manager, new
// session cache instance, same files on disk.
func newRoundTripManager(t *testing.T, vaultPath, sessionPath string) VaultManager {
	t.Helper()

	engine := crypto.NewKeyEngine()
	sessions := session.NewSessionCache(sessionPath, "roundtrip-machine", engine, logger.Nop())
	return NewVaultManager(vaultPath, store.NewVaultStore(logger.Nop()), engine, sessions, activity.NewNopRecorder(), logger.Nop())
}

func TestVaultManager_RoundTrip(t *testing.T) {
	if testing.Short() {
		t.Skip("argon2id derivation is deliberately slow")
	}

	dir := t.TempDir()
	vaultPath := filepath.Join(dir, "vault.json")
	sessionPath := filepath.Join(dir, ".session")
	ctx := context.Background()

	mgr := newRoundTripManager(t, vaultPath, sessionPath)
	defer mgr.Close()

	// init
	require.NoError(t, mgr.Init(ctx, testPassword, false))
	_, err := os.Stat(vaultPath)
	require.NoError(t, err)

	err = mgr.Init(ctx, testPassword, false)
	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrVaultAlreadyExists)

	// unlock
	err = mgr.Unlock(ctx, "not the password", 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, crypto.ErrAuthenticationFailed)

	require.NoError(t, mgr.Unlock(ctx, testPassword, 0))

	// add
	created, err := mgr.Add(ctx, models.SecretEntry{
		Name:     "github",
		Type:     models.SecretTypePassword,
		Password: &models.PasswordData{Username: "tester", Password: "hunter2", URL: "https://github.com"},
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	_, err = mgr.Add(ctx, models.SecretEntry{
		Name: "github",
		Type: models.SecretTypeNote,
		Note: &models.NoteData{Content: "backup codes"},
	})
	require.NoError(t, err, "same name under another type is allowed")

	_, err = mgr.Add(ctx, models.SecretEntry{
		Name:     "github",
		Type:     models.SecretTypePassword,
		Password: &models.PasswordData{Password: "other"},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDuplicateSecret)

	// get
	_, err = mgr.Get(ctx, "github")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAmbiguousReference)

	got, err := mgr.Get(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Password)
	assert.Equal(t, "hunter2", got.Password.Password)

	// list
	entries, err := mgr.List(ctx, nil)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, created.ID, entries[0].ID, "creation order is preserved")
	assert.Empty(t, entries[0].Password.Password, "listing redacts payloads")
	assert.Equal(t, "tester", entries[0].Password.Username)

	// update
	updated, err := mgr.Update(ctx, created.ID, func(e *models.SecretEntry) error {
		e.Password.Password = "rotated"
		return nil
	})
	require.NoError(t, err)
	assert.True(t, updated.UpdatedAt.After(updated.CreatedAt))

	got, err = mgr.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "rotated", got.Password.Password)

	// delete
	require.NoError(t, mgr.Delete(ctx, created.ID, false))
	entries, err = mgr.List(ctx, nil)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, models.SecretTypeNote, entries[0].Type)

	// lock
	require.NoError(t, mgr.Lock(ctx))
	_, err = mgr.List(ctx, nil)
	assert.ErrorIs(t, err, ErrVaultLocked)

	// A fresh process with the right password sees the persisted state.
	second := newRoundTripManager(t, vaultPath, sessionPath)
	defer second.Close()

	require.NoError(t, second.Unlock(ctx, testPassword, 0))
	entries, err = second.List(ctx, nil)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "github", entries[0].Name)
}

func TestVaultManager_SessionRoundTrip(t *testing.T) {
	if testing.Short() {
		t.Skip("argon2id derivation is deliberately slow")
	}

	dir := t.TempDir()
	vaultPath := filepath.Join(dir, "vault.json")
	sessionPath := filepath.Join(dir, ".session")
	ctx := context.Background()

	first := newRoundTripManager(t, vaultPath, sessionPath)
	require.NoError(t, first.Init(ctx, testPassword, false))
	require.NoError(t, first.Unlock(ctx, testPassword, 10*time.Minute))

	_, err := first.Add(ctx, models.SecretEntry{
		Name:     "prod-db",
		Type:     models.SecretTypeDBCredential,
		DBCredential: &models.DBCredentialData{
			Host:     "db.internal",
			Database: "prod",
			Username: "app",
			Password: "s3cret",
		},
	})
	require.NoError(t, err)

	// Process end: the key dies, the session file survives.
	first.Close()
	_, err = os.Stat(sessionPath)
	require.NoError(t, err)

	// The next process unlocks from the cache without a password.
	second := newRoundTripManager(t, vaultPath, sessionPath)
	require.NoError(t, second.UnlockWithSession(ctx, 10*time.Minute))

	got, err := second.Get(ctx, "prod-db")
	require.NoError(t, err)
	require.NotNil(t, got.DBCredential)
	assert.Equal(t, "s3cret", got.DBCredential.Password)

	// An explicit lock ends the session for every later process.
	require.NoError(t, second.Lock(ctx))
	_, err = os.Stat(sessionPath)
	assert.True(t, os.IsNotExist(err))

	third := newRoundTripManager(t, vaultPath, sessionPath)
	err = third.UnlockWithSession(ctx, 10*time.Minute)
	require.Error(t, err)
	assert.ErrorIs(t, err, session.ErrNoSession)
}

func TestVaultManager_ZeroTTLDisablesSession(t *testing.T) {
	if testing.Short() {
		t.Skip("argon2id derivation is deliberately slow")
	}

	dir := t.TempDir()
	vaultPath := filepath.Join(dir, "vault.json")
	sessionPath := filepath.Join(dir, ".session")
	ctx := context.Background()

	mgr := newRoundTripManager(t, vaultPath, sessionPath)
	defer mgr.Close()

	require.NoError(t, mgr.Init(ctx, testPassword, false))
	require.NoError(t, mgr.Unlock(ctx, testPassword, 0))

	_, err := os.Stat(sessionPath)
	assert.True(t, os.IsNotExist(err), "disabled caching writes no session file")
}

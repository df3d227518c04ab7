// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package vault

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/kookie/internal/activity"
	"github.com/MKhiriev/kookie/internal/crypto"
	"github.com/MKhiriev/kookie/internal/logger"
	"github.com/MKhiriev/kookie/internal/session"
	"github.com/MKhiriev/kookie/internal/store"
	"github.com/MKhiriev/kookie/internal/utils"
	"github.com/MKhiriev/kookie/models"
)

// managerState tracks where the manager is in its lifecycle.
type managerState int

const (
	stateLocked managerState = iota
	stateUnlocking
	stateUnlocked
)

type vaultManager struct {
	vaultPath string
	store     store.VaultStore
	engine    crypto.KeyEngine
	sessions  session.SessionCache
	activity  activity.Recorder
	ids       *utils.UUIDGenerator
	log       *logger.Logger

	state managerState
	key   *crypto.Key
}

// NewVaultManager constructs the [VaultManager] for the vault at
// vaultPath. The manager starts locked.
func NewVaultManager(vaultPath string, vaultStore store.VaultStore, engine crypto.KeyEngine, sessions session.SessionCache, recorder activity.Recorder, log *logger.Logger) VaultManager {
	return &vaultManager{
		vaultPath: vaultPath,
		store:     vaultStore,
		engine:    engine,
		sessions:  sessions,
		activity:  recorder,
		ids:       utils.NewUUIDGenerator(),
		log:       log,
		state:     stateLocked,
	}
}

// Init implements [VaultManager].
func (m *vaultManager) Init(ctx context.Context, password string, force bool) error {
	salt, err := m.engine.GenerateSalt()
	if err != nil {
		return err
	}

	params := crypto.DefaultParams()
	key := m.engine.DeriveKey(password, salt, params)
	// Init only creates; the vault stays locked until an explicit unlock.
	defer key.Close()

	plaintext, err := encodeVaultData(models.NewVaultData())
	if err != nil {
		return err
	}
	defer crypto.Zero(plaintext)

	nonce, ciphertext, err := m.engine.Encrypt(key, plaintext)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	file := &models.VaultFile{
		FormatVersion: models.VaultFormatVersion,
		KDFSalt:       salt,
		KDFParams:     kdfParamsFrom(params),
		Nonce:         nonce,
		Ciphertext:    ciphertext,
		CreatedAt:     now,
		ModifiedAt:    now,
	}

	err = m.store.WithLock(ctx, m.vaultPath, store.LockExclusive, func() error {
		if m.store.Exists(m.vaultPath) {
			if !force {
				return store.ErrVaultAlreadyExists
			}
			if err := m.store.Remove(m.vaultPath); err != nil {
				return fmt.Errorf("remove previous vault: %w", err)
			}
		}

		return m.store.Save(ctx, m.vaultPath, file)
	})
	if err != nil {
		return err
	}

	// A session cached before init belonged to the previous vault.
	if err := m.sessions.Clear(); err != nil {
		m.log.Err(err).Str("func", "Init").Msg("failed to clear session after init")
	}

	m.record(ctx, models.ActivityOpInit, "", "")

	return nil
}

// Unlock implements [VaultManager].
func (m *vaultManager) Unlock(ctx context.Context, password string, ttl time.Duration) error {
	m.state = stateUnlocking

	file, err := m.loadContainer(ctx)
	if err != nil {
		m.state = stateLocked
		return err
	}

	key := m.engine.DeriveKey(password, file.KDFSalt, cryptoParamsFrom(file.KDFParams))

	if err := m.proveKey(key, file); err != nil {
		key.Close()
		m.state = stateLocked
		return err
	}

	m.setKey(key)
	m.state = stateUnlocked

	m.refreshSession(ctx, ttl)
	m.record(ctx, models.ActivityOpUnlock, "", "")

	return nil
}

// UnlockWithSession implements [VaultManager].
func (m *vaultManager) UnlockWithSession(ctx context.Context, ttl time.Duration) error {
	key, err := m.sessions.Fetch(ctx)
	if err != nil {
		return err
	}

	m.state = stateUnlocking

	file, err := m.loadContainer(ctx)
	if err != nil {
		key.Close()
		m.state = stateLocked
		return err
	}

	if err := m.proveKey(key, file); err != nil {
		key.Close()
		m.state = stateLocked

		if errors.Is(err, crypto.ErrAuthenticationFailed) {
			// The cached key no longer opens the vault, so the session
			// is stale (vault re-initialized or replaced).
			if clearErr := m.sessions.Clear(); clearErr != nil {
				m.log.Err(clearErr).Str("func", "UnlockWithSession").Msg("failed to clear stale session")
			}
		}

		return err
	}

	m.setKey(key)
	m.state = stateUnlocked

	m.refreshSession(ctx, ttl)

	return nil
}

// Lock implements [VaultManager].
func (m *vaultManager) Lock(ctx context.Context) error {
	if err := m.sessions.Clear(); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}

	m.dropKey()
	m.state = stateLocked

	m.record(ctx, models.ActivityOpLock, "", "")

	return nil
}

// Close implements [VaultManager].
func (m *vaultManager) Close() {
	m.dropKey()
	m.state = stateLocked
}

// loadContainer reads the vault container under a shared lock.
func (m *vaultManager) loadContainer(ctx context.Context) (*models.VaultFile, error) {
	var file *models.VaultFile
	err := m.store.WithLock(ctx, m.vaultPath, store.LockShared, func() error {
		var err error
		file, err = m.store.Load(ctx, m.vaultPath)
		return err
	})
	if err != nil {
		return nil, err
	}

	return file, nil
}

// proveKey opens the container's ciphertext with key and discards the
// content. A valid authentication tag is the only password-correctness
// check there is.
func (m *vaultManager) proveKey(key *crypto.Key, file *models.VaultFile) error {
	data, err := decryptVaultData(m.engine, key, file)
	if err != nil {
		return err
	}
	data.Wipe()

	return nil
}

// refreshSession stores or clears the session per ttl. A failure to
// cache never fails the unlock that produced the key.
func (m *vaultManager) refreshSession(ctx context.Context, ttl time.Duration) {
	if err := m.sessions.Store(ctx, m.key, ttl); err != nil {
		m.log.Err(err).Str("func", "refreshSession").Msg("failed to refresh session cache")
	}
}

// record appends an activity entry. Recording is advisory: failures are
// logged and swallowed so the operation that triggered them still
// succeeds.
func (m *vaultManager) record(ctx context.Context, op models.ActivityOp, secretType, secretName string) {
	entry := models.ActivityEntry{
		Op:         op,
		SecretType: secretType,
		SecretName: secretName,
		At:         time.Now().UTC(),
	}

	if err := m.activity.Record(ctx, entry); err != nil {
		m.log.Err(err).Str("func", "record").Msg("failed to record activity entry")
	}
}

func (m *vaultManager) requireUnlocked() error {
	if m.state != stateUnlocked || m.key == nil {
		return ErrVaultLocked
	}

	return nil
}

// setKey installs a new derived key, zeroizing any previous one.
func (m *vaultManager) setKey(key *crypto.Key) {
	if m.key != nil {
		m.key.Close()
	}
	m.key = key
}

func (m *vaultManager) dropKey() {
	if m.key != nil {
		m.key.Close()
		m.key = nil
	}
}

package vault

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/MKhiriev/kookie/internal/crypto"
	"github.com/MKhiriev/kookie/internal/store"
	"github.com/MKhiriev/kookie/models"
)

// encodeVaultData serializes the vault content for encryption. The
// returned buffer holds plaintext secrets; the caller must Zero it.
func encodeVaultData(data *models.VaultData) ([]byte, error) {
	plaintext, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("encode vault content: %w", err)
	}

	return plaintext, nil
}

// decryptVaultData opens the container's ciphertext and deserializes
// the vault content. The intermediate plaintext buffer is wiped before
// returning; the caller owns the returned content and must Wipe it.
//
// A tag failure surfaces as [crypto.ErrAuthenticationFailed] unchanged.
// A payload that authenticates but does not parse is corruption: the
// tag proves it was sealed under this key, so only a broken write
// explains it. The parse error detail is dropped because it could
// quote decrypted content.
func decryptVaultData(engine crypto.KeyEngine, key *crypto.Key, file *models.VaultFile) (*models.VaultData, error) {
	plaintext, err := engine.Decrypt(key, file.Nonce, file.Ciphertext)
	if err != nil {
		return nil, err
	}
	defer crypto.Zero(plaintext)

	data := &models.VaultData{}
	if err := json.Unmarshal(plaintext, data); err != nil {
		return nil, fmt.Errorf("%w: decrypted payload does not parse", store.ErrCorruptVault)
	}

	return data, nil
}

// readVault runs fn against the decrypted vault content under a shared
// lock. The content is wiped when fn returns; fn must copy out whatever
// it needs to keep.
func (m *vaultManager) readVault(ctx context.Context, fn func(data *models.VaultData) error) error {
	if err := m.requireUnlocked(); err != nil {
		return err
	}

	return m.store.WithLock(ctx, m.vaultPath, store.LockShared, func() error {
		file, err := m.store.Load(ctx, m.vaultPath)
		if err != nil {
			return err
		}

		data, err := decryptVaultData(m.engine, m.key, file)
		if err != nil {
			return err
		}
		defer data.Wipe()

		return fn(data)
	})
}

// mutateVault runs fn against the decrypted vault content under an
// exclusive lock and persists the result. The whole load-modify-save
// cycle happens inside the lock, so a concurrent mutation cannot lose
// updates. Nothing is written when fn fails.
func (m *vaultManager) mutateVault(ctx context.Context, fn func(data *models.VaultData) error) error {
	if err := m.requireUnlocked(); err != nil {
		return err
	}

	return m.store.WithLock(ctx, m.vaultPath, store.LockExclusive, func() error {
		file, err := m.store.Load(ctx, m.vaultPath)
		if err != nil {
			return err
		}

		data, err := decryptVaultData(m.engine, m.key, file)
		if err != nil {
			return err
		}
		defer data.Wipe()

		if err := fn(data); err != nil {
			return err
		}

		return m.sealAndSave(ctx, file, data)
	})
}

// sealAndSave re-encrypts the vault content into file under a fresh
// nonce and writes the container atomically.
func (m *vaultManager) sealAndSave(ctx context.Context, file *models.VaultFile, data *models.VaultData) error {
	plaintext, err := encodeVaultData(data)
	if err != nil {
		return err
	}
	defer crypto.Zero(plaintext)

	nonce, ciphertext, err := m.engine.Encrypt(m.key, plaintext)
	if err != nil {
		return err
	}

	file.Nonce = nonce
	file.Ciphertext = ciphertext
	file.ModifiedAt = time.Now().UTC()

	return m.store.Save(ctx, m.vaultPath, file)
}

// kdfParamsFrom converts engine parameters to their container form.
func kdfParamsFrom(params crypto.Params) models.KDFParams {
	return models.KDFParams{
		MemoryKiB:   params.MemoryKiB,
		Iterations:  params.Iterations,
		Parallelism: params.Parallelism,
	}
}

// cryptoParamsFrom converts container parameters back to engine form.
func cryptoParamsFrom(params models.KDFParams) crypto.Params {
	return crypto.Params{
		MemoryKiB:   params.MemoryKiB,
		Iterations:  params.Iterations,
		Parallelism: params.Parallelism,
	}
}

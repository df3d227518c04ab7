// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"

	"github.com/MKhiriev/kookie/internal/crypto"
	"github.com/MKhiriev/kookie/internal/logger"
	"github.com/MKhiriev/kookie/models"
)

const (
	vaultFileMode = os.FileMode(0o600)
	vaultDirMode  = os.FileMode(0o700)

	// lockSuffix names the sidecar lock file next to the vault. The
	// lock cannot live on the vault file itself: every atomic save
	// swaps the vault inode, which would silently detach the lock.
	lockSuffix = ".lock"

	// lockWait bounds how long WithLock waits for a contended lock
	// before giving up with [ErrVaultBusy].
	lockWait       = 3 * time.Second
	lockRetryDelay = 100 * time.Millisecond
)

// fileVaultStore is the private implementation of [VaultStore].
type fileVaultStore struct {
	log *logger.Logger
}

// NewVaultStore constructs the file-backed [VaultStore].
func NewVaultStore(log *logger.Logger) VaultStore {
	return &fileVaultStore{log: log}
}

// Exists implements [VaultStore].
func (s *fileVaultStore) Exists(path string) bool {
	info, err := os.Stat(path)

	return err == nil && !info.IsDir()
}

// Load implements [VaultStore].
func (s *fileVaultStore) Load(ctx context.Context, path string) (*models.VaultFile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrVaultNotFound
		}
		s.log.Err(err).Str("func", "Load").Msg("failed to read vault file")

		return nil, fmt.Errorf("read vault file: %w", err)
	}

	var file models.VaultFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptVault, err)
	}

	if err := validateContainer(&file); err != nil {
		return nil, err
	}

	return &file, nil
}

// Save implements [VaultStore].
func (s *fileVaultStore) Save(ctx context.Context, path string, file *models.VaultFile) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	payload, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return fmt.Errorf("encode vault container: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, vaultDirMode); err != nil {
		s.log.Err(err).Str("func", "Save").Msg("failed to create vault directory")

		return fmt.Errorf("create vault directory: %w", err)
	}

	// 1. Write the new container to a temporary file in the same
	// directory, so the final rename stays on one filesystem.
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		s.log.Err(err).Str("func", "Save").Msg("failed to create temp vault file")

		return fmt.Errorf("create temp vault file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() {
		// No-op after a successful rename.
		_ = os.Remove(tmpName)
	}()

	if _, err := tmp.Write(payload); err != nil {
		_ = tmp.Close()

		return fmt.Errorf("write temp vault file: %w", err)
	}

	// 2. Flush file content to disk before the rename makes it visible.
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()

		return fmt.Errorf("sync temp vault file: %w", err)
	}
	if err := tmp.Chmod(vaultFileMode); err != nil {
		_ = tmp.Close()

		return fmt.Errorf("chmod temp vault file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp vault file: %w", err)
	}

	// 3. Atomically replace the previous vault. A crash before this
	// point leaves the old file untouched; a crash after it leaves the
	// new file complete.
	if err := os.Rename(tmpName, path); err != nil {
		s.log.Err(err).Str("func", "Save").Msg("failed to replace vault file")

		return fmt.Errorf("replace vault file: %w", err)
	}

	// 4. Best-effort directory sync so the rename itself survives a
	// crash. Not all filesystems support syncing directories.
	if d, err := os.Open(dir); err == nil {
		_ = d.Sync()
		_ = d.Close()
	}

	return nil
}

// Remove implements [VaultStore]. Removing an absent file is not an
// error.
func (s *fileVaultStore) Remove(path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove vault file: %w", err)
	}

	return nil
}

// WithLock implements [VaultStore].
func (s *fileVaultStore) WithLock(ctx context.Context, path string, mode LockMode, fn func() error) error {
	if err := os.MkdirAll(filepath.Dir(path), vaultDirMode); err != nil {
		return fmt.Errorf("create vault directory: %w", err)
	}

	fl := flock.New(path + lockSuffix)

	waitCtx, cancel := context.WithTimeout(ctx, lockWait)
	defer cancel()

	var (
		locked bool
		err    error
	)
	if mode == LockExclusive {
		locked, err = fl.TryLockContext(waitCtx, lockRetryDelay)
	} else {
		locked, err = fl.TryRLockContext(waitCtx, lockRetryDelay)
	}
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return ErrVaultBusy
		}

		return fmt.Errorf("acquire vault lock: %w", err)
	}
	if !locked {
		return ErrVaultBusy
	}
	defer func() {
		if unlockErr := fl.Unlock(); unlockErr != nil {
			s.log.Err(unlockErr).Str("func", "WithLock").Msg("failed to release vault lock")
		}
	}()

	return fn()
}

// validateContainer checks the header fields of a parsed vault
// container before any of them reach the crypto layer.
func validateContainer(file *models.VaultFile) error {
	if file.FormatVersion < 1 || file.FormatVersion > models.VaultFormatVersion {
		return fmt.Errorf("%w: unsupported format version %d", ErrCorruptVault, file.FormatVersion)
	}
	if len(file.KDFSalt) == 0 {
		return fmt.Errorf("%w: missing kdf salt", ErrCorruptVault)
	}
	if file.KDFParams.MemoryKiB == 0 || file.KDFParams.Iterations == 0 || file.KDFParams.Parallelism == 0 {
		return fmt.Errorf("%w: invalid kdf parameters", ErrCorruptVault)
	}
	if len(file.Nonce) != crypto.NonceSize {
		return fmt.Errorf("%w: nonce length %d, want %d", ErrCorruptVault, len(file.Nonce), crypto.NonceSize)
	}
	if len(file.Ciphertext) < crypto.TagSize {
		return fmt.Errorf("%w: ciphertext too short", ErrCorruptVault)
	}

	return nil
}

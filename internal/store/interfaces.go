package store

import (
	"context"

	"github.com/MKhiriev/kookie/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/vault_store_mock.go -package=mock

// LockMode selects the kind of advisory lock taken by
// [VaultStore.WithLock].
type LockMode int

const (
	// LockShared allows concurrent readers and excludes writers.
	LockShared LockMode = iota

	// LockExclusive excludes every other lock holder. Required for
	// the load-modify-save cycle of mutating operations.
	LockExclusive
)

// VaultStore persists the encrypted vault container. It treats the
// container as opaque data: no decryption, no knowledge of the entries
// inside.
type VaultStore interface {
	// Exists reports whether a vault file is present at path.
	Exists(path string) bool

	// Load reads and validates the vault container at path.
	// Returns [ErrVaultNotFound] if the file does not exist and
	// [ErrCorruptVault] if it cannot be parsed or its header fields
	// fail validation.
	Load(ctx context.Context, path string) (*models.VaultFile, error)

	// Save writes the container to path atomically: the new content
	// is written to a temporary file in the same directory, synced,
	// and renamed over the target. An interrupted save leaves the
	// previous vault file intact.
	Save(ctx context.Context, path string, file *models.VaultFile) error

	// Remove deletes the vault file at path. Used only by forced
	// re-initialization.
	Remove(path string) error

	// WithLock runs fn while holding the advisory lock for the vault
	// at path. The lock lives on a sidecar file next to the vault, so
	// it survives the inode swap of an atomic save. If the lock is
	// not acquired within the bounded wait (or ctx expires first),
	// WithLock returns [ErrVaultBusy] without running fn.
	WithLock(ctx context.Context, path string, mode LockMode, fn func() error) error
}

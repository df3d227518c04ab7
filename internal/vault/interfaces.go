// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package vault

import (
	"context"
	"time"

	"github.com/MKhiriev/kookie/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/vault_manager_mock.go -package=mock

// VaultManager drives the vault through its lifecycle
// (Locked → Unlocking → Unlocked → Locked) and owns every secret
// operation. It composes the crypto engine, the vault store, the
// session cache, and the activity recorder; it never performs
// interactive I/O, so every operation receives already-resolved
// arguments from the command layer.
//
// A manager instance lives for one process invocation. The derived key
// is held in memory between Unlock and Lock/Close and is zeroized on
// release; decrypted vault content exists only inside a single
// operation.
type VaultManager interface {
	// Init creates a new vault at the configured path: fresh random
	// salt, key derived from password, an encrypted empty secret
	// collection written atomically. Returns
	// [store.ErrVaultAlreadyExists] when a vault is already present
	// and force is false. With force the previous vault is destroyed
	// irrecoverably; that is intentional data loss, requested
	// explicitly. Any cached session is cleared because it belonged to
	// the destroyed vault. Init leaves the vault locked.
	Init(ctx context.Context, password string, force bool) error

	// Unlock derives the key from password using the parameters stored
	// in the vault header and proves it by opening the ciphertext.
	// A valid authentication tag is the only password-correctness
	// check; a wrong password surfaces as
	// [crypto.ErrAuthenticationFailed]. On success the session cache
	// is refreshed per ttl (a ttl of zero or less disables caching and
	// clears any existing session).
	Unlock(ctx context.Context, password string, ttl time.Duration) error

	// UnlockWithSession unlocks using the cached session key instead
	// of a password. Returns [session.ErrNoSession] or
	// [session.ErrSessionExpired] when no usable session exists. The
	// cached key still has to open the ciphertext; if it does not
	// (the vault was re-initialized or replaced), the stale session is
	// cleared and [crypto.ErrAuthenticationFailed] is returned so the
	// caller falls back to the password. On success the session expiry
	// is refreshed per ttl.
	UnlockWithSession(ctx context.Context, ttl time.Duration) error

	// Lock clears the cached session, zeroizes the in-memory key, and
	// returns the vault to the locked state. Locking an already locked
	// vault succeeds and still clears any cached session; every process
	// starts locked, so that is the normal path of an explicit lock
	// command.
	Lock(ctx context.Context) error

	// Close zeroizes the in-memory key at the end of the process.
	// Unlike Lock it leaves the session file alone, so the next
	// invocation can still unlock from the cache.
	Close()

	// Add stores a new secret entry. The entry arrives as a draft:
	// name, type, and exactly one payload. Add assigns the identifier
	// and timestamps, enforces (type, name) uniqueness
	// ([ErrDuplicateSecret]), appends, persists atomically, and
	// returns the created entry including its identifier.
	Add(ctx context.Context, entry models.SecretEntry) (models.SecretEntry, error)

	// Get resolves ref to a single entry and returns it with payload.
	// Resolution tries the identifier first (exact match), then the
	// name across all types. A name matching more than one entry fails
	// with [ErrAmbiguousReference]; no match fails with
	// [ErrSecretNotFound].
	Get(ctx context.Context, ref string) (models.SecretEntry, error)

	// List returns entry summaries in creation order with every
	// secret-bearing payload field blanked. A non-nil typeFilter
	// restricts the result to one secret type.
	List(ctx context.Context, typeFilter *models.SecretType) ([]models.SecretEntry, error)

	// Update resolves ref like Get, applies mutate to a copy of the
	// entry, validates the result, re-checks (type, name) uniqueness
	// when the name or type changed, bumps UpdatedAt, persists
	// atomically, and returns the updated entry. The identifier and
	// creation timestamp cannot change.
	Update(ctx context.Context, ref string, mutate func(*models.SecretEntry) error) (models.SecretEntry, error)

	// Delete resolves ref like Get and removes the entry, persisting
	// the shrunken collection atomically. Confirmation is the command
	// layer's job: force reports that the caller already confirmed,
	// the manager behaves the same either way.
	Delete(ctx context.Context, ref string, force bool) error
}

package store

import "errors"

// Sentinel errors returned by vault persistence to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrVaultNotFound is returned when an operation targets a vault file
	// that does not exist at the configured path. The usual remedy is
	// running init first.
	ErrVaultNotFound = errors.New("vault not found")

	// ErrVaultAlreadyExists is returned when creating a vault would
	// overwrite an existing vault file and the caller did not explicitly
	// force the overwrite. Forcing destroys the old vault irrecoverably.
	ErrVaultAlreadyExists = errors.New("vault already exists")

	// ErrCorruptVault is returned when the vault container cannot be
	// trusted: unparseable JSON, a format version newer than this build
	// understands, or header fields that are missing, truncated, or out
	// of range. There is no automatic repair; restoring from a backup is
	// the only recovery.
	//
	// A vault whose header is intact but whose ciphertext was tampered
	// with does NOT produce this error; tampering is caught by the
	// authentication tag during decryption instead.
	ErrCorruptVault = errors.New("vault file is corrupted")

	// ErrVaultBusy is returned when the advisory vault lock is held by
	// another process and was not released within the bounded wait.
	// The operation was not started; retrying is the caller's decision.
	ErrVaultBusy = errors.New("vault is locked by another process")
)

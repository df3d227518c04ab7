package vault

import "errors"

// Manager errors. These are the business failures of secret operations;
// storage and cryptography failures surface as the store and crypto
// package sentinels unchanged.
var (
	// ErrVaultLocked is returned when a secret operation runs before a
	// successful unlock. It signals a sequencing bug in the caller, not
	// a user mistake: the command layer unlocks before operating.
	ErrVaultLocked = errors.New("vault is locked")

	// ErrSecretNotFound is returned when a reference matches no entry,
	// neither as an identifier nor as a name.
	ErrSecretNotFound = errors.New("secret not found")

	// ErrAmbiguousReference is returned when a name matches more than
	// one entry across types. The message lists the candidates by
	// identifier and type so the caller can retry with an exact id.
	// Payloads never appear in it.
	ErrAmbiguousReference = errors.New("ambiguous secret reference")

	// ErrDuplicateSecret is returned when an add or a rename would
	// produce a second entry with the same (type, name) pair.
	// Duplicates are rejected, never overwritten.
	ErrDuplicateSecret = errors.New("duplicate secret")
)

package crypto

import "errors"

// ErrAuthenticationFailed is returned by [KeyEngine.Decrypt] when the
// GCM authentication tag does not verify.
//
// A tag failure is deliberately indistinguishable between its causes:
// a wrong master password (wrong derived key), a tampered ciphertext,
// or a truncated blob all surface as this one error. It is the only
// signal the vault has about password correctness, and callers must
// not retry around it.
var ErrAuthenticationFailed = errors.New("authentication failed: wrong password or corrupted data")

// ErrKeyClosed is returned when key material is requested from a [Key]
// that was already zeroized via [Key.Close].
var ErrKeyClosed = errors.New("key already closed")

// ErrInvalidKeySize is returned by [NewKey] when the provided material
// is not exactly [KeySize] bytes.
var ErrInvalidKeySize = errors.New("invalid key size")

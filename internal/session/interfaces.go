package session

import (
	"context"
	"time"

	"github.com/MKhiriev/kookie/internal/crypto"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/session_cache_mock.go -package=mock

// SessionCache remembers a derived vault key between invocations so the
// user is not prompted for the master password on every command.
//
// The cached key is sealed under a key derived from the machine
// fingerprint. That is obfuscation and machine binding, not
// password-grade secrecy: anyone who can read both the session file and
// the machine identity can recover the key. The protection it does
// provide is that the key is never plaintext at rest and a copied
// session file is useless on another machine.
//
// A cached key never bypasses cryptographic verification. Unlocking
// with it still has to open the vault's authentication tag; a stale key
// fails there and the caller clears the session and falls back to the
// password.
type SessionCache interface {
	// Store seals the key and writes the session file with the given
	// time-to-live. A ttl of zero or less means session caching is
	// disabled: any existing session file is cleared and nothing is
	// written.
	Store(ctx context.Context, key *crypto.Key, ttl time.Duration) error

	// Fetch returns the cached key when a valid session exists.
	// Returns [ErrNoSession] or [ErrSessionExpired] otherwise; in
	// both cases the unusable session file has already been deleted.
	// The caller owns the returned key and must Close it.
	Fetch(ctx context.Context) (*crypto.Key, error)

	// Clear deletes the session file. Clearing an absent session is
	// not an error. Clear takes no context because it must run even
	// during teardown with a canceled context.
	Clear() error
}

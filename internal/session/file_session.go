// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/MKhiriev/kookie/internal/crypto"
	"github.com/MKhiriev/kookie/internal/logger"
)

// Purpose strings domain-separate the two values derived from the
// machine fingerprint: the AES key that seals the session and the
// digest stored in the file for the mismatch check. Neither value
// reveals the fingerprint or the other.
const (
	sealPurpose        = "kookie/session-seal/v1"
	fingerprintPurpose = "kookie/session-fingerprint/v1"
)

const (
	sessionFileMode = os.FileMode(0o600)
	sessionDirMode  = os.FileMode(0o700)
)

// sessionState is the on-disk session file layout.
type sessionState struct {
	// Key is the vault key sealed under the fingerprint-derived key.
	Key []byte `json:"obfuscated_key_material"`

	// Nonce is the AES-GCM nonce of the sealed key.
	Nonce []byte `json:"nonce"`

	// ExpiresAt is the session deadline (UTC).
	ExpiresAt time.Time `json:"expires_at"`

	// Fingerprint is the digest identifying the machine this session
	// belongs to.
	Fingerprint string `json:"machine_fingerprint"`

	// CreatedAt records when the session was established (UTC).
	CreatedAt time.Time `json:"created_at"`
}

// fileSessionCache is the private implementation of [SessionCache].
type fileSessionCache struct {
	path        string
	fingerprint string
	engine      crypto.KeyEngine
	log         *logger.Logger
}

// NewSessionCache constructs a [SessionCache] persisting to path and
// bound to the given machine fingerprint. The fingerprint is passed in
// explicitly (see [MachineFingerprint]) so tests and future callers can
// scope sessions without touching process-global state.
func NewSessionCache(path, fingerprint string, engine crypto.KeyEngine, log *logger.Logger) SessionCache {
	return &fileSessionCache{
		path:        path,
		fingerprint: fingerprint,
		engine:      engine,
		log:         log,
	}
}

// Store implements [SessionCache].
func (c *fileSessionCache) Store(ctx context.Context, key *crypto.Key, ttl time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	// ttl <= 0 disables caching entirely.
	if ttl <= 0 {
		return c.Clear()
	}

	material, err := key.Bytes()
	if err != nil {
		return fmt.Errorf("read key material: %w", err)
	}

	sealKey, err := c.sealingKey()
	if err != nil {
		return fmt.Errorf("derive sealing key: %w", err)
	}
	defer sealKey.Close()

	nonce, sealed, err := c.engine.Encrypt(sealKey, material)
	if err != nil {
		return fmt.Errorf("seal session key: %w", err)
	}

	now := time.Now().UTC()
	state := sessionState{
		Key:         sealed,
		Nonce:       nonce,
		ExpiresAt:   now.Add(ttl),
		Fingerprint: c.fingerprintDigest(),
		CreatedAt:   now,
	}

	payload, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encode session state: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(c.path), sessionDirMode); err != nil {
		return fmt.Errorf("create session directory: %w", err)
	}
	if err := os.WriteFile(c.path, payload, sessionFileMode); err != nil {
		c.log.Err(err).Str("func", "Store").Msg("failed to write session file")

		return fmt.Errorf("write session file: %w", err)
	}

	return nil
}

// Fetch implements [SessionCache].
func (c *fileSessionCache) Fetch(ctx context.Context) (*crypto.Key, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(c.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNoSession
		}

		return nil, fmt.Errorf("read session file: %w", err)
	}

	var state sessionState
	if err := json.Unmarshal(data, &state); err != nil {
		c.discard("unreadable session file")

		return nil, ErrNoSession
	}

	if state.Fingerprint != c.fingerprintDigest() {
		c.discard("session bound to another machine")

		return nil, ErrNoSession
	}

	if time.Now().UTC().After(state.ExpiresAt) {
		c.discard("session expired")

		return nil, ErrSessionExpired
	}

	sealKey, err := c.sealingKey()
	if err != nil {
		return nil, fmt.Errorf("derive sealing key: %w", err)
	}
	defer sealKey.Close()

	material, err := c.engine.Decrypt(sealKey, state.Nonce, state.Key)
	if err != nil {
		c.discard("session does not unseal")

		return nil, ErrNoSession
	}
	defer crypto.Zero(material)

	key, err := crypto.NewKey(material)
	if err != nil {
		c.discard("sealed key has wrong size")

		return nil, ErrNoSession
	}

	return key, nil
}

// Clear implements [SessionCache].
func (c *fileSessionCache) Clear() error {
	if err := os.Remove(c.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove session file: %w", err)
	}

	return nil
}

// discard removes an unusable session file, logging why. A stale file
// must not survive a failed Fetch; the next command would just trip
// over it again.
func (c *fileSessionCache) discard(reason string) {
	if err := os.Remove(c.path); err != nil && !os.IsNotExist(err) {
		c.log.Err(err).Str("func", "discard").Msg("failed to remove session file")

		return
	}
	c.log.Debug().Str("func", "discard").Msg(reason)
}

// sealingKey derives the AES key that seals session files on this
// machine.
func (c *fileSessionCache) sealingKey() (*crypto.Key, error) {
	digest := sha256.Sum256([]byte(c.fingerprint + sealPurpose))
	defer crypto.Zero(digest[:])

	return crypto.NewKey(digest[:])
}

// fingerprintDigest derives the machine digest stored inside session
// files.
func (c *fileSessionCache) fingerprintDigest() string {
	digest := sha256.Sum256([]byte(c.fingerprint + fingerprintPurpose))

	return hex.EncodeToString(digest[:])
}

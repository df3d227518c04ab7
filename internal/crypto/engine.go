// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
)

const (
	// KeySize is the derived key length in bytes (AES-256).
	KeySize = 32

	// SaltSize is the key-derivation salt length in bytes.
	SaltSize = 16

	// NonceSize is the AES-GCM nonce length in bytes.
	NonceSize = 12

	// TagSize is the AES-GCM authentication tag length in bytes.
	// Every valid ciphertext is at least this long.
	TagSize = 16
)

// Params are the Argon2id cost parameters used for key derivation.
// They are stored in the vault file header, so a vault is always
// unlocked with the parameters it was created with.
type Params struct {
	MemoryKiB   uint32
	Iterations  uint32
	Parallelism uint8
}

// DefaultParams returns the Argon2id parameters for newly created
// vaults:
//   - memory cost: 64 MiB
//   - time cost:   3 iterations
//   - parallelism: 4 threads
//
// Future builds may raise these defaults; existing vaults keep the
// parameters recorded in their header.
func DefaultParams() Params {
	return Params{
		MemoryKiB:   64 * 1024, // 64 MiB
		Iterations:  3,
		Parallelism: 4,
	}
}

// Valid reports whether the parameters are usable for derivation.
// Zero values would make argon2 panic, so they are rejected up front.
func (p Params) Valid() bool {
	return p.MemoryKiB > 0 && p.Iterations > 0 && p.Parallelism > 0
}

// keyEngine is the private implementation of [KeyEngine].
type keyEngine struct{}

// NewKeyEngine constructs the AES-256-GCM / Argon2id [KeyEngine].
func NewKeyEngine() KeyEngine {
	return &keyEngine{}
}

// GenerateSalt implements [KeyEngine]. It reads [SaltSize] random bytes
// from the OS CSPRNG. Returns an error if the random read fails.
func (e *keyEngine) GenerateSalt() ([]byte, error) {
	salt := make([]byte, SaltSize)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, fmt.Errorf("generate salt: %w", err)
	}

	return salt, nil
}

// DeriveKey implements [KeyEngine]. It derives a 256-bit key from
// masterPassword and salt using Argon2id with the given parameters.
// The derivation buffer becomes the key material and is owned by the
// returned [Key]; closing the key wipes it.
func (e *keyEngine) DeriveKey(masterPassword string, salt []byte, params Params) *Key {
	derived := argon2.IDKey(
		[]byte(masterPassword),
		salt,
		params.Iterations,
		params.MemoryKiB,
		params.Parallelism,
		KeySize,
	)

	return &Key{material: derived}
}

// Encrypt implements [KeyEngine].
func (e *keyEngine) Encrypt(key *Key, plaintext []byte) ([]byte, []byte, error) {
	material, err := key.Bytes()
	if err != nil {
		return nil, nil, err
	}

	// 1. Build AES-GCM cipher from the key
	block, err := aes.NewCipher(material)
	if err != nil {
		return nil, nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, nil, fmt.Errorf("create gcm: %w", err)
	}

	// 2. Generate a fresh random nonce. Never derived from a counter:
	// two saves of identical plaintext must produce different blobs.
	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, nil, fmt.Errorf("generate nonce: %w", err)
	}

	// 3. Seal: ciphertext carries the auth tag appended
	ciphertext := gcm.Seal(nil, nonce, plaintext, nil)

	return nonce, ciphertext, nil
}

// Decrypt implements [KeyEngine].
func (e *keyEngine) Decrypt(key *Key, nonce, ciphertext []byte) ([]byte, error) {
	material, err := key.Bytes()
	if err != nil {
		return nil, err
	}

	// 1. Build AES-GCM cipher from the key
	block, err := aes.NewCipher(material)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}

	if len(nonce) != gcm.NonceSize() {
		return nil, ErrAuthenticationFailed
	}

	// 2. Open and verify the auth tag. A failure here almost always
	// means the user entered the wrong master password; tampering and
	// truncation look identical on purpose.
	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, ErrAuthenticationFailed
	}

	return plaintext, nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// VaultFormatVersion is the container format version written by this
// build. Readers reject files with a greater version.
const VaultFormatVersion = 1

// KDFParams records the Argon2id cost parameters a vault was created
// with. The parameters travel with the vault file so that unlocking
// always reproduces the original derivation, and so future builds may
// raise the defaults without breaking existing vaults.
type KDFParams struct {
	// MemoryKiB is the Argon2id memory cost in KiB.
	MemoryKiB uint32 `json:"memory_kib"`

	// Iterations is the Argon2id time cost (number of passes).
	Iterations uint32 `json:"iterations"`

	// Parallelism is the Argon2id lane count.
	Parallelism uint8 `json:"parallelism"`
}

// VaultFile is the on-disk vault container.
//
// Everything in it is safe to store in plaintext: the salt and KDF
// parameters are public inputs to key derivation, the nonce is public
// AEAD input, and Ciphertext carries the authentication tag that makes
// tampering detectable. The decrypted payload never appears here.
//
// Binary fields are base64-encoded by the standard JSON encoding of
// []byte.
type VaultFile struct {
	// FormatVersion gates compatibility. See [VaultFormatVersion].
	FormatVersion int `json:"format_version"`

	// KDFSalt is the per-vault random salt for key derivation.
	KDFSalt []byte `json:"kdf_salt"`

	// KDFParams are the Argon2id cost parameters for this vault.
	KDFParams KDFParams `json:"kdf_params"`

	// Nonce is the AES-GCM nonce of the current ciphertext.
	// A fresh nonce is generated on every save.
	Nonce []byte `json:"nonce"`

	// Ciphertext is the encrypted vault payload with the GCM
	// authentication tag appended.
	Ciphertext []byte `json:"ciphertext_with_tag"`

	// CreatedAt is the vault creation timestamp (UTC).
	CreatedAt time.Time `json:"created_at"`

	// ModifiedAt is the timestamp of the last successful save (UTC).
	ModifiedAt time.Time `json:"modified_at"`
}

package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/key_engine_mock.go -package=mock

// KeyEngine owns all vault cryptography. It knows nothing about files,
// sessions, or the CLI; its only job is deriving keys and transforming
// plaintext to ciphertext and back.
//
// Scheme:
//
//	salt        = GenerateSalt()                     (vault creation)
//	key         = DeriveKey(password, salt, params)  (creation + every unlock)
//	nonce, blob = Encrypt(key, plaintext)            (every save)
//	plaintext   = Decrypt(key, nonce, blob)          (every unlock)
//
// The derived key never touches the disk unscrambled and is zeroized
// via [Key.Close] as soon as the operation that needed it completes.
type KeyEngine interface {
	// GenerateSalt generates a random key-derivation salt
	// ([SaltSize] bytes). The salt is not a secret: it is stored in
	// the vault file header so the same password always reproduces
	// the same key for that vault.
	GenerateSalt() ([]byte, error)

	// DeriveKey derives a 256-bit key from the master password and
	// salt using Argon2id with the given cost parameters. The
	// derivation is deterministic: same inputs, same key. The caller
	// owns the returned key and must Close it.
	DeriveKey(masterPassword string, salt []byte, params Params) *Key

	// Encrypt seals plaintext with AES-256-GCM under a fresh random
	// nonce. The nonce and the ciphertext (authentication tag
	// appended) are returned separately for container storage. The
	// plaintext buffer is not consumed; the caller remains
	// responsible for wiping it.
	Encrypt(key *Key, plaintext []byte) (nonce []byte, ciphertext []byte, err error)

	// Decrypt opens a ciphertext produced by Encrypt. Any tag
	// verification failure, whatever its cause, is reported as
	// [ErrAuthenticationFailed] with no partial plaintext.
	Decrypt(key *Key, nonce, ciphertext []byte) ([]byte, error)
}

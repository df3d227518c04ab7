package crypto

import (
	"bytes"
	"errors"
	"testing"
)

// testParams keeps Argon2id cheap enough for the test suite while still
// exercising the real derivation path.
func testParams() Params {
	return Params{MemoryKiB: 8 * 1024, Iterations: 1, Parallelism: 1}
}

func TestGenerateSalt_LengthAndRandomness(t *testing.T) {
	engine := NewKeyEngine()

	s1, err := engine.GenerateSalt()
	if err != nil {
		t.Fatalf("GenerateSalt error: %v", err)
	}
	s2, err := engine.GenerateSalt()
	if err != nil {
		t.Fatalf("GenerateSalt error: %v", err)
	}

	if len(s1) != SaltSize {
		t.Fatalf("salt length = %d, want %d", len(s1), SaltSize)
	}
	if bytes.Equal(s1, s2) {
		t.Fatalf("expected salts to differ, but they are equal")
	}
}

func TestDeriveKey_DeterministicForSameInputs(t *testing.T) {
	engine := NewKeyEngine()

	password := "correct horse battery staple"
	salt := bytes.Repeat([]byte{0xAB}, SaltSize)

	k1 := engine.DeriveKey(password, salt, testParams())
	defer k1.Close()
	k2 := engine.DeriveKey(password, salt, testParams())
	defer k2.Close()

	m1, err := k1.Bytes()
	if err != nil {
		t.Fatalf("Bytes error: %v", err)
	}
	m2, err := k2.Bytes()
	if err != nil {
		t.Fatalf("Bytes error: %v", err)
	}

	if len(m1) != KeySize {
		t.Fatalf("key length = %d, want %d", len(m1), KeySize)
	}
	if !bytes.Equal(m1, m2) {
		t.Fatalf("expected identical keys for same password+salt")
	}
}

func TestDeriveKey_DifferentSaltProducesDifferentKey(t *testing.T) {
	engine := NewKeyEngine()

	password := "same password"
	salt1 := bytes.Repeat([]byte{0x01}, SaltSize)
	salt2 := bytes.Repeat([]byte{0x02}, SaltSize)

	k1 := engine.DeriveKey(password, salt1, testParams())
	defer k1.Close()
	k2 := engine.DeriveKey(password, salt2, testParams())
	defer k2.Close()

	m1, _ := k1.Bytes()
	m2, _ := k2.Bytes()
	if bytes.Equal(m1, m2) {
		t.Fatalf("expected different keys for different salts")
	}
}

func TestDeriveKey_DifferentParamsProduceDifferentKey(t *testing.T) {
	engine := NewKeyEngine()

	salt := bytes.Repeat([]byte{0x03}, SaltSize)

	k1 := engine.DeriveKey("password", salt, Params{MemoryKiB: 8 * 1024, Iterations: 1, Parallelism: 1})
	defer k1.Close()
	k2 := engine.DeriveKey("password", salt, Params{MemoryKiB: 8 * 1024, Iterations: 2, Parallelism: 1})
	defer k2.Close()

	m1, _ := k1.Bytes()
	m2, _ := k2.Bytes()
	if bytes.Equal(m1, m2) {
		t.Fatalf("expected different keys for different cost parameters")
	}
}

func TestEncryptDecrypt_RoundTrip(t *testing.T) {
	engine := NewKeyEngine()

	key := engine.DeriveKey("master", bytes.Repeat([]byte{0x05}, SaltSize), testParams())
	defer key.Close()

	plaintext := []byte(`{"entries":[{"id":"abc","name":"github"}]}`)

	nonce, ciphertext, err := engine.Encrypt(key, plaintext)
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}
	if len(nonce) != NonceSize {
		t.Fatalf("nonce length = %d, want %d", len(nonce), NonceSize)
	}

	decrypted, err := engine.Decrypt(key, nonce, ciphertext)
	if err != nil {
		t.Fatalf("Decrypt error: %v", err)
	}
	if !bytes.Equal(decrypted, plaintext) {
		t.Fatalf("round trip mismatch: got %q, want %q", decrypted, plaintext)
	}
}

func TestEncrypt_FreshNoncePerCall(t *testing.T) {
	engine := NewKeyEngine()

	key := engine.DeriveKey("master", bytes.Repeat([]byte{0x06}, SaltSize), testParams())
	defer key.Close()

	plaintext := []byte("identical plaintext")

	n1, c1, err := engine.Encrypt(key, plaintext)
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}
	n2, c2, err := engine.Encrypt(key, plaintext)
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}

	if bytes.Equal(n1, n2) {
		t.Fatalf("expected fresh nonce per encryption")
	}
	if bytes.Equal(c1, c2) {
		t.Fatalf("expected different ciphertexts for identical plaintext")
	}
}

func TestDecrypt_WrongKeyFailsAuthentication(t *testing.T) {
	engine := NewKeyEngine()

	salt := bytes.Repeat([]byte{0x07}, SaltSize)
	rightKey := engine.DeriveKey("right password", salt, testParams())
	defer rightKey.Close()
	wrongKey := engine.DeriveKey("wrong password", salt, testParams())
	defer wrongKey.Close()

	nonce, ciphertext, err := engine.Encrypt(rightKey, []byte("secret payload"))
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}

	plaintext, err := engine.Decrypt(wrongKey, nonce, ciphertext)
	if !errors.Is(err, ErrAuthenticationFailed) {
		t.Fatalf("Decrypt error = %v, want ErrAuthenticationFailed", err)
	}
	if plaintext != nil {
		t.Fatalf("expected no plaintext output on authentication failure")
	}
}

func TestDecrypt_TamperedCiphertextFailsAuthentication(t *testing.T) {
	engine := NewKeyEngine()

	key := engine.DeriveKey("master", bytes.Repeat([]byte{0x08}, SaltSize), testParams())
	defer key.Close()

	nonce, ciphertext, err := engine.Encrypt(key, []byte("secret payload"))
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}

	// Flip one bit anywhere in the blob.
	ciphertext[len(ciphertext)/2] ^= 0x01

	if _, err := engine.Decrypt(key, nonce, ciphertext); !errors.Is(err, ErrAuthenticationFailed) {
		t.Fatalf("Decrypt error = %v, want ErrAuthenticationFailed", err)
	}
}

func TestDecrypt_TruncatedInputsFailAuthentication(t *testing.T) {
	engine := NewKeyEngine()

	key := engine.DeriveKey("master", bytes.Repeat([]byte{0x09}, SaltSize), testParams())
	defer key.Close()

	nonce, ciphertext, err := engine.Encrypt(key, []byte("secret payload"))
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}

	if _, err := engine.Decrypt(key, nonce[:4], ciphertext); !errors.Is(err, ErrAuthenticationFailed) {
		t.Fatalf("short nonce: error = %v, want ErrAuthenticationFailed", err)
	}
	if _, err := engine.Decrypt(key, nonce, ciphertext[:3]); !errors.Is(err, ErrAuthenticationFailed) {
		t.Fatalf("short ciphertext: error = %v, want ErrAuthenticationFailed", err)
	}
	if _, err := engine.Decrypt(key, nonce, nil); !errors.Is(err, ErrAuthenticationFailed) {
		t.Fatalf("nil ciphertext: error = %v, want ErrAuthenticationFailed", err)
	}
}

func TestDefaultParams_Pinned(t *testing.T) {
	params := DefaultParams()

	if params.MemoryKiB != 64*1024 {
		t.Fatalf("memory = %d KiB, want %d", params.MemoryKiB, 64*1024)
	}
	if params.Iterations != 3 {
		t.Fatalf("iterations = %d, want 3", params.Iterations)
	}
	if params.Parallelism != 4 {
		t.Fatalf("parallelism = %d, want 4", params.Parallelism)
	}
	if !params.Valid() {
		t.Fatalf("default params must be valid")
	}
}

func TestParams_Valid(t *testing.T) {
	if (Params{}).Valid() {
		t.Fatalf("zero params must be invalid")
	}
	if (Params{MemoryKiB: 1024, Iterations: 0, Parallelism: 1}).Valid() {
		t.Fatalf("zero iterations must be invalid")
	}
}

package crypto

import (
	"bytes"
	"errors"
	"testing"
)

func TestNewKey_CopiesMaterial(t *testing.T) {
	material := bytes.Repeat([]byte{0x42}, KeySize)

	key, err := NewKey(material)
	if err != nil {
		t.Fatalf("NewKey error: %v", err)
	}
	defer key.Close()

	// Mutating the caller's buffer must not affect the key.
	material[0] = 0x00

	got, err := key.Bytes()
	if err != nil {
		t.Fatalf("Bytes error: %v", err)
	}
	if got[0] != 0x42 {
		t.Fatalf("key material aliases caller buffer")
	}
}

func TestNewKey_RejectsWrongSize(t *testing.T) {
	if _, err := NewKey(make([]byte, 16)); !errors.Is(err, ErrInvalidKeySize) {
		t.Fatalf("error = %v, want ErrInvalidKeySize", err)
	}
	if _, err := NewKey(nil); !errors.Is(err, ErrInvalidKeySize) {
		t.Fatalf("error = %v, want ErrInvalidKeySize", err)
	}
}

func TestKeyClose_ZeroizesMaterial(t *testing.T) {
	key, err := NewKey(bytes.Repeat([]byte{0x42}, KeySize))
	if err != nil {
		t.Fatalf("NewKey error: %v", err)
	}

	material, err := key.Bytes()
	if err != nil {
		t.Fatalf("Bytes error: %v", err)
	}

	key.Close()

	// The old alias must now read all zeroes.
	for i, b := range material {
		if b != 0 {
			t.Fatalf("byte %d = %#x after Close, want 0", i, b)
		}
	}

	if _, err := key.Bytes(); !errors.Is(err, ErrKeyClosed) {
		t.Fatalf("Bytes after Close: error = %v, want ErrKeyClosed", err)
	}
}

func TestKeyClose_Idempotent(t *testing.T) {
	key, err := NewKey(bytes.Repeat([]byte{0x01}, KeySize))
	if err != nil {
		t.Fatalf("NewKey error: %v", err)
	}

	key.Close()
	key.Close() // must not panic
}

func TestZero_WipesBuffer(t *testing.T) {
	buf := []byte("sensitive plaintext")

	Zero(buf)

	for i, b := range buf {
		if b != 0 {
			t.Fatalf("byte %d = %#x, want 0", i, b)
		}
	}
}

// Package generator produces random secret values: passwords, API keys,
// and base64url-encoded raw keys. It is a stateless collaborator of the
// command layer; generated values are handed to the vault as ordinary
// payload strings.
package generator

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// Character sets for [Password].
const (
	letters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digits  = "0123456789"
	symbols = "!@#$%^&*()_+-=[]{}|;:,.<>?"
)

// apiKeyPrefix marks generated API keys so they are recognizable in
// configs and logs of the services they are pasted into.
const apiKeyPrefix = "kk_"

// RandomKey returns length random bytes from the OS CSPRNG encoded as
// unpadded base64url.
func RandomKey(length int) (string, error) {
	if length <= 0 {
		return "", errors.New("key length must be positive")
	}

	bytes := make([]byte, length)
	if _, err := io.ReadFull(rand.Reader, bytes); err != nil {
		return "", fmt.Errorf("generate random bytes: %w", err)
	}

	return base64.RawURLEncoding.EncodeToString(bytes), nil
}

// JWTSecret returns a random 256-bit signing secret.
func JWTSecret() (string, error) {
	return RandomKey(32)
}

// EncryptionKey returns a random 256-bit key.
func EncryptionKey() (string, error) {
	return RandomKey(32)
}

// APIKey returns a random API key: 24 random bytes encoded as unpadded
// base64url behind the "kk_" prefix.
func APIKey() (string, error) {
	bytes := make([]byte, 24)
	if _, err := io.ReadFull(rand.Reader, bytes); err != nil {
		return "", fmt.Errorf("generate random bytes: %w", err)
	}

	return apiKeyPrefix + base64.RawURLEncoding.EncodeToString(bytes), nil
}

// Password returns a random password of the given length drawn from
// letters and digits, plus symbols when includeSymbols is set. Each
// character is picked independently from the OS CSPRNG.
func Password(length int, includeSymbols bool) (string, error) {
	if length <= 0 {
		return "", errors.New("password length must be positive")
	}

	charset := letters + digits
	if includeSymbols {
		charset += symbols
	}

	buf := make([]byte, 4*length)
	if _, err := io.ReadFull(rand.Reader, buf); err != nil {
		return "", fmt.Errorf("generate random bytes: %w", err)
	}

	password := make([]byte, length)
	for i := range password {
		n := binary.BigEndian.Uint32(buf[4*i:])
		password[i] = charset[n%uint32(len(charset))]
	}

	return string(password), nil
}

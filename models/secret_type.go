package models

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownSecretType is returned when a string does not name one of the
// supported secret types.
var ErrUnknownSecretType = errors.New("unknown secret type")

// SecretType defines the semantic type of a [SecretEntry].
// The value determines which payload field of the entry is populated
// and how the decrypted payload must be interpreted.
type SecretType string

const (
	// SecretTypePassword represents authentication credentials
	// such as username, password, and an optional URL.
	SecretTypePassword SecretType = "password"

	// SecretTypeAPIKey represents an API key issued by an external
	// service, together with the service it belongs to.
	SecretTypeAPIKey SecretType = "api-key"

	// SecretTypeNote represents arbitrary textual data
	// stored as a secure note or free-form secret.
	SecretTypeNote SecretType = "note"

	// SecretTypeDBCredential represents database connection credentials:
	// host, port, database name, username, and password.
	SecretTypeDBCredential SecretType = "db-credential"

	// SecretTypeToken represents an access token (JWT, OAuth, bearer)
	// with an optional expiry timestamp.
	SecretTypeToken SecretType = "token"
)

// AllSecretTypes returns every supported secret type in presentation order.
func AllSecretTypes() []SecretType {
	return []SecretType{
		SecretTypePassword,
		SecretTypeAPIKey,
		SecretTypeNote,
		SecretTypeDBCredential,
		SecretTypeToken,
	}
}

// ParseSecretType converts a user-supplied string into a [SecretType].
// Matching is case-insensitive and ignores surrounding whitespace.
//
// Returns [ErrUnknownSecretType] if the string does not name a supported type.
func ParseSecretType(s string) (SecretType, error) {
	normalized := SecretType(strings.ToLower(strings.TrimSpace(s)))
	for _, secretType := range AllSecretTypes() {
		if normalized == secretType {
			return secretType, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownSecretType, s)
}

// Valid reports whether the type is one of the supported secret types.
func (t SecretType) Valid() bool {
	_, err := ParseSecretType(string(t))
	return err == nil
}

// String returns the canonical string form of the type.
// It implements the [fmt.Stringer] interface.
func (t SecretType) String() string {
	return string(t)
}

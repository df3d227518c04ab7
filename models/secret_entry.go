package models

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidEntry is returned by [SecretEntry.Validate] when an entry
// violates the structural invariants of the data model.
var ErrInvalidEntry = errors.New("invalid secret entry")

// SecretEntry is a single secret stored in the vault.
//
// Exactly one of the typed payload fields must be non-nil, and it must
// agree with Type. The payload fields together form a closed set: no
// other secret kinds exist, and code switching over Type may rely on
// that.
type SecretEntry struct {
	// ID is the unique identifier of the entry.
	// IDs are time-ordered UUIDs assigned on creation and never change.
	ID string `json:"id"`

	// Name is the human-readable name of the entry.
	// Names are unique within a secret type, not across types.
	Name string `json:"name"`

	// Type determines which payload field is populated.
	Type SecretType `json:"type"`

	// CreatedAt is the creation timestamp (UTC).
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is the timestamp of the last modification (UTC).
	// Equal to CreatedAt for entries that were never updated.
	UpdatedAt time.Time `json:"updated_at"`

	Password     *PasswordData     `json:"password,omitempty"`
	APIKey       *APIKeyData       `json:"api_key,omitempty"`
	Note         *NoteData         `json:"note,omitempty"`
	DBCredential *DBCredentialData `json:"db_credential,omitempty"`
	Token        *TokenData        `json:"token,omitempty"`
}

// Validate checks the structural invariants of the entry:
// a non-empty name, a supported type, and exactly one payload field
// populated and matching the declared type.
func (e *SecretEntry) Validate() error {
	if e.Name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidEntry)
	}
	if !e.Type.Valid() {
		return fmt.Errorf("%w: %q is not a supported type", ErrInvalidEntry, e.Type)
	}

	populated := 0
	for _, present := range []bool{
		e.Password != nil,
		e.APIKey != nil,
		e.Note != nil,
		e.DBCredential != nil,
		e.Token != nil,
	} {
		if present {
			populated++
		}
	}
	if populated != 1 {
		return fmt.Errorf("%w: %d payloads populated, want exactly one", ErrInvalidEntry, populated)
	}

	if e.payloadType() != e.Type {
		return fmt.Errorf("%w: payload does not match declared type %q", ErrInvalidEntry, e.Type)
	}

	return nil
}

// payloadType returns the type implied by the populated payload field.
func (e *SecretEntry) payloadType() SecretType {
	switch {
	case e.Password != nil:
		return SecretTypePassword
	case e.APIKey != nil:
		return SecretTypeAPIKey
	case e.Note != nil:
		return SecretTypeNote
	case e.DBCredential != nil:
		return SecretTypeDBCredential
	case e.Token != nil:
		return SecretTypeToken
	default:
		return ""
	}
}

// Redacted returns a deep copy of the entry with every secret-bearing
// payload field blanked. Non-secret metadata (names, usernames, URLs,
// services, hosts, expiry timestamps) is preserved for listing.
func (e *SecretEntry) Redacted() SecretEntry {
	redacted := *e

	switch {
	case e.Password != nil:
		payload := *e.Password
		payload.Password = ""
		redacted.Password = &payload
	case e.APIKey != nil:
		payload := *e.APIKey
		payload.Key = ""
		redacted.APIKey = &payload
	case e.Note != nil:
		payload := *e.Note
		payload.Content = ""
		redacted.Note = &payload
	case e.DBCredential != nil:
		payload := *e.DBCredential
		payload.Password = ""
		redacted.DBCredential = &payload
	case e.Token != nil:
		payload := *e.Token
		payload.Token = ""
		redacted.Token = &payload
	}

	return redacted
}

// Clone returns a deep copy of the entry. Mutating the copy does not
// affect the original.
func (e *SecretEntry) Clone() SecretEntry {
	clone := *e

	switch {
	case e.Password != nil:
		payload := *e.Password
		clone.Password = &payload
	case e.APIKey != nil:
		payload := *e.APIKey
		clone.APIKey = &payload
	case e.Note != nil:
		payload := *e.Note
		clone.Note = &payload
	case e.DBCredential != nil:
		payload := *e.DBCredential
		clone.DBCredential = &payload
	case e.Token != nil:
		payload := *e.Token
		clone.Token = &payload
	}

	if e.Token != nil && e.Token.ExpiresAt != nil {
		expiresAt := *e.Token.ExpiresAt
		clone.Token.ExpiresAt = &expiresAt
	}

	return clone
}

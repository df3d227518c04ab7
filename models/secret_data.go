// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"time"
)

// PasswordData represents decrypted login credentials.
// This structure is serialized to JSON inside the encrypted vault payload
// when the entry type is [SecretTypePassword].
type PasswordData struct {
	// Username is the login identifier used for authentication.
	Username string `json:"username,omitempty"`

	// Password is the secret credential associated with the username.
	Password string `json:"password"`

	// URL defines the resource where the credentials apply.
	URL string `json:"url,omitempty"`

	// Description is an optional free-form annotation.
	Description string `json:"description,omitempty"`
}

// APIKeyData represents a decrypted API key.
type APIKeyData struct {
	// Key is the secret API key value.
	Key string `json:"key"`

	// Service identifies the external service the key belongs to.
	Service string `json:"service,omitempty"`

	// Description is an optional free-form annotation.
	Description string `json:"description,omitempty"`
}

// NoteData represents decrypted free-form textual content.
// Used for secure notes or arbitrary secret text.
type NoteData struct {
	// Content contains the textual payload.
	Content string `json:"content"`
}

// DBCredentialData represents decrypted database connection credentials.
type DBCredentialData struct {
	// Host is the database server hostname or address.
	Host string `json:"host"`

	// Port is the database server port.
	// Zero means unset; [DBCredentialData.ConnectionString] substitutes
	// the default port of the driver.
	Port int `json:"port,omitempty"`

	// Database is the name of the database to connect to.
	Database string `json:"database"`

	// Username is the database login.
	Username string `json:"username"`

	// Password is the database login secret.
	Password string `json:"password"`

	// Driver identifies the database kind (postgres, mysql, mongodb).
	// Empty means postgres.
	Driver string `json:"db_type,omitempty"`

	// Description is an optional free-form annotation.
	Description string `json:"description,omitempty"`
}

// TokenData represents a decrypted access token.
type TokenData struct {
	// Token is the secret token value.
	Token string `json:"token"`

	// TokenType identifies the token kind (jwt, oauth, bearer).
	TokenType string `json:"token_type,omitempty"`

	// ExpiresAt is the optional expiry timestamp of the token.
	// Nil means the token does not expire or the expiry is unknown.
	ExpiresAt *time.Time `json:"expires_at,omitempty"`

	// Description is an optional free-form annotation.
	Description string `json:"description,omitempty"`
}

// ConnectionString assembles a connection URI from the credential fields.
//
// An empty Driver is treated as postgres. When Port is zero, the default
// port of the driver is substituted: 5432 for postgres/postgresql,
// 3306 for mysql, 27017 for mongodb, 5432 otherwise.
func (d *DBCredentialData) ConnectionString() string {
	driver := d.Driver
	if driver == "" {
		driver = "postgres"
	}

	port := d.Port
	if port == 0 {
		switch driver {
		case "postgres", "postgresql":
			port = 5432
		case "mysql":
			port = 3306
		case "mongodb":
			port = 27017
		default:
			port = 5432
		}
	}

	return fmt.Sprintf("%s://%s:%s@%s:%d/%s",
		driver, d.Username, d.Password, d.Host, port, d.Database)
}

// Expired reports whether the token expiry has passed at the given moment.
// Tokens without an expiry timestamp are never considered expired.
func (d *TokenData) Expired(now time.Time) bool {
	if d.ExpiresAt == nil {
		return false
	}

	return d.ExpiresAt.Before(now)
}

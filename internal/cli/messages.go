package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/kookie/internal/crypto"
	"github.com/MKhiriev/kookie/internal/store"
	"github.com/MKhiriev/kookie/internal/vault"
	"github.com/MKhiriev/kookie/models"
)

// userMessage translates a business error into the sentence printed for
// the user. Errors without a mapping fall through with their own text;
// every sentinel in the chain below keeps payloads out of that text, so
// the fallthrough is safe to print.
func userMessage(err error) string {
	switch {
	case errors.Is(err, store.ErrVaultNotFound):
		return "No vault found. Run 'kookie init' to create one."

	case errors.Is(err, store.ErrVaultAlreadyExists):
		return "A vault already exists. Re-run with --force to replace it. This destroys every stored secret."

	case errors.Is(err, store.ErrVaultBusy):
		return "Another kookie process is using the vault. Try again in a moment."

	case errors.Is(err, store.ErrCorruptVault):
		return "The vault file is damaged and cannot be read. Restore it from a backup."

	case errors.Is(err, crypto.ErrAuthenticationFailed):
		return "Wrong master password."

	case errors.Is(err, vault.ErrVaultLocked):
		return "The vault is locked. Run 'kookie unlock' first."

	case errors.Is(err, vault.ErrAmbiguousReference):
		return err.Error() + ". Refer to it by id instead."

	case errors.Is(err, vault.ErrDuplicateSecret):
		return err.Error() + ". Pick another name or update the existing entry."

	case errors.Is(err, models.ErrUnknownSecretType):
		return fmt.Sprintf("%s. Valid types: %s.", err.Error(), joinTypes())

	default:
		return err.Error()
	}
}

// isWrongPassword reports whether the error means the supplied or
// cached key failed to open the vault.
func isWrongPassword(err error) bool {
	return errors.Is(err, crypto.ErrAuthenticationFailed)
}

func joinTypes() string {
	names := make([]string, 0, len(models.AllSecretTypes()))
	for _, t := range models.AllSecretTypes() {
		names = append(names, t.String())
	}

	return strings.Join(names, ", ")
}

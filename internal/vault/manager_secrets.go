// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package vault

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/kookie/models"
)

// Add implements [VaultManager].
func (m *vaultManager) Add(ctx context.Context, entry models.SecretEntry) (models.SecretEntry, error) {
	now := time.Now().UTC()
	entry.ID = m.ids.Generate()
	entry.CreatedAt = now
	entry.UpdatedAt = now

	if err := entry.Validate(); err != nil {
		return models.SecretEntry{}, err
	}

	err := m.mutateVault(ctx, func(data *models.VaultData) error {
		if data.ContainsName(entry.Type, entry.Name) {
			return fmt.Errorf("%w: %s %q", ErrDuplicateSecret, entry.Type, entry.Name)
		}

		data.Entries = append(data.Entries, entry.Clone())

		return nil
	})
	if err != nil {
		return models.SecretEntry{}, err
	}

	m.record(ctx, models.ActivityOpAdd, string(entry.Type), entry.Name)

	return entry, nil
}

// Get implements [VaultManager].
func (m *vaultManager) Get(ctx context.Context, ref string) (models.SecretEntry, error) {
	var entry models.SecretEntry
	err := m.readVault(ctx, func(data *models.VaultData) error {
		i, err := resolveRef(data, ref)
		if err != nil {
			return err
		}

		entry = data.Entries[i].Clone()

		return nil
	})
	if err != nil {
		return models.SecretEntry{}, err
	}

	m.record(ctx, models.ActivityOpGet, string(entry.Type), entry.Name)

	return entry, nil
}

// List implements [VaultManager]. Listing is not recorded in the
// activity log: it reveals no payloads and would drown the entries
// worth reading.
func (m *vaultManager) List(ctx context.Context, typeFilter *models.SecretType) ([]models.SecretEntry, error) {
	var entries []models.SecretEntry
	err := m.readVault(ctx, func(data *models.VaultData) error {
		entries = make([]models.SecretEntry, 0, len(data.Entries))
		for i := range data.Entries {
			if typeFilter != nil && data.Entries[i].Type != *typeFilter {
				continue
			}
			entries = append(entries, data.Entries[i].Redacted())
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return entries, nil
}

// Update implements [VaultManager].
func (m *vaultManager) Update(ctx context.Context, ref string, mutate func(*models.SecretEntry) error) (models.SecretEntry, error) {
	var updated models.SecretEntry
	err := m.mutateVault(ctx, func(data *models.VaultData) error {
		i, err := resolveRef(data, ref)
		if err != nil {
			return err
		}

		entry := data.Entries[i].Clone()
		if err := mutate(&entry); err != nil {
			return err
		}

		// The identity of an entry never changes under update.
		entry.ID = data.Entries[i].ID
		entry.CreatedAt = data.Entries[i].CreatedAt
		entry.UpdatedAt = time.Now().UTC()

		if err := entry.Validate(); err != nil {
			return err
		}

		renamed := entry.Name != data.Entries[i].Name || entry.Type != data.Entries[i].Type
		if renamed && data.ContainsName(entry.Type, entry.Name) {
			return fmt.Errorf("%w: %s %q", ErrDuplicateSecret, entry.Type, entry.Name)
		}

		data.Entries[i] = entry.Clone()
		updated = entry

		return nil
	})
	if err != nil {
		return models.SecretEntry{}, err
	}

	m.record(ctx, models.ActivityOpUpdate, string(updated.Type), updated.Name)

	return updated, nil
}

// Delete implements [VaultManager]. The force flag carries the
// confirmation decision from the command layer and changes nothing
// here; see the interface contract.
func (m *vaultManager) Delete(ctx context.Context, ref string, force bool) error {
	var removed models.SecretEntry
	err := m.mutateVault(ctx, func(data *models.VaultData) error {
		i, err := resolveRef(data, ref)
		if err != nil {
			return err
		}

		removed = data.Entries[i].Redacted()
		data.Entries = append(data.Entries[:i], data.Entries[i+1:]...)

		return nil
	})
	if err != nil {
		return err
	}

	m.record(ctx, models.ActivityOpDelete, string(removed.Type), removed.Name)

	return nil
}

// resolveRef resolves a user-supplied reference to an entry index.
// Identifiers win: when ref equals an entry ID the match is exact and
// names are never consulted. Otherwise ref is tried as a name across
// all types; a unique match resolves, several matches fail with
// [ErrAmbiguousReference], none with [ErrSecretNotFound].
func resolveRef(data *models.VaultData, ref string) (int, error) {
	if i := data.IndexByID(ref); i >= 0 {
		return i, nil
	}

	indices := data.IndicesByName(ref)
	switch len(indices) {
	case 0:
		return 0, fmt.Errorf("%w: %q", ErrSecretNotFound, ref)
	case 1:
		return indices[0], nil
	default:
		return 0, ambiguousReferenceError(data, ref, indices)
	}
}

// ambiguousReferenceError builds the candidate list for an ambiguous
// name. Candidates are identifiers and types only, so the message stays
// safe to print.
func ambiguousReferenceError(data *models.VaultData, ref string, indices []int) error {
	candidates := make([]string, 0, len(indices))
	for _, i := range indices {
		candidates = append(candidates, fmt.Sprintf("%s (%s)", data.Entries[i].ID, data.Entries[i].Type))
	}

	return fmt.Errorf("%w: %q matches %s", ErrAmbiguousReference, ref, strings.Join(candidates, ", "))
}

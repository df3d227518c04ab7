package models

// VaultData is the decrypted content of a vault.
//
// It exists in memory only between a successful unlock and the end of the
// command that needed it. Entries keep their creation order; appends go to
// the end.
type VaultData struct {
	Entries []SecretEntry `json:"entries"`
}

// NewVaultData returns an empty vault content.
func NewVaultData() *VaultData {
	return &VaultData{Entries: []SecretEntry{}}
}

// IndexByID returns the position of the entry with the given ID,
// or -1 when no entry has it.
func (v *VaultData) IndexByID(id string) int {
	for i := range v.Entries {
		if v.Entries[i].ID == id {
			return i
		}
	}

	return -1
}

// IndicesByName returns the positions of every entry whose name equals
// the given name, across all secret types.
func (v *VaultData) IndicesByName(name string) []int {
	var indices []int
	for i := range v.Entries {
		if v.Entries[i].Name == name {
			indices = append(indices, i)
		}
	}

	return indices
}

// ContainsName reports whether an entry of the given type already uses
// the given name. Names are unique per type.
func (v *VaultData) ContainsName(secretType SecretType, name string) bool {
	for i := range v.Entries {
		if v.Entries[i].Type == secretType && v.Entries[i].Name == name {
			return true
		}
	}

	return false
}

// Wipe drops all entry references so the garbage collector can reclaim
// the decrypted payloads. Go strings cannot be zeroed in place; the
// serialized plaintext buffers are wiped separately by the crypto layer.
func (v *VaultData) Wipe() {
	for i := range v.Entries {
		v.Entries[i] = SecretEntry{}
	}
	v.Entries = v.Entries[:0]
}

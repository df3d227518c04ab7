package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashString_Deterministic(t *testing.T) {
	h1 := HashString("host-a", "kookie")
	h2 := HashString("host-a", "kookie")

	assert.Equal(t, h1, h2)
}

func TestHashString_DiffersByData(t *testing.T) {
	h1 := HashString("host-a", "kookie")
	h2 := HashString("host-b", "kookie")

	assert.NotEqual(t, h1, h2)
}

func TestHashString_DiffersByKey(t *testing.T) {
	h1 := HashString("host-a", "kookie")
	h2 := HashString("host-a", "other-purpose")

	assert.NotEqual(t, h1, h2)
}

func TestHashString_HexDigestLength(t *testing.T) {
	digest := HashString("anything", "key")

	// SHA-256 digest is 32 bytes, hex doubles it.
	assert.Len(t, digest, 64)
}

package crypto

import "fmt"

// Key holds a 256-bit symmetric key for the lifetime of one operation.
//
// Keys follow an acquire/use/close discipline: every code path that
// obtains a Key must call [Key.Close] when done, including error paths.
// Close zeroizes the underlying buffer; afterwards the material is gone
// and [Key.Bytes] fails.
type Key struct {
	material []byte
	closed   bool
}

// NewKey wraps raw key material in a [Key]. The material is copied, so
// the caller may (and should) zeroize its own buffer afterwards.
// Returns [ErrInvalidKeySize] unless the material is [KeySize] bytes.
func NewKey(material []byte) (*Key, error) {
	if len(material) != KeySize {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidKeySize, len(material), KeySize)
	}

	key := &Key{material: make([]byte, KeySize)}
	copy(key.material, material)

	return key, nil
}

// Bytes returns the raw key material. The returned slice aliases the
// internal buffer and becomes invalid after [Key.Close].
func (k *Key) Bytes() ([]byte, error) {
	if k.closed {
		return nil, ErrKeyClosed
	}

	return k.material, nil
}

// Close zeroizes the key material. Safe to call more than once; only
// the first call does work. Always defer Close right after acquiring
// a key.
func (k *Key) Close() {
	if k.closed {
		return
	}

	Zero(k.material)
	k.closed = true
}

// Zero overwrites every byte of b with zeroes. Used for plaintext
// buffers and key material that must not outlive their operation.
func Zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

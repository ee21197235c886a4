// Package hash provides seeded xxh3 hashing of group keys.
package hash

import (
	"encoding/binary"
	"fmt"

	"github.com/zeebo/xxh3"

	"github.com/arloliu/datasplit/types"
)

// Group computes a 64-bit hash for a group.
//
// Keyed groups hash their key; keyless groups hash their first member index, so
// an item without a key keeps a stable position as long as its index is stable.
//
// Parameters:
//   - g: Group to hash
//   - seed: Hash seed (0 means unseeded)
//
// Returns:
//   - uint64: Hash value
func Group(g types.Group, seed uint64) uint64 {
	if g.HasKey {
		return Key(g.Key, seed)
	}
	if len(g.Members) == 0 {
		return 0
	}

	return Index(g.Members[0], seed)
}

// Key computes a 64-bit hash for a group key.
//
// Keys are comparable values. Strings are hashed directly. Integers are hashed from their
// little-endian encoding. Other values are hashed from their type-qualified
// formatted form, so 1 and "1" do not collide.
//
// Parameters:
//   - key: Group key
//   - seed: Hash seed (0 means unseeded)
//
// Returns:
//   - uint64: Hash value
func Key(key any, seed uint64) uint64 {
	switch k := key.(type) {
	case string:
		return hashString(k, seed)
	case int:
		return hashUint(0x01, uint64(k), seed) //nolint:gosec
	case int64:
		return hashUint(0x01, uint64(k), seed) //nolint:gosec
	case int32:
		return hashUint(0x01, uint64(k), seed) //nolint:gosec
	case uint64:
		return hashUint(0x02, k, seed)
	case uint32:
		return hashUint(0x02, uint64(k), seed)
	case uint:
		return hashUint(0x02, uint64(k), seed)
	default:
		return hashString(fmt.Sprintf("%T\x00%v", key, key), seed)
	}
}

// Index computes a 64-bit hash for an item index.
func Index(i int, seed uint64) uint64 {
	return hashUint(0x03, uint64(i), seed) //nolint:gosec
}

func hashString(s string, seed uint64) uint64 {
	if seed != 0 {
		return xxh3.HashStringSeed(s, seed)
	}

	return xxh3.HashString(s)
}

func hashBytes(b []byte, seed uint64) uint64 {
	if seed != 0 {
		return xxh3.HashSeed(b, seed)
	}

	return xxh3.Hash(b)
}

// hashUint hashes a tagged 8-byte value. The tag keeps signed, unsigned and index
// values with equal bits apart.
func hashUint(tag byte, v uint64, seed uint64) uint64 {
	var b [9]byte
	b[0] = tag
	binary.LittleEndian.PutUint64(b[1:], v)

	return hashBytes(b[:], seed)
}

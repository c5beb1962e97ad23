package morton

import "lukechampine.com/uint128"

// Key is a 128-bit traversal key read 4 bits per level from the low end.
type Key struct {
	uint128.Uint128
}

// Octant returns the lowest 4-bit group of a key. The top bit of every group
// produced by Encode is zero, so the result is always in [0..7].
func (k Key) Octant() uint8 {
	return uint8(k.Lo & levelMask)
}

// Next drops the lowest 4-bit group.
func (k Key) Next() Key {
	return Key{k.Rsh(LevelBits)}
}

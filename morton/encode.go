package morton

import "math/bits"

const (
	// LevelBits is the number of key bits consumed per tree level.
	LevelBits = 4
	// MaxDepth is the deepest tree a 128-bit key can address (32-bit lanes).
	MaxDepth = 32

	laneWidth        = 32
	signBit   uint32 = 1 << (laneWidth - 1)
	levelMask uint64 = (1 << LevelBits) - 1 // 0b_1111
)

// Encode returns the traversal key of (x, y, z) for a tree of the given depth.
// Coordinates outside Bounds(depth) alias into the representable range.
// Depths above MaxDepth are treated as MaxDepth.
func Encode(x, y, z int32, depth uint) Key {
	depth = min(depth, MaxDepth)

	var (
		shift = laneWidth - depth
		lx    = lane(x, shift)
		ly    = lane(y, shift)
		lz    = lane(z, shift)
	)

	return Key{Interleave64(Interleave32(lx, ly), Interleave32(lz, 0))}
}

// Decode is the inverse of Encode for coordinates within Bounds(depth).
// Bits above the lowest depth*LevelBits are ignored.
func Decode(key Key, depth uint) (x, y, z int32) {
	depth = min(depth, MaxDepth)

	if depth == 0 {
		return 0, 0, 0
	}

	var (
		shift  = laneWidth - depth
		xy, zn = Deinterleave64(key.Uint128)
		lx, ly = Deinterleave32(xy)
		lz, _  = Deinterleave32(zn)
		mask   = uint32(1<<depth - 1)
	)

	return unlane(lx&mask, shift), unlane(ly&mask, shift), unlane(lz&mask, shift)
}

// Bounds returns the inclusive interval of coordinates a tree of the given
// depth represents without aliasing: [-2^(d-1), 2^(d-1)-1].
func Bounds(depth uint) (lo, hi int32) {
	depth = min(depth, MaxDepth)

	if depth == 0 {
		return 0, 0
	}

	half := int64(1) << (depth - 1)

	return int32(-half), int32(half - 1)
}

// InRange reports whether a lies within Bounds(depth).
func InRange(a int32, depth uint) bool {
	lo, hi := Bounds(depth)

	return lo <= a && a <= hi
}

func lane(a int32, shift uint) uint32 {
	return bits.Reverse32((uint32(a) << shift) ^ signBit)
}

func unlane(l uint32, shift uint) int32 {
	// arithmetic shift restores the sign of the d-bit value
	return int32(bits.Reverse32(l)^signBit) >> shift
}

package morton

import (
	"strconv"
	"strings"

	"lukechampine.com/uint128"
)

// bitString renders a key as binary grouped by level, most significant group first.
func bitString(k Key, levels int) string {
	var buf strings.Builder

	for i := levels - 1; i >= 0; i-- {
		group := k.Rsh(uint(i*LevelBits)).Lo & levelMask
		buf.WriteString(strconv.FormatUint(group|1<<LevelBits, 2)[1:])
		if i != 0 {
			buf.WriteByte('_')
		}
	}

	return buf.String()
}

// parseBits parses an underscore separated binary literal into a Key.
func parseBits(str string) (Key, error) {
	str = strings.Replace(str, "_", "", -1)

	var v uint128.Uint128

	for _, ch := range str {
		v = v.Lsh(1)
		switch ch {
		case '0':
		case '1':
			v = v.Or64(1)
		default:
			return Key{}, strconv.ErrSyntax
		}
	}

	return Key{v}, nil
}

// naiveInterleave places bit i of a at 2i and bit i of b at 2i+1, one bit at a time.
func naiveInterleave(a, b uint64, width int) uint128.Uint128 {
	var out uint128.Uint128

	for i := 0; i < width; i++ {
		if a>>i&1 != 0 {
			out = out.Or(uint128.From64(1).Lsh(uint(2 * i)))
		}
		if b>>i&1 != 0 {
			out = out.Or(uint128.From64(1).Lsh(uint(2*i + 1)))
		}
	}

	return out
}

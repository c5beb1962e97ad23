package morton

import "lukechampine.com/uint128"

// The spreading masks below move every bit of an operand into its own 2-bit
// slot, doubling the stride at each step:
//
//	abcdefgh -> 0a0b0c0d0e0f0g0h
const (
	spread16Mask8 uint16 = 0x0F0F
	spread16Mask4 uint16 = 0x3333
	spread16Mask2 uint16 = 0x5555

	spread32Mask16 uint32 = 0x00FF00FF
	spread32Mask8  uint32 = 0x0F0F0F0F
	spread32Mask4  uint32 = 0x33333333
	spread32Mask2  uint32 = 0x55555555

	spread64Mask32 uint64 = 0x0000FFFF0000FFFF
	spread64Mask16 uint64 = 0x00FF00FF00FF00FF
	spread64Mask8  uint64 = 0x0F0F0F0F0F0F0F0F
	spread64Mask4  uint64 = 0x3333333333333333
	spread64Mask2  uint64 = 0x5555555555555555
)

func spread8(v uint8) uint16 {
	x := uint16(v)
	x = (x | x<<4) & spread16Mask8
	x = (x | x<<2) & spread16Mask4
	x = (x | x<<1) & spread16Mask2

	return x
}

func spread16(v uint16) uint32 {
	x := uint32(v)
	x = (x | x<<8) & spread32Mask16
	x = (x | x<<4) & spread32Mask8
	x = (x | x<<2) & spread32Mask4
	x = (x | x<<1) & spread32Mask2

	return x
}

func spread32(v uint32) uint64 {
	x := uint64(v)
	x = (x | x<<16) & spread64Mask32
	x = (x | x<<8) & spread64Mask16
	x = (x | x<<4) & spread64Mask8
	x = (x | x<<2) & spread64Mask4
	x = (x | x<<1) & spread64Mask2

	return x
}

// Interleave8 interleaves the bits of two bytes: bit i of a lands at bit 2i of
// the result, bit i of b lands at bit 2i+1.
func Interleave8(a, b uint8) uint16 {
	return spread8(a) | spread8(b)<<1
}

// Interleave16 is Interleave8 for 16-bit operands.
func Interleave16(a, b uint16) uint32 {
	return spread16(a) | spread16(b)<<1
}

// Interleave32 is Interleave8 for 32-bit operands.
func Interleave32(a, b uint32) uint64 {
	return spread32(a) | spread32(b)<<1
}

// Interleave64 is Interleave8 for 64-bit operands. Each 32-bit half of an
// operand spreads into the matching 64-bit half of the result.
func Interleave64(a, b uint64) uint128.Uint128 {
	var (
		lo = spread32(uint32(a)) | spread32(uint32(b))<<1
		hi = spread32(uint32(a>>32)) | spread32(uint32(b>>32))<<1
	)

	return uint128.New(lo, hi)
}

func compact16(x uint16) uint8 {
	x &= spread16Mask2
	x = (x | x>>1) & spread16Mask4
	x = (x | x>>2) & spread16Mask8
	x = (x | x>>4) & 0x00FF

	return uint8(x)
}

func compact32(x uint32) uint16 {
	x &= spread32Mask2
	x = (x | x>>1) & spread32Mask4
	x = (x | x>>2) & spread32Mask8
	x = (x | x>>4) & spread32Mask16
	x = (x | x>>8) & 0x0000FFFF

	return uint16(x)
}

func compact64(x uint64) uint32 {
	x &= spread64Mask2
	x = (x | x>>1) & spread64Mask4
	x = (x | x>>2) & spread64Mask8
	x = (x | x>>4) & spread64Mask16
	x = (x | x>>8) & spread64Mask32
	x = (x | x>>16) & 0x00000000FFFFFFFF

	return uint32(x)
}

// Deinterleave8 splits an Interleave8 result back into its operands.
func Deinterleave8(v uint16) (a, b uint8) {
	return compact16(v), compact16(v >> 1)
}

// Deinterleave16 splits an Interleave16 result back into its operands.
func Deinterleave16(v uint32) (a, b uint16) {
	return compact32(v), compact32(v >> 1)
}

// Deinterleave32 splits an Interleave32 result back into its operands.
func Deinterleave32(v uint64) (a, b uint32) {
	return compact64(v), compact64(v >> 1)
}

// Deinterleave64 splits an Interleave64 result back into its operands.
func Deinterleave64(v uint128.Uint128) (a, b uint64) {
	a = uint64(compact64(v.Hi))<<32 | uint64(compact64(v.Lo))
	b = uint64(compact64(v.Hi>>1))<<32 | uint64(compact64(v.Lo>>1))

	return a, b
}

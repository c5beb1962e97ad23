// Package morton builds Z-order (Morton) traversal keys for a sparse octree.
//
// A key is produced from a signed 3D coordinate and a tree depth d:
//
//	lane(a) = reverse32( (uint32(a) << (32-d)) ^ signBit )
//	key     = Interleave64( Interleave32(lane(x), lane(y)), Interleave32(lane(z), 0) )
//
// Flipping the sign bit maps the signed range onto unsigned values with the
// same ordering, and reversing the lane puts the coarsest subdivision bit at
// bit zero, where descent starts.
//
// The key is consumed 4 bits per level from the least significant end:
//
//	[ 1:3 ] [ 1:2 ] [ 1:1 ] [ 1:0 ]
//	  <0>     <y>     <z>     <x>
//
// The top bit of every group descends from the constant zero lane and is
// always 0, so a group is a ready-made child index in [0..7].
package morton

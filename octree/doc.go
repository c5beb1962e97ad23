// Package octree implements a sparse, fixed-depth octree keyed by signed 3D
// integer coordinates.
//
// Every coordinate is turned into a Morton key (see package morton) that is
// consumed 4 bits per level, each group selecting one of 8 children:
//
//	                      ,-- [empty]
//	                      |
//	[branch] --+-- 0 --  [branch] --+-- ...
//	           |                    `-- 7 -- [leaf:value]     (level == depth)
//	           `-- 7 -- [empty]
//
// Branches are materialized lazily along inserted paths only, so memory grows
// with the number of distinct coordinates times the depth rather than 8^depth.
// Leaves live exactly at the configured depth.
//
// For a tree of depth d every axis should lie within [-2^(d-1), 2^(d-1)-1].
// Other values wrap around into that range unless the tree is built with
// WithBoundsCheck.
//
// A Tree is not safe for concurrent use. Concurrent Get calls are fine as long
// as no Set runs at the same time; writers must be serialized by the caller.
package octree

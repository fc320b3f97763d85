// Package hashutil provides the deterministic hash functions and the
// per-specialization representation dispatch used by the generic
// containers.
//
// Two representations exist: text, hashed byte-wise with a rolling
// multiplicative hash (h = h*33 + byte, seed 5381), and fixed-width
// scalars, hashed by their own bit pattern widened or truncated to 32
// bits. For[K] picks between them once per concrete key type; container
// constructors call it exactly once and store the result, so no type tag
// or per-call branch survives into the operation hot path.
package hashutil

package hashutil

// seed is the initial state of the rolling string hash.
const seed = 5381

// String hashes text with the runtime's rolling multiplicative hash:
// h = h*33 + byte, seeded with 5381, reduced to unsigned 32 bits.
// The generated code's map and set specializations over string keys all
// route through this function, so it must stay stable across releases.
func String(s string) uint32 {
	h := uint32(seed)
	for i := 0; i < len(s); i++ {
		h = h*33 + uint32(s[i])
	}
	return h
}

// Bytes hashes a raw byte sequence with the same rolling hash as String.
func Bytes(b []byte) uint32 {
	h := uint32(seed)
	for _, c := range b {
		h = h*33 + uint32(c)
	}
	return h
}

package emberruntime

// Version is the runtime ABI version. The compiler embeds the version it
// was built against and refuses to link generated code to a runtime with
// a different major version.
const Version = "0.3.0"

// Scalar is the set of fixed-width value types the containers treat as
// plain bit patterns: compared with ==, ordered with <, hashed by their
// own representation widened or truncated to 32 bits.
type Scalar interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Key is the set of types usable as hash map keys and set elements:
// scalars plus text. Text compares byte-wise, case-sensitive, and hashes
// with the runtime's rolling string hash. The representation branch is
// selected once per concrete instantiation (see hashutil.For); there are
// no runtime type tags.
type Key interface {
	Scalar | ~string
}

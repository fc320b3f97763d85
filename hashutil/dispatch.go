package hashutil

import (
	"math"
	"reflect"
	"unsafe"

	emberruntime "github.com/emberlang/ember-runtime"
)

// Func hashes one key of a concrete specialization to 32 bits.
type Func[K emberruntime.Key] func(K) uint32

// For selects the hash function for K: the rolling text hash for string
// kinds, the bit-pattern hash for scalars. Selection happens exactly once,
// when the container specialization is constructed; the returned function
// reinterprets the key directly and performs no per-call dispatch.
//
// Scalars hash to their own representation widened or truncated to 32
// bits: integers by value truncation, floats by their IEEE bit pattern.
func For[K emberruntime.Key]() Func[K] {
	var zero K
	switch reflect.TypeOf(zero).Kind() {
	case reflect.String:
		return func(k K) uint32 { return String(*(*string)(unsafe.Pointer(&k))) }
	case reflect.Int:
		return func(k K) uint32 { return uint32(*(*int)(unsafe.Pointer(&k))) }
	case reflect.Int8:
		return func(k K) uint32 { return uint32(*(*int8)(unsafe.Pointer(&k))) }
	case reflect.Int16:
		return func(k K) uint32 { return uint32(*(*int16)(unsafe.Pointer(&k))) }
	case reflect.Int32:
		return func(k K) uint32 { return uint32(*(*int32)(unsafe.Pointer(&k))) }
	case reflect.Int64:
		return func(k K) uint32 { return uint32(*(*int64)(unsafe.Pointer(&k))) }
	case reflect.Uint:
		return func(k K) uint32 { return uint32(*(*uint)(unsafe.Pointer(&k))) }
	case reflect.Uint8:
		return func(k K) uint32 { return uint32(*(*uint8)(unsafe.Pointer(&k))) }
	case reflect.Uint16:
		return func(k K) uint32 { return uint32(*(*uint16)(unsafe.Pointer(&k))) }
	case reflect.Uint32:
		return func(k K) uint32 { return *(*uint32)(unsafe.Pointer(&k)) }
	case reflect.Uint64:
		return func(k K) uint32 { return uint32(*(*uint64)(unsafe.Pointer(&k))) }
	case reflect.Uintptr:
		return func(k K) uint32 { return uint32(*(*uintptr)(unsafe.Pointer(&k))) }
	case reflect.Float32:
		return func(k K) uint32 { return math.Float32bits(*(*float32)(unsafe.Pointer(&k))) }
	case reflect.Float64:
		return func(k K) uint32 { return uint32(math.Float64bits(*(*float64)(unsafe.Pointer(&k)))) }
	default:
		// Unreachable: the Key constraint admits no other kinds.
		panic("hashutil: unsupported key kind " + reflect.TypeOf(zero).Kind().String())
	}
}

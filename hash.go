package sdkmodel

import (
	"encoding/binary"
	"hash/maphash"
	"math"
	"time"
)

// Hasher is implemented by values that participate in structural hashing.
// A nil receiver hashes to 0.
type Hasher interface {
	HashCode() uint64
}

// hashSeed is fixed for the life of the process, so hashes are stable within
// a process and not across processes.
var hashSeed = maphash.MakeSeed()

// hashValue hashes a normalized field value consistently with valueEqual.
func hashValue(v any) uint64 {
	switch x := v.(type) {
	case nil:
		return 0
	case Hasher:
		return x.HashCode()
	case string:
		return maphash.String(hashSeed, x)
	case bool:
		if x {
			return 1231
		}
		return 1237
	case int32:
		return hashUint(uint64(int64(x)))
	case int64:
		return hashUint(uint64(x))
	case float64:
		return hashUint(floatBits(x))
	case float32:
		return hashUint(floatBits(float64(x)))
	case time.Time:
		return 31*hashUint(uint64(x.Unix())) + uint64(x.Nanosecond())
	case []byte:
		return maphash.Bytes(hashSeed, x)
	default:
		return maphash.Comparable(hashSeed, v)
	}
}

func hashUint(u uint64) uint64 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], u)
	return maphash.Bytes(hashSeed, buf[:])
}

// floatBits folds -0 into 0 and every NaN into one pattern, matching valueEqual.
func floatBits(f float64) uint64 {
	switch {
	case f == 0:
		return 0
	case f != f:
		return 0x7ff8000000000001
	}
	return math.Float64bits(f)
}

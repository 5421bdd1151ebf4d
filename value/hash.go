// ==============================================================================================
// FILE: value/hash.go
// ==============================================================================================
// PACKAGE: value
// PURPOSE: Hashing of atomic Table keys (§2: Value is responsible for "hashing of atomic
//          keys"). Int and Double keys hash to the same bucket when numerically equal, so
//          that Table lookup agrees with the cross-type numeric equality used by `=`.
// ==============================================================================================

package value

import (
	"fmt"
	"hash/fnv"
	"math"
)

// HashKey is the internal, comparable bucket key backing Table's Go map.
type HashKey struct {
	category string
	bits     uint64
}

// HashKeyOf computes the bucket key for v, or a fatal error if v is not a legal Table key
// (invariant 1: only Bool, Double, Int, Str, Sym may be hashed).
func HashKeyOf(v Value) (HashKey, error) {
	switch t := v.(type) {
	case *Bool:
		var bits uint64
		if t.Value {
			bits = 1
		}
		return HashKey{category: "BOOL", bits: bits}, nil
	case *Int:
		return HashKey{category: "NUM", bits: math.Float64bits(float64(t.Value))}, nil
	case *Double:
		return HashKey{category: "NUM", bits: math.Float64bits(t.Value)}, nil
	case *Str:
		return HashKey{category: "STR", bits: fnvHash(t.Value)}, nil
	case *Sym:
		return HashKey{category: "SYM", bits: fnvHash(t.Value)}, nil
	default:
		return HashKey{}, fmt.Errorf("unusable as table key: %s", v.Type())
	}
}

func fnvHash(s string) uint64 {
	h := fnv.New64a()
	h.Write([]byte(s)) //nolint:errcheck — hash.Hash.Write never returns an error
	return h.Sum64()
}

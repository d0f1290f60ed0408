// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bytebuf

import (
	"encoding/binary"
	"math"
)

// Scalar is the closed set of fixed-width kinds the codec supports.
//
// The set is exact types rather than underlying-type approximations so the
// codec can dispatch with a plain type switch; callers with named types
// convert at the call site.
type Scalar interface {
	bool |
		int8 | uint8 |
		int16 | uint16 |
		int32 | uint32 |
		int64 | uint64 |
		Int128 | Uint128 |
		float32 | float64
}

// SizeOf returns the encoded width in bytes of the kind V.
//
// The width is fixed per kind (1, 2, 4, 8 or 16) and identical for both
// byte orders.
func SizeOf[V Scalar]() int {
	var v V
	switch any(v).(type) {
	case bool, int8, uint8:
		return 1
	case int16, uint16:
		return 2
	case int32, uint32, float32:
		return 4
	case int64, uint64, float64:
		return 8
	default:
		return 16
	}
}

// Encode writes the byte representation of v at the start of dst in the
// given byte order. Exactly SizeOf[V]() bytes are written.
//
// Integers use two's-complement layout, floats their IEEE-754 bit pattern
// (bit-exact, NaN payloads included), booleans one byte 1/0 regardless of
// order.
//
// Encode panics if dst is shorter than SizeOf[V](). The panic happens
// before any byte is written; dst is never partially updated.
func Encode[V Scalar](dst []byte, order binary.ByteOrder, v V) {
	switch x := any(v).(type) {
	case bool:
		if x {
			dst[0] = 1
		} else {
			dst[0] = 0
		}
	case int8:
		dst[0] = byte(x)
	case uint8:
		dst[0] = x
	case int16:
		order.PutUint16(dst, uint16(x))
	case uint16:
		order.PutUint16(dst, x)
	case int32:
		order.PutUint32(dst, uint32(x))
	case uint32:
		order.PutUint32(dst, x)
	case int64:
		order.PutUint64(dst, uint64(x))
	case uint64:
		order.PutUint64(dst, x)
	case Int128:
		put128(dst, order, x.Lo, x.Hi)
	case Uint128:
		put128(dst, order, x.Lo, x.Hi)
	case float32:
		order.PutUint32(dst, math.Float32bits(x))
	case float64:
		order.PutUint64(dst, math.Float64bits(x))
	}
}

// Decode reads a value of kind V from the first SizeOf[V]() bytes of src
// in the given byte order. Bytes past the width are ignored.
//
// Boolean decoding is widening: a zero byte yields false and any non-zero
// byte yields true. This is intentionally wider than the encode range so
// flag fields written by foreign producers read back predictably.
//
// Decode panics if src is shorter than SizeOf[V]().
func Decode[V Scalar](src []byte, order binary.ByteOrder) V {
	var v V
	switch p := any(&v).(type) {
	case *bool:
		*p = src[0] != 0
	case *int8:
		*p = int8(src[0])
	case *uint8:
		*p = src[0]
	case *int16:
		*p = int16(order.Uint16(src))
	case *uint16:
		*p = order.Uint16(src)
	case *int32:
		*p = int32(order.Uint32(src))
	case *uint32:
		*p = order.Uint32(src)
	case *int64:
		*p = int64(order.Uint64(src))
	case *uint64:
		*p = order.Uint64(src)
	case *Int128:
		p.Lo, p.Hi = get128(src, order)
	case *Uint128:
		p.Lo, p.Hi = get128(src, order)
	case *float32:
		*p = math.Float32frombits(order.Uint32(src))
	case *float64:
		*p = math.Float64frombits(order.Uint64(src))
	}
	return v
}

// isLittle probes the order's identity instead of comparing against the
// binary package sentinels, so custom ByteOrder implementations behave.
func isLittle(order binary.ByteOrder) bool {
	var probe [2]byte
	order.PutUint16(probe[:], 1)
	return probe[0] == 1
}

func put128(dst []byte, order binary.ByteOrder, lo, hi uint64) {
	_ = dst[15] // fault before any byte is written
	if isLittle(order) {
		order.PutUint64(dst[0:8], lo)
		order.PutUint64(dst[8:16], hi)
	} else {
		order.PutUint64(dst[0:8], hi)
		order.PutUint64(dst[8:16], lo)
	}
}

func get128(src []byte, order binary.ByteOrder) (lo, hi uint64) {
	_ = src[15]
	if isLittle(order) {
		return order.Uint64(src[0:8]), order.Uint64(src[8:16])
	}
	return order.Uint64(src[8:16]), order.Uint64(src[0:8])
}

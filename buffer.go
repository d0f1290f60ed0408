// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bytebuf

import (
	"encoding/binary"
	"fmt"
)

// Buffer is a typed, offset-addressed view over a byte-slice storage.
//
// The storage may be a plain []byte, any named byte-slice type, or an
// array viewed through arr[:]; Buffer borrows it without copying. A Buffer
// carries no state of its own beyond the storage: no cursor, no cached
// offsets. Every access names its offset explicitly, and accesses at
// disjoint offsets never interfere.
//
// Wrapping performs no validation; an empty or short storage is legal and
// faults surface only on access. An access whose offset plus kind width
// exceeds the storage length panics (see Get and Set); the storage is
// never partially updated by a faulted write.
//
// The zero Buffer wraps a nil storage of length zero. Copying a Buffer
// copies the slice header only, so copies alias the same bytes, exactly
// as copies of the storage itself would.
type Buffer[S ~[]byte] struct {
	inner S
}

// New wraps storage in a Buffer.
func New[S ~[]byte](storage S) Buffer[S] {
	return Buffer[S]{inner: storage}
}

// Unwrap returns the wrapped storage unchanged.
func (b Buffer[S]) Unwrap() S { return b.inner }

// Bytes exposes the wrapped storage as a raw byte slice. Mutating the
// returned slice mutates the storage.
func (b Buffer[S]) Bytes() []byte { return []byte(b.inner) }

// Len returns the length of the wrapped storage in bytes.
func (b Buffer[S]) Len() int { return len(b.inner) }

// String delegates formatting to the wrapped bytes.
func (b Buffer[S]) String() string { return fmt.Sprint([]byte(b.inner)) }

// Get reads a value of kind V at byte offset off in the given byte order.
//
// Get panics if off+SizeOf[V]() exceeds the storage length.
func Get[V Scalar, S ~[]byte](b Buffer[S], order binary.ByteOrder, off int) V {
	return Decode[V]([]byte(b.inner)[off:], order)
}

// Set writes v at byte offset off in the given byte order and returns the
// view, so writes can be chained fluently. No byte outside
// [off, off+SizeOf[V]()) is touched.
//
// Set panics if off+SizeOf[V]() exceeds the storage length.
func Set[V Scalar, S ~[]byte](b Buffer[S], order binary.ByteOrder, off int, v V) Buffer[S] {
	Encode([]byte(b.inner)[off:], order, v)
	return b
}

// Typed accessors mirror Get/Set per kind for call sites that prefer a
// fluent method chain over explicit type arguments.

func (b Buffer[S]) Bool(order binary.ByteOrder, off int) bool { return Get[bool](b, order, off) }

func (b Buffer[S]) Int8(order binary.ByteOrder, off int) int8 { return Get[int8](b, order, off) }

func (b Buffer[S]) Uint8(order binary.ByteOrder, off int) uint8 { return Get[uint8](b, order, off) }

func (b Buffer[S]) Int16(order binary.ByteOrder, off int) int16 { return Get[int16](b, order, off) }

func (b Buffer[S]) Uint16(order binary.ByteOrder, off int) uint16 { return Get[uint16](b, order, off) }

func (b Buffer[S]) Int32(order binary.ByteOrder, off int) int32 { return Get[int32](b, order, off) }

func (b Buffer[S]) Uint32(order binary.ByteOrder, off int) uint32 { return Get[uint32](b, order, off) }

func (b Buffer[S]) Int64(order binary.ByteOrder, off int) int64 { return Get[int64](b, order, off) }

func (b Buffer[S]) Uint64(order binary.ByteOrder, off int) uint64 { return Get[uint64](b, order, off) }

func (b Buffer[S]) Int128(order binary.ByteOrder, off int) Int128 { return Get[Int128](b, order, off) }

func (b Buffer[S]) Uint128(order binary.ByteOrder, off int) Uint128 {
	return Get[Uint128](b, order, off)
}

func (b Buffer[S]) Float32(order binary.ByteOrder, off int) float32 {
	return Get[float32](b, order, off)
}

func (b Buffer[S]) Float64(order binary.ByteOrder, off int) float64 {
	return Get[float64](b, order, off)
}

func (b Buffer[S]) PutBool(order binary.ByteOrder, off int, v bool) Buffer[S] {
	return Set(b, order, off, v)
}

func (b Buffer[S]) PutInt8(order binary.ByteOrder, off int, v int8) Buffer[S] {
	return Set(b, order, off, v)
}

func (b Buffer[S]) PutUint8(order binary.ByteOrder, off int, v uint8) Buffer[S] {
	return Set(b, order, off, v)
}

func (b Buffer[S]) PutInt16(order binary.ByteOrder, off int, v int16) Buffer[S] {
	return Set(b, order, off, v)
}

func (b Buffer[S]) PutUint16(order binary.ByteOrder, off int, v uint16) Buffer[S] {
	return Set(b, order, off, v)
}

func (b Buffer[S]) PutInt32(order binary.ByteOrder, off int, v int32) Buffer[S] {
	return Set(b, order, off, v)
}

func (b Buffer[S]) PutUint32(order binary.ByteOrder, off int, v uint32) Buffer[S] {
	return Set(b, order, off, v)
}

func (b Buffer[S]) PutInt64(order binary.ByteOrder, off int, v int64) Buffer[S] {
	return Set(b, order, off, v)
}

func (b Buffer[S]) PutUint64(order binary.ByteOrder, off int, v uint64) Buffer[S] {
	return Set(b, order, off, v)
}

func (b Buffer[S]) PutInt128(order binary.ByteOrder, off int, v Int128) Buffer[S] {
	return Set(b, order, off, v)
}

func (b Buffer[S]) PutUint128(order binary.ByteOrder, off int, v Uint128) Buffer[S] {
	return Set(b, order, off, v)
}

func (b Buffer[S]) PutFloat32(order binary.ByteOrder, off int, v float32) Buffer[S] {
	return Set(b, order, off, v)
}

func (b Buffer[S]) PutFloat64(order binary.ByteOrder, off int, v float64) Buffer[S] {
	return Set(b, order, off, v)
}

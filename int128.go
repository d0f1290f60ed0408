// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bytebuf

import "fmt"

// Uint128 is an unsigned 128-bit integer held as two 64-bit halves.
// Its encoded width is 16 bytes in either byte order.
type Uint128 struct {
	Lo, Hi uint64
}

// Uint128From64 widens v to 128 bits.
func Uint128From64(v uint64) Uint128 { return Uint128{Lo: v} }

// IsZero reports whether u equals zero.
func (u Uint128) IsZero() bool { return u.Lo == 0 && u.Hi == 0 }

// Cmp returns -1, 0 or 1 depending on whether u is less than, equal to or
// greater than other.
func (u Uint128) Cmp(other Uint128) int {
	switch {
	case u.Hi != other.Hi:
		if u.Hi < other.Hi {
			return -1
		}
		return 1
	case u.Lo != other.Lo:
		if u.Lo < other.Lo {
			return -1
		}
		return 1
	}
	return 0
}

// String renders u in hexadecimal.
func (u Uint128) String() string {
	if u.Hi == 0 {
		return fmt.Sprintf("0x%x", u.Lo)
	}
	return fmt.Sprintf("0x%x%016x", u.Hi, u.Lo)
}

// Int128 is a signed two's-complement 128-bit integer held as two 64-bit
// halves. The sign lives in the top bit of Hi. Its encoded width is 16
// bytes in either byte order.
type Int128 struct {
	Lo, Hi uint64
}

// Int128From64 sign-extends v to 128 bits.
func Int128From64(v int64) Int128 {
	i := Int128{Lo: uint64(v)}
	if v < 0 {
		i.Hi = ^uint64(0)
	}
	return i
}

// IsZero reports whether i equals zero.
func (i Int128) IsZero() bool { return i.Lo == 0 && i.Hi == 0 }

// Sign returns -1 for negative values, 0 for zero and 1 for positive
// values.
func (i Int128) Sign() int {
	if i.Hi&(1<<63) != 0 {
		return -1
	}
	if i.IsZero() {
		return 0
	}
	return 1
}

// Neg returns the two's-complement negation of i.
func (i Int128) Neg() Int128 {
	lo := ^i.Lo + 1
	hi := ^i.Hi
	if lo == 0 {
		hi++
	}
	return Int128{Lo: lo, Hi: hi}
}

// Cmp returns -1, 0 or 1 depending on whether i is less than, equal to or
// greater than other, in signed order.
func (i Int128) Cmp(other Int128) int {
	// Flipping the sign bit turns two's-complement order into unsigned order.
	a := Uint128{Lo: i.Lo, Hi: i.Hi ^ (1 << 63)}
	b := Uint128{Lo: other.Lo, Hi: other.Hi ^ (1 << 63)}
	return a.Cmp(b)
}

// String renders i in hexadecimal, with a leading minus for negative
// values.
func (i Int128) String() string {
	if i.Sign() < 0 {
		n := i.Neg()
		return "-" + Uint128{Lo: n.Lo, Hi: n.Hi}.String()
	}
	return Uint128{Lo: i.Lo, Hi: i.Hi}.String()
}

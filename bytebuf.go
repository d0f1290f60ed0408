// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package bytebuf provides endianness-aware binary codec primitives for
// fixed-width scalar values, an offset-addressed buffer view over any
// byte-slice storage, and a small set of composable io adapters.
//
// Semantics and design:
//   - Per-call byte order: every codec operation takes an encoding/binary
//     ByteOrder argument (or a configured default on Encoder/Decoder). Byte
//     order is never a property of a value; the same value can be written in
//     either order from the same call site.
//   - Two fault classes, kept strictly apart: in-memory operations
//     (Encode/Decode, Buffer access) treat a short buffer as a programming
//     error and panic; stream operations (WriteScalar/ReadScalar, Encoder,
//     Decoder, ReadFill, ReadAll) surface transport failures as ordinary
//     error values and never panic.
//   - Non-blocking aware: iox.ErrWouldBlock and iox.ErrMore are surfaced as
//     control-flow signals (re-exposed as bytebuf.ErrWouldBlock /
//     bytebuf.ErrMore). Stream helpers can emulate cooperative blocking on
//     top of a non-blocking transport via WithRetryDelay / WithBlock.
//   - No implicit cursor: Buffer access is addressed by explicit offset, so
//     repeated calls at different offsets never interfere and there is no
//     position state to reset.
//
// Byte layout: integers are two's-complement, floats are IEEE-754 bit
// patterns (bit-exact, no numeric normalization), booleans occupy one byte
// encoded as 1/0. Decoding a boolean is widening: any non-zero byte reads
// back as true. The 16-byte kinds Int128/Uint128 lay out as a native
// 128-bit register would: low half first in little-endian, high half first
// in big-endian.
package bytebuf

import "code.hybscloud.com/iox"

// The stream helpers treat two iox sentinels as control flow rather than
// failure. They are re-exported here so callers can match on them without
// importing iox.
var (
	// ErrWouldBlock reports that the transport cannot make progress right
	// now. Bytes already transferred are real progress; retry once the
	// transport is ready, or let WithRetryDelay / WithBlock emulate
	// blocking instead. Decoder retains any partially consumed value
	// across this error, so a retry resumes where it stopped.
	ErrWouldBlock = iox.ErrWouldBlock

	// ErrMore reports a usable completion with more data still to come
	// from the same operation. It is neither io.EOF nor a reason to wait:
	// consume the result, then call again for the next chunk.
	ErrMore = iox.ErrMore
)

// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bytebuf

import (
	"encoding/binary"
	"time"

	"code.hybscloud.com/bytebuf/internal/bo"
)

// Options configures the stream-side helpers: Encoder, Decoder, ReadFill
// and ReadAll. The in-memory codec and Buffer take their byte order per
// call and are not affected.
type Options struct {
	// ByteOrder is the default byte order for Encoder and Decoder.
	ByteOrder binary.ByteOrder

	// ReadLimit caps the number of bytes ReadAll may accumulate. Zero means
	// no limit.
	ReadLimit int

	// RetryDelay controls how stream helpers handle iox.ErrWouldBlock from
	// the underlying transport:
	//   - negative: nonblock, return ErrWouldBlock immediately
	//   - zero: yield (runtime.Gosched) and retry
	//   - positive: sleep for the duration and retry
	RetryDelay time.Duration
}

var defaultOptions = Options{
	ByteOrder:  binary.BigEndian,
	ReadLimit:  0,
	RetryDelay: -1, // default: nonblock
}

type Option func(*Options)

func WithByteOrder(order binary.ByteOrder) Option {
	return func(o *Options) { o.ByteOrder = order }
}

func WithLittleEndian() Option {
	return func(o *Options) { o.ByteOrder = binary.LittleEndian }
}

func WithBigEndian() Option {
	return func(o *Options) { o.ByteOrder = binary.BigEndian }
}

// WithNativeByteOrder selects the machine's native byte order. This is a
// default-order selection for Encoder/Decoder, not a data-endianness
// detection: the order still applies uniformly to every value.
func WithNativeByteOrder() Option {
	return func(o *Options) { o.ByteOrder = bo.Native() }
}

func WithReadLimit(limit int) Option {
	return func(o *Options) { o.ReadLimit = limit }
}

// WithRetryDelay sets the retry/wait policy used when the underlying transport returns iox.ErrWouldBlock.
func WithRetryDelay(d time.Duration) Option {
	return func(o *Options) { o.RetryDelay = d }
}

// WithBlock enables cooperative blocking (yield-and-retry) on iox.ErrWouldBlock.
func WithBlock() Option {
	return func(o *Options) { o.RetryDelay = 0 }
}

// WithNonblock forces non-blocking behavior (return iox.ErrWouldBlock immediately).
func WithNonblock() Option {
	return func(o *Options) { o.RetryDelay = -1 }
}

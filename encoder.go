// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bytebuf

import (
	"encoding/binary"
	"io"
	"time"
)

// Encoder writes scalar values to an io.Writer in a byte order configured
// once at construction. It is a stream-side convenience over WriteScalar
// for call sites that encode many values against the same destination.
//
// Encoder applies the configured would-block retry policy (WithRetryDelay /
// WithBlock / WithNonblock) before surfacing ErrWouldBlock. In nonblock
// mode a value interrupted by ErrWouldBlock may be partially written;
// callers needing per-value atomicity should use a blocking destination or
// WithBlock.
type Encoder struct {
	wr         io.Writer
	bo         binary.ByteOrder
	retryDelay time.Duration
}

// NewEncoder returns an Encoder writing to w. The default byte order is
// big-endian.
func NewEncoder(w io.Writer, opts ...Option) *Encoder {
	o := defaultOptions
	for _, fn := range opts {
		fn(&o)
	}
	return &Encoder{wr: w, bo: o.ByteOrder, retryDelay: o.RetryDelay}
}

// ByteOrder returns the configured byte order.
func (e *Encoder) ByteOrder() binary.ByteOrder { return e.bo }

func (e *Encoder) write(p []byte) error {
	if e.wr == nil {
		return ErrInvalidArgument
	}
	off := 0
	for off < len(p) {
		n, err := e.wr.Write(p[off:])
		off += n
		if err != nil {
			if err == ErrWouldBlock && waitOnce(e.retryDelay) {
				continue
			}
			return err
		}
		// Guard against broken Writers that violate the io.Writer contract by
		// returning (0, nil) on a non-empty buffer.
		if n == 0 {
			return io.ErrShortWrite
		}
	}
	return nil
}

func encodeTo[V Scalar](e *Encoder, v V) error {
	var block [16]byte
	size := SizeOf[V]()
	Encode(block[:size], e.bo, v)
	return e.write(block[:size])
}

func (e *Encoder) Bool(v bool) error { return encodeTo(e, v) }

func (e *Encoder) Int8(v int8) error { return encodeTo(e, v) }

func (e *Encoder) Uint8(v uint8) error { return encodeTo(e, v) }

func (e *Encoder) Int16(v int16) error { return encodeTo(e, v) }

func (e *Encoder) Uint16(v uint16) error { return encodeTo(e, v) }

func (e *Encoder) Int32(v int32) error { return encodeTo(e, v) }

func (e *Encoder) Uint32(v uint32) error { return encodeTo(e, v) }

func (e *Encoder) Int64(v int64) error { return encodeTo(e, v) }

func (e *Encoder) Uint64(v uint64) error { return encodeTo(e, v) }

func (e *Encoder) Int128(v Int128) error { return encodeTo(e, v) }

func (e *Encoder) Uint128(v Uint128) error { return encodeTo(e, v) }

func (e *Encoder) Float32(v float32) error { return encodeTo(e, v) }

func (e *Encoder) Float64(v float64) error { return encodeTo(e, v) }

// Decoder reads scalar values from an io.Reader in a byte order configured
// once at construction. It is the stream-side counterpart of Encoder.
//
// A source that ends before the first byte of a value yields io.EOF; one
// that ends mid-value yields io.ErrUnexpectedEOF.
//
// Non-blocking semantics: when the transport returns ErrWouldBlock or
// ErrMore, with or without partial progress, the bytes already consumed
// for the current value are retained inside the Decoder, the error is
// surfaced (after the configured retry policy), and the next call on the
// same kind resumes the in-flight value without losing a byte. Retrying
// with a kind of a different width while a value is in flight returns
// ErrInvalidArgument.
type Decoder struct {
	rd         io.Reader
	bo         binary.ByteOrder
	retryDelay time.Duration

	// In-flight value state: got bytes of need already consumed into block.
	// Preserved across ErrWouldBlock/ErrMore returns so a retry resumes
	// instead of desynchronizing the stream.
	block [16]byte
	got   int
	need  int
}

// NewDecoder returns a Decoder reading from r. The default byte order is
// big-endian.
func NewDecoder(r io.Reader, opts ...Option) *Decoder {
	o := defaultOptions
	for _, fn := range opts {
		fn(&o)
	}
	return &Decoder{rd: r, bo: o.ByteOrder, retryDelay: o.RetryDelay}
}

// ByteOrder returns the configured byte order.
func (d *Decoder) ByteOrder() binary.ByteOrder { return d.bo }

// fill consumes bytes into d.block until the in-flight value of width size
// is complete. Progress survives ErrWouldBlock/ErrMore returns.
func (d *Decoder) fill(size int) error {
	if d.rd == nil {
		return ErrInvalidArgument
	}
	if d.need == 0 {
		d.need, d.got = size, 0
	} else if d.need != size {
		// A resume must request the same kind as the interrupted call.
		return ErrInvalidArgument
	}
	for d.got < d.need {
		n, err := d.rd.Read(d.block[d.got:d.need])
		d.got += n
		if d.got == d.need {
			// Value complete; an error here concerns the next read.
			return nil
		}
		if err != nil {
			if (err == ErrWouldBlock || err == ErrMore) && waitOnce(d.retryDelay) {
				continue
			}
			if d.got == 0 {
				// Nothing consumed; the stream is still aligned, so the next
				// call may start any kind.
				d.need = 0
			}
			if err == io.EOF && d.got > 0 {
				return io.ErrUnexpectedEOF
			}
			return err
		}
		// Guard against broken Readers that violate the io.Reader contract by
		// returning (0, nil) on a non-empty buffer.
		if n == 0 {
			return io.ErrNoProgress
		}
	}
	return nil
}

func decodeFrom[V Scalar](d *Decoder) (V, error) {
	var v V
	size := SizeOf[V]()
	if err := d.fill(size); err != nil {
		return v, err
	}
	v = Decode[V](d.block[:size], d.bo)
	d.need, d.got = 0, 0
	return v, nil
}

func (d *Decoder) Bool() (bool, error) { return decodeFrom[bool](d) }

func (d *Decoder) Int8() (int8, error) { return decodeFrom[int8](d) }

func (d *Decoder) Uint8() (uint8, error) { return decodeFrom[uint8](d) }

func (d *Decoder) Int16() (int16, error) { return decodeFrom[int16](d) }

func (d *Decoder) Uint16() (uint16, error) { return decodeFrom[uint16](d) }

func (d *Decoder) Int32() (int32, error) { return decodeFrom[int32](d) }

func (d *Decoder) Uint32() (uint32, error) { return decodeFrom[uint32](d) }

func (d *Decoder) Int64() (int64, error) { return decodeFrom[int64](d) }

func (d *Decoder) Uint64() (uint64, error) { return decodeFrom[uint64](d) }

func (d *Decoder) Int128() (Int128, error) { return decodeFrom[Int128](d) }

func (d *Decoder) Uint128() (Uint128, error) { return decodeFrom[Uint128](d) }

func (d *Decoder) Float32() (float32, error) { return decodeFrom[float32](d) }

func (d *Decoder) Float64() (float64, error) { return decodeFrom[float64](d) }

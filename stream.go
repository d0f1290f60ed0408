// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bytebuf

import (
	"encoding/binary"
	"io"
)

// WriteScalar encodes v in the given byte order and writes it to w.
//
// Unlike Encode, transport failures surface as error values: a writer that
// accepts fewer bytes than the kind's width without reporting an error
// yields io.ErrShortWrite. WriteScalar never panics.
func WriteScalar[V Scalar](w io.Writer, order binary.ByteOrder, v V) error {
	if w == nil {
		return ErrInvalidArgument
	}
	var block [16]byte
	size := SizeOf[V]()
	Encode(block[:size], order, v)
	n, err := w.Write(block[:size])
	if err != nil {
		return err
	}
	if n != size {
		return io.ErrShortWrite
	}
	return nil
}

// ReadScalar reads exactly SizeOf[V]() bytes from r and decodes them in
// the given byte order.
//
// A source that ends before supplying a single byte yields io.EOF; one
// that ends mid-value yields io.ErrUnexpectedEOF. ReadScalar never panics.
func ReadScalar[V Scalar](r io.Reader, order binary.ByteOrder) (V, error) {
	var v V
	if r == nil {
		return v, ErrInvalidArgument
	}
	var block [16]byte
	size := SizeOf[V]()
	if _, err := io.ReadFull(r, block[:size]); err != nil {
		return v, err
	}
	return Decode[V](block[:size], order), nil
}

// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bytebuf_test

import (
	"bytes"
	"encoding/binary"
	"io"
	"testing"

	"code.hybscloud.com/bytebuf"
)

func TestStreamScalar_RoundTrip(t *testing.T) {
	for _, order := range orders {
		var raw bytes.Buffer
		if err := bytebuf.WriteScalar(&raw, order, uint32(0xcafebabe)); err != nil {
			t.Fatalf("write uint32: %v", err)
		}
		if err := bytebuf.WriteScalar(&raw, order, true); err != nil {
			t.Fatalf("write bool: %v", err)
		}
		if err := bytebuf.WriteScalar(&raw, order, 42.42); err != nil {
			t.Fatalf("write float64: %v", err)
		}
		if err := bytebuf.WriteScalar(&raw, order, bytebuf.Int128From64(-9)); err != nil {
			t.Fatalf("write int128: %v", err)
		}

		u, err := bytebuf.ReadScalar[uint32](&raw, order)
		if err != nil || u != 0xcafebabe {
			t.Fatalf("read uint32: %v %#x", err, u)
		}
		b, err := bytebuf.ReadScalar[bool](&raw, order)
		if err != nil || !b {
			t.Fatalf("read bool: %v %v", err, b)
		}
		f, err := bytebuf.ReadScalar[float64](&raw, order)
		if err != nil || f != 42.42 {
			t.Fatalf("read float64: %v %v", err, f)
		}
		i, err := bytebuf.ReadScalar[bytebuf.Int128](&raw, order)
		if err != nil || i != bytebuf.Int128From64(-9) {
			t.Fatalf("read int128: %v %v", err, i)
		}
	}
}

func TestStreamScalar_MatchesInMemoryLayout(t *testing.T) {
	var raw bytes.Buffer
	if err := bytebuf.WriteScalar(&raw, binary.BigEndian, uint64(0x0102030405060708)); err != nil {
		t.Fatalf("write: %v", err)
	}
	var block [8]byte
	bytebuf.Encode(block[:], binary.BigEndian, uint64(0x0102030405060708))
	if !bytes.Equal(raw.Bytes(), block[:]) {
		t.Fatalf("stream and memory codecs disagree: % x vs % x", raw.Bytes(), block)
	}
}

func TestReadScalar_TruncatedStream(t *testing.T) {
	// Ends mid-value.
	r := bytes.NewReader([]byte{1, 2, 3})
	if _, err := bytebuf.ReadScalar[uint32](r, binary.BigEndian); err != io.ErrUnexpectedEOF {
		t.Fatalf("mid-value: got %v want io.ErrUnexpectedEOF", err)
	}
	// Ends before the first byte.
	if _, err := bytebuf.ReadScalar[uint32](bytes.NewReader(nil), binary.BigEndian); err != io.EOF {
		t.Fatalf("empty: got %v want io.EOF", err)
	}
}

type shortWriter struct{}

func (shortWriter) Write(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	return len(p) - 1, nil
}

func TestWriteScalar_ShortWrite(t *testing.T) {
	if err := bytebuf.WriteScalar(shortWriter{}, binary.BigEndian, uint64(1)); err != io.ErrShortWrite {
		t.Fatalf("got %v want io.ErrShortWrite", err)
	}
}

func TestStreamScalar_NilEnds(t *testing.T) {
	if err := bytebuf.WriteScalar(nil, binary.BigEndian, uint8(1)); err != bytebuf.ErrInvalidArgument {
		t.Fatalf("nil writer: %v", err)
	}
	if _, err := bytebuf.ReadScalar[uint8](nil, binary.BigEndian); err != bytebuf.ErrInvalidArgument {
		t.Fatalf("nil reader: %v", err)
	}
}

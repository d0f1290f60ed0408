// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bytebuf_test

import (
	"encoding/binary"
	"io"
	"testing"

	"code.hybscloud.com/bytebuf"
)

func BenchmarkEncodeUint64(b *testing.B) {
	var block [8]byte
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		bytebuf.Encode(block[:], binary.LittleEndian, uint64(i))
	}
}

func BenchmarkDecodeUint64(b *testing.B) {
	block := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	b.ReportAllocs()
	var sink uint64
	for i := 0; i < b.N; i++ {
		sink += bytebuf.Decode[uint64](block, binary.LittleEndian)
	}
	_ = sink
}

func BenchmarkEncodeUint128(b *testing.B) {
	var block [16]byte
	v := bytebuf.Uint128{Lo: 1, Hi: 2}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		bytebuf.Encode(block[:], binary.BigEndian, v)
	}
}

func BenchmarkBufferPutUint64(b *testing.B) {
	buffer := bytebuf.New(make([]byte, 64))
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		buffer.PutUint64(binary.BigEndian, 8, uint64(i))
	}
}

func BenchmarkBufferGetFloat64(b *testing.B) {
	buffer := bytebuf.New(make([]byte, 64))
	buffer.PutFloat64(binary.BigEndian, 0, 42.42)
	b.ReportAllocs()
	var sink float64
	for i := 0; i < b.N; i++ {
		sink += buffer.Float64(binary.BigEndian, 0)
	}
	_ = sink
}

func BenchmarkEncoderUint64(b *testing.B) {
	enc := bytebuf.NewEncoder(io.Discard)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if err := enc.Uint64(uint64(i)); err != nil {
			b.Fatal(err)
		}
	}
}

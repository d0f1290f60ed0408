package bo

import (
	"encoding/binary"
	"testing"
	"unsafe"
)

func TestNativeReturnsValidByteOrder(t *testing.T) {
	b := Native()
	if b != binary.BigEndian && b != binary.LittleEndian {
		t.Fatalf("unexpected byte order: %T", b)
	}
}

func TestNativeMatchesMemoryLayout(t *testing.T) {
	var x uint16 = 0x0102
	raw := *(*[2]byte)(unsafe.Pointer(&x))
	var enc [2]byte
	Native().PutUint16(enc[:], x)
	if raw != enc {
		t.Fatalf("Native() disagrees with memory layout: raw=%v enc=%v", raw, enc)
	}
}

// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bytebuf_test

import (
	"encoding/binary"
	"testing"
	"time"

	"code.hybscloud.com/bytebuf"
)

func TestOptions_HelpersSetExpectedFields(t *testing.T) {
	var o bytebuf.Options
	bytebuf.WithLittleEndian()(&o)
	if o.ByteOrder != binary.LittleEndian {
		t.Fatalf("ByteOrder want LittleEndian, got %v", o.ByteOrder)
	}
	bytebuf.WithBigEndian()(&o)
	if o.ByteOrder != binary.BigEndian {
		t.Fatalf("ByteOrder want BigEndian, got %v", o.ByteOrder)
	}
	bytebuf.WithByteOrder(binary.LittleEndian)(&o)
	if o.ByteOrder != binary.LittleEndian {
		t.Fatalf("ByteOrder want LittleEndian, got %v", o.ByteOrder)
	}
	// Unrelated fields should remain untouched by helpers
	if o.ReadLimit != 0 || o.RetryDelay != 0 {
		t.Fatalf("unrelated fields changed: %+v", o)
	}
}

func TestOptions_ComposeCleanly(t *testing.T) {
	var o bytebuf.Options
	bytebuf.WithLittleEndian()(&o)
	bytebuf.WithReadLimit(4096)(&o)
	bytebuf.WithRetryDelay(time.Millisecond)(&o)
	if o.ByteOrder != binary.LittleEndian || o.ReadLimit != 4096 || o.RetryDelay != time.Millisecond {
		t.Fatalf("compose mismatch: %+v", o)
	}
	// Switching the retry policy must not disturb the rest.
	bytebuf.WithNonblock()(&o)
	if o.RetryDelay != -1 {
		t.Fatalf("RetryDelay want -1, got %v", o.RetryDelay)
	}
	bytebuf.WithBlock()(&o)
	if o.RetryDelay != 0 {
		t.Fatalf("RetryDelay want 0, got %v", o.RetryDelay)
	}
	if o.ByteOrder != binary.LittleEndian || o.ReadLimit != 4096 {
		t.Fatalf("unrelated fields changed: %+v", o)
	}
}

func TestOptions_NativeByteOrderIsConcrete(t *testing.T) {
	var o bytebuf.Options
	bytebuf.WithNativeByteOrder()(&o)
	if o.ByteOrder != binary.LittleEndian && o.ByteOrder != binary.BigEndian {
		t.Fatalf("native order unresolved: %T", o.ByteOrder)
	}
}

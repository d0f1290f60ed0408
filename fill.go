// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bytebuf

import (
	"io"
	"runtime"
	"time"
)

// waitOnce applies the would-block retry policy and reports whether the
// caller should retry.
func waitOnce(d time.Duration) bool {
	if d < 0 {
		return false
	}
	if d == 0 {
		// Cooperative yield to avoid burning a full core when emulating
		// blocking on top of a non-blocking transport.
		runtime.Gosched()
		return true
	}
	time.Sleep(d)
	return true
}

// ReadFill reads from r into p until p is full or the source is exhausted,
// and returns the number of bytes read.
//
// Unlike io.ReadFull, exhaustion is not an error: io.EOF stops the loop
// and ReadFill returns the count with a nil error, so a source shorter
// than p simply yields a partial fill. Any other error propagates together
// with the progress made so far.
//
// Non-blocking semantics: on iox.ErrWouldBlock the configured retry policy
// applies (WithRetryDelay / WithBlock); in nonblock mode ReadFill returns
// the progress count with ErrWouldBlock and the caller can retry with
// p[n:]. A reader that returns (0, nil) on a non-empty buffer yields
// io.ErrNoProgress.
func ReadFill(r io.Reader, p []byte, opts ...Option) (int, error) {
	if r == nil {
		return 0, ErrInvalidArgument
	}
	o := defaultOptions
	for _, fn := range opts {
		fn(&o)
	}

	total := 0
	for total < len(p) {
		n, err := r.Read(p[total:])
		total += n
		if err != nil {
			if err == io.EOF {
				return total, nil
			}
			if err == ErrWouldBlock && waitOnce(o.RetryDelay) {
				continue
			}
			return total, err
		}
		if n == 0 {
			return total, io.ErrNoProgress
		}
	}
	return total, nil
}

// ReadAll drains r into memory and returns the accumulated bytes.
//
// io.EOF terminates the drain and is not reported as an error. With
// WithReadLimit(n), accumulating more than n bytes aborts with ErrTooLong;
// the bytes read so far are still returned.
//
// Non-blocking semantics follow ReadFill: iox.ErrWouldBlock honors the
// configured retry policy and otherwise propagates with the partial
// result.
func ReadAll(r io.Reader, opts ...Option) ([]byte, error) {
	if r == nil {
		return nil, ErrInvalidArgument
	}
	o := defaultOptions
	for _, fn := range opts {
		fn(&o)
	}

	buf := make([]byte, 0, 512)
	for {
		if len(buf) == cap(buf) {
			// Grow with the append machinery, then reclaim the spare capacity
			// as read room. Growing up front keeps the read slice non-empty
			// even when a retried read previously filled the capacity exactly.
			buf = append(buf, 0)[:len(buf)]
		}
		n, err := r.Read(buf[len(buf):cap(buf)])
		buf = buf[:len(buf)+n]
		if o.ReadLimit > 0 && len(buf) > o.ReadLimit {
			return buf, ErrTooLong
		}
		if err != nil {
			if err == io.EOF {
				return buf, nil
			}
			if err == ErrWouldBlock && waitOnce(o.RetryDelay) {
				continue
			}
			return buf, err
		}
		if n == 0 {
			return buf, io.ErrNoProgress
		}
	}
}

// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bytebuf

import "io"

// Combined joins a read end and a write end into a single
// io.Reader+io.Writer+io.Seeker:
//
//   - Read forwards only to the read end.
//   - Write forwards only to the write end.
//   - Seek forwards to both ends.
//
// Both ends are optional: a nil end makes the corresponding calls return
// ErrInvalidArgument. Seeking requires both ends to implement io.Seeker;
// otherwise Seek returns ErrNotSeekable.
//
// Combined adds no buffering and no synchronization; it is a pure
// delegation shim for code that wants one object where separate read and
// write handles exist (for example distinct handles onto the same file).
type Combined struct {
	rd io.Reader
	wr io.Writer
}

// NewCombined returns a Combined forwarding reads to readEnd and writes
// to writeEnd.
func NewCombined(readEnd io.Reader, writeEnd io.Writer) *Combined {
	return &Combined{rd: readEnd, wr: writeEnd}
}

func (c *Combined) Read(p []byte) (int, error) {
	if c.rd == nil {
		return 0, ErrInvalidArgument
	}
	return c.rd.Read(p)
}

func (c *Combined) Write(p []byte) (int, error) {
	if c.wr == nil {
		return 0, ErrInvalidArgument
	}
	return c.wr.Write(p)
}

// Seek repositions both ends. The read end seeks first and its error, if
// any, aborts the call; the returned position is the write end's.
func (c *Combined) Seek(offset int64, whence int) (int64, error) {
	rs, ok := c.rd.(io.Seeker)
	if !ok {
		return 0, ErrNotSeekable
	}
	ws, ok := c.wr.(io.Seeker)
	if !ok {
		return 0, ErrNotSeekable
	}
	if _, err := rs.Seek(offset, whence); err != nil {
		return 0, err
	}
	return ws.Seek(offset, whence)
}

// Rewind repositions both ends to the start.
func (c *Combined) Rewind() error {
	_, err := c.Seek(0, io.SeekStart)
	return err
}

// Position reports the read end's current offset.
func (c *Combined) Position() (int64, error) {
	rs, ok := c.rd.(io.Seeker)
	if !ok {
		return 0, ErrNotSeekable
	}
	return rs.Seek(0, io.SeekCurrent)
}

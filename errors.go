// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bytebuf

import "errors"

var (
	// ErrInvalidArgument reports an invalid configuration or nil reader/writer.
	ErrInvalidArgument = errors.New("bytebuf: invalid argument")

	// ErrTooLong reports that a stream exceeds the configured read limit.
	ErrTooLong = errors.New("bytebuf: stream too long")

	// ErrNotSeekable reports that an end of a Combined stream does not
	// implement io.Seeker.
	ErrNotSeekable = errors.New("bytebuf: not seekable")
)

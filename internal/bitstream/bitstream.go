// seehuhn.de/go/pdfcodec - decoders for PDF stream filters
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package bitstream provides the sequential readers shared by the LZW and
// the ASCII decoders.
package bitstream

import (
	"bytes"

	"github.com/icza/bitio"
)

// BitReader reads big-endian groups of bits from an immutable byte slice,
// starting at bit 0 (the most significant bit) of byte 0.
type BitReader struct {
	r    *bitio.Reader
	size int
	pos  int // bits consumed so far
}

// NewBitReader returns a reader positioned at the first bit of data.
// The data is never modified.
func NewBitReader(data []byte) *BitReader {
	return &BitReader{
		r:    bitio.NewReader(bytes.NewReader(data)),
		size: 8 * len(data),
	}
}

// ReadBits reads the next n bits, 1 <= n <= 32, and returns them as an
// unsigned integer.  The boolean result is false if fewer than n bits
// are left; in this case the reader does not advance.
func (r *BitReader) ReadBits(n int) (uint32, bool) {
	if n < 1 || n > 32 || r.pos+n > r.size {
		return 0, false
	}
	v, err := r.r.ReadBits(uint8(n))
	if err != nil {
		return 0, false
	}
	r.pos += n
	return uint32(v), true
}

// Pos returns the current cursor as a byte offset and a bit offset
// within that byte.
func (r *BitReader) Pos() (byteOffset, bitOffset int) {
	return r.pos / 8, r.pos % 8
}

// Remaining returns the number of unread bits.
func (r *BitReader) Remaining() int {
	return r.size - r.pos
}

// ByteScanner steps through a byte slice one character at a time.
type ByteScanner struct {
	data []byte
	pos  int
}

// NewByteScanner returns a scanner positioned at the start of data.
func NewByteScanner(data []byte) *ByteScanner {
	return &ByteScanner{data: data}
}

// Next returns the next byte.  If skipSpace is set, PDF white-space
// characters are skipped first.  The boolean result is false at the end
// of the data.
func (s *ByteScanner) Next(skipSpace bool) (byte, bool) {
	for s.pos < len(s.data) {
		c := s.data[s.pos]
		s.pos++
		if skipSpace && IsSpace(c) {
			continue
		}
		return c, true
	}
	return 0, false
}

// Peek returns the next byte without consuming it.  White space is skipped
// (and consumed) if skipSpace is set.
func (s *ByteScanner) Peek(skipSpace bool) (byte, bool) {
	if skipSpace {
		for s.pos < len(s.data) && IsSpace(s.data[s.pos]) {
			s.pos++
		}
	}
	if s.pos >= len(s.data) {
		return 0, false
	}
	return s.data[s.pos], true
}

// Pos returns the offset of the next byte to be read.
func (s *ByteScanner) Pos() int {
	return s.pos
}

// Seek moves the scanner back to an offset previously returned by Pos.
func (s *ByteScanner) Seek(pos int) {
	s.pos = min(max(pos, 0), len(s.data))
}

// IsSpace reports whether c is one of the six PDF white-space characters.
func IsSpace(c byte) bool {
	switch c {
	case 0, 9, 10, 12, 13, 32:
		return true
	}
	return false
}

// seehuhn.de/go/pdfcodec - decoders for PDF stream filters
// Copyright (C) 2022  Jochen Voss <voss@seehuhn.de>
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

// Package lzw implements the LZWDecode filter.
//
// Codes are read as big-endian bit groups.  The code width starts at 9 bits
// and grows one code early (EarlyChange=1), up to 12 bits.  Code 256 clears
// the dictionary, code 257 marks the end of the data.
package lzw

import (
	"errors"
	"strconv"

	"seehuhn.de/go/pdfcodec/internal/bitstream"
)

const (
	clearCode = 256
	stopCode  = 257
	firstCode = 258

	minWidth = 9
	maxWidth = 12

	// MaxDictSize is the maximal number of dictionary entries.
	MaxDictSize = 1 << maxWidth
)

// ErrTruncated is returned when the input ends before the end-of-data code.
var ErrTruncated = errors.New("lzw: missing end-of-data code")

// InvalidCodeError is returned when a code following a clear code does not
// refer to a dictionary entry.
type InvalidCodeError struct {
	Code int
	Pos  int // byte offset of the code in the input
}

func (err *InvalidCodeError) Error() string {
	return "lzw: invalid code " + strconv.Itoa(err.Code) +
		" at byte " + strconv.Itoa(err.Pos)
}

// Decode decompresses LZW-encoded data.
func Decode(data []byte) ([]byte, error) {
	d := newDecoder(data)
	for {
		done, err := d.step()
		if err != nil {
			return nil, err
		}
		if done {
			return d.out, nil
		}
	}
}

// entry describes a dictionary string as a range of the output.  Every
// string added to the dictionary is the previously emitted string plus the
// byte which follows it in the output, so the range is always available.
type entry struct {
	start, n int
}

// decoder holds the state of a single decode call.
type decoder struct {
	r   *bitstream.BitReader
	out []byte

	dict   [MaxDictSize]entry // entries below firstCode are unused
	length int
	width  int

	prev      int
	prevStart int
	prevLen   int
}

func newDecoder(data []byte) *decoder {
	d := &decoder{
		r:    bitstream.NewBitReader(data),
		out:  make([]byte, 0, 3*len(data)),
		prev: clearCode,
	}
	d.reset()
	return d
}

func (d *decoder) reset() {
	d.length = firstCode
	d.width = minWidth
}

// step reads and processes one code.  It returns true once the end-of-data
// code has been seen.
func (d *decoder) step() (bool, error) {
	pos, _ := d.r.Pos()
	v, ok := d.r.ReadBits(d.width)
	if !ok {
		return false, ErrTruncated
	}
	code := int(v)

	switch {
	case code == stopCode:
		return true, nil

	case code == clearCode:
		d.reset()
		d.prev = clearCode
		return false, nil

	case d.prev == clearCode:
		if code >= d.length {
			return false, &InvalidCodeError{Code: code, Pos: pos}
		}
		start := len(d.out)
		d.emit(code)
		d.prevStart, d.prevLen = start, len(d.out)-start

	default:
		start := len(d.out)
		if code < d.length {
			d.emit(code)
		} else {
			// The code is the one about to be defined: the previous
			// string followed by its own first byte.
			d.out = append(d.out, d.out[d.prevStart:d.prevStart+d.prevLen]...)
			d.out = append(d.out, d.out[d.prevStart])
		}

		if d.length < MaxDictSize {
			d.dict[d.length] = entry{start: d.prevStart, n: d.prevLen + 1}
			d.length++
			if d.length >= 1<<d.width-1 && d.width < maxWidth {
				d.width++
			}
		}
		d.prevStart, d.prevLen = start, len(d.out)-start
	}

	d.prev = code
	return false, nil
}

// emit appends the string for a known code to the output.
func (d *decoder) emit(code int) {
	if code < clearCode {
		d.out = append(d.out, byte(code))
		return
	}
	e := d.dict[code]
	d.out = append(d.out, d.out[e.start:e.start+e.n]...)
}

// seehuhn.de/go/pdfcodec - decoders for PDF stream filters
// Copyright (C) 2024  Jochen Voss <voss@seehuhn.de>
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

// Package asciihex implements the ASCIIHexDecode filter.
package asciihex

import (
	"errors"
	"strconv"

	"seehuhn.de/go/pdfcodec/internal/bitstream"
)

// ErrOddDigitCount is returned if the data ends in the middle of a byte.
var ErrOddDigitCount = errors.New("asciihex: odd number of hex digits")

// InvalidCharError is returned for characters which are neither hex digits
// nor white space.
type InvalidCharError struct {
	Char byte
	Pos  int
}

func (err *InvalidCharError) Error() string {
	return "asciihex: invalid character " + strconv.QuoteRune(rune(err.Char)) +
		" at byte " + strconv.Itoa(err.Pos)
}

// Decode decodes data that has been encoded in ASCII hexadecimal form.
// Decoding stops at the first '>' or at the end of the input.
func Decode(data []byte) ([]byte, error) {
	s := bitstream.NewByteScanner(data)
	out := make([]byte, 0, len(data)/2)

	readHigh := false
	var high byte
readLoop:
	for {
		pos := s.Pos()
		c, ok := s.Next(true)
		if !ok {
			break
		}

		var b byte
		switch c {
		case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
			b = c - '0'
		case 'A', 'B', 'C', 'D', 'E', 'F':
			b = c - 'A' + 10
		case 'a', 'b', 'c', 'd', 'e', 'f':
			b = c - 'a' + 10
		case '>': // end of data
			break readLoop
		default:
			return nil, &InvalidCharError{Char: c, Pos: pos}
		}

		if readHigh {
			out = append(out, high<<4|b)
			readHigh = false
		} else {
			high = b
			readHigh = true
		}
	}

	if readHigh {
		return nil, ErrOddDigitCount
	}
	return out, nil
}

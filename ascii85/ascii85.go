// seehuhn.de/go/pdfcodec - decoders for PDF stream filters
// Copyright (C) 2023  Jochen Voss <voss@seehuhn.de>
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

// Package ascii85 implements the ASCII85Decode filter.
package ascii85

import (
	"strconv"

	"seehuhn.de/go/pdfcodec/internal/bitstream"
)

// maxGroup is the exclusive upper bound for the value of a 5-digit group.
const maxGroup = 1<<32 - 1

// InvalidCharError is returned for characters outside the ASCII85 alphabet.
type InvalidCharError struct {
	Char byte
	Pos  int
}

func (err *InvalidCharError) Error() string {
	return "ascii85: invalid character " + strconv.QuoteRune(rune(err.Char)) +
		" at byte " + strconv.Itoa(err.Pos)
}

// InvalidGroupError is returned for a malformed group of digits.
type InvalidGroupError struct {
	Pos    int
	Reason string
}

func (err *InvalidGroupError) Error() string {
	return "ascii85: " + err.Reason + " at byte " + strconv.Itoa(err.Pos)
}

// Decode decodes ASCII base-85 encoded data.
//
// White space is ignored.  The data may start with "<~" and ends at the
// end-of-data marker "~>" or at the end of the input, whichever comes first.
// The character 'z' between groups stands for four zero bytes.
func Decode(data []byte) ([]byte, error) {
	s := bitstream.NewByteScanner(data)
	out := make([]byte, 0, len(data)/5*4+4)

	// skip the optional start marker
	c1, _ := s.Next(true)
	c2, _ := s.Next(true)
	if c1 != '<' || c2 != '~' {
		s.Seek(0)
	}

	var v uint64
	k := 0
	for {
		pos := s.Pos()
		c, ok := s.Next(true)
		if !ok {
			break
		}

		if c == '~' {
			if next, _ := s.Next(true); next == '>' {
				break
			}
			return nil, &InvalidCharError{Char: c, Pos: pos}
		}

		if c == 'z' && k == 0 {
			out = append(out, 0, 0, 0, 0)
			continue
		}

		if c < '!' || c >= '!'+85 {
			return nil, &InvalidCharError{Char: c, Pos: pos}
		}
		v = v*85 + uint64(c-'!')
		k++

		if k == 5 {
			if v >= maxGroup {
				return nil, &InvalidGroupError{Pos: pos, Reason: "group value out of range"}
			}
			out = append(out, byte(v>>24), byte(v>>16), byte(v>>8), byte(v))
			v = 0
			k = 0
		}
	}

	switch k {
	case 0:
		// pass
	case 1:
		return nil, &InvalidGroupError{Pos: s.Pos(), Reason: "single character in final group"}
	default:
		n := k - 1
		for ; k < 5; k++ {
			v = v*85 + 84
		}
		if v >= maxGroup {
			return nil, &InvalidGroupError{Pos: s.Pos(), Reason: "final group value out of range"}
		}
		buf := [4]byte{byte(v >> 24), byte(v >> 16), byte(v >> 8), byte(v)}
		out = append(out, buf[:n]...)
	}

	return out, nil
}

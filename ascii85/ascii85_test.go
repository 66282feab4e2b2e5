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

package ascii85

import (
	"bytes"
	"encoding/ascii85"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		in  string
		out []byte
	}{
		{"87cURD_*#4DfTZ)+T~>", []byte("Hello, World!")},
		{"87cURD]i,\"Ebo7~>", []byte("Hello World")},
		{"<~87cURD]i,\"Ebo7~>", []byte("Hello World")},
		{" <\n~ 87cU RD]i\r\n,\"Eb\to7 ~ >", []byte("Hello World")},
		{"9jqo^BlbD-BleB1DJ+*+F(f,q", []byte("Man is distinguished")},
		{"z", []byte{0, 0, 0, 0}},
		{"z!<~>", []byte{0, 0, 0, 0, 1}},
		{"zz~>", make([]byte, 8)},
		{"s8W,u", []byte{0xFF, 0xFF, 0xFF, 0xFE}},
		{"~>", []byte{}},
		{"", []byte{}},
		{"!!~>garbage", []byte{0}},
		{"<!~>", []byte{84}}, // '<' is a digit unless followed by '~'
	}
	for _, test := range tests {
		out, err := Decode([]byte(test.in))
		if err != nil {
			t.Errorf("%q: %v", test.in, err)
			continue
		}
		if d := cmp.Diff(test.out, out); d != "" {
			t.Errorf("%q: %s", test.in, d)
		}
	}
}

func TestDecodeErrors(t *testing.T) {
	type testCase struct {
		in      string
		charErr bool
		pos     int
	}
	cases := []testCase{
		{"!!!!!!~>", false, 8},         // single character in final group
		{"!~>", false, 3},              // single character in final group
		{"!!v!!~>", true, 2},           // 'v' is outside the alphabet
		{"!z~>", true, 1},              // 'z' inside a group
		{"!!~x", true, 2},              // broken end marker
		{"s8W-!", false, 4},            // 2^32-1 is out of range
		{"uuuuu", false, 4},            // > 2^32
		{"\x80", true, 0},              // non-ASCII
		{"! ! ! ! ! !\n~>", false, 14}, // position counts white space
	}
	for _, test := range cases {
		_, err := Decode([]byte(test.in))
		if test.charErr {
			var charErr *InvalidCharError
			if !errors.As(err, &charErr) {
				t.Errorf("%q: got %v, want *InvalidCharError", test.in, err)
			} else if charErr.Pos != test.pos {
				t.Errorf("%q: Pos=%d, want %d", test.in, charErr.Pos, test.pos)
			}
		} else {
			var groupErr *InvalidGroupError
			if !errors.As(err, &groupErr) {
				t.Errorf("%q: got %v, want *InvalidGroupError", test.in, err)
			} else if groupErr.Pos != test.pos {
				t.Errorf("%q: Pos=%d, want %d", test.in, groupErr.Pos, test.pos)
			}
		}
	}
}

func FuzzDecode(f *testing.F) {
	f.Add([]byte(""))
	f.Add([]byte("1234"))
	f.Add([]byte("12345678"))
	f.Add([]byte("z"))
	f.Add([]byte("ABCDE"))

	f.Fuzz(func(t *testing.T, in []byte) {
		enc := make([]byte, ascii85.MaxEncodedLen(len(in)))
		n := ascii85.Encode(enc, in)
		enc = enc[:n]

		out, err := Decode(enc)
		if bytes.Contains(enc, []byte("s8W-!")) {
			// groups of four 0xFF bytes are rejected
			return
		}
		if err != nil {
			t.Fatalf("%q: %v", enc, err)
		}
		if !bytes.Equal(in, out) {
			t.Errorf("in=%q, out=%q", in, out)
		}
	})
}

type funnyReader struct {
	pos int
}

func (r *funnyReader) Read(p []byte) (n int, err error) {
	for i := range p {
		p[i] = byte(r.pos%85) + '!'
		r.pos++
	}
	return len(p), nil
}

func BenchmarkDecode(b *testing.B) {
	blockSize := 1020
	buf := make([]byte, blockSize)
	(&funnyReader{}).Read(buf)

	b.ResetTimer()
	b.SetBytes(int64(blockSize))
	for i := 0; i < b.N; i++ {
		Decode(buf)
	}
}

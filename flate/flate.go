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

// Package flate implements the FlateDecode filter.
//
// Data is decompressed with zlib/deflate and, if requested by the decode
// parameters, a PNG row predictor is reversed afterwards.  Encoding applies
// plain zlib compression; no predictor is ever used on the encode side.
package flate

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/zlib"

	"seehuhn.de/go/pdfcodec/internal/filter/predict"
)

// Compression levels accepted by EncodeLevel.
const (
	HuffmanOnly        = zlib.HuffmanOnly
	DefaultCompression = zlib.DefaultCompression
	NoCompression      = zlib.NoCompression
	BestSpeed          = zlib.BestSpeed
	BestCompression    = zlib.BestCompression
)

// Params holds the decode parameters used by the Flate filter.
type Params = predict.Params

// Decode inflates data and then reverses the predictor described by p.
// If p is nil, no predictor is applied.
func Decode(data []byte, p *Params) ([]byte, error) {
	if p == nil {
		p = &Params{Predictor: 1}
	}
	// check the parameters before doing any work
	if err := p.Validate(); err != nil {
		return nil, err
	}

	inflated, err := inflate(data)
	if err != nil {
		return nil, err
	}
	return predict.Decode(inflated, p)
}

func inflate(data []byte) ([]byte, error) {
	zr, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("flate: %w", err)
	}
	defer zr.Close()

	buf := &bytes.Buffer{}
	buf.Grow(2 * len(data))
	_, err = io.Copy(buf, zr)
	if err != nil {
		return nil, fmt.Errorf("flate: %w", err)
	}
	return buf.Bytes(), nil
}

// Encode compresses data using the default compression level.
func Encode(data []byte) ([]byte, error) {
	return EncodeLevel(data, DefaultCompression)
}

// EncodeLevel compresses data using the given compression level.
func EncodeLevel(data []byte, level int) ([]byte, error) {
	buf := &bytes.Buffer{}
	zw, err := zlib.NewWriterLevel(buf, level)
	if err != nil {
		return nil, fmt.Errorf("flate: %w", err)
	}
	_, err = zw.Write(data)
	if err != nil {
		return nil, fmt.Errorf("flate: %w", err)
	}
	err = zw.Close()
	if err != nil {
		return nil, fmt.Errorf("flate: %w", err)
	}
	return buf.Bytes(), nil
}

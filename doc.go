// seehuhn.de/go/pdfcodec - decoders for PDF stream filters
// Copyright (C) 2020  Jochen Voss <voss@seehuhn.de>
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

// Package pdfcodec decodes the data of PDF streams.
//
// A stream in a PDF file carries a list of filters in its /Filter entry,
// together with optional decode parameters in /DecodeParms.  The filters
// are applied in order, the output of each filter being the input of the
// next one.  This package implements the FlateDecode, ASCIIHexDecode,
// LZWDecode and ASCII85Decode filters, as well as the default /Crypt
// filter:
//
//	chain, err := pdfcodec.NewChain(
//	    []string{"ASCII85Decode", "FlateDecode"},
//	    []map[string]any{nil, {"Predictor": 12, "Columns": 5}},
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	data, err := pdfcodec.Decode(raw, chain)
//
// Decoding either succeeds completely or fails with an error; partial
// output is never returned.  Errors from individual filters are wrapped in
// a [DecodeError] and can be inspected using [errors.As], for example:
//
//	var predErr *pdfcodec.UnsupportedPredictorError
//	if errors.As(err, &predErr) {
//	    ...
//	}
//
// [FlateEncode] compresses data for use with the FlateDecode filter and
// [RC4] implements the RC4 stream cipher used by the PDF standard security
// handler.
//
// All functions in this package are safe for concurrent use.
package pdfcodec

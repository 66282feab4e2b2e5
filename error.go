// seehuhn.de/go/pdfcodec - decoders for PDF stream filters
// Copyright (C) 2021  Jochen Voss <voss@seehuhn.de>
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

package pdfcodec

import (
	"fmt"
	"strconv"

	"seehuhn.de/go/pdfcodec/ascii85"
	"seehuhn.de/go/pdfcodec/internal/filter/asciihex"
	"seehuhn.de/go/pdfcodec/internal/filter/predict"
	"seehuhn.de/go/pdfcodec/lzw"
)

// Errors returned by the individual filters.
type (
	// UnsupportedPredictorError indicates a Flate predictor other than
	// 1 and 10-15.
	UnsupportedPredictorError = predict.UnsupportedPredictorError

	// UnsupportedPNGFilterError indicates a row filter type other than
	// 0 (None), 1 (Sub) and 2 (Up).
	UnsupportedPNGFilterError = predict.UnsupportedPNGFilterError

	// RowLengthError indicates that predicted data does not consist of
	// complete rows.
	RowLengthError = predict.RowLengthError

	// InvalidLZWCodeError indicates an undefined LZW code.
	InvalidLZWCodeError = lzw.InvalidCodeError

	InvalidASCII85CharError  = ascii85.InvalidCharError
	InvalidASCII85GroupError = ascii85.InvalidGroupError
	InvalidHexCharError      = asciihex.InvalidCharError
)

var (
	// ErrTruncatedLZW is returned if LZW data ends before the end-of-data code.
	ErrTruncatedLZW = lzw.ErrTruncated

	// ErrOddHexDigitCount is returned if ASCIIHex data ends in the middle
	// of a byte.
	ErrOddHexDigitCount = asciihex.ErrOddDigitCount
)

// UnsupportedFilterError is returned for filters which are not implemented
// by this package, including named crypt filters.
type UnsupportedFilterError struct {
	Name string
}

func (err *UnsupportedFilterError) Error() string {
	return "unsupported filter " + strconv.Quote(err.Name)
}

// ParamError indicates a malformed filter description or decode
// parameter dictionary.
type ParamError struct {
	Key    string
	Value  any
	Reason string
}

func (err *ParamError) Error() string {
	msg := "invalid decode parameter /" + err.Key
	if err.Value != nil {
		msg += fmt.Sprintf(" %v", err.Value)
	}
	if err.Reason != "" {
		msg += ": " + err.Reason
	}
	return msg
}

// DecodeError wraps the error from a single stage of a filter chain.
type DecodeError struct {
	Stage  int
	Filter Kind
	Err    error
}

func (err *DecodeError) Error() string {
	return "filter " + strconv.Itoa(err.Stage) + " (" + err.Filter.String() + "): " +
		err.Err.Error()
}

func (err *DecodeError) Unwrap() error {
	return err.Err
}

// seehuhn.de/go/pdfcodec - decoders for PDF stream filters
// Copyright (C) 2025  Jochen Voss <voss@seehuhn.de>
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

package predict

import (
	"errors"
	"strconv"
)

const maxColumns = 1 << 20

// Params describes the predictor applied to a Flate stream.
type Params struct {
	// Predictor is the prediction algorithm to reverse.
	// Valid values:
	//   1: No prediction - pass through the data unchanged
	//  10-15: PNG prediction, with a filter type byte in front of every row
	//
	// For the PNG predictors the value is only a hint, the filter type
	// byte of each row decides how the row is reconstructed.
	Predictor int

	// Columns is the number of data bytes in each row.
	// Valid range: at least 1.  Only used if Predictor > 1.
	Columns int
}

// Validate checks that the parameters describe a supported predictor.
func (p *Params) Validate() error {
	if p.Predictor == 1 {
		// Predictor 1 does not require any parameters
		return nil
	}
	if p.Predictor < 10 || p.Predictor > 15 {
		return &UnsupportedPredictorError{Predictor: p.Predictor}
	}
	if p.Columns < 1 || p.Columns > maxColumns {
		return errors.New("invalid Columns value " + strconv.Itoa(p.Columns))
	}
	return nil
}

// rowLength returns the number of encoded bytes per row,
// including the filter type byte.
func (p *Params) rowLength() int {
	return p.Columns + 1
}

// UnsupportedPredictorError is returned for predictor values other than 1
// and 10-15.
type UnsupportedPredictorError struct {
	Predictor int
}

func (err *UnsupportedPredictorError) Error() string {
	return "unsupported predictor " + strconv.Itoa(err.Predictor)
}

// UnsupportedPNGFilterError is returned when a row starts with a filter type
// byte other than 0 (None), 1 (Sub) or 2 (Up).
type UnsupportedPNGFilterError struct {
	Type byte
	Row  int
}

func (err *UnsupportedPNGFilterError) Error() string {
	return "unsupported PNG filter type " + strconv.Itoa(int(err.Type)) +
		" in row " + strconv.Itoa(err.Row)
}

// RowLengthError indicates that the predicted data does not consist of a
// whole number of rows.
type RowLengthError struct {
	Length    int
	RowLength int
}

func (err *RowLengthError) Error() string {
	return "predictor data length " + strconv.Itoa(err.Length) +
		" is not a multiple of the row length " + strconv.Itoa(err.RowLength)
}

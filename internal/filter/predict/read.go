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

// PNG filter types which can appear at the start of a row.
const (
	pngNone = 0
	pngSub  = 1
	pngUp   = 2
)

// Decode undoes the effect of a prediction filter on decompressed data.
// For predictor 1 the data is returned unchanged.  Otherwise every row of
// Columns+1 input bytes, a filter type byte followed by the row data, is
// reconstructed into Columns output bytes.  The first row is predicted
// from an all-zero row.
func Decode(data []byte, p *Params) ([]byte, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if p.Predictor == 1 {
		return data, nil
	}

	rowLen := p.rowLength()
	if len(data)%rowLen != 0 {
		return nil, &RowLengthError{Length: len(data), RowLength: rowLen}
	}
	numRows := len(data) / rowLen

	out := make([]byte, numRows*p.Columns)
	prev := make([]byte, p.Columns)
	for row := 0; row < numRows; row++ {
		in := data[row*rowLen : (row+1)*rowLen]
		cur := out[row*p.Columns : (row+1)*p.Columns]
		copy(cur, in[1:])

		switch in[0] {
		case pngNone:
			// pass
		case pngSub:
			for i := 1; i < len(cur); i++ {
				cur[i] += cur[i-1]
			}
		case pngUp:
			for i := range cur {
				cur[i] += prev[i]
			}
		default:
			return nil, &UnsupportedPNGFilterError{Type: in[0], Row: row}
		}

		// cur is never written again, so the next row can refer to it directly
		prev = cur
	}

	return out, nil
}

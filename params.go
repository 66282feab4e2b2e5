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

package pdfcodec

import (
	"math"
	"strings"
)

// Params is a validated set of decode parameters for a single filter.
// The zero value is an empty parameter set.
type Params struct {
	ints  map[string]int
	names map[string]string
}

// intKeys lists the integer-valued parameters understood by the filters.
var intKeys = map[string]bool{
	"Predictor":        true,
	"Columns":          true,
	"Colors":           true,
	"BitsPerComponent": true,
	"EarlyChange":      true,
}

// nameKeys lists the name-valued parameters of the /Crypt filter.
var nameKeys = map[string]bool{
	"Name": true,
	"Type": true,
}

// NewParams converts a decode parameter dictionary into a Params value.
//
// Keys may be given with or without the leading slash.  Integer values
// can be given using any Go integer type, or as an integral float64.  Names
// are given as strings.  Nil values are treated as absent, as for the PDF
// null object.  A value of the wrong type for one of the parameters used by
// the filters results in a [*ParamError].  Entries with unknown keys are kept
// if they have integer or name values and are ignored otherwise.
func NewParams(dict map[string]any) (Params, error) {
	var p Params
	for key, val := range dict {
		key = strings.TrimPrefix(key, "/")
		if val == nil {
			continue
		}

		if i, ok := toInt(val); ok {
			if nameKeys[key] {
				return Params{}, &ParamError{Key: key, Value: val, Reason: "expected a name"}
			}
			if key == "Columns" && i < 1 {
				return Params{}, &ParamError{Key: key, Value: val, Reason: "must be positive"}
			}
			if p.ints == nil {
				p.ints = make(map[string]int)
			}
			p.ints[key] = i
		} else if s, ok := val.(string); ok {
			if intKeys[key] {
				return Params{}, &ParamError{Key: key, Value: val, Reason: "expected an integer"}
			}
			if p.names == nil {
				p.names = make(map[string]string)
			}
			p.names[key] = strings.TrimPrefix(s, "/")
		} else if intKeys[key] {
			return Params{}, &ParamError{Key: key, Value: val, Reason: "expected an integer"}
		} else if nameKeys[key] {
			return Params{}, &ParamError{Key: key, Value: val, Reason: "expected a name"}
		}
	}
	return p, nil
}

// Int returns the integer parameter with the given key, or def if the
// parameter is not set.
func (p Params) Int(key string, def int) int {
	if i, ok := p.ints[key]; ok {
		return i
	}
	return def
}

// Name returns the name-valued parameter with the given key.
func (p Params) Name(key string) (string, bool) {
	s, ok := p.names[key]
	return s, ok
}

// Predictor returns the value of the /Predictor parameter (default 1).
func (p Params) Predictor() int {
	return p.Int("Predictor", 1)
}

// Columns returns the value of the /Columns parameter (default 1).
func (p Params) Columns() int {
	return p.Int("Columns", 1)
}

// IsEmpty reports whether no parameters are set.
func (p Params) IsEmpty() bool {
	return len(p.ints) == 0 && len(p.names) == 0
}

func toInt(val any) (int, bool) {
	switch x := val.(type) {
	case int:
		return x, true
	case int8:
		return int(x), true
	case int16:
		return int(x), true
	case int32:
		return int(x), true
	case int64:
		if x < math.MinInt || x > math.MaxInt {
			return 0, false
		}
		return int(x), true
	case uint8:
		return int(x), true
	case uint16:
		return int(x), true
	case uint32:
		return int(x), true
	case uint:
		if x > math.MaxInt {
			return 0, false
		}
		return int(x), true
	case uint64:
		if x > math.MaxInt {
			return 0, false
		}
		return int(x), true
	case float64:
		if x != math.Trunc(x) || x < math.MinInt32 || x > math.MaxInt32 {
			return 0, false
		}
		return int(x), true
	case float32:
		return toInt(float64(x))
	}
	return 0, false
}

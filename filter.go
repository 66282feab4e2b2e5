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

package pdfcodec

import (
	"bytes"
	"strconv"
	"strings"

	"seehuhn.de/go/pdfcodec/ascii85"
	"seehuhn.de/go/pdfcodec/flate"
	"seehuhn.de/go/pdfcodec/internal/filter/asciihex"
	"seehuhn.de/go/pdfcodec/lzw"
)

// Kind identifies a stream filter.
type Kind int

// These are the supported filters.
const (
	Flate Kind = iota + 1
	ASCIIHex
	LZW
	ASCII85
	Crypt
)

var kindNames = map[Kind]string{
	Flate:    "FlateDecode",
	ASCIIHex: "ASCIIHexDecode",
	LZW:      "LZWDecode",
	ASCII85:  "ASCII85Decode",
	Crypt:    "Crypt",
}

// String returns the PDF name of the filter, without the leading slash.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// ParseKind converts a filter name to a Kind.  The name may be given with
// or without the leading slash.
func ParseKind(name string) (Kind, error) {
	name = strings.TrimPrefix(name, "/")
	for k, kName := range kindNames {
		if kName == name {
			return k, nil
		}
	}
	return 0, &UnsupportedFilterError{Name: name}
}

// Stage is a single filter in a filter chain.
type Stage struct {
	Kind   Kind
	Params Params
}

// Chain is the list of filters applied to a stream, in the order in which
// they must be applied for decoding.
type Chain []Stage

// NewChain constructs a filter chain from a list of filter names and an
// optional parallel list of decode parameters.  Missing or nil entries in
// parms are treated as empty parameter sets.
func NewChain(names []string, parms []map[string]any) (Chain, error) {
	if len(parms) > len(names) {
		return nil, &ParamError{
			Key:    "DecodeParms",
			Reason: "more parameter sets than filters",
		}
	}

	chain := make(Chain, len(names))
	for i, name := range names {
		k, err := ParseKind(name)
		if err != nil {
			return nil, err
		}
		chain[i].Kind = k

		if i < len(parms) {
			p, err := NewParams(parms[i])
			if err != nil {
				return nil, err
			}
			chain[i].Params = p
		}
	}
	return chain, nil
}

// ChainFromDict constructs a filter chain from the values of the /Filter and
// /DecodeParms entries of a stream dictionary.  The filter can be a single
// name or an array of names; correspondingly the parameters can be nil, a
// single dictionary or an array of (possibly nil) dictionaries.
func ChainFromDict(filter any, decodeParms any) (Chain, error) {
	var names []string
	switch f := filter.(type) {
	case nil:
		// pass
	case string:
		names = []string{f}
	case []string:
		names = f
	case []any:
		for _, obj := range f {
			name, ok := obj.(string)
			if !ok {
				return nil, &ParamError{Key: "Filter", Value: obj, Reason: "filter name is not a name"}
			}
			names = append(names, name)
		}
	default:
		return nil, &ParamError{Key: "Filter", Value: filter, Reason: "unexpected type"}
	}

	var parms []map[string]any
	switch p := decodeParms.(type) {
	case nil:
		// pass
	case map[string]any:
		if len(names) != 1 {
			return nil, &ParamError{
				Key:    "DecodeParms",
				Reason: "single dictionary for " + strconv.Itoa(len(names)) + " filters",
			}
		}
		parms = []map[string]any{p}
	case []map[string]any:
		parms = p
	case []any:
		for _, obj := range p {
			switch dict := obj.(type) {
			case nil:
				parms = append(parms, nil)
			case map[string]any:
				parms = append(parms, dict)
			default:
				return nil, &ParamError{Key: "DecodeParms", Value: obj, Reason: "not a dictionary"}
			}
		}
	default:
		return nil, &ParamError{Key: "DecodeParms", Value: decodeParms, Reason: "unexpected type"}
	}

	return NewChain(names, parms)
}

// Validate checks that all filters in the chain are supported and that
// their parameters are usable.  The returned error, if any, is a
// [*DecodeError].
func (c Chain) Validate() error {
	for i, stage := range c {
		err := stage.validate()
		if err != nil {
			return &DecodeError{Stage: i, Filter: stage.Kind, Err: err}
		}
	}
	return nil
}

// Decode applies the filters in the chain to data.
//
// The whole chain is checked before any filter is run.  If an error occurs,
// no output is returned.  The input data is not modified, and the returned
// slice never shares memory with it.
func Decode(data []byte, chain Chain) ([]byte, error) {
	err := chain.Validate()
	if err != nil {
		return nil, err
	}

	owned := false
	for i, stage := range chain {
		out, isNew, err := stage.decode(data)
		if err != nil {
			return nil, &DecodeError{Stage: i, Filter: stage.Kind, Err: err}
		}
		data = out
		owned = owned || isNew
	}

	if !owned {
		data = bytes.Clone(data)
		if data == nil {
			data = []byte{}
		}
	}
	return data, nil
}

// DecodeStream decodes stream data, given the values of the /Filter and
// /DecodeParms entries of the stream dictionary.
func DecodeStream(data []byte, filter any, decodeParms any) ([]byte, error) {
	chain, err := ChainFromDict(filter, decodeParms)
	if err != nil {
		return nil, err
	}
	return Decode(data, chain)
}

// FlateEncode compresses data for use with the FlateDecode filter.
// No predictor is applied.
func FlateEncode(data []byte) ([]byte, error) {
	return flate.Encode(data)
}

func (s Stage) validate() error {
	switch s.Kind {
	case Flate:
		return s.flateParams().Validate()
	case ASCIIHex, LZW, ASCII85:
		return nil
	case Crypt:
		// Only the default crypt filter is supported.  This refers to the
		// document-wide decryption, which is applied before the filters.
		if name, ok := s.Params.Name("Name"); ok {
			return &UnsupportedFilterError{Name: "Crypt:" + name}
		}
		if tp, ok := s.Params.Name("Type"); ok {
			return &UnsupportedFilterError{Name: "Crypt:" + tp}
		}
		return nil
	default:
		return &UnsupportedFilterError{Name: s.Kind.String()}
	}
}

// decode applies a single, validated filter.  The boolean result indicates
// whether the output is a newly allocated slice.
func (s Stage) decode(data []byte) ([]byte, bool, error) {
	var out []byte
	var err error
	switch s.Kind {
	case Flate:
		out, err = flate.Decode(data, s.flateParams())
	case ASCIIHex:
		out, err = asciihex.Decode(data)
	case LZW:
		out, err = lzw.Decode(data)
	case ASCII85:
		out, err = ascii85.Decode(data)
	case Crypt:
		return data, false, nil
	default:
		return nil, false, &UnsupportedFilterError{Name: s.Kind.String()}
	}
	if err != nil {
		return nil, false, err
	}
	return out, true, nil
}

func (s Stage) flateParams() *flate.Params {
	return &flate.Params{
		Predictor: s.Params.Predictor(),
		Columns:   s.Params.Columns(),
	}
}

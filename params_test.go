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
	"errors"
	"testing"

	"github.com/go-test/deep"
)

func TestNewParams(t *testing.T) {
	p, err := NewParams(map[string]any{
		"/Predictor":  int64(12),
		"Columns":     float64(5),
		"Colors":      uint8(3),
		"EarlyChange": nil,
		"Name":        "/Identity",
		"Custom":      []int{1, 2},
		"Flag":        true,
	})
	if err != nil {
		t.Fatal(err)
	}

	wantInts := map[string]int{"Predictor": 12, "Columns": 5, "Colors": 3}
	for _, diff := range deep.Equal(p.ints, wantInts) {
		t.Error(diff)
	}
	wantNames := map[string]string{"Name": "Identity"}
	for _, diff := range deep.Equal(p.names, wantNames) {
		t.Error(diff)
	}

	if p.Predictor() != 12 || p.Columns() != 5 {
		t.Errorf("Predictor=%d, Columns=%d", p.Predictor(), p.Columns())
	}
	if p.Int("EarlyChange", 1) != 1 {
		t.Error("nil value was not treated as absent")
	}
	if name, ok := p.Name("Name"); !ok || name != "Identity" {
		t.Errorf("Name = %q, %t", name, ok)
	}
}

func TestParamsDefaults(t *testing.T) {
	for _, dict := range []map[string]any{nil, {}} {
		p, err := NewParams(dict)
		if err != nil {
			t.Fatal(err)
		}
		if !p.IsEmpty() {
			t.Error("parameters not empty")
		}
		if p.Predictor() != 1 || p.Columns() != 1 {
			t.Errorf("Predictor=%d, Columns=%d", p.Predictor(), p.Columns())
		}
		if _, ok := p.Name("Type"); ok {
			t.Error("unexpected Type")
		}
	}

	var zero Params
	if zero.Predictor() != 1 || !zero.IsEmpty() {
		t.Error("zero Params is not empty")
	}
}

func TestParamsErrors(t *testing.T) {
	for _, dict := range []map[string]any{
		{"Predictor": "12"},
		{"Predictor": 1.5},
		{"Columns": 0},
		{"Columns": -3},
		{"Columns": []int{3}},
		{"Name": 7},
		{"Type": true},
		{"BitsPerComponent": uint64(1 << 63)},
	} {
		_, err := NewParams(dict)
		var paramErr *ParamError
		if !errors.As(err, &paramErr) {
			t.Errorf("%v: got %v, want *ParamError", dict, err)
		}
	}
}

func TestParamErrorMessage(t *testing.T) {
	err := &ParamError{Key: "Columns", Value: 0, Reason: "must be positive"}
	want := "invalid decode parameter /Columns 0: must be positive"
	if err.Error() != want {
		t.Errorf("got %q, want %q", err.Error(), want)
	}
}

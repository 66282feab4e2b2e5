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

package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/pdfcodec"
)

func TestParseChain(t *testing.T) {
	chain, err := parseChain(" ASCII85Decode, /FlateDecode,,", 12, 4)
	if err != nil {
		t.Fatal(err)
	}

	var kinds []pdfcodec.Kind
	for _, stage := range chain {
		kinds = append(kinds, stage.Kind)
	}
	if d := cmp.Diff([]pdfcodec.Kind{pdfcodec.ASCII85, pdfcodec.Flate}, kinds); d != "" {
		t.Error(d)
	}
	if !chain[0].Params.IsEmpty() {
		t.Error("ASCII85Decode got parameters")
	}
	if chain[1].Params.Predictor() != 12 || chain[1].Params.Columns() != 4 {
		t.Errorf("wrong FlateDecode parameters")
	}

	chain, err = parseChain("", 0, 0)
	if err != nil || len(chain) != 0 {
		t.Errorf("empty list: %v, %v", chain, err)
	}

	_, err = parseChain("FlateDecode,CCITTFaxDecode", 0, 0)
	var filterErr *pdfcodec.UnsupportedFilterError
	if !errors.As(err, &filterErr) || filterErr.Name != "CCITTFaxDecode" {
		t.Errorf("got %v", err)
	}

	_, err = parseChain("FlateDecode", 0, -1)
	var paramErr *pdfcodec.ParamError
	if !errors.As(err, &paramErr) {
		t.Errorf("got %v", err)
	}
}

func TestDecode(t *testing.T) {
	in := bytes.Repeat([]byte("0 0 m 100 100 l S\n"), 20)
	enc, err := pdfcodec.FlateEncode(in)
	if err != nil {
		t.Fatal(err)
	}

	chain, err := parseChain("FlateDecode", 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	out, err := decode(enc, chain)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(out, in) {
		t.Error("wrong output")
	}
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	inName := filepath.Join(dir, "in")
	outName := filepath.Join(dir, "out")

	err := os.WriteFile(inName, []byte("48656C6C6F>"), 0o644)
	if err != nil {
		t.Fatal(err)
	}

	*filtersArg = "ASCIIHexDecode"
	defer func() { *filtersArg = "" }()

	err = run(inName, outName)
	if err != nil {
		t.Fatal(err)
	}
	out, err := os.ReadFile(outName)
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != "Hello" {
		t.Errorf("got %q", out)
	}
}

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

// Pdf-filter applies PDF stream filters to raw stream data.
//
// The input is the data between the "stream" and "endstream" keywords of a
// PDF stream object.  The filters are given in the order in which they
// appear in the /Filter entry of the stream dictionary.
package main

import (
	"encoding/hex"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"golang.org/x/term"

	"seehuhn.de/go/pdfcodec"
	"seehuhn.de/go/pdfcodec/tools/internal/buildinfo"
	"seehuhn.de/go/pdfcodec/tools/internal/profile"
)

var (
	filtersArg   = flag.String("f", "", "comma-separated list of `filters`, e.g. ASCII85Decode,FlateDecode")
	predictorArg = flag.Int("predictor", 0, "/Predictor `value` for FlateDecode")
	columnsArg   = flag.Int("columns", 0, "/Columns `value` for FlateDecode")
	encodeArg    = flag.Bool("encode", false, "compress the input with FlateDecode instead of decoding")
	rc4Arg       = flag.String("rc4", "", "decrypt the input with the given hex `key` first (\"-\" to prompt)")
	verboseArg   = flag.Bool("v", false, "report the size of the data after each stage")
	cpuprofile   = flag.String("cpuprofile", "", "write cpu profile to `file`")
	memprofile   = flag.String("memprofile", "", "write memory profile to `file`")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "pdf-filter: decode the data of a PDF stream\n")
		fmt.Fprintf(os.Stderr, "%s\n\n", buildinfo.Short("pdf-filter"))
		fmt.Fprintf(os.Stderr, "Usage:\n")
		fmt.Fprintf(os.Stderr, "  pdf-filter [options] <in> <out>\n\n")
		fmt.Fprintf(os.Stderr, "Arguments:\n")
		fmt.Fprintf(os.Stderr, "  in    raw stream data, \"-\" for standard input\n")
		fmt.Fprintf(os.Stderr, "  out   output file, \"-\" for standard output\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  pdf-filter -f FlateDecode -predictor 12 -columns 5 xref.bin xref.out\n")
		fmt.Fprintf(os.Stderr, "  pdf-filter -rc4 - -f ASCII85Decode,LZWDecode page.bin -\n")
		fmt.Fprintf(os.Stderr, "  pdf-filter -encode content.txt content.bin\n")
	}
	flag.Parse()

	if flag.NArg() != 2 {
		flag.Usage()
		os.Exit(1)
	}

	if err := run(flag.Arg(0), flag.Arg(1)); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(inName, outName string) (err error) {
	stop, err := profile.Start(*cpuprofile, *memprofile)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, stop())
	}()

	var chain pdfcodec.Chain
	if !*encodeArg {
		chain, err = parseChain(*filtersArg, *predictorArg, *columnsArg)
		if err != nil {
			return err
		}
	} else if *filtersArg != "" {
		return errors.New("-encode cannot be combined with -f")
	}

	var key []byte
	switch *rc4Arg {
	case "":
		// pass
	case "-":
		key, err = readKey()
		if err != nil {
			return err
		}
	default:
		key, err = hex.DecodeString(*rc4Arg)
		if err != nil {
			return fmt.Errorf("invalid RC4 key: %w", err)
		}
	}

	data, err := readInput(inName)
	if err != nil {
		return err
	}

	if key != nil {
		data, err = pdfcodec.RC4(key, data)
		if err != nil {
			return err
		}
		logf("RC4: %d bytes", len(data))
	}

	if *encodeArg {
		data, err = pdfcodec.FlateEncode(data)
		if err != nil {
			return err
		}
		logf("FlateEncode: %d bytes", len(data))
	} else {
		data, err = decode(data, chain)
		if err != nil {
			return err
		}
	}

	return writeOutput(outName, data)
}

// parseChain builds a filter chain from the command line arguments.  The
// predictor parameters are attached to every FlateDecode stage.
func parseChain(filters string, predictor, columns int) (pdfcodec.Chain, error) {
	var names []string
	for _, name := range strings.Split(filters, ",") {
		name = strings.TrimSpace(name)
		if name != "" {
			names = append(names, name)
		}
	}

	flateParms := map[string]any{}
	if predictor != 0 {
		flateParms["Predictor"] = predictor
	}
	if columns != 0 {
		flateParms["Columns"] = columns
	}

	parms := make([]map[string]any, len(names))
	for i, name := range names {
		k, err := pdfcodec.ParseKind(name)
		if err != nil {
			return nil, err
		}
		if k == pdfcodec.Flate {
			parms[i] = flateParms
		}
	}
	return pdfcodec.NewChain(names, parms)
}

// decode runs the chain one stage at a time, so that progress can be
// reported.  The complete chain is checked first.
func decode(data []byte, chain pdfcodec.Chain) ([]byte, error) {
	err := chain.Validate()
	if err != nil {
		return nil, err
	}
	for i := range chain {
		data, err = pdfcodec.Decode(data, chain[i:i+1])
		if err != nil {
			return nil, err
		}
		logf("%s: %d bytes", chain[i].Kind, len(data))
	}
	return data, nil
}

func readKey() ([]byte, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return nil, errors.New("cannot prompt for the RC4 key: standard input is not a terminal")
	}
	fmt.Fprint(os.Stderr, "RC4 key (hex): ")
	line, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return nil, err
	}
	key, err := hex.DecodeString(strings.TrimSpace(string(line)))
	if err != nil {
		return nil, fmt.Errorf("invalid RC4 key: %w", err)
	}
	return key, nil
}

func readInput(name string) ([]byte, error) {
	if name == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(name)
}

func writeOutput(name string, data []byte) error {
	if name == "-" {
		_, err := os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(name, data, 0o644)
}

func logf(format string, args ...any) {
	if *verboseArg {
		log.Printf(format, args...)
	}
}

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCompressDecompressFile(t *testing.T) {
	dir := t.TempDir()
	inFilename := filepath.Join(dir, "input.txt")
	expect := []byte(strings.Repeat("she sells sea shells by the sea shore\n", 20))
	if err := os.WriteFile(inFilename, expect, 0o666); err != nil {
		t.Fatal(err)
	}

	outFilename = ""
	if err := compressFile(inFilename); err != nil {
		t.Fatalf("compressFile failed: %v", err)
	}
	packed, err := os.ReadFile(inFilename + ".huff")
	if err != nil {
		t.Fatal(err)
	}
	if len(packed) >= len(expect) {
		t.Errorf("expected compression, got %d -> %d bytes", len(expect), len(packed))
	}

	if err := os.Remove(inFilename); err != nil {
		t.Fatal(err)
	}
	if err := decompressFile(inFilename + ".huff"); err != nil {
		t.Fatalf("decompressFile failed: %v", err)
	}
	actual, err := os.ReadFile(inFilename)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(expect, actual) {
		t.Errorf("round trip changed the file")
	}
}

func TestDecompressFile_NeedsSuffix(t *testing.T) {
	outFilename = ""
	if err := decompressFile(filepath.Join(t.TempDir(), "input.bin")); err == nil {
		t.Errorf("expected an error for a file without the .huff suffix")
	}
}

func TestPrintCodes(t *testing.T) {
	dir := t.TempDir()
	inFilename := filepath.Join(dir, "input.txt")
	if err := os.WriteFile(inFilename, []byte("abbccc"), 0o666); err != nil {
		t.Fatal(err)
	}

	outFilename = filepath.Join(dir, "codes.txt")
	defer func() { outFilename = "" }()
	if err := printCodes(inFilename); err != nil {
		t.Fatalf("printCodes failed: %v", err)
	}

	raw, err := os.ReadFile(outFilename)
	if err != nil {
		t.Fatal(err)
	}
	expect := strings.Join([]string{
		"Tree{\n",
		"\tLen() = 3\n",
		"\tMinSize() = 1\n",
		"\tMaxSize() = 2\n",
		"\tWeight() = 6\n",
		"\tCode(99) = \"0\"\n",
		"\tCode(97) = \"10\"\n",
		"\tCode(98) = \"11\"\n",
		"}\n",
		"topology: 29 bits\n",
	}, "")
	if actual := string(raw); expect != actual {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expect, actual)
	}
}

func TestNewFlags(t *testing.T) {
	defer func() { outFilename = "" }()

	type testRow struct {
		args    []string
		verbose bool
		output  string
	}

	testData := [...]testRow{
		{[]string{"codes", "in"}, false, ""},
		{[]string{"-v", "codes", "in"}, true, ""},
		{[]string{"--verbose", "-o", "out", "codes", "in"}, true, "out"},
	}
	for _, row := range testData {
		t.Run(strings.Join(row.args, " "), func(t *testing.T) {
			outFilename = ""
			var verbose bool
			fs := newFlags(&verbose)
			if err := fs.Parse(row.args); err != nil {
				t.Fatalf("Parse failed: %v", err)
			}
			if verbose != row.verbose || outFilename != row.output {
				t.Errorf("expected verbose=%v output=%q, got verbose=%v output=%q", row.verbose, row.output, verbose, outFilename)
			}
			if fs.NArg() != 2 || fs.Arg(0) != "codes" {
				t.Errorf("wrong arguments: %v", fs.Args())
			}
		})
	}

	var verbose bool
	if err := newFlags(&verbose).Parse([]string{"-d", "codes", "in"}); err == nil {
		t.Errorf("expected -d to be rejected")
	}
}

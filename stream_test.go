package huffman

import (
	"bytes"
	"errors"
	"math/rand"
	"testing"
)

func TestCompress_Golden(t *testing.T) {
	packed, err := Compress([]byte("abbccc"))
	if err != nil {
		t.Fatalf("Compress failed: %v", err)
	}

	// 1 0 'c' 1 0 'a' 0 'b' | length 6 | 10 11 11 0 0 0 | padding
	expect := []byte{
		0x98, 0xe6, 0x13, 0x10,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x35, 0xe0,
	}
	if !bytes.Equal(expect, packed) {
		t.Errorf("wrong output:\n\texpect: %#v\n\tactual: %#v", expect, packed)
	}

	data, err := Decompress(packed)
	if err != nil {
		t.Fatalf("Decompress failed: %v", err)
	}
	if string(data) != "abbccc" {
		t.Errorf("wrong output:\n\texpect: %q\n\tactual: %q", "abbccc", data)
	}
}

func TestCompress_RoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(0x5a025ca11825a5e7))

	type testRow struct {
		name string
		data []byte
	}

	skewed := make([]byte, 4096)
	for i := range skewed {
		skewed[i] = byte(int(rng.ExpFloat64()*8) & 0xff)
	}
	uniform := make([]byte, 4096)
	rng.Read(uniform)
	all := make([]byte, 256)
	for i := range all {
		all[i] = byte(i)
	}

	testData := [...]testRow{
		{"one byte", []byte{0x42}},
		{"one letter", bytes.Repeat([]byte{'z'}, 17)},
		{"two letters", []byte("abababababbbb")},
		{"text", []byte("Hello, World! The quick brown fox jumps over the lazy dog.")},
		{"all bytes", all},
		{"skewed", skewed},
		{"uniform", uniform},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			packed, err := Compress(row.data)
			if err != nil {
				t.Fatalf("Compress failed: %v", err)
			}
			data, err := Decompress(packed)
			if err != nil {
				t.Fatalf("Decompress failed: %v", err)
			}
			if !bytes.Equal(row.data, data) {
				t.Errorf("round trip changed the data:\n\texpect: %#v\n\tactual: %#v", row.data, data)
			}
		})
	}
}

func TestEncode_Stream(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, []byte("mississippi")); err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	data, err := Decode(&buf)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if string(data) != "mississippi" {
		t.Errorf("wrong output:\n\texpect: %q\n\tactual: %q", "mississippi", data)
	}
}

func TestCompress_Empty(t *testing.T) {
	if _, err := Compress(nil); !errors.Is(err, ErrEmptyAlphabet) {
		t.Errorf("expected ErrEmptyAlphabet, got %v", err)
	}
}

func TestDecompress_Errors(t *testing.T) {
	packed, err := Compress([]byte("abbccc"))
	if err != nil {
		t.Fatalf("Compress failed: %v", err)
	}

	type testRow struct {
		name   string
		src    []byte
		expect error
	}

	testData := [...]testRow{
		{"empty", nil, ErrCorruptHeader},
		{"partial tree", packed[:2], ErrCorruptHeader},
		{"partial length", packed[:8], ErrCorruptHeader},
		{"partial payload", packed[:12], ErrTruncatedPayload},
		{"duplicate letter", []byte{0x98, 0x4c, 0x20}, ErrCorruptHeader},
		{"deep tree", bytes.Repeat([]byte{0xff}, 64), ErrCorruptHeader},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			data, err := Decompress(row.src)
			if !errors.Is(err, row.expect) {
				t.Errorf("expected %v, got %v", row.expect, err)
			}
			if data != nil {
				t.Errorf("expected no data, got %#v", data)
			}
		})
	}

	if _, err := Decompress(packed[:2]); !errors.Is(err, ErrTruncatedInput) {
		t.Errorf("expected the header error to wrap ErrTruncatedInput, got %v", err)
	}
}

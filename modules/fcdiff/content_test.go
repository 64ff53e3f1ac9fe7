package fcdiff

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestClassifyIsTextEmptyIsText(t *testing.T) {
	if !classifyIsText(nil) {
		t.Fatal("empty data should classify as text")
	}
}

func TestClassifyIsTextNulByteIsBinary(t *testing.T) {
	data := []byte("hello\x00world")
	if classifyIsText(data) {
		t.Fatal("data containing a NUL byte should classify as binary")
	}
}

func TestClassifyIsTextPlainASCII(t *testing.T) {
	data := []byte("the quick brown fox\r\njumps over\r\nthe lazy dog\r\n")
	if !classifyIsText(data) {
		t.Fatal("plain ASCII text should classify as text")
	}
}

func TestClassifyIsTextBOMForcesText(t *testing.T) {
	data := append([]byte{0xFF, 0xFE}, []byte("\x00h\x00i")...)
	if !classifyIsText(data) {
		t.Fatal("a recognized BOM should force a text classification")
	}
}

func TestDetectBOM(t *testing.T) {
	cases := []struct {
		name string
		data []byte
		kind bomKind
		n    int
	}{
		{"none", []byte("plain"), bomNone, 0},
		{"utf8", []byte{0xEF, 0xBB, 0xBF, 'h', 'i'}, bomUTF8, 3},
		{"utf16le", []byte{0xFF, 0xFE, 'h', 0}, bomUTF16LE, 2},
		{"utf16be", []byte{0xFE, 0xFF, 0, 'h'}, bomUTF16BE, 2},
	}
	for _, c := range cases {
		kind, n := detectBOM(c.data)
		if kind != c.kind || n != c.n {
			t.Errorf("%s: detectBOM() = (%v, %d), want (%v, %d)", c.name, kind, n, c.kind, c.n)
		}
	}
}

func TestDecodeTextUnicodeUTF16LE(t *testing.T) {
	data := []byte{0xFF, 0xFE, 'h', 0, 'i', 0}
	out, err := decodeTextUnicode(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(out, []byte("hi")) {
		t.Fatalf("got %q, want %q", out, "hi")
	}
}

func TestDecodeTextUnicodeUTF8BOMStripped(t *testing.T) {
	data := append([]byte{0xEF, 0xBB, 0xBF}, []byte("hi")...)
	out, err := decodeTextUnicode(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(out, []byte("hi")) {
		t.Fatalf("got %q, want %q", out, "hi")
	}
}

func TestLoadFileRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "f.txt")
	want := []byte("line one\nline two\n")
	if err := os.WriteFile(path, want, 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	got, err := loadFile(path)
	if err != nil {
		t.Fatalf("loadFile: %v", err)
	}
	if !bytes.Equal(got, want) {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestLoadFileMissing(t *testing.T) {
	if _, err := loadFile(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

package fcdiff

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"golang.org/x/text/encoding/unicode"
)

const classifyPrefixLen = 4096 // "leading prefix of up to 4 KiB" (§ Content Loader classifier)

// loadFile implements C2's Load step: open read-only with shared read,
// reject oversize files, read the whole file into one buffer. A
// zero-length file yields an empty, non-nil buffer.
func loadFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", ErrInvalidParam, path, err)
	}
	defer f.Close()
	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("io error: stat %s: %w", path, err)
	}
	size := info.Size()
	if size > MaxFileSize {
		return nil, fmt.Errorf("%w: %s is %d bytes", ErrTooLarge, path, size)
	}
	buf := make([]byte, size)
	if _, err := io.ReadFull(f, buf); err != nil {
		return nil, fmt.Errorf("io error: read %s: %w", path, err)
	}
	return buf, nil
}

// bomKind identifies a detected byte-order mark.
type bomKind int8

const (
	bomNone bomKind = iota
	bomUTF8
	bomUTF16LE
	bomUTF16BE
)

func detectBOM(data []byte) (bomKind, int) {
	switch {
	case bytes.HasPrefix(data, []byte{0xEF, 0xBB, 0xBF}):
		return bomUTF8, 3
	case bytes.HasPrefix(data, []byte{0xFF, 0xFE}):
		return bomUTF16LE, 2
	case bytes.HasPrefix(data, []byte{0xFE, 0xFF}):
		return bomUTF16BE, 2
	default:
		return bomNone, 0
	}
}

// classifyIsText implements C2's Classify step over a leading prefix of
// at most 4 KiB: a BOM is always text; otherwise a NUL byte forces
// binary, and text requires a >=0.90 ratio of printable-ASCII-or-
// tab/CR/LF bytes among the bytes scanned.
func classifyIsText(data []byte) bool {
	prefix := data
	if len(prefix) > classifyPrefixLen {
		prefix = prefix[:classifyPrefixLen]
	}
	if kind, _ := detectBOM(prefix); kind != bomNone {
		return true
	}
	if len(prefix) == 0 {
		return true
	}
	var counted int
	for _, b := range prefix {
		if b == 0 {
			return false
		}
		if (b >= 32 && b <= 126) || b == '\t' || b == '\r' || b == '\n' {
			counted++
		}
	}
	return float64(counted)/float64(len(prefix)) >= 0.90
}

// decodeTextUnicode implements the text-unicode branch of C2/C3:
// transcode UTF-16LE/BE (BOM-delimited) content to UTF-8, or strip a
// UTF-8 BOM. Content without any recognized BOM is assumed to already
// be UTF-8, which is the common case for "Unicode text" on non-Windows
// hosts and matches the teacher's own BOM-or-UTF8 shortcut in
// modules/diferenco/text.go's NewUnifiedReaderEx.
func decodeTextUnicode(data []byte) ([]byte, error) {
	kind, n := detectBOM(data)
	switch kind {
	case bomUTF8:
		return data[n:], nil
	case bomUTF16LE:
		dec := unicode.UTF16(unicode.LittleEndian, unicode.ExpectBOM).NewDecoder()
		out, err := dec.Bytes(data)
		if err != nil {
			return nil, fmt.Errorf("decode utf-16le: %w", err)
		}
		return out, nil
	case bomUTF16BE:
		dec := unicode.UTF16(unicode.BigEndian, unicode.ExpectBOM).NewDecoder()
		out, err := dec.Bytes(data)
		if err != nil {
			return nil, fmt.Errorf("decode utf-16be: %w", err)
		}
		return out, nil
	default:
		return data, nil
	}
}

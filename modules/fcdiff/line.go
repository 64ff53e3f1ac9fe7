package fcdiff

import (
	"bytes"

	"golang.org/x/text/cases"
)

// Line is a normalized line of a compared file. Text holds the
// normalized content (tab-expanded, and whitespace-stripped if
// IgnoreWhitespace is set); the original raw bytes are not retained.
type Line struct {
	Text        string
	Length      int
	Fingerprint uint32
}

// LineSequence is the ordered, read-only result of extracting and
// normalizing one file's lines. It is produced once by extractSequence
// and read by the LCS engine, the resync filter, and the emitter.
type LineSequence struct {
	Lines []Line
}

func (s *LineSequence) Len() int { return len(s.Lines) }

var foldCaser = cases.Fold()

// splitLines implements the line-boundary rule: a line is a maximal run
// of bytes containing neither CR nor LF, and runs of CR/LF between
// lines collapse into a single separator. A final line without a
// trailing terminator is still a line; an empty file yields none.
func splitLines(data []byte) [][]byte {
	var lines [][]byte
	start := 0
	i := 0
	for i < len(data) {
		if data[i] == '\r' || data[i] == '\n' {
			lines = append(lines, data[start:i])
			for i < len(data) && (data[i] == '\r' || data[i] == '\n') {
				i++
			}
			start = i
			continue
		}
		i++
	}
	if start < len(data) {
		lines = append(lines, data[start:])
	}
	return lines
}

func expandTabs(line []byte) []byte {
	if !bytes.ContainsRune(line, '\t') {
		return line
	}
	out := make([]byte, 0, len(line)+8)
	for _, b := range line {
		if b == '\t' {
			out = append(out, ' ', ' ', ' ', ' ')
			continue
		}
		out = append(out, b)
	}
	return out
}

func stripSpacesAndTabs(line []byte) []byte {
	out := make([]byte, 0, len(line))
	for _, b := range line {
		if b == ' ' || b == '\t' {
			continue
		}
		out = append(out, b)
	}
	return out
}

func asciiLower(b []byte) []byte {
	out := make([]byte, len(b))
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		out[i] = c
	}
	return out
}

// foldForFingerprint returns the byte sequence the fingerprint hash is
// computed over: the text itself when case is significant, its simple
// ASCII fold for TextASCII, or its Unicode case fold (via
// golang.org/x/text/cases, a stable full-case-folding table) for
// TextUnicode. The stored Line.Text is never touched by this step.
func foldForFingerprint(text []byte, mode Mode, flags Flag) []byte {
	if !flags.has(IgnoreCase) {
		return text
	}
	if mode == TextUnicode {
		return foldCaser.Bytes(text)
	}
	return asciiLower(text)
}

// fingerprint computes the 32-bit polynomial hash of the line's
// fold-for-comparison bytes.
func fingerprint(folded []byte, flags Flag) uint32 {
	var h uint32
	for _, b := range folded {
		if flags.has(IgnoreWhitespace) && (b == ' ' || b == '\t') {
			continue
		}
		h = h*31 + uint32(b)
	}
	return h
}

// extractSequence implements C3 end to end: split into lines, expand
// tabs, strip whitespace (dropping lines that become empty), and
// fingerprint each surviving line.
func extractSequence(data []byte, mode Mode, flags Flag) *LineSequence {
	raw := splitLines(data)
	seq := &LineSequence{Lines: make([]Line, 0, len(raw))}
	for _, line := range raw {
		if !flags.has(RawTabs) {
			line = expandTabs(line)
		}
		if flags.has(IgnoreWhitespace) {
			line = stripSpacesAndTabs(line)
			if len(line) == 0 {
				continue
			}
		}
		folded := foldForFingerprint(line, mode, flags)
		seq.Lines = append(seq.Lines, Line{
			Text:        string(line),
			Length:      len(line),
			Fingerprint: fingerprint(folded, flags),
		})
	}
	return seq
}

package main

import (
	"fmt"
	"strings"

	"github.com/zbalkan/gofc/modules/fcdiff"
)

// Summary is the human-readable rendering of one DiffBlock. It is not
// part of the engine's contract — modules/fcdiff never formats text —
// it is recovered from src/fc/fc.c's DefaultOutputCallback, which took
// a preformatted message plus an optional pair of line numbers.
type Summary struct {
	Message    string
	Line1      int // -1 when not applicable
	Line2      int
}

// String reproduces DefaultOutputCallback's two print shapes without
// their trailing newline, which the caller prints: "%s (Line %d vs %d)"
// when both line numbers are present, else "%s".
func (s Summary) String() string {
	if s.Line1 >= 0 && s.Line2 >= 0 {
		return fmt.Sprintf("%s (Line %d vs %d)", s.Message, s.Line1, s.Line2)
	}
	return s.Message
}

// summarize builds a Summary for one DiffBlock. Text-mode blocks carry
// the rendered line content prefixed the way classic line-oriented diff
// tools do (`<`/`>`); binary-mode blocks carry an offset/byte message.
// showLineNumbers mirrors the /N option (FC_SHOW_LINE_NUMS): fc.exe
// only prints the "(Line n vs m)" suffix when that option was given.
func summarize(ctx *fcdiff.UserContext, block fcdiff.DiffBlock, showLineNumbers bool, c *colorizer) Summary {
	switch block.Kind {
	case fcdiff.SizeMismatch:
		return Summary{
			Message: fmt.Sprintf("files are different sizes (%d vs %d bytes)", block.StartA, block.StartB),
			Line1:   -1, Line2: -1,
		}
	case fcdiff.BinaryChange:
		return Summary{
			Message: fmt.Sprintf("byte mismatch at offset %d: 0x%02X vs 0x%02X", block.StartA, block.EndA, block.EndB),
			Line1:   -1, Line2: -1,
		}
	default:
		return Summary{
			Message: formatTextBlock(ctx, block, c),
			Line1:   lineOrNone(showLineNumbers, block.StartA),
			Line2:   lineOrNone(showLineNumbers, block.StartB),
		}
	}
}

func lineOrNone(show bool, idx int) int {
	if !show {
		return -1
	}
	return idx + 1
}

func formatTextBlock(ctx *fcdiff.UserContext, block fcdiff.DiffBlock, c *colorizer) string {
	var b strings.Builder
	for i := block.StartA; i < block.EndA; i++ {
		fmt.Fprintf(&b, "%s\n", c.removed("< "+ctx.LinesA.Lines[i].Text))
	}
	if block.Kind == fcdiff.Change {
		b.WriteString(c.changed("---") + "\n")
	}
	for i := block.StartB; i < block.EndB; i++ {
		fmt.Fprintf(&b, "%s\n", c.added("> "+ctx.LinesB.Lines[i].Text))
	}
	return strings.TrimSuffix(b.String(), "\n")
}

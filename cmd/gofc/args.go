package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/zbalkan/gofc/modules/fcdiff"
)

// legacyOption mirrors fc.c's g_OptionMap: a single letter either ORs a
// flag into Flags or sets Mode outright. A zero Mode means "leave the
// mode alone", matching the original's ModeToSet==0 sentinel.
type legacyOption struct {
	flag fcdiff.Flag
	mode fcdiff.Mode
}

var legacyOptionMap = map[byte]legacyOption{
	'B': {mode: fcdiff.Binary},
	'C': {flag: fcdiff.IgnoreCase},
	'W': {flag: fcdiff.IgnoreWhitespace},
	'L': {mode: fcdiff.TextASCII},
	'N': {flag: fcdiff.ShowLineNumbers},
	'T': {flag: fcdiff.RawTabs},
	'U': {mode: fcdiff.TextUnicode},
}

// legacyArgs is the parsed result of fc's DOS-style command line.
type legacyArgs struct {
	Mode        fcdiff.Mode
	Flags       fcdiff.Flag
	ResyncLines int
	BufferLines int
	PathA, PathB string
}

// parseLegacyArgs implements the option grammar of src/fc/fc.c's wmain:
// every token before the final two operands is either a single-letter
// switch, a bare decimal (`/20`) setting the resync threshold, or an
// `LB`-prefixed decimal (`/LB100`) setting the buffer size. Both `/` and
// `-` are accepted as the switch prefix, which is exactly the case
// pflag cannot parse on its own (an unregistered `-B` is a shorthand
// flag error to pflag) — this scanner runs on raw os.Args before cobra
// ever sees them, for the single-pair invocation path only.
func parseLegacyArgs(argv []string) (*legacyArgs, error) {
	if len(argv) < 2 {
		return nil, fmt.Errorf("usage: gofc [options] path_a path_b")
	}
	out := &legacyArgs{
		Mode:        fcdiff.Auto,
		ResyncLines: fcdiff.DefaultResyncLines,
		BufferLines: fcdiff.DefaultBufferLines,
	}
	opts, operands := argv[:len(argv)-2], argv[len(argv)-2:]
	for _, tok := range opts {
		if len(tok) < 2 || (tok[0] != '/' && tok[0] != '-') {
			return nil, fmt.Errorf("invalid argument: %s", tok)
		}
		body := tok[1:]
		switch {
		case body[0] >= '0' && body[0] <= '9':
			n, err := strconv.Atoi(body)
			if err != nil || n < 1 {
				return nil, fmt.Errorf("invalid numeric option: %s", tok)
			}
			out.ResyncLines = n
		case len(body) > 2 && strings.EqualFold(body[:2], "LB") && body[2] >= '0' && body[2] <= '9':
			n, err := strconv.Atoi(body[2:])
			if err != nil || n < 1 {
				return nil, fmt.Errorf("invalid numeric option: %s", tok)
			}
			out.BufferLines = n
		default:
			opt, ok := legacyOptionMap[strings.ToUpper(body[:1])[0]]
			if !ok {
				return nil, fmt.Errorf("invalid option: %s", tok)
			}
			out.Flags |= opt.flag
			if opt.mode != fcdiff.Auto {
				out.Mode = opt.mode
			}
		}
	}
	out.PathA, out.PathB = operands[0], operands[1]
	return out, nil
}
